package game

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long a tuning file must stay quiet before it is read
const reloadDebounce = 100 * time.Millisecond

// ConfigWatcher reloads a tuning file when it changes on disk. Only configs
// that load and validate are delivered; failures are logged.
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	logger   *log.Logger
	debounce time.Duration

	// Configs holds at most the newest reloaded config
	Configs chan Config

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewConfigWatcher watches the directory holding path so that editors that
// replace the file by rename are still noticed. A nil logger uses log.Default().
func NewConfigWatcher(path string, logger *log.Logger) (*ConfigWatcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		watcher:  w,
		path:     abs,
		logger:   logger,
		debounce: reloadDebounce,
		Configs:  make(chan Config, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close stops the watcher and waits for its goroutine to exit
func (w *ConfigWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// run reads the file once events have stopped for the debounce interval, so a
// save that truncates first and writes later is read after the final write
func (w *ConfigWatcher) run() {
	defer close(w.done)

	var timer *time.Timer
	var settled <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			settled = timer.C
		case <-settled:
			settled = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("Warning: config watcher: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *ConfigWatcher) reload() {
	config, err := LoadConfig(w.path)
	if err != nil {
		w.logger.Printf("Warning: config not reloaded: %v", err)
		return
	}
	// Keep only the newest config if the game has not picked up the last one
	select {
	case <-w.Configs:
	default:
	}
	w.Configs <- config
	w.logger.Printf("Reloaded %s; changes apply on restart", w.path)
}
