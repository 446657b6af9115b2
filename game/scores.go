package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ScoreStore persists the best score between sessions.
// Implementations swallow their own failures; the game keeps the value in memory regardless.
type ScoreStore interface {
	LoadBestScore() int
	SaveBestScore(best int)
}

// MemoryScoreStore keeps the best score for the lifetime of the process
type MemoryScoreStore struct {
	Best int
}

// LoadBestScore returns the stored value
func (m *MemoryScoreStore) LoadBestScore() int {
	return m.Best
}

// SaveBestScore stores the value
func (m *MemoryScoreStore) SaveBestScore(best int) {
	m.Best = best
}

// scoreFile is the on-disk layout of FileScoreStore
type scoreFile struct {
	Best int `yaml:"best"`
}

// FileScoreStore keeps the best score in a small YAML file
type FileScoreStore struct {
	path   string
	logger *log.Logger
}

// NewFileScoreStore creates a store backed by path. A nil logger uses log.Default().
func NewFileScoreStore(path string, logger *log.Logger) *FileScoreStore {
	if logger == nil {
		logger = log.Default()
	}
	return &FileScoreStore{path: path, logger: logger}
}

// LoadBestScore returns the stored best score, or 0 when the file is missing or unreadable
func (f *FileScoreStore) LoadBestScore() int {
	best, err := f.load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.logger.Printf("best score unavailable, starting from 0: %v", err)
		}
		return 0
	}
	return best
}

// SaveBestScore writes the best score; failures are logged and otherwise ignored
func (f *FileScoreStore) SaveBestScore(best int) {
	if err := f.save(best); err != nil {
		f.logger.Printf("best score not saved: %v", err)
	}
}

func (f *FileScoreStore) load() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0, fmt.Errorf("game: load %s: %w", f.path, err)
	}
	var sf scoreFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return 0, fmt.Errorf("game: unmarshal %s: %w", f.path, err)
	}
	if sf.Best < 0 {
		return 0, nil
	}
	return sf.Best, nil
}

func (f *FileScoreStore) save(best int) error {
	data, err := yaml.Marshal(scoreFile{Best: best})
	if err != nil {
		return fmt.Errorf("game: marshal best score: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("game: create %s: %w", dir, err)
		}
	}
	// Write then rename so a crash never leaves a truncated file behind
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("game: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("game: rename %s: %w", tmp, err)
	}
	return nil
}
