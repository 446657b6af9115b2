package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"cutecroc/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (defaults are used when empty)")
	scoresPath := flag.String("scores", defaultScoresPath(), "file that keeps the best score")
	watch := flag.Bool("watch", false, "reload the tuning file on change (applied on restart)")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Printf("Warning: %v; using defaults", err)
		} else {
			config = loaded
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Starting Cute Croc with seed %d", *seed)

	input := &game.InputState{AimX: config.Width, AimY: config.Height / 2}
	g := game.NewGame(config, game.Options{
		Input:  input,
		Scores: game.NewFileScoreStore(*scoresPath, nil),
		Rand:   rand.New(rand.NewSource(*seed)),
	})
	// Cosmetics get their own source so they never perturb gameplay rolls
	app := NewApp(g, input, rand.New(rand.NewSource(*seed+1)))

	if *watch && *configPath != "" {
		w, err := game.NewConfigWatcher(*configPath, nil)
		if err != nil {
			log.Printf("Warning: cannot watch %s: %v", *configPath, err)
		} else {
			defer w.Close()
			app.reloads = w.Configs
		}
	}

	ebiten.SetWindowSize(int(config.Width), int(config.Height))
	ebiten.SetWindowTitle("Cute Croc")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// defaultScoresPath keeps the best score next to other per-user config
func defaultScoresPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cutecroc-best.yaml"
	}
	return filepath.Join(dir, "cutecroc", "best.yaml")
}
