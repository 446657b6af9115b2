package main

import (
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"cutecroc/game"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (defaults are used when empty)")
	seed := flag.Int64("seed", 1, "random seed")
	fps := flag.Float64("fps", 60, "simulated frames per second")
	maxSeconds := flag.Float64("max-seconds", 600, "stop after this much simulated time")
	verbose := flag.Bool("v", false, "log game events")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	tracePath := flag.String("trace", "", "write an execution trace to this file")
	flag.Parse()

	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %v", *fps)
	}

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config = loaded
	}

	events := log.New(io.Discard, "", 0)
	if *verbose {
		events = log.New(os.Stderr, "game: ", log.Lmicroseconds)
	}

	bot := game.NewBotInput()
	bot.BulletSpeed = config.BulletSpeed
	g := game.NewGame(config, game.Options{
		Input:  bot,
		Scores: &game.MemoryScoreStore{},
		Rand:   rand.New(rand.NewSource(*seed)),
		Logger: events,
	})

	log.Printf("Autoplay: seed=%d fps=%.0f max=%.0fs", *seed, *fps, *maxSeconds)

	prof, err := startProfiling(*cpuProfile, *tracePath)
	if err != nil {
		log.Fatalf("Failed to start profiling: %v", err)
	}
	defer prof.Stop()

	started := time.Now()
	frameMs := 1000 / *fps
	frames := 0
	lastRound := 0
	for ts := 0.0; ts <= *maxSeconds*1000; ts += frameMs {
		snap := g.Snapshot()
		if snap.Round != lastRound {
			log.Printf("Round %d (score %d)", snap.Round, snap.Score)
			lastRound = snap.Round
		}
		bot.Think(snap)
		if bot.WantsFire() {
			g.ShootBullet()
		}
		frames++
		g.Tick(ts)
		if g.State().Over {
			break
		}
	}

	s := g.State()
	outcome := "timeout"
	switch {
	case s.Over && s.Victory:
		outcome = "victory"
	case s.Over:
		outcome = "defeat"
	}
	log.Printf("Finished: %s after %d frames (%.1fs simulated, %v wall)",
		outcome, frames, float64(frames)/(*fps), time.Since(started).Round(time.Millisecond))
	log.Printf("Score %d, round %d/%d, hp %d", s.Score, s.Round, config.MaxRounds, g.World().Player.HP)
}
