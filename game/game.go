package game

import (
	"log"
	"math"
	"math/rand"
	"time"
)

// Phase names the progression state derived from the game flags
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseActive
	PhaseBossFight
	PhaseVictory
	PhaseDefeat
	PhasePaused
)

// String returns a short label for logs and the HUD
func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseActive:
		return "active"
	case PhaseBossFight:
		return "boss"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// State is the aggregate game state of one playthrough
type State struct {
	Running bool
	Over    bool
	Victory bool

	Score     int
	BestScore int

	// Combo is the score multiplier, never below 1
	Combo float64

	// ComboTimer counts down in milliseconds; the combo resets when it lapses
	ComboTimer float64

	// SpawnTimer accumulates milliseconds toward the next enemy
	SpawnTimer float64

	Round          int
	RoundGoal      int
	KillsThisRound int
	BossActive     bool

	// RoundCountdown is the remaining pre-round freeze in seconds
	RoundCountdown       float64
	RoundCountdownActive bool
	PendingRound         int

	StatusText string

	// StatusTimer counts down in milliseconds
	StatusTimer float64

	HealUsed bool
}

// Options carries the collaborators of a Game. Nil fields get defaults.
type Options struct {
	Input  InputProvider
	Scores ScoreStore
	Rand   *rand.Rand
	Logger *log.Logger
}

// Game represents the main game state and drives one frame at a time
type Game struct {
	config Config
	params RoundParameters
	state  State
	world  *World

	input  InputProvider
	scores ScoreStore
	rng    *rand.Rand
	logger *log.Logger

	// Config waiting for the next Reset
	pendingConfig *Config

	// Simulation clock in milliseconds, used for the bullet cooldown
	clock float64

	// Last host timestamp for delta time calculation
	lastTime    float64
	hasBaseline bool
}

// NewGame creates a new game instance with round 1 queued
func NewGame(config Config, opts Options) *Game {
	if opts.Input == nil {
		opts.Input = idleInput{}
	}
	if opts.Scores == nil {
		opts.Scores = &MemoryScoreStore{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	g := &Game{
		config: config,
		world:  NewWorld(config),
		input:  opts.Input,
		scores: opts.Scores,
		rng:    opts.Rand,
		logger: opts.Logger,
	}
	g.state.BestScore = max(0, g.scores.LoadBestScore())
	g.start()
	return g
}

// start puts a fresh playthrough on the countdown to round 1
func (g *Game) start() {
	g.state = State{
		BestScore: g.state.BestScore,
		Combo:     1,
		Round:     1,
	}
	g.params = NewRoundParameters(g.config, 1)
	g.world.ResetPlayer(g.config)
	g.world.ClearTransient()
	g.queueRound(1)
	g.state.Running = true
	g.hasBaseline = false
}

// Config returns the configuration of the current playthrough
func (g *Game) Config() Config {
	return g.config
}

// State returns a copy of the aggregate state
func (g *Game) State() State {
	return g.state
}

// World exposes the entity collections; callers must not keep pointers across frames
func (g *Game) World() *World {
	return g.world
}

// Params returns the parameters of the current round
func (g *Game) Params() RoundParameters {
	return g.params
}

// Phase derives the progression phase from the state flags
func (g *Game) Phase() Phase {
	switch {
	case g.state.Over && g.state.Victory:
		return PhaseVictory
	case g.state.Over:
		return PhaseDefeat
	case !g.state.Running:
		return PhasePaused
	case g.state.RoundCountdownActive:
		return PhaseCountdown
	case g.state.BossActive:
		return PhaseBossFight
	default:
		return PhaseActive
	}
}

// SetPendingConfig stores a config that takes effect at the next Reset
func (g *Game) SetPendingConfig(config Config) {
	g.pendingConfig = &config
}

// Tick advances the game using a host timestamp in milliseconds.
// It returns false once the game has ended and no further ticks are needed.
func (g *Game) Tick(timestamp float64) bool {
	dt := 0.0
	if g.hasBaseline {
		dt = (timestamp - g.lastTime) / 1000
	}
	if !math.IsNaN(timestamp) && !math.IsInf(timestamp, 0) {
		g.lastTime = timestamp
		g.hasBaseline = true
	}

	// Clamp delta time to prevent large jumps
	dt = sanitizeDelta(dt)
	if g.config.MaxFrameDelta > 0 && dt > g.config.MaxFrameDelta {
		dt = g.config.MaxFrameDelta
	}

	g.step(dt)
	return g.state.Running || g.world.Player.HP > 0
}

// Update advances the game by dt seconds
func (g *Game) Update(dt float64) {
	g.step(sanitizeDelta(dt))
}

// sanitizeDelta turns degenerate frame deltas into 0
func sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return 0
	}
	return dt
}

// step runs one frame of the simulation
func (g *Game) step(dt float64) {
	g.clock += dt * 1000
	if !g.state.Running {
		return
	}
	if g.updateRoundCountdown(dt) {
		g.updateStatus(dt)
		return
	}

	g.updatePlayer(dt)
	g.updateBullets(dt)
	g.updateEnemies(dt)
	g.updateBoss(dt)
	g.updateHealPacks(dt)
	g.updateParticles(dt)
	g.updateBossBullets(dt)
	g.world.Compact()

	g.checkCollisions()
	if !g.state.Over {
		g.checkHealPickup()
	}
	g.updateCombo(dt)
	g.updateStatus(dt)
	g.spawnEnemy(dt * 1000)
	g.world.Compact()
}

// Reset starts a new playthrough, applying a pending config if one was set
func (g *Game) Reset() {
	if g.pendingConfig != nil {
		g.config = *g.pendingConfig
		g.pendingConfig = nil
		g.logger.Printf("applied new tuning (%vx%v, %d rounds)", g.config.Width, g.config.Height, g.config.MaxRounds)
	}
	g.start()
}

// TogglePause stops or resumes the simulation. A finished game stays finished.
func (g *Game) TogglePause() {
	if g.state.Over {
		return
	}
	g.state.Running = !g.state.Running
	if g.state.Running {
		// Re-baseline so the paused interval is not simulated
		g.hasBaseline = false
	}
}

// setStatus posts a HUD message for duration milliseconds
func (g *Game) setStatus(text string, duration float64) {
	g.state.StatusText = text
	g.state.StatusTimer = duration
}

// defaultStatusDuration is how long most status messages stay up, in milliseconds
const defaultStatusDuration = 2200.0
