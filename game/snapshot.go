package game

// Snapshot is a read-only copy of everything a renderer or HUD needs for one frame
type Snapshot struct {
	Width, Height float64

	Player Player
	HP     int
	MaxHP  int

	// Boss is nil when no boss fight is in progress
	Boss *Boss

	Bullets     []Bullet
	Enemies     []Enemy
	BossBullets []Bullet
	Particles   []Particle
	HealPacks   []HealPack

	Score     int
	BestScore int
	Combo     float64

	Round     int
	MaxRounds int
	RoundGoal int
	Kills     int

	Status          string
	Countdown       float64
	CountdownActive bool

	Running bool
	Over    bool
	Victory bool
	Phase   Phase
}

// Snapshot copies the current frame
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Width:           g.config.Width,
		Height:          g.config.Height,
		Player:          w.Player,
		HP:              w.Player.HP,
		MaxHP:           g.config.MaxHP,
		Bullets:         w.Bullets.Snapshot(),
		Enemies:         w.Enemies.Snapshot(),
		BossBullets:     w.BossBullets.Snapshot(),
		Particles:       w.Particles.Snapshot(),
		HealPacks:       w.HealPacks.Snapshot(),
		Score:           g.state.Score,
		BestScore:       g.state.BestScore,
		Combo:           g.state.Combo,
		Round:           g.state.Round,
		MaxRounds:       g.config.MaxRounds,
		RoundGoal:       g.state.RoundGoal,
		Kills:           g.state.KillsThisRound,
		Status:          g.state.StatusText,
		Countdown:       max(0, g.state.RoundCountdown),
		CountdownActive: g.state.RoundCountdownActive,
		Running:         g.state.Running,
		Over:            g.state.Over,
		Victory:         g.state.Victory,
		Phase:           g.Phase(),
	}
	if w.Boss != nil {
		boss := *w.Boss
		snap.Boss = &boss
	}
	return snap
}
