package game

// World owns every entity collection of one playthrough
type World struct {
	Player Player

	// Boss is nil unless a boss fight is in progress
	Boss *Boss

	Bullets     *Pool[Bullet]
	Enemies     *Pool[Enemy]
	BossBullets *Pool[Bullet]
	Particles   *Pool[Particle]
	HealPacks   *Pool[HealPack]
}

// NewWorld creates a world with preallocated collections and the player at the centre
func NewWorld(config Config) *World {
	w := &World{
		Bullets:     NewPool[Bullet](64),
		Enemies:     NewPool[Enemy](32),
		BossBullets: NewPool[Bullet](128),
		Particles:   NewPool[Particle](256),
		HealPacks:   NewPool[HealPack](1),
	}
	w.ResetPlayer(config)
	return w
}

// ResetPlayer puts the player back at the centre with full health
func (w *World) ResetPlayer(config Config) {
	w.Player = Player{
		X:        config.Width / 2,
		Y:        config.Height / 2,
		Radius:   config.PlayerRadius,
		HP:       config.MaxHP,
		LastShot: negInf,
	}
}

// ClearTransient empties every collection except the player and drops the boss
func (w *World) ClearTransient() {
	w.Boss = nil
	w.Bullets.Clear()
	w.Enemies.Clear()
	w.BossBullets.Clear()
	w.Particles.Clear()
	w.HealPacks.Clear()
}

// Compact drops everything marked for removal during the frame
func (w *World) Compact() {
	w.Bullets.Compact()
	w.Enemies.Compact()
	w.BossBullets.Compact()
	w.Particles.Compact()
	w.HealPacks.Compact()
}
