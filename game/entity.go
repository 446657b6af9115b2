package game

import (
	"math"
)

// Player is the croc controlled by the InputProvider
type Player struct {
	// Position in canvas coordinates
	X, Y float64

	// Velocity in pixels per second (last frame's movement)
	VX, VY float64

	// Collision radius in pixels
	Radius float64

	// Health points, always within [0, Config.MaxHP]
	HP int

	// Clock time of the last volley in milliseconds
	LastShot float64
}

// Bullet is a straight-flying projectile, fired by the player or by the boss
type Bullet struct {
	X, Y   float64
	VX, VY float64

	// Time since creation in seconds
	Age float64
}

// Enemy flies in a straight line toward where the player stood when it spawned
type Enemy struct {
	X, Y   float64
	VX, VY float64
	Radius float64

	// Wobble is an animation phase; it has no gameplay effect
	Wobble float64

	HP int
}

// Boss chases the player and fires radial attacks
type Boss struct {
	X, Y   float64
	Radius float64
	HP     int
	MaxHP  int

	// Speed in pixels per second
	Speed float64

	Wobble float64

	// SkillTimer counts down to the next radial attack, in seconds
	SkillTimer float64
}

// HealPack restores health when the player touches it
type HealPack struct {
	X, Y   float64
	Radius float64

	// Pulse is an animation phase
	Pulse float64
}

// ParticleKind tells the renderer how to color a particle
type ParticleKind int

const (
	ParticleMuzzle ParticleKind = iota
	ParticleHitSpark
	ParticleBossHitSpark
	ParticlePopPink
	ParticlePopGold
	ParticleDamage
	ParticleBossFlash
)

// Particle is a cosmetic effect with no gameplay meaning
type Particle struct {
	X, Y   float64
	VX, VY float64

	// Remaining life in seconds
	Life float64

	Kind ParticleKind
}

// negInf marks a player that has never fired
var negInf = math.Inf(-1)

// distance returns the Euclidean distance between two points
func distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// outside reports whether a point lies further than margin outside a w x h canvas
func outside(x, y, w, h, margin float64) bool {
	return x < -margin || x > w+margin || y < -margin || y > h+margin
}
