package game

import (
	"math"
)

// InputProvider defines the interface for player input.
// Firing is not polled: the host calls Game.ShootBullet on a fire edge.
type InputProvider interface {
	// Direction returns the discrete movement flags (keyboard axes)
	Direction() (up, down, left, right bool)

	// Stick returns the analog movement vector, magnitude within [0, 1]
	Stick() (x, y float64)

	// Aim returns the aim target in canvas coordinates
	Aim() (x, y float64)
}

// InputState is a plain InputProvider that a host fills in every frame
type InputState struct {
	Up, Down, Left, Right bool
	StickX, StickY        float64
	AimX, AimY            float64
}

// Direction returns the discrete movement flags
func (s *InputState) Direction() (bool, bool, bool, bool) {
	return s.Up, s.Down, s.Left, s.Right
}

// Stick returns the analog vector, clamped to unit length
func (s *InputState) Stick() (float64, float64) {
	x, y := s.StickX, s.StickY
	if l := math.Hypot(x, y); l > 1 {
		x /= l
		y /= l
	}
	return x, y
}

// Aim returns the aim target
func (s *InputState) Aim() (float64, float64) {
	return s.AimX, s.AimY
}

// BotInput provides AI-controlled input for headless runs.
// It aims at the closest threat and strafes away from anything too close.
type BotInput struct {
	// SafeDistance is how close a threat may come before the bot backs off
	SafeDistance float64

	// BulletSpeed is used to lead moving enemies; 0 aims straight at them
	BulletSpeed float64

	stickX, stickY float64
	aimX, aimY     float64
	hasTarget      bool
}

// NewBotInput creates a new bot input provider
func NewBotInput() *BotInput {
	return &BotInput{
		SafeDistance: 160.0,
		BulletSpeed:  DefaultConfig().BulletSpeed,
	}
}

// Direction never reports discrete keys; the bot steers with the stick
func (b *BotInput) Direction() (bool, bool, bool, bool) {
	return false, false, false, false
}

// Stick returns the steering vector chosen by the last Think
func (b *BotInput) Stick() (float64, float64) {
	return b.stickX, b.stickY
}

// Aim returns the target chosen by the last Think
func (b *BotInput) Aim() (float64, float64) {
	return b.aimX, b.aimY
}

// WantsFire returns true when the bot has something to shoot at
func (b *BotInput) WantsFire() bool {
	return b.hasTarget
}

// Think picks a target and a steering vector from the latest snapshot
func (b *BotInput) Think(snap Snapshot) {
	px, py := snap.Player.X, snap.Player.Y
	b.hasTarget = false
	nearest := math.Inf(1)

	consider := func(x, y, vx, vy float64) {
		d := distance(px, py, x, y)
		if d < nearest {
			nearest = d
			b.aimX, b.aimY = leadTarget(px, py, x, y, vx, vy, b.BulletSpeed)
			b.hasTarget = true
		}
	}
	for _, e := range snap.Enemies {
		consider(e.X, e.Y, e.VX, e.VY)
	}
	if snap.Boss != nil {
		consider(snap.Boss.X, snap.Boss.Y, 0, 0)
	}

	// Repulsion from close threats, attraction to the heal pack when hurt
	var sx, sy float64
	push := func(x, y, weight float64) {
		d := distance(px, py, x, y)
		if d <= 0 || d > b.SafeDistance {
			return
		}
		f := weight * (b.SafeDistance - d) / b.SafeDistance
		sx += (px - x) / d * f
		sy += (py - y) / d * f
	}
	for _, e := range snap.Enemies {
		push(e.X, e.Y, 1)
	}
	for _, bb := range snap.BossBullets {
		push(bb.X, bb.Y, 1.5)
	}
	if snap.Boss != nil {
		push(snap.Boss.X, snap.Boss.Y, 2)
	}
	if snap.HP < snap.MaxHP {
		for _, h := range snap.HealPacks {
			d := distance(px, py, h.X, h.Y)
			if d > 0 {
				sx += (h.X - px) / d * 0.5
				sy += (h.Y - py) / d * 0.5
			}
		}
	}

	// Drift back toward the centre so the bot does not pin itself to a wall
	cx, cy := snap.Width/2, snap.Height/2
	sx += (cx - px) / snap.Width * 0.5
	sy += (cy - py) / snap.Height * 0.5

	if l := math.Hypot(sx, sy); l > 1 {
		sx /= l
		sy /= l
	}
	b.stickX, b.stickY = sx, sy
}

// idleInput is used when no provider is supplied
type idleInput struct{}

func (idleInput) Direction() (bool, bool, bool, bool) { return false, false, false, false }
func (idleInput) Stick() (float64, float64)           { return 0, 0 }
func (idleInput) Aim() (float64, float64)             { return 0, 0 }
