package main

import (
	"image/color"
	"math"
	"math/rand"

	"cutecroc/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const dustCount = 60

var dustColor = color.RGBA{70, 110, 96, 255}

type dustMote struct {
	x, y  float64
	speed float64
	size  float32
}

// dustField drifts against the player's movement for a cheap parallax
type dustField struct {
	motes []dustMote
}

func newDustField(width, height float64, rng *rand.Rand) *dustField {
	d := &dustField{motes: make([]dustMote, dustCount)}
	for i := range d.motes {
		d.motes[i] = dustMote{
			x:     rng.Float64() * width,
			y:     rng.Float64() * height,
			speed: 0.05 + rng.Float64()*0.2,
			size:  float32(1 + rng.Float64()*2),
		}
	}
	return d
}

func (d *dustField) update(dt float64, player game.Player, width, height float64) {
	for i := range d.motes {
		m := &d.motes[i]
		m.x -= player.VX * dt * m.speed
		m.y -= player.VY * dt * m.speed
		// Wrap around the field
		m.x = math.Mod(m.x+width, width)
		m.y = math.Mod(m.y+height, height)
	}
}

func (d *dustField) draw(screen *ebiten.Image) {
	for _, m := range d.motes {
		vector.DrawFilledCircle(screen, float32(m.x), float32(m.y), m.size, dustColor, false)
	}
}
