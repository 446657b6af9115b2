package main

import (
	"image/color"
	"math"

	"cutecroc/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{24, 44, 38, 255}
	gridColor       = color.RGBA{34, 60, 52, 255}
	playerColor     = color.RGBA{96, 196, 112, 255}
	playerBelly     = color.RGBA{196, 236, 160, 255}
	bulletColor     = color.RGBA{255, 236, 140, 255}
	enemyColor      = color.RGBA{240, 120, 170, 255}
	armoredColor    = color.RGBA{190, 80, 140, 255}
	bossColor       = color.RGBA{150, 70, 200, 255}
	bossBulletColor = color.RGBA{255, 110, 90, 255}
	healColor       = color.RGBA{120, 230, 160, 255}
	eyeColor        = color.RGBA{20, 20, 28, 255}
	hpBackColor     = color.RGBA{0, 0, 0, 160}
	hpFillColor     = color.RGBA{255, 90, 120, 255}
)

const gridSpacing = 48

// particleColors maps each effect kind to its tint
var particleColors = map[game.ParticleKind]color.RGBA{
	game.ParticleMuzzle:       {255, 240, 170, 255},
	game.ParticleHitSpark:     {255, 200, 220, 255},
	game.ParticleBossHitSpark: {220, 180, 255, 255},
	game.ParticlePopPink:      {255, 140, 190, 255},
	game.ParticlePopGold:      {255, 210, 90, 255},
	game.ParticleDamage:       {255, 80, 80, 255},
	game.ParticleBossFlash:    {200, 120, 255, 255},
}

func drawBackground(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(backgroundColor)
	for x := float32(0); x < float32(snap.Width); x += gridSpacing {
		vector.StrokeLine(screen, x, 0, x, float32(snap.Height), 1, gridColor, false)
	}
	for y := float32(0); y < float32(snap.Height); y += gridSpacing {
		vector.StrokeLine(screen, 0, y, float32(snap.Width), y, 1, gridColor, false)
	}
}

// drawWorld paints every entity in the snapshot, back to front
func drawWorld(screen *ebiten.Image, snap game.Snapshot, croc *ebiten.Image) {
	for _, h := range snap.HealPacks {
		drawHealPack(screen, h)
	}
	for _, e := range snap.Enemies {
		drawEnemy(screen, e)
	}
	if snap.Boss != nil {
		drawBoss(screen, *snap.Boss)
	}
	for _, b := range snap.Bullets {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), 5, bulletColor, true)
	}
	for _, b := range snap.BossBullets {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), 7, bossBulletColor, true)
	}
	drawPlayer(screen, snap, croc)
	for _, p := range snap.Particles {
		drawParticle(screen, p)
	}
}

func drawPlayer(screen *ebiten.Image, snap game.Snapshot, croc *ebiten.Image) {
	p := snap.Player
	if snap.HP <= 0 {
		return
	}
	if croc != nil {
		size := float64(croc.Bounds().Dx())
		scale := p.Radius * 2 / size
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-size/2, -size/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(p.X, p.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(croc, op)
		return
	}
	x, y, r := float32(p.X), float32(p.Y), float32(p.Radius)
	vector.DrawFilledCircle(screen, x, y, r, playerColor, true)
	vector.DrawFilledCircle(screen, x, y+r*0.25, r*0.6, playerBelly, true)
	vector.DrawFilledCircle(screen, x-r*0.35, y-r*0.45, r*0.18, eyeColor, true)
	vector.DrawFilledCircle(screen, x+r*0.35, y-r*0.45, r*0.18, eyeColor, true)
}

func drawEnemy(screen *ebiten.Image, e game.Enemy) {
	clr := enemyColor
	if e.HP > 1 {
		clr = armoredColor
	}
	// Wobble squashes the blob a little so it looks alive
	r := float32(e.Radius * (1 + 0.06*math.Sin(e.Wobble)))
	x, y := float32(e.X), float32(e.Y)
	vector.DrawFilledCircle(screen, x, y, r, clr, true)
	vector.DrawFilledCircle(screen, x-r*0.3, y-r*0.2, r*0.15, eyeColor, true)
	vector.DrawFilledCircle(screen, x+r*0.3, y-r*0.2, r*0.15, eyeColor, true)
	if e.HP > 1 {
		vector.StrokeCircle(screen, x, y, r+3, 2, bulletColor, true)
	}
}

func drawBoss(screen *ebiten.Image, b game.Boss) {
	x, y := float32(b.X), float32(b.Y)
	r := float32(b.Radius * (1 + 0.04*math.Sin(b.Wobble)))
	vector.DrawFilledCircle(screen, x, y, r, bossColor, true)
	vector.DrawFilledCircle(screen, x-r*0.3, y-r*0.25, r*0.14, eyeColor, true)
	vector.DrawFilledCircle(screen, x+r*0.3, y-r*0.25, r*0.14, eyeColor, true)

	const barHeight = 6
	width := float32(b.Radius * 2)
	left := x - width/2
	top := y - float32(b.Radius) - 16
	vector.DrawFilledRect(screen, left, top, width, barHeight, hpBackColor, false)
	if b.MaxHP > 0 {
		fill := width * float32(b.HP) / float32(b.MaxHP)
		vector.DrawFilledRect(screen, left, top, fill, barHeight, hpFillColor, false)
	}
}

func drawHealPack(screen *ebiten.Image, h game.HealPack) {
	x, y := float32(h.X), float32(h.Y)
	r := float32(h.Radius * (1 + 0.12*math.Sin(h.Pulse)))
	vector.DrawFilledCircle(screen, x, y, r, healColor, true)
	arm := r * 0.55
	vector.StrokeLine(screen, x-arm, y, x+arm, y, 4, color.White, true)
	vector.StrokeLine(screen, x, y-arm, x, y+arm, 4, color.White, true)
}

func drawParticle(screen *ebiten.Image, p game.Particle) {
	clr, ok := particleColors[p.Kind]
	if !ok {
		clr = color.RGBA{255, 255, 255, 255}
	}
	alpha := math.Min(1, p.Life*2.5)
	faded := color.RGBA{
		R: uint8(float64(clr.R) * alpha),
		G: uint8(float64(clr.G) * alpha),
		B: uint8(float64(clr.B) * alpha),
		A: uint8(255 * alpha),
	}
	size := float32(3)
	switch p.Kind {
	case game.ParticleDamage, game.ParticleBossFlash:
		// Flashes grow as they fade
		size = float32(10 + (1-alpha)*30)
	case game.ParticlePopPink, game.ParticlePopGold:
		size = 4
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), size, faded, true)
}
