package game

import (
	"math"
)

// Particle velocity is multiplied by this every frame
const particleDamping = 0.96

// spawnMuzzleEffect sprays a few particles around the player after a volley
func (g *Game) spawnMuzzleEffect() {
	p := &g.world.Player
	for i := 0; i < 8; i++ {
		angle := g.rng.Float64() * math.Pi * 2
		g.world.Particles.Add(Particle{
			X:    p.X,
			Y:    p.Y,
			VX:   math.Cos(angle) * 120,
			VY:   math.Sin(angle) * 120,
			Life: 0.2 + g.rng.Float64()*0.2,
			Kind: ParticleMuzzle,
		})
	}
}

// spawnHitSpark marks where a bullet struck
func (g *Game) spawnHitSpark(x, y, spread, life float64, kind ParticleKind) {
	g.world.Particles.Add(Particle{
		X:    x,
		Y:    y,
		VX:   (g.rng.Float64() - 0.5) * spread,
		VY:   (g.rng.Float64() - 0.5) * spread,
		Life: life,
		Kind: kind,
	})
}

// spawnPopEffect bursts a ring of particles where something died
func (g *Game) spawnPopEffect(x, y float64) {
	const count = 12
	for i := 0; i < count; i++ {
		angle := math.Pi * 2 * float64(i) / count
		speed := 80 + g.rng.Float64()*120
		kind := ParticlePopPink
		if i%2 != 0 {
			kind = ParticlePopGold
		}
		g.world.Particles.Add(Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: 0.5 + g.rng.Float64()*0.3,
			Kind: kind,
		})
	}
}

// spawnFlash places a stationary particle, used for damage and boss skill flashes
func (g *Game) spawnFlash(x, y, life float64, kind ParticleKind) {
	g.world.Particles.Add(Particle{X: x, Y: y, Life: life, Kind: kind})
}

// updateParticles integrates and expires particles
func (g *Game) updateParticles(dt float64) {
	ps := g.world.Particles
	for i := 0; i < ps.Len(); i++ {
		p := ps.At(i)
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt
		p.VX *= particleDamping
		p.VY *= particleDamping
		if p.Life <= 0 {
			ps.Remove(i)
		}
	}
}
