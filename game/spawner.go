package game

import (
	"math"
)

const (
	// Enemies appear this far outside the chosen edge
	enemySpawnOffset = 30.0

	// Heal packs keep this distance from every edge
	healPackMargin = 80.0
	healPackRadius = 18.0

	// The boss drops in from above the canvas
	bossSpawnY = -80.0
)

// spawnEnemy accumulates elapsed milliseconds and spawns an enemy on one of the
// four edges once the round's spawn interval has passed
func (g *Game) spawnEnemy(elapsedMs float64) {
	s := &g.state
	if s.RoundCountdownActive || s.BossActive || s.KillsThisRound >= s.RoundGoal {
		return
	}
	s.SpawnTimer += elapsedMs
	if s.SpawnTimer < g.params.SpawnInterval {
		return
	}
	s.SpawnTimer = 0

	w, h := g.config.Width, g.config.Height
	var x, y float64
	switch g.rng.Intn(4) {
	case 0: // Top
		x = g.rng.Float64() * w
		y = -enemySpawnOffset
	case 1: // Right
		x = w + enemySpawnOffset
		y = g.rng.Float64() * h
	case 2: // Bottom
		x = g.rng.Float64() * w
		y = h + enemySpawnOffset
	default: // Left
		x = -enemySpawnOffset
		y = g.rng.Float64() * h
	}

	speed := g.config.EnemySpeedMin +
		g.rng.Float64()*(g.config.EnemySpeedMax-g.config.EnemySpeedMin) +
		g.params.EnemySpeedBonus
	p := &g.world.Player
	angle := math.Atan2(p.Y-y, p.X-x)

	g.world.Enemies.Add(Enemy{
		X:      x,
		Y:      y,
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
		Radius: 24 + g.rng.Float64()*10,
		Wobble: g.rng.Float64() * math.Pi * 2,
		HP:     g.params.EnemyHP,
	})
}

// spawnHealPack places the round's single heal pack somewhere inside the margin
func (g *Game) spawnHealPack() {
	if g.state.HealUsed || g.world.HealPacks.Live() > 0 {
		return
	}
	g.world.HealPacks.Add(HealPack{
		X:      healPackMargin + g.rng.Float64()*(g.config.Width-healPackMargin*2),
		Y:      healPackMargin + g.rng.Float64()*(g.config.Height-healPackMargin*2),
		Radius: healPackRadius,
	})
}

// spawnBoss creates the round's boss and stops enemy spawning
func (g *Game) spawnBoss() {
	g.world.Boss = &Boss{
		X:          g.rng.Float64() * g.config.Width,
		Y:          bossSpawnY,
		Radius:     g.params.BossRadius,
		HP:         g.params.BossHP,
		MaxHP:      g.params.BossHP,
		Speed:      g.params.BossSpeed,
		Wobble:     g.rng.Float64() * math.Pi * 2,
		SkillTimer: g.params.BossSkillCooldown,
	}
	g.state.BossActive = true
	g.setStatus("Boss incoming!", defaultStatusDuration)
	g.logger.Printf("round %d: boss spawned (hp %d)", g.state.Round, g.params.BossHP)
}

// fireBossRadialAttack emits a full ring of boss bullets
func (g *Game) fireBossRadialAttack() {
	boss := g.world.Boss
	if boss == nil {
		return
	}
	count := g.params.BossSkillBullets
	for i := 0; i < count; i++ {
		angle := math.Pi * 2 * float64(i) / float64(count)
		g.world.BossBullets.Add(Bullet{
			X:  boss.X,
			Y:  boss.Y,
			VX: math.Cos(angle) * g.config.BossBulletSpeed,
			VY: math.Sin(angle) * g.config.BossBulletSpeed,
		})
	}
	g.spawnFlash(boss.X, boss.Y, 0.3, ParticleBossFlash)
}

// ShootBullet fires a volley toward the aim point.
// It is a silent no-op while paused, during a countdown, or on cooldown.
func (g *Game) ShootBullet() {
	if !g.state.Running || g.state.RoundCountdownActive {
		return
	}
	p := &g.world.Player
	if g.clock-p.LastShot < g.config.BulletCooldown {
		return
	}

	aimX, aimY := g.input.Aim()
	baseAngle := math.Atan2(aimY-p.Y, aimX-p.X)
	count := g.params.BulletCount
	for i := 0; i < count; i++ {
		offset := (float64(i) - float64(count-1)/2) * g.config.GunSpread
		angle := baseAngle + offset
		g.world.Bullets.Add(Bullet{
			X:  p.X + math.Cos(angle)*(p.Radius+8),
			Y:  p.Y + math.Sin(angle)*(p.Radius+8),
			VX: math.Cos(angle) * g.config.BulletSpeed,
			VY: math.Sin(angle) * g.config.BulletSpeed,
		})
	}
	g.spawnMuzzleEffect()
	p.LastShot = g.clock
}
