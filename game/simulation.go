package game

import (
	"math"
)

const (
	bulletMargin     = 50.0
	bulletLifetime   = 3.0
	bossBulletMargin = 80.0
	bossBulletLife   = 4.0
	enemyMargin      = 120.0
)

// updatePlayer moves the player from the combined keyboard and stick direction
func (g *Game) updatePlayer(dt float64) {
	var ax, ay float64
	up, down, left, right := g.input.Direction()
	if up {
		ay -= 1
	}
	if down {
		ay += 1
	}
	if left {
		ax -= 1
	}
	if right {
		ax += 1
	}
	sx, sy := g.input.Stick()
	ax += sx
	ay += sy

	if l := math.Hypot(ax, ay); l > 0 {
		ax /= l
		ay /= l
	}

	p := &g.world.Player
	p.VX = ax * g.config.PlayerSpeed
	p.VY = ay * g.config.PlayerSpeed
	p.X = clamp(p.X+p.VX*dt, p.Radius, g.config.Width-p.Radius)
	p.Y = clamp(p.Y+p.VY*dt, p.Radius, g.config.Height-p.Radius)
}

// updateBullets integrates player bullets and expires stray or old ones
func (g *Game) updateBullets(dt float64) {
	integrateBullets(g.world.Bullets, dt, g.config.Width, g.config.Height, bulletMargin, bulletLifetime)
}

// updateBossBullets integrates boss bullets and expires stray or old ones
func (g *Game) updateBossBullets(dt float64) {
	integrateBullets(g.world.BossBullets, dt, g.config.Width, g.config.Height, bossBulletMargin, bossBulletLife)
}

func integrateBullets(pool *Pool[Bullet], dt, w, h, margin, lifetime float64) {
	for i := 0; i < pool.Len(); i++ {
		b := pool.At(i)
		b.X += b.VX * dt
		b.Y += b.VY * dt
		b.Age += dt
		if outside(b.X, b.Y, w, h, margin) || b.Age > lifetime {
			pool.Remove(i)
		}
	}
}

// updateEnemies moves enemies along their spawn-time heading
func (g *Game) updateEnemies(dt float64) {
	enemies := g.world.Enemies
	for i := 0; i < enemies.Len(); i++ {
		e := enemies.At(i)
		e.X += e.VX * dt
		e.Y += e.VY * dt
		e.Wobble += dt * 6
		if outside(e.X, e.Y, g.config.Width, g.config.Height, enemyMargin) {
			enemies.Remove(i)
		}
	}
}

// updateBoss re-aims the boss at the player and runs its skill timer
func (g *Game) updateBoss(dt float64) {
	boss := g.world.Boss
	if boss == nil {
		return
	}
	p := &g.world.Player
	angle := math.Atan2(p.Y-boss.Y, p.X-boss.X)
	boss.X += math.Cos(angle) * boss.Speed * dt
	boss.Y += math.Sin(angle) * boss.Speed * dt
	boss.Wobble += dt * 2
	boss.X = clamp(boss.X, boss.Radius, g.config.Width-boss.Radius)
	boss.Y = clamp(boss.Y, boss.Radius, g.config.Height-boss.Radius)

	boss.SkillTimer -= dt
	if boss.SkillTimer <= 0 {
		boss.SkillTimer = g.params.BossSkillCooldown
		g.fireBossRadialAttack()
	}
}

// updateHealPacks advances the pulse animation
func (g *Game) updateHealPacks(dt float64) {
	packs := g.world.HealPacks
	for i := 0; i < packs.Len(); i++ {
		packs.At(i).Pulse += dt * 3
	}
}

// checkHealPickup consumes the heal pack when the player touches it
func (g *Game) checkHealPickup() {
	packs := g.world.HealPacks
	p := &g.world.Player
	for i := 0; i < packs.Len(); i++ {
		if packs.Removed(i) {
			continue
		}
		pack := packs.At(i)
		if distance(pack.X, pack.Y, p.X, p.Y) < pack.Radius+p.Radius {
			packs.Remove(i)
			g.state.HealUsed = true
			p.HP = min(max(p.HP+g.config.HealAmount, 0), g.config.MaxHP)
			g.setStatus("Healed!", defaultStatusDuration)
			break
		}
	}
}

// updateCombo lets the combo lapse back to 1 once its timer runs out
func (g *Game) updateCombo(dt float64) {
	s := &g.state
	if s.ComboTimer <= 0 {
		return
	}
	s.ComboTimer -= dt * 1000
	if s.ComboTimer <= 0 {
		s.Combo = 1
		s.ComboTimer = 0
	}
}

// updateStatus clears the status message once its timer runs out
func (g *Game) updateStatus(dt float64) {
	s := &g.state
	if s.StatusTimer <= 0 {
		return
	}
	s.StatusTimer -= dt * 1000
	if s.StatusTimer <= 0 {
		s.StatusText = ""
		s.StatusTimer = 0
	}
}
