package game

import (
	"math"
)

// Collision allowances in pixels. Negative values forgive grazing contact.
const (
	enemyPlayerSlack   = -6.0
	enemyBulletReach   = 8.0
	bossPlayerSlack    = -8.0
	bossBulletReach    = 10.0
	bossBulletHitReach = 6.0
)

// Score awarded per hit, before the combo multiplier
const (
	scoreEnemyHit  = 20
	scoreEnemyKill = 50
	scoreBossHit   = 80
)

// checkCollisions resolves every hit of the frame in a fixed order:
// enemies against the player and bullets, the boss against the player and
// bullets, then boss bullets against the player. Every scan runs newest
// first, and the first match wins.
func (g *Game) checkCollisions() {
	g.checkEnemyCollisions()
	if g.state.Over {
		return
	}
	g.checkBossCollisions()
	if g.state.Over {
		return
	}
	g.checkBossBulletCollisions()
}

func (g *Game) checkEnemyCollisions() {
	enemies := g.world.Enemies
	bullets := g.world.Bullets
	p := &g.world.Player

	for i := enemies.Len() - 1; i >= 0; i-- {
		if enemies.Removed(i) {
			continue
		}
		e := enemies.At(i)
		if distance(e.X, e.Y, p.X, p.Y) < e.Radius+p.Radius+enemyPlayerSlack {
			enemies.Remove(i)
			g.damagePlayer()
			if g.state.Over {
				return
			}
			continue
		}

		for j := bullets.Len() - 1; j >= 0; j-- {
			if bullets.Removed(j) {
				continue
			}
			b := bullets.At(j)
			if distance(e.X, e.Y, b.X, b.Y) >= e.Radius+enemyBulletReach {
				continue
			}
			bullets.Remove(j)
			e.HP--
			g.addScore(scoreEnemyHit)
			g.spawnHitSpark(b.X, b.Y, 60, 0.25, ParticleHitSpark)
			if e.HP <= 0 {
				enemies.Remove(i)
				g.addScore(scoreEnemyKill)
				g.spawnPopEffect(e.X, e.Y)
				g.registerEnemyKill()
			}
			break
		}
	}
}

func (g *Game) checkBossCollisions() {
	boss := g.world.Boss
	if boss == nil {
		return
	}
	p := &g.world.Player
	if distance(boss.X, boss.Y, p.X, p.Y) < boss.Radius+p.Radius+bossPlayerSlack {
		g.damagePlayer()
		if g.state.Over {
			return
		}
	}

	bullets := g.world.Bullets
	for j := bullets.Len() - 1; j >= 0; j-- {
		if bullets.Removed(j) {
			continue
		}
		b := bullets.At(j)
		if distance(boss.X, boss.Y, b.X, b.Y) >= boss.Radius+bossBulletReach {
			continue
		}
		bullets.Remove(j)
		boss.HP--
		g.addScore(scoreBossHit)
		g.spawnHitSpark(b.X, b.Y, 80, 0.4, ParticleBossHitSpark)
		if boss.HP <= 0 {
			g.spawnPopEffect(boss.X, boss.Y)
			g.addScore(g.params.BossBonus)
			g.onBossDefeated()
		}
		break
	}
}

func (g *Game) checkBossBulletCollisions() {
	bossBullets := g.world.BossBullets
	p := &g.world.Player
	for i := bossBullets.Len() - 1; i >= 0; i-- {
		if bossBullets.Removed(i) {
			continue
		}
		b := bossBullets.At(i)
		if distance(b.X, b.Y, p.X, p.Y) < p.Radius+bossBulletHitReach {
			bossBullets.Remove(i)
			g.damagePlayer()
			if g.state.Over {
				return
			}
		}
	}
}

// damagePlayer removes exactly one health point and ends the game at zero.
// It does nothing once health is already zero.
func (g *Game) damagePlayer() {
	p := &g.world.Player
	if p.HP <= 0 {
		return
	}
	p.HP--
	g.spawnFlash(p.X, p.Y, 0.4, ParticleDamage)
	if p.HP <= 0 {
		p.HP = 0
		g.endGame(false)
	}
}

// addScore raises the combo, then adds amount scaled by the raised combo
func (g *Game) addScore(amount int) {
	s := &g.state
	s.Combo += 0.15
	s.ComboTimer = g.config.ComboDuration
	s.Score += int(math.Round(float64(amount) * s.Combo))
}
