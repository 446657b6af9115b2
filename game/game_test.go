package game

import (
	"io"
	"log"
	"math"
	"math/rand"
	"testing"
)

// countingStore records every save so tests can check game over happens once
type countingStore struct {
	initial int
	best    int
	saves   int
}

func (s *countingStore) LoadBestScore() int { return s.initial }

func (s *countingStore) SaveBestScore(best int) {
	s.best = best
	s.saves++
}

func newTestGame(t *testing.T, config Config, input InputProvider, store *countingStore) *Game {
	t.Helper()
	if store == nil {
		store = &countingStore{}
	}
	return NewGame(config, Options{
		Input:  input,
		Scores: store,
		Rand:   rand.New(rand.NewSource(1)),
		Logger: log.New(io.Discard, "", 0),
	})
}

// skipCountdown starts the queued round without simulating a frame
func skipCountdown(g *Game) {
	g.updateRoundCountdown(g.state.RoundCountdown)
}

// playing returns a game in an active round 1 with the heal pack removed
func playing(t *testing.T, input InputProvider) *Game {
	t.Helper()
	g := newTestGame(t, DefaultConfig(), input, nil)
	skipCountdown(g)
	g.world.HealPacks.Clear()
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewGameStartsInCountdown(t *testing.T) {
	store := &countingStore{initial: 420}
	g := newTestGame(t, DefaultConfig(), nil, store)

	s := g.State()
	if !s.Running || !s.RoundCountdownActive || s.PendingRound != 1 {
		t.Fatalf("unexpected start state %+v", s)
	}
	if s.RoundCountdown != 3 || s.Combo != 1 || s.BestScore != 420 {
		t.Fatalf("countdown=%v combo=%v best=%d", s.RoundCountdown, s.Combo, s.BestScore)
	}
	if s.StatusText != "Round 1 ready!" || s.StatusTimer != 1500 {
		t.Fatalf("status = %q (%v)", s.StatusText, s.StatusTimer)
	}
	if g.Phase() != PhaseCountdown {
		t.Fatalf("phase = %v, want countdown", g.Phase())
	}
	if g.world.Player.HP != 3 || g.world.Player.X != 480 || g.world.Player.Y != 270 {
		t.Fatalf("player = %+v", g.world.Player)
	}
}

func TestCountdownFreezesWorld(t *testing.T) {
	input := &InputState{Right: true, AimX: 900, AimY: 270}
	g := newTestGame(t, DefaultConfig(), input, nil)
	g.world.Enemies.Add(Enemy{X: 100, Y: 100, VX: 50, VY: 50, Radius: 30, HP: 1})
	g.world.Bullets.Add(Bullet{X: 100, Y: 100, VX: 10})
	g.world.Particles.Add(Particle{X: 5, Y: 5, VX: 1, Life: 1})

	g.Update(0.5)
	g.ShootBullet()

	e := g.world.Enemies.At(0)
	if e.X != 100 || e.Y != 100 || e.HP != 1 {
		t.Fatalf("enemy changed during countdown: %+v", *e)
	}
	if g.world.Bullets.Live() != 1 || g.world.Bullets.At(0).X != 100 {
		t.Fatalf("bullets changed during countdown")
	}
	if g.world.Particles.At(0).Life != 1 {
		t.Fatalf("particles changed during countdown")
	}
	if g.world.Player.X != 480 {
		t.Fatalf("player moved during countdown")
	}
	s := g.State()
	if s.Score != 0 || s.Combo != 1 || s.KillsThisRound != 0 {
		t.Fatalf("score state changed: %+v", s)
	}
	if !approx(s.RoundCountdown, 2.5) || !approx(s.StatusTimer, 1000) {
		t.Fatalf("countdown=%v status timer=%v", s.RoundCountdown, s.StatusTimer)
	}
}

func TestCountdownStartsRound(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), nil, nil)
	for i := 0; i < 3; i++ {
		g.Update(1.0)
	}
	s := g.State()
	if s.RoundCountdownActive || s.Round != 1 || s.RoundGoal != 20 {
		t.Fatalf("round not started: %+v", s)
	}
	if s.RoundCountdown != 0 {
		t.Fatalf("countdown = %v, want 0", s.RoundCountdown)
	}
	if g.world.HealPacks.Live() != 1 && !s.HealUsed {
		t.Fatalf("round should start with one heal pack")
	}
	if g.Phase() != PhaseActive {
		t.Fatalf("phase = %v, want active", g.Phase())
	}
}

func TestShootBulletCooldown(t *testing.T) {
	input := &InputState{AimX: 900, AimY: 270}
	g := playing(t, input)

	g.ShootBullet()
	g.ShootBullet()
	if n := g.world.Bullets.Live(); n != 1 {
		t.Fatalf("two shots inside the cooldown gave %d bullets, want 1", n)
	}
	b := g.world.Bullets.At(0)
	if b.VX <= 0 || !approx(b.VY, 0) {
		t.Fatalf("bullet not aimed at target: %+v", *b)
	}
	if !approx(b.X, 480+34) {
		t.Fatalf("bullet should start at the muzzle, x=%v", b.X)
	}

	g.Update(0.1)
	g.ShootBullet()
	if n := g.world.Bullets.Live(); n != 1 {
		t.Fatalf("shot at 100ms gave %d bullets, want 1", n)
	}

	g.Update(0.13)
	g.ShootBullet()
	if n := g.world.Bullets.Live(); n != 2 {
		t.Fatalf("shot after cooldown gave %d bullets, want 2", n)
	}
}

func TestShootBulletIgnoredWhenBlocked(t *testing.T) {
	input := &InputState{AimX: 900, AimY: 270}

	t.Run("countdown", func(t *testing.T) {
		g := newTestGame(t, DefaultConfig(), input, nil)
		g.ShootBullet()
		if g.world.Bullets.Live() != 0 {
			t.Fatalf("fired during countdown")
		}
	})
	t.Run("paused", func(t *testing.T) {
		g := playing(t, input)
		g.TogglePause()
		g.ShootBullet()
		if g.world.Bullets.Live() != 0 {
			t.Fatalf("fired while paused")
		}
	})
}

func TestShootBulletVolleySpread(t *testing.T) {
	input := &InputState{AimX: 900, AimY: 270}
	g := playing(t, input)
	g.params = NewRoundParameters(g.config, 5)

	g.ShootBullet()
	if n := g.world.Bullets.Live(); n != 3 {
		t.Fatalf("round 5 volley = %d bullets, want 3", n)
	}
	left, mid, right := g.world.Bullets.At(0), g.world.Bullets.At(1), g.world.Bullets.At(2)
	if !approx(mid.VY, 0) || !approx(left.VY, -right.VY) {
		t.Fatalf("volley not symmetric: %v %v %v", left.VY, mid.VY, right.VY)
	}
	if !approx(math.Atan2(right.VY, right.VX), 0.15) {
		t.Fatalf("spread angle = %v, want 0.15", math.Atan2(right.VY, right.VX))
	}
	if g.world.Particles.Live() != 8 {
		t.Fatalf("muzzle effect = %d particles, want 8", g.world.Particles.Live())
	}
}

func TestSingleHitKillScore(t *testing.T) {
	g := playing(t, nil)
	g.world.Enemies.Add(Enemy{X: 100, Y: 100, Radius: 30, HP: 1})
	g.world.Bullets.Add(Bullet{X: 100, Y: 100})

	g.Update(0.001)

	s := g.State()
	// Combo rises before each add: round(20*1.15) + round(50*1.30)
	if s.Score != 88 {
		t.Fatalf("score = %d, want 88", s.Score)
	}
	if !approx(s.Combo, 1.3) || !approx(s.ComboTimer, 2599) {
		t.Fatalf("combo = %v timer = %v", s.Combo, s.ComboTimer)
	}
	if g.world.Enemies.Live() != 0 || g.world.Bullets.Live() != 0 {
		t.Fatalf("enemy or bullet survived the hit")
	}
	if s.KillsThisRound != 1 {
		t.Fatalf("kills = %d, want 1", s.KillsThisRound)
	}
}

func TestCollisionScansNewestFirst(t *testing.T) {
	t.Run("enemies", func(t *testing.T) {
		g := playing(t, nil)
		g.world.Enemies.Add(Enemy{X: 100, Y: 100, Radius: 30, HP: 1})
		g.world.Enemies.Add(Enemy{X: 110, Y: 100, Radius: 30, HP: 1})
		g.world.Bullets.Add(Bullet{X: 105, Y: 100})

		g.Update(0.0001)

		if g.world.Enemies.Live() != 1 {
			t.Fatalf("live enemies = %d, want 1", g.world.Enemies.Live())
		}
		if x := g.world.Enemies.At(0).X; x != 100 {
			t.Fatalf("survivor X = %v, want the older enemy at 100", x)
		}
	})
	t.Run("bullets", func(t *testing.T) {
		g := playing(t, nil)
		g.world.Enemies.Add(Enemy{X: 100, Y: 100, Radius: 30, HP: 3})
		g.world.Bullets.Add(Bullet{X: 100, Y: 100})
		g.world.Bullets.Add(Bullet{X: 101, Y: 100})

		g.Update(0.0001)

		if g.world.Bullets.Live() != 1 {
			t.Fatalf("live bullets = %d, want 1", g.world.Bullets.Live())
		}
		if x := g.world.Bullets.At(0).X; x != 100 {
			t.Fatalf("remaining bullet X = %v, want the older bullet at 100", x)
		}
	})
}

func TestArmoredEnemyNeedsThreeHits(t *testing.T) {
	g := playing(t, nil)
	g.world.Enemies.Add(Enemy{X: 100, Y: 100, Radius: 30, HP: 3})
	for i := 0; i < 3; i++ {
		g.world.Bullets.Add(Bullet{X: 100, Y: 100})
	}

	for hit := 1; hit <= 3; hit++ {
		g.Update(0.001)
		if hit < 3 {
			if g.world.Enemies.Live() != 1 || g.world.Enemies.At(0).HP != 3-hit {
				t.Fatalf("after hit %d enemy should have %d hp", hit, 3-hit)
			}
			if g.world.Bullets.Live() != 3-hit {
				t.Fatalf("one bullet per frame should be consumed, %d left", g.world.Bullets.Live())
			}
			continue
		}
		if g.world.Enemies.Live() != 0 {
			t.Fatalf("enemy survived three hits")
		}
	}
	if g.State().KillsThisRound != 1 {
		t.Fatalf("kills = %d, want 1", g.State().KillsThisRound)
	}
}

func TestEnemyContactDamagesWithoutScore(t *testing.T) {
	g := playing(t, nil)
	p := g.world.Player
	g.world.Enemies.Add(Enemy{X: p.X + 20, Y: p.Y, Radius: 24, HP: 1})

	g.Update(0.001)

	if g.world.Player.HP != 2 {
		t.Fatalf("hp = %d, want 2", g.world.Player.HP)
	}
	if g.world.Enemies.Live() != 0 || g.State().Score != 0 || g.State().KillsThisRound != 0 {
		t.Fatalf("contact should remove the enemy without score or kill")
	}
}

func spawnTestBoss(g *Game) *Boss {
	g.state.KillsThisRound = g.state.RoundGoal - 1
	g.registerEnemyKill()
	return g.world.Boss
}

func TestGoalSpawnsSingleBossAndStopsSpawning(t *testing.T) {
	g := playing(t, nil)
	boss := spawnTestBoss(g)
	if boss == nil || !g.State().BossActive {
		t.Fatalf("boss not spawned at goal")
	}
	if boss.HP != 12 || boss.MaxHP != 12 || boss.Y != -80 || boss.SkillTimer != 4 {
		t.Fatalf("unexpected boss %+v", *boss)
	}
	if g.State().StatusText != "Boss incoming!" {
		t.Fatalf("status = %q", g.State().StatusText)
	}

	// A further kill while the boss is up must not replace it
	g.registerEnemyKill()
	if g.world.Boss != boss {
		t.Fatalf("second boss spawned")
	}

	spawnTimer := g.State().SpawnTimer
	for i := 0; i < 20; i++ {
		g.Update(0.05)
	}
	if g.world.Enemies.Live() != 0 {
		t.Fatalf("enemies spawned during the boss fight")
	}
	if g.State().SpawnTimer != spawnTimer {
		t.Fatalf("spawn timer advanced during the boss fight")
	}
	if g.Phase() != PhaseBossFight {
		t.Fatalf("phase = %v, want boss", g.Phase())
	}
}

func TestBossNeedsTwelveHits(t *testing.T) {
	g := playing(t, nil)
	boss := spawnTestBoss(g)
	boss.X, boss.Y = 120, 120
	scoreBefore := g.State().Score

	for hit := 1; hit <= 12; hit++ {
		b := g.world.Boss
		if b == nil {
			t.Fatalf("boss gone after %d hits", hit-1)
		}
		g.world.Bullets.Add(Bullet{X: b.X, Y: b.Y})
		g.state.Combo = float64(hit) // damage ignores the combo
		g.Update(0.0001)
		if hit < 12 && g.world.Boss.HP != 12-hit {
			t.Fatalf("after hit %d boss hp = %d", hit, g.world.Boss.HP)
		}
	}

	s := g.State()
	if g.world.Boss != nil || s.BossActive {
		t.Fatalf("boss should be defeated")
	}
	if !s.RoundCountdownActive || s.PendingRound != 2 || s.Round != 1 {
		t.Fatalf("next round not queued: %+v", s)
	}
	if s.Score-scoreBefore < 575 {
		t.Fatalf("boss bonus missing, gained %d", s.Score-scoreBefore)
	}
	if g.world.Bullets.Live() != 0 || g.world.Particles.Live() != 0 {
		t.Fatalf("field not cleared for the next round")
	}

	g.Update(3)
	if g.State().Round != 2 || g.State().RoundGoal != 22 {
		t.Fatalf("round 2 not started: %+v", g.State())
	}
}

func TestBossRadialAttack(t *testing.T) {
	g := playing(t, nil)
	boss := spawnTestBoss(g)
	boss.X, boss.Y = 120, 120
	boss.SkillTimer = 0.01

	g.Update(0.02)

	if n := g.world.BossBullets.Live(); n != 8 {
		t.Fatalf("radial attack = %d bullets, want 8", n)
	}
	first := g.world.BossBullets.At(0)
	if !approx(first.VX, 280) || !approx(first.VY, 0) {
		t.Fatalf("first bullet velocity = (%v, %v)", first.VX, first.VY)
	}
	if !approx(g.world.Boss.SkillTimer, 4) {
		t.Fatalf("skill timer = %v, want 4", g.world.Boss.SkillTimer)
	}
}

func TestBossBulletDamage(t *testing.T) {
	g := playing(t, nil)
	p := g.world.Player
	g.world.BossBullets.Add(Bullet{X: p.X + 10, Y: p.Y})
	g.world.BossBullets.Add(Bullet{X: 10, Y: 10})

	g.Update(0.001)

	if g.world.Player.HP != 2 {
		t.Fatalf("hp = %d, want 2", g.world.Player.HP)
	}
	if g.world.BossBullets.Live() != 1 {
		t.Fatalf("hitting bullet should be consumed")
	}
}

func TestDefeatIsRecordedOnce(t *testing.T) {
	cases := []struct {
		name     string
		previous int
		score    int
		wantBest int
	}{
		{"new_best", 500, 800, 800},
		{"keeps_best", 500, 100, 500},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := &countingStore{initial: c.previous}
			g := newTestGame(t, DefaultConfig(), nil, store)
			skipCountdown(g)
			g.world.HealPacks.Clear()
			g.state.Score = c.score

			// More hits than health in one frame
			p := g.world.Player
			for i := 0; i < 5; i++ {
				g.world.BossBullets.Add(Bullet{X: p.X, Y: p.Y})
			}
			g.Update(0.001)

			s := g.State()
			if g.world.Player.HP != 0 {
				t.Fatalf("hp = %d, want 0", g.world.Player.HP)
			}
			if s.Running || !s.Over || s.Victory {
				t.Fatalf("not a defeat: %+v", s)
			}
			if s.BestScore != c.wantBest || store.best != c.wantBest || store.saves != 1 {
				t.Fatalf("best=%d stored=%d saves=%d", s.BestScore, store.best, store.saves)
			}

			g.damagePlayer()
			g.Update(0.1)
			if g.world.Player.HP != 0 || store.saves != 1 {
				t.Fatalf("repeated zero-hp frames re-ended the game")
			}
			if g.Phase() != PhaseDefeat {
				t.Fatalf("phase = %v, want defeat", g.Phase())
			}
			if g.Tick(1000) {
				t.Fatalf("Tick should stop after defeat")
			}
		})
	}
}

func TestVictoryAfterLastBoss(t *testing.T) {
	config := DefaultConfig()
	config.MaxRounds = 1
	store := &countingStore{}
	g := newTestGame(t, config, nil, store)
	skipCountdown(g)
	g.world.HealPacks.Clear()

	boss := spawnTestBoss(g)
	boss.X, boss.Y = 120, 120
	boss.HP = 1
	g.world.Bullets.Add(Bullet{X: 120, Y: 120})
	g.Update(0.0001)

	s := g.State()
	if !s.Over || !s.Victory || s.Running || s.BossActive || g.world.Boss != nil {
		t.Fatalf("not a victory: %+v", s)
	}
	if s.StatusText != "All rounds cleared!" || store.saves != 1 || s.BestScore != s.Score {
		t.Fatalf("victory bookkeeping wrong: %+v saves=%d", s, store.saves)
	}
	g.TogglePause()
	if g.State().Running {
		t.Fatalf("a finished game must not resume")
	}
	if g.Phase() != PhaseVictory {
		t.Fatalf("phase = %v, want victory", g.Phase())
	}
}

func TestHealPickup(t *testing.T) {
	g := playing(t, nil)
	g.world.Player.HP = 2
	p := g.world.Player
	g.world.HealPacks.Add(HealPack{X: p.X, Y: p.Y, Radius: 18})

	g.Update(0.001)

	s := g.State()
	if g.world.Player.HP != 3 || !s.HealUsed || g.world.HealPacks.Live() != 0 {
		t.Fatalf("heal not applied: hp=%d used=%v packs=%d", g.world.Player.HP, s.HealUsed, g.world.HealPacks.Live())
	}
	if s.StatusText != "Healed!" {
		t.Fatalf("status = %q", s.StatusText)
	}
	g.spawnHealPack()
	if g.world.HealPacks.Live() != 0 {
		t.Fatalf("second heal pack in the same round")
	}
}

func TestHealNeverExceedsMax(t *testing.T) {
	g := playing(t, nil)
	p := g.world.Player
	g.world.HealPacks.Add(HealPack{X: p.X, Y: p.Y, Radius: 18})
	g.Update(0.001)
	if g.world.Player.HP != 3 {
		t.Fatalf("hp = %d, want 3", g.world.Player.HP)
	}
}

func TestComboDecay(t *testing.T) {
	g := playing(t, nil)
	g.addScore(10)
	if !approx(g.State().Combo, 1.15) {
		t.Fatalf("combo = %v, want 1.15", g.State().Combo)
	}
	g.Update(1.0)
	if !approx(g.State().Combo, 1.15) || !approx(g.State().ComboTimer, 1600) {
		t.Fatalf("combo decayed early: %v (%v)", g.State().Combo, g.State().ComboTimer)
	}
	g.Update(2.0)
	if g.State().Combo != 1 || g.State().ComboTimer != 0 {
		t.Fatalf("combo = %v timer = %v, want 1 and 0", g.State().Combo, g.State().ComboTimer)
	}
}

func TestPlayerMovement(t *testing.T) {
	cases := []struct {
		name         string
		input        InputState
		startX       float64
		wantX, wantY float64
	}{
		{"right", InputState{Right: true}, 480, 515, 270},
		{"diagonal", InputState{Up: true, Right: true}, 480, 480 + 35/math.Sqrt2, 270 - 35/math.Sqrt2},
		{"keys_and_stick", InputState{Right: true, StickX: 1}, 480, 515, 270},
		{"opposed", InputState{Left: true, Right: true}, 480, 480, 270},
		{"clamped", InputState{Right: true}, 950, 934, 270},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := c.input
			g := playing(t, &input)
			g.world.Player.X = c.startX
			g.Update(0.1)
			p := g.world.Player
			if !approx(p.X, c.wantX) || !approx(p.Y, c.wantY) {
				t.Fatalf("player at (%v, %v), want (%v, %v)", p.X, p.Y, c.wantX, c.wantY)
			}
		})
	}
}

func TestEnemySpawn(t *testing.T) {
	g := playing(t, nil)
	g.Update(1.32)

	if g.world.Enemies.Live() != 1 {
		t.Fatalf("enemies = %d, want 1", g.world.Enemies.Live())
	}
	if g.State().SpawnTimer != 0 {
		t.Fatalf("spawn timer not reset")
	}
	e := g.world.Enemies.At(0)
	if !outside(e.X, e.Y, 960, 540, 0) {
		t.Fatalf("enemy spawned on screen at (%v, %v)", e.X, e.Y)
	}
	if e.HP != 1 || e.Radius < 24 || e.Radius > 34 {
		t.Fatalf("enemy stats %+v", *e)
	}
	speed := math.Hypot(e.VX, e.VY)
	if speed < 108 || speed > 198 {
		t.Fatalf("enemy speed %v outside [108, 198]", speed)
	}
	p := g.world.Player
	dx, dy := p.X-e.X, p.Y-e.Y
	if cross := e.VX*dy - e.VY*dx; math.Abs(cross) > 1e-6*speed*math.Hypot(dx, dy) {
		t.Fatalf("enemy not aimed at the player")
	}
	if e.VX*dx+e.VY*dy <= 0 {
		t.Fatalf("enemy flying away from the player")
	}
}

func TestEnemiesKeepSpawnHeading(t *testing.T) {
	input := &InputState{Down: true}
	g := playing(t, input)
	g.world.Enemies.Add(Enemy{X: 0, Y: 0, VX: 100, VY: 0, Radius: 24, HP: 1})
	g.Update(0.5)
	e := g.world.Enemies.At(0)
	if e.VX != 100 || e.VY != 0 || !approx(e.X, 50) {
		t.Fatalf("enemy re-aimed: %+v", *e)
	}
	if !approx(e.Wobble, 3) {
		t.Fatalf("wobble = %v, want 3", e.Wobble)
	}
}

func TestExpiry(t *testing.T) {
	g := playing(t, nil)
	g.world.Bullets.Add(Bullet{X: 100, Y: 100, Age: 2.99})
	g.world.Bullets.Add(Bullet{X: 1005, Y: 100, VX: 100})
	g.world.BossBullets.Add(Bullet{X: 100, Y: 100, Age: 3.99})
	g.world.Enemies.Add(Enemy{X: 1075, Y: 100, VX: 100, Radius: 24, HP: 1})
	g.world.Particles.Add(Particle{X: 1, Y: 1, VX: 100, Life: 0.05})

	g.Update(0.1)

	if g.world.Bullets.Live() != 0 {
		t.Fatalf("expired bullets = %d, want 0", g.world.Bullets.Live())
	}
	if g.world.BossBullets.Live() != 0 {
		t.Fatalf("expired boss bullets survived")
	}
	if g.world.Enemies.Live() != 0 {
		t.Fatalf("distant enemy survived")
	}
	if g.world.Particles.Live() != 0 {
		t.Fatalf("dead particle survived")
	}
}

func TestParticleDamping(t *testing.T) {
	g := playing(t, nil)
	g.world.Particles.Add(Particle{X: 0, Y: 0, VX: 100, Life: 1})
	g.Update(0.1)
	p := g.world.Particles.At(0)
	if !approx(p.X, 10) || !approx(p.VX, 96) || !approx(p.Life, 0.9) {
		t.Fatalf("particle = %+v", *p)
	}
}

func TestTickTiming(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), nil, nil)

	if !g.Tick(1000) {
		t.Fatalf("Tick should keep running")
	}
	if g.State().RoundCountdown != 3 {
		t.Fatalf("first frame must not advance time")
	}

	g.Tick(1500) // capped to MaxFrameDelta
	if !approx(g.State().RoundCountdown, 2.9) {
		t.Fatalf("countdown = %v, want 2.9", g.State().RoundCountdown)
	}

	g.Tick(math.NaN())
	g.Tick(1400) // backwards
	if !approx(g.State().RoundCountdown, 2.9) {
		t.Fatalf("degenerate deltas advanced time: %v", g.State().RoundCountdown)
	}

	g.Tick(1450)
	if !approx(g.State().RoundCountdown, 2.85) {
		t.Fatalf("countdown = %v, want 2.85", g.State().RoundCountdown)
	}
}

func TestUpdateSanitizesDelta(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), nil, nil)
	for _, dt := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
		g.Update(dt)
	}
	if g.State().RoundCountdown != 3 {
		t.Fatalf("degenerate dt advanced the countdown to %v", g.State().RoundCountdown)
	}
}

func TestPauseRebaselines(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), nil, nil)
	g.Tick(1000)
	g.TogglePause()
	if g.State().Running || g.Phase() != PhasePaused {
		t.Fatalf("not paused")
	}
	g.Tick(1050)
	if g.State().RoundCountdown != 3 {
		t.Fatalf("paused game advanced")
	}

	g.TogglePause()
	g.Tick(9000)
	if g.State().RoundCountdown != 3 {
		t.Fatalf("resume frame simulated the pause: %v", g.State().RoundCountdown)
	}
	g.Tick(9050)
	if !approx(g.State().RoundCountdown, 2.95) {
		t.Fatalf("countdown = %v, want 2.95", g.State().RoundCountdown)
	}
}

func TestResetAndPendingConfig(t *testing.T) {
	store := &countingStore{initial: 50}
	g := newTestGame(t, DefaultConfig(), nil, store)
	skipCountdown(g)
	g.state.Score = 300
	g.state.Combo = 2
	g.world.Player.HP = 1
	g.world.Player.X = 10
	g.world.Enemies.Add(Enemy{X: 1, Y: 1, Radius: 24, HP: 1})

	config := DefaultConfig()
	config.MaxRounds = 2
	g.SetPendingConfig(config)
	if g.Config().MaxRounds != 15 {
		t.Fatalf("pending config applied before Reset")
	}

	g.Reset()

	s := g.State()
	if s.Score != 0 || s.Combo != 1 || s.Round != 1 || !s.RoundCountdownActive || !s.Running {
		t.Fatalf("state not reset: %+v", s)
	}
	if s.BestScore != 50 {
		t.Fatalf("best score lost on reset: %d", s.BestScore)
	}
	if g.world.Player.HP != 3 || g.world.Player.X != 480 || g.world.Enemies.Live() != 0 {
		t.Fatalf("world not reset")
	}
	if g.Config().MaxRounds != 2 {
		t.Fatalf("pending config not applied")
	}
}

func TestSnapshotCopies(t *testing.T) {
	g := playing(t, nil)
	spawnTestBoss(g)
	g.world.Enemies.Add(Enemy{X: 1, Y: 1, Radius: 24, HP: 1})

	snap := g.Snapshot()
	snap.Boss.HP = 0
	snap.Enemies[0].HP = 9
	if g.world.Boss.HP != 12 || g.world.Enemies.At(0).HP != 1 {
		t.Fatalf("snapshot aliases game state")
	}
	if snap.Phase != PhaseBossFight || snap.MaxRounds != 15 || snap.MaxHP != 3 {
		t.Fatalf("snapshot HUD fields wrong: %+v", snap)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() int {
		g := NewGame(DefaultConfig(), Options{
			Input:  &InputState{AimX: 0, AimY: 0},
			Rand:   rand.New(rand.NewSource(42)),
			Logger: log.New(io.Discard, "", 0),
		})
		for i := 0; i < 600; i++ {
			g.ShootBullet()
			g.Update(1.0 / 60)
		}
		return g.State().Score + 1000*g.world.Enemies.Live()
	}
	if a, b := run(), run(); a != b {
		t.Fatalf("same seed diverged: %d vs %d", a, b)
	}
}

// TestInvariantsUnderPlay drives a bot through many frames and checks the
// game-wide invariants after every one of them.
func TestInvariantsUnderPlay(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		bot := NewBotInput()
		g := NewGame(DefaultConfig(), Options{
			Input:  bot,
			Rand:   rand.New(rand.NewSource(seed)),
			Logger: log.New(io.Discard, "", 0),
		})
		config := g.Config()
		lastRound := g.State().Round

		for frame := 0; frame < 60*240 && !g.State().Over; frame++ {
			bot.Think(g.Snapshot())
			if bot.WantsFire() {
				g.ShootBullet()
			}
			g.Update(1.0 / 60)

			s := g.State()
			hp := g.world.Player.HP
			if hp < 0 || hp > config.MaxHP {
				t.Fatalf("seed %d frame %d: hp %d out of range", seed, frame, hp)
			}
			if s.Combo < 1 {
				t.Fatalf("seed %d frame %d: combo %v below 1", seed, frame, s.Combo)
			}
			if (g.world.Boss != nil) != s.BossActive {
				t.Fatalf("seed %d frame %d: boss presence %v but BossActive %v", seed, frame, g.world.Boss != nil, s.BossActive)
			}
			if !s.BossActive && s.KillsThisRound > s.RoundGoal && !s.RoundCountdownActive {
				t.Fatalf("seed %d frame %d: kills %d over goal %d without a boss", seed, frame, s.KillsThisRound, s.RoundGoal)
			}
			if s.Round < lastRound || s.Round > config.MaxRounds {
				t.Fatalf("seed %d frame %d: round went from %d to %d", seed, frame, lastRound, s.Round)
			}
			if g.world.HealPacks.Live() > 1 {
				t.Fatalf("seed %d frame %d: %d heal packs", seed, frame, g.world.HealPacks.Live())
			}
			if s.StatusTimer < 0 || s.RoundCountdown < 0 || s.ComboTimer < 0 {
				t.Fatalf("seed %d frame %d: negative timer %+v", seed, frame, s)
			}
			lastRound = s.Round
		}
	}
}
