package game

import "math"

// RoundParameters holds every per-round growth curve, computed once when a round
// is queued and read by the spawner, the resolver and the progression logic.
type RoundParameters struct {
	Round int

	// Goal is the number of kills that summons the boss
	Goal int

	// BulletCount is the number of bullets in one player volley
	BulletCount int

	// SpawnInterval is the enemy spawn interval in milliseconds
	SpawnInterval float64

	// EnemySpeedBonus is added to the random enemy speed
	EnemySpeedBonus float64

	// EnemyHP is the health tier of enemies spawned this round
	EnemyHP int

	BossHP     int
	BossSpeed  float64
	BossRadius float64

	// BossSkillCooldown is the time between radial attacks in seconds
	BossSkillCooldown float64

	// BossSkillBullets is the number of bullets in one radial attack
	BossSkillBullets int

	// BossBonus is the score awarded on top of the hit score when the boss falls
	BossBonus int
}

// NewRoundParameters derives the parameters of the given round from config
func NewRoundParameters(config Config, round int) RoundParameters {
	return RoundParameters{
		Round:             round,
		Goal:              RoundGoal(config, round),
		BulletCount:       1 + round/2,
		SpawnInterval:     clamp(config.EnemySpawnBase-float64(round)*80, config.EnemySpawnMin, config.EnemySpawnBase),
		EnemySpeedBonus:   float64(round) * 8,
		EnemyHP:           enemyHPTier(round),
		BossHP:            config.BossBaseHP + (round-1)*config.BossHPGrowth,
		BossSpeed:         90 + float64(round)*6,
		BossRadius:        50 + float64(round)*2,
		BossSkillCooldown: BossSkillCooldown(config, round),
		BossSkillBullets:  config.BossSkillBulletBase + (round-1)*config.BossSkillBulletGrowth,
		BossBonus:         500 + round*75,
	}
}

// RoundGoal returns the kills required to summon the boss in a round
func RoundGoal(config Config, round int) int {
	return config.BaseRoundGoal + (round-1)*config.RoundGoalGrowth
}

// BossSkillCooldown returns the radial attack cooldown in seconds for a round
func BossSkillCooldown(config Config, round int) float64 {
	reduction := float64(round-1) * config.BossSkillCooldownReduction
	return math.Max(config.BossSkillCooldownMin, config.BossSkillCooldownBase-reduction)
}

func enemyHPTier(round int) int {
	switch {
	case round >= 20:
		return 3
	case round > 10:
		return 2
	default:
		return 1
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
