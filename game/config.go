package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds game configuration constants
type Config struct {
	// Width is the canvas width in pixels
	Width float64 `yaml:"width"`

	// Height is the canvas height in pixels
	Height float64 `yaml:"height"`

	// PlayerSpeed is the player movement speed in pixels per second
	PlayerSpeed float64 `yaml:"player_speed"`

	// PlayerRadius is the player collision radius in pixels
	PlayerRadius float64 `yaml:"player_radius"`

	// BulletSpeed is the player bullet speed in pixels per second
	BulletSpeed float64 `yaml:"bullet_speed"`

	// BulletCooldown is the minimum time between volleys in milliseconds
	BulletCooldown float64 `yaml:"bullet_cooldown"`

	// EnemySpeedMin and EnemySpeedMax bound the random enemy speed (pixels per second)
	EnemySpeedMin float64 `yaml:"enemy_speed_min"`
	EnemySpeedMax float64 `yaml:"enemy_speed_max"`

	// EnemySpawnBase and EnemySpawnMin bound the enemy spawn interval in milliseconds
	EnemySpawnBase float64 `yaml:"enemy_spawn_base"`
	EnemySpawnMin  float64 `yaml:"enemy_spawn_min"`

	// ComboDuration is how long a combo survives without a scoring hit, in milliseconds
	ComboDuration float64 `yaml:"combo_duration"`

	// MaxHP is the player's maximum health
	MaxHP int `yaml:"max_hp"`

	// MaxRounds is the last round; defeating its boss wins the game
	MaxRounds int `yaml:"max_rounds"`

	// Round goal curve: kills required = BaseRoundGoal + (round-1)*RoundGoalGrowth
	BaseRoundGoal   int `yaml:"base_round_goal"`
	RoundGoalGrowth int `yaml:"round_goal_growth"`

	// Boss health curve
	BossBaseHP   int `yaml:"boss_base_hp"`
	BossHPGrowth int `yaml:"boss_hp_growth"`

	// Boss skill cooldown curve in seconds
	BossSkillCooldownBase      float64 `yaml:"boss_skill_cooldown_base"`
	BossSkillCooldownReduction float64 `yaml:"boss_skill_cooldown_reduction"`
	BossSkillCooldownMin       float64 `yaml:"boss_skill_cooldown_min"`

	// Boss radial attack size curve
	BossSkillBulletBase   int `yaml:"boss_skill_bullet_base"`
	BossSkillBulletGrowth int `yaml:"boss_skill_bullet_growth"`

	// BossBulletSpeed is the radial attack bullet speed in pixels per second
	BossBulletSpeed float64 `yaml:"boss_bullet_speed"`

	// HealAmount is the health restored by a heal pack
	HealAmount int `yaml:"heal_amount"`

	// GunSpread is the angle between bullets of one volley in radians
	GunSpread float64 `yaml:"gun_spread"`

	// RoundCountdown is the freeze before a round starts, in seconds
	RoundCountdown float64 `yaml:"round_countdown"`

	// MaxFrameDelta caps the elapsed time derived from host timestamps, in seconds
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:                      960,
		Height:                     540,
		PlayerSpeed:                350,
		PlayerRadius:               26,
		BulletSpeed:                600,
		BulletCooldown:             220,
		EnemySpeedMin:              100,
		EnemySpeedMax:              190,
		EnemySpawnBase:             1400,
		EnemySpawnMin:              450,
		ComboDuration:              2600,
		MaxHP:                      3,
		MaxRounds:                  15,
		BaseRoundGoal:              20,
		RoundGoalGrowth:            2,
		BossBaseHP:                 12,
		BossHPGrowth:               3,
		BossSkillCooldownBase:      4,
		BossSkillCooldownReduction: 0.2,
		BossSkillCooldownMin:       1.2,
		BossSkillBulletBase:        8,
		BossSkillBulletGrowth:      2,
		BossBulletSpeed:            280,
		HealAmount:                 1,
		GunSpread:                  0.15,
		RoundCountdown:             3,
		MaxFrameDelta:              0.1, // Longest frame simulated in one Tick
	}
}

// Validate reports the first setting that would make the simulation meaningless
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("game: canvas size %vx%v must be positive", c.Width, c.Height)
	case c.PlayerSpeed <= 0 || c.BulletSpeed <= 0 || c.BossBulletSpeed <= 0:
		return errors.New("game: speeds must be positive")
	case c.EnemySpeedMin < 0 || c.EnemySpeedMax < c.EnemySpeedMin:
		return fmt.Errorf("game: enemy speed range [%v, %v] is inverted", c.EnemySpeedMin, c.EnemySpeedMax)
	case c.EnemySpawnMin <= 0 || c.EnemySpawnBase < c.EnemySpawnMin:
		return fmt.Errorf("game: enemy spawn range [%v, %v] is inverted", c.EnemySpawnMin, c.EnemySpawnBase)
	case c.MaxHP <= 0:
		return errors.New("game: max_hp must be positive")
	case c.MaxRounds <= 0:
		return errors.New("game: max_rounds must be positive")
	case c.BaseRoundGoal <= 0:
		return errors.New("game: base_round_goal must be positive")
	case c.BossBaseHP <= 0:
		return errors.New("game: boss_base_hp must be positive")
	case c.BossSkillCooldownMin <= 0:
		return errors.New("game: boss_skill_cooldown_min must be positive")
	case c.BossSkillBulletBase <= 0:
		return errors.New("game: boss_skill_bullet_base must be positive")
	}
	return nil
}

// LoadConfig reads a YAML tuning file on top of DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("game: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("game: unmarshal %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%w (in %s)", err, path)
	}
	return config, nil
}
