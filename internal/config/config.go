// Package config provides YAML-based arena configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ArenaConfig contains every tunable of the arena shooter.
// Distances are world units, speeds are world units per millisecond and
// times are milliseconds of simulation time.
type ArenaConfig struct {
	Arena      ArenaSettings    `yaml:"arena"`
	Timing     TimingSettings   `yaml:"timing"`
	Player     PlayerSettings   `yaml:"player"`
	Enemy      EnemySettings    `yaml:"enemy"`
	Weapon     WeaponSettings   `yaml:"weapon"`
	Waves      []int            `yaml:"waves"`
	Spawn      SpawnSettings    `yaml:"spawn"`
	Effects    EffectsSettings  `yaml:"effects"`
	Input      InputSettings    `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaSettings defines the tile grid.
type ArenaSettings struct {
	GridSize float64 `yaml:"grid_size"`
	// Layout replaces the built-in map when set. Same format as map files.
	Layout string `yaml:"layout"`
}

// TimingSettings defines the simulation clock.
type TimingSettings struct {
	TickRate int `yaml:"tick_rate"`
	MaxSteps int `yaml:"max_steps"` // ticks run per frame before the backlog is dropped
	FPS      int `yaml:"fps"`
}

// PlayerSettings defines the player body, health and damage intake.
type PlayerSettings struct {
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"`
	MaxHP           int     `yaml:"max_hp"`
	HurtDamage      int     `yaml:"hurt_damage"`
	HurtIntervalMs  float64 `yaml:"hurt_interval_ms"`
	ContactMargin   float64 `yaml:"contact_margin"`
	RegenAmount     int     `yaml:"regen_amount"`
	RegenIntervalMs float64 `yaml:"regen_interval_ms"`
	RegenLockoutMs  float64 `yaml:"regen_lockout_ms"`
}

// EnemySettings defines enemy bodies and their bounty.
type EnemySettings struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	MaxHP int     `yaml:"max_hp"`
	Score int     `yaml:"score"`
}

// WeaponSettings defines the player's gun.
type WeaponSettings struct {
	Damage            int     `yaml:"damage"`
	FireIntervalMinMs float64 `yaml:"fire_interval_min_ms"`
	FireIntervalMaxMs float64 `yaml:"fire_interval_max_ms"`
	TrailMs           float64 `yaml:"trail_ms"`
}

// SpawnSettings defines where wave enemies may appear.
type SpawnSettings struct {
	// SafeRadiusFactor times the player radius is the minimum distance
	// between the player and a spawn cell center.
	SafeRadiusFactor float64 `yaml:"safe_radius_factor"`
}

// EffectsSettings defines purely visual elements.
type EffectsSettings struct {
	MaxDecals  int `yaml:"max_decals"`
	FloorNoise int `yaml:"floor_noise"`
}

// InputSettings tunes how terminal key presses are turned into held keys.
type InputSettings struct {
	HoldMs       float64 `yaml:"hold_ms"`
	RepeatHoldMs float64 `yaml:"repeat_hold_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // one of the Progression* values
	MaxAt int    `yaml:"max_at"` // score, ticks or wave at which max difficulty is reached
}

// Progression types.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionWave  = "wave"
	ProgressionNone  = "none"
)

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. The empty string means
// "leave the config alone".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid arena config")

// Validate rejects configurations the simulation can't run with.
func (c ArenaConfig) Validate() error {
	switch {
	case c.Arena.GridSize <= 0:
		return fmt.Errorf("%w: arena.grid_size must be positive", ErrInvalidConfig)
	case c.Player.Size <= 0 || c.Player.Size >= c.Arena.GridSize:
		return fmt.Errorf("%w: player.size must be in (0, grid_size)", ErrInvalidConfig)
	case c.Enemy.Size <= 0 || c.Enemy.Size >= c.Arena.GridSize:
		return fmt.Errorf("%w: enemy.size must be in (0, grid_size)", ErrInvalidConfig)
	case c.Player.MaxHP <= 0 || c.Enemy.MaxHP <= 0:
		return fmt.Errorf("%w: max_hp must be positive", ErrInvalidConfig)
	case c.Weapon.FireIntervalMaxMs < c.Weapon.FireIntervalMinMs:
		return fmt.Errorf("%w: weapon.fire_interval_max_ms below min", ErrInvalidConfig)
	case len(c.Waves) == 0:
		return fmt.Errorf("%w: waves must list at least one entry", ErrInvalidConfig)
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressionScore, ProgressionTime, ProgressionWave, ProgressionNone:
	default:
		return fmt.Errorf("%w: unknown difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	for i, n := range c.Waves {
		if n < 0 {
			return fmt.Errorf("%w: waves[%d] is negative", ErrInvalidConfig, i)
		}
		if i > 0 && n < c.Waves[i-1] {
			return fmt.Errorf("%w: waves must be non-decreasing (waves[%d] = %d < %d)", ErrInvalidConfig, i, n, c.Waves[i-1])
		}
	}
	return nil
}
