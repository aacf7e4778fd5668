package config

import (
	_ "embed"
)

//go:embed defaults/boxhead.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in configuration. It mirrors
// defaults/boxhead.yaml and is used when that file can't be parsed.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Arena: ArenaSettings{GridSize: 48},
		Timing: TimingSettings{
			TickRate: 60,
			MaxSteps: 5,
			FPS:      60,
		},
		Player: PlayerSettings{
			Size:            40,
			Speed:           0.25,
			MaxHP:           100,
			HurtDamage:      10,
			HurtIntervalMs:  500,
			ContactMargin:   2,
			RegenAmount:     5,
			RegenIntervalMs: 1000,
			RegenLockoutMs:  2000,
		},
		Enemy: EnemySettings{
			Size:  40,
			Speed: 0.08,
			MaxHP: 100,
			Score: 200,
		},
		Weapon: WeaponSettings{
			Damage:            40,
			FireIntervalMinMs: 250,
			FireIntervalMaxMs: 350,
			TrailMs:           50,
		},
		Waves: []int{5, 10, 15, 20, 25, 30, 40, 50},
		Spawn: SpawnSettings{SafeRadiusFactor: 2},
		Effects: EffectsSettings{
			MaxDecals:  64,
			FloorNoise: 80,
		},
		Input: InputSettings{
			HoldMs:       550,
			RepeatHoldMs: 120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
