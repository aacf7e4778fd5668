package config

import "math"

// Progress is how far a run has got. Difficulty can scale with any of it.
type Progress struct {
	Score int
	Ticks uint64
	Wave  int // 0-based
}

// DifficultyManager maps run progress to a difficulty level in [0, 1]
// and scales enemy parameters with it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level interpolates from the initial level to 1.0 as p approaches
// progression.max_at. With progression disabled the level stays put.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var done float64
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		done = float64(p.Score)
	case ProgressionTime:
		done = float64(p.Ticks)
	case ProgressionWave:
		done = float64(p.Wave)
	default:
		return d.initialLevel
	}

	maxAt := math.Max(float64(d.cfg.Progression.MaxAt), 1)
	return d.initialLevel + clampF(done/maxAt, 0.0, 1.0)*(1.0-d.initialLevel)
}

// Speed scales an enemy base speed: base at level 0, base times
// (1 + speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(baseSpeed float64, p Progress) float64 {
	return baseSpeed * (1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
