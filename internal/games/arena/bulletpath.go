package arena

import "github.com/vovakirdan/tui-boxhead/internal/core"

// BulletPath is the visible trail of one shot.
type BulletPath struct {
	Start, End core.Vec2
	Color      core.Color
	Duration   float64 // ms
	FiredAt    float64 // simulation ms
}

// Expired reports whether the trail has outlived its duration at now.
func (b BulletPath) Expired(now float64) bool {
	return now-b.FiredAt > b.Duration
}

// pruneBullets drops expired trails.
func (a *Arena) pruneBullets() {
	live := a.Bullets[:0]
	for _, b := range a.Bullets {
		if !b.Expired(a.now) {
			live = append(live, b)
		}
	}
	a.Bullets = live
}
