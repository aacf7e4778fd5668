package arena

import (
	"math"

	"github.com/vovakirdan/tui-boxhead/internal/core"
)

// Sound effect names.
const (
	SoundFire       = "weapon-pistol-fire"
	SoundPlayerHurt = "player-hurt"
	SoundEnemyDeath = "enemy-death"
	SoundWaveStart  = "wave-start"
)

// SoundNames lists every sound the arena plays.
var SoundNames = []string{SoundFire, SoundPlayerHurt, SoundEnemyDeath, SoundWaveStart}

// Shot is the outcome of a single trigger pull.
type Shot struct {
	Path   core.Segment
	Target *Enemy // nil on a miss
}

// traceShot casts a shot from the player's center along its orientation.
// The ray is bounded by the arena edge, truncated at the first wall pixel
// and finally cut at the nearest enemy circle it crosses.
func (a *Arena) traceShot() (Shot, bool) {
	p := a.Player
	origin := p.Center()

	far, ok := core.RayBoxExit(origin, p.Orientation, a.Bounds())
	if !ok {
		return Shot{}, false
	}
	shot := Shot{Path: core.Segment{A: origin, B: a.clipToWalls(origin, far)}}

	best := math.Inf(1)
	for _, e := range a.Enemies {
		hit, ok := core.SegmentCircle(shot.Path, e.Center(), e.Radius())
		if !ok {
			continue
		}
		if d := hit.Dist(origin); d < best {
			best = d
			shot.Target = e
			shot.Path.B = hit
		}
	}
	return shot, true
}

// clipToWalls walks the pixels from origin to far and returns the point
// where the shot line meets the face of the first solid tile it enters.
// Pixels outside the grid count as solid, so a shot through a gap in the
// outer wall ends at the arena edge.
func (a *Arena) clipToWalls(origin, far core.Vec2) core.Vec2 {
	g := a.GridSize()
	x0, y0 := int(math.Floor(origin.X)), int(math.Floor(origin.Y))
	x1, y1 := int(math.Floor(far.X)), int(math.Floor(far.Y))

	px, py := x0, y0
	x, y, hit := core.WalkGrid(x0, y0, x1, y1, func(x, y int) bool {
		col := int(math.Floor(float64(x) / g))
		row := int(math.Floor(float64(y) / g))
		if a.layout.Solid(col, row) {
			return true
		}
		px, py = x, y
		return false
	})
	if !hit {
		return far
	}

	// The last step crossed either a vertical or a horizontal face.
	// Place the end where the exact shot line meets that face.
	d := far.Sub(origin)
	var t float64
	switch {
	case x != px && d.X != 0:
		face := float64(max(x, px))
		t = (face - origin.X) / d.X
	case y != py && d.Y != 0:
		face := float64(max(y, py))
		t = (face - origin.Y) / d.Y
	default:
		return origin
	}
	return origin.Add(d.Scale(core.ClampF(t, 0, 1)))
}

// shoot fires one round: damages the nearest enemy on the line, plays
// the fire sound and leaves a short-lived trail whether or not it hit.
func (a *Arena) shoot() {
	shot, ok := a.traceShot()
	if !ok {
		return
	}
	if shot.Target != nil {
		a.damageEnemy(shot.Target, a.cfg.Weapon.Damage)
	}
	a.sound.Play(SoundFire)
	a.Bullets = append(a.Bullets, BulletPath{
		Start:    shot.Path.A,
		End:      shot.Path.B,
		Color:    core.ColorBrightYellow,
		Duration: a.cfg.Weapon.TrailMs,
		FiredAt:  a.now,
	})
}

// damageEnemy applies damage and handles the kill bounty.
func (a *Arena) damageEnemy(e *Enemy, damage int) {
	e.HP -= damage
	a.addDecal(e.Center())
	if e.HP > 0 {
		return
	}
	a.removeEnemy(e)
	a.Score += a.cfg.Enemy.Score
	a.Kills++
	a.sound.Play(SoundEnemyDeath)
}
