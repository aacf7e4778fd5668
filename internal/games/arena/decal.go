package arena

import "github.com/vovakirdan/tui-boxhead/internal/core"

// Decal is a blood splat left where something was hit.
type Decal struct {
	Pos     core.Vec2
	Variant int // 1..4
}

const decalVariants = 4

// addDecal records a splat at p, dropping the oldest past the cap.
func (a *Arena) addDecal(p core.Vec2) {
	a.Decals = append(a.Decals, Decal{Pos: p, Variant: 1 + a.rng.Intn(decalVariants)})
	if limit := a.cfg.Effects.MaxDecals; limit > 0 && len(a.Decals) > limit {
		a.Decals = append(a.Decals[:0], a.Decals[len(a.Decals)-limit:]...)
	}
}
