package arena

import (
	"github.com/vovakirdan/tui-boxhead/internal/config"
	"github.com/vovakirdan/tui-boxhead/internal/core"
)

// Enemy pursues the player's center in a straight line.
type Enemy struct {
	Body
	ID int
}

func (a *Arena) newEnemy(pos core.Vec2) *Enemy {
	a.nextID++
	return &Enemy{
		ID: a.nextID,
		Body: Body{
			Pos:         pos,
			Size:        a.cfg.Enemy.Size,
			Orientation: core.V(0, 1),
			HP:          a.cfg.Enemy.MaxHP,
			MaxHP:       a.cfg.Enemy.MaxHP,
		},
	}
}

// updateEnemy steers e toward the player and moves it.
func (a *Arena) updateEnemy(e *Enemy, dt float64) {
	speed := a.difficulty.Speed(a.cfg.Enemy.Speed, config.Progress{Score: a.Score, Ticks: a.tick, Wave: a.Wave()})
	toPlayer := a.Player.Center().Sub(e.Center()).Normalize()
	e.Vel = toPlayer.Scale(speed * dt)
	move(a, &e.Body)
}

// removeEnemy drops e from the live set, keeping the order of the rest.
func (a *Arena) removeEnemy(e *Enemy) {
	live := a.Enemies[:0]
	for _, other := range a.Enemies {
		if other != e {
			live = append(live, other)
		}
	}
	for i := len(live); i < len(a.Enemies); i++ {
		a.Enemies[i] = nil
	}
	a.Enemies = live
}
