package arena

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-boxhead/internal/config"
	"github.com/vovakirdan/tui-boxhead/internal/core"
)

// Arena is the simulation root. It owns the player, the live enemies and
// every transient effect; bodies never hold a reference back to it and
// are updated through the world view instead.
type Arena struct {
	Player  *Player
	Enemies []*Enemy
	Bullets []BulletPath
	Decals  []Decal
	Floor   []FloorPatch

	Score int
	Kills int

	cfg        config.ArenaConfig
	layout     *Layout
	width      float64
	height     float64
	director   *Director
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	sound      core.SoundPlayer
	scores     core.ScoreKeeper
	best       int
	now        float64
	tick       uint64
	nextID     int
}

// New builds an arena from a parsed layout. The player and the layout's
// enemy markers are placed centered in their tiles; a layout without
// markers starts with the first wave of the table instead.
func New(l *Layout, cfg config.ArenaConfig, seed int64, services core.Services) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("arena: nil layout")
	}
	if services.Sound == nil {
		services.Sound = core.NopSound{}
	}
	if services.Scores == nil {
		services.Scores = core.NewMemoryScores(0)
	}

	g := cfg.Arena.GridSize
	a := &Arena{
		cfg:        cfg,
		layout:     l,
		width:      float64(l.Cols) * g,
		height:     float64(l.Rows) * g,
		director:   NewDirector(cfg.Waves),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		sound:      services.Sound,
		scores:     services.Scores,
	}
	a.best = a.scores.Best()
	a.Floor = generateFloor(a.rng, l, g, cfg.Effects.FloorNoise)

	a.Player = newPlayer(a.cellCenter(l.Player).SubScalar(cfg.Player.Size/2), cfg.Player, cfg.Weapon, a.rng)
	for _, c := range l.Enemies {
		a.Enemies = append(a.Enemies, a.newEnemy(a.cellCenter(c).SubScalar(cfg.Enemy.Size/2)))
	}
	if len(a.Enemies) > 0 {
		// The marker enemies are wave 0.
		a.director.Start()
	} else {
		a.updateWaves()
	}
	return a, nil
}

// Size returns the arena extent in world units.
func (a *Arena) Size() core.Vec2 {
	return core.V(a.width, a.height)
}

// Bounds returns the arena as a box.
func (a *Arena) Bounds() core.Box {
	return core.NewBox(0, 0, a.width, a.height)
}

// GridSize returns the tile edge length.
func (a *Arena) GridSize() float64 {
	return a.cfg.Arena.GridSize
}

// Layout returns the parsed map.
func (a *Arena) Layout() *Layout {
	return a.layout
}

// Obstacles visits every enemy and the player, skipping self.
func (a *Arena) Obstacles(self *Body, fn func(other *Body) bool) {
	for _, e := range a.Enemies {
		if &e.Body == self {
			continue
		}
		if !fn(&e.Body) {
			return
		}
	}
	if &a.Player.Body != self {
		fn(&a.Player.Body)
	}
}

// cellCenter returns the world position of a cell's center.
func (a *Arena) cellCenter(c Cell) core.Vec2 {
	g := a.GridSize()
	return core.V((float64(c.Col)+0.5)*g, (float64(c.Row)+0.5)*g)
}

// TileAt returns the cell containing world point p.
func (a *Arena) TileAt(p core.Vec2) Cell {
	return tileOf(a, p)
}

// Now returns the simulation clock in milliseconds.
func (a *Arena) Now() float64 {
	return a.now
}

// Ticks returns the number of ticks simulated.
func (a *Arena) Ticks() uint64 {
	return a.tick
}

// Wave returns the current wave index, 0 for the opening wave.
func (a *Arena) Wave() int {
	return a.director.Wave()
}

// Best returns the best score known to this run.
func (a *Arena) Best() int {
	return a.best
}

// GameOver reports whether the player is dead.
func (a *Arena) GameOver() bool {
	return !a.Player.Alive()
}

// Tick advances the simulation by dt milliseconds: the player first, then
// every enemy, then the wave director, then trail expiry.
func (a *Arena) Tick(dt float64, in core.InputFrame) {
	a.now += dt
	a.tick++

	a.updatePlayer(dt, in)
	for _, e := range a.Enemies {
		a.updateEnemy(e, dt)
	}
	a.updateWaves()
	a.pruneBullets()

	// The keeper may finish loading a stored best after the run started.
	if b := a.scores.Best(); b > a.best {
		a.best = b
	}
	if a.Score > a.best {
		a.best = a.Score
		a.scores.Submit(a.Score)
	}
}
