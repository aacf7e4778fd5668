package arena

import (
	"math/rand"

	"github.com/vovakirdan/tui-boxhead/internal/core"
)

// Director walks the wave table. Wave 0 is the opening set of enemies;
// each full clear starts the next entry, holding at the last entry once
// the table is exhausted. A wave only counts as started once it is placed.
type Director struct {
	table   []int
	wave    int
	started bool
}

// NewDirector creates a director over a non-empty wave table.
func NewDirector(table []int) *Director {
	t := append([]int(nil), table...)
	if len(t) == 0 {
		t = []int{0}
	}
	return &Director{table: t}
}

// Wave returns the index of the current wave.
func (d *Director) Wave() int {
	return d.wave
}

// Count returns the enemy count of the current wave.
func (d *Director) Count() int {
	return d.table[d.wave]
}

// Due returns the enemy count of the wave that starts next.
func (d *Director) Due() int {
	if !d.started {
		return d.table[d.wave]
	}
	return d.table[min(d.wave+1, len(d.table)-1)]
}

// Start marks the due wave as placed and returns its index.
func (d *Director) Start() int {
	if d.started {
		d.wave = min(d.wave+1, len(d.table)-1)
	}
	d.started = true
	return d.wave
}

// PickSpawns chooses up to n distinct cells from candidates whose centers
// are at least safe away from avoid. Fewer cells are returned when not
// enough qualify. candidates is not modified.
func PickSpawns(rng *rand.Rand, candidates []Cell, center func(Cell) core.Vec2, avoid core.Vec2, safe float64, n int) []Cell {
	eligible := make([]Cell, 0, len(candidates))
	for _, c := range candidates {
		if center(c).Dist(avoid) >= safe {
			eligible = append(eligible, c)
		}
	}
	n = min(n, len(eligible))
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(eligible)-i)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}
	return eligible[:n]
}

// spawnWave places up to count enemies on free cells away from the player
// and returns how many it placed.
func (a *Arena) spawnWave(count int) int {
	safe := a.cfg.Spawn.SafeRadiusFactor * a.Player.Radius()
	cells := PickSpawns(a.rng, a.layout.Spawns, a.cellCenter, a.Player.Center(), safe, count)
	for _, c := range cells {
		a.Enemies = append(a.Enemies, a.newEnemy(a.cellCenter(c).SubScalar(a.cfg.Enemy.Size/2)))
	}
	if len(cells) > 0 {
		a.sound.Play(SoundWaveStart)
	}
	return len(cells)
}

// updateWaves starts the due wave once every enemy is gone. When no cell
// is free of the player the wave stays due and is retried next tick.
func (a *Arena) updateWaves() {
	if len(a.Enemies) > 0 {
		return
	}
	count := a.director.Due()
	if a.spawnWave(count) > 0 || count == 0 {
		a.director.Start()
	}
}
