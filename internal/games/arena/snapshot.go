package arena

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the observable simulation state, used for determinism checks
// and headless run dumps. It encodes to MessagePack.
type Snapshot struct {
	Tick    uint64       `msgpack:"tick"`
	Now     float64      `msgpack:"now"`
	Score   int          `msgpack:"score"`
	Best    int          `msgpack:"best"`
	Kills   int          `msgpack:"kills"`
	Wave    int          `msgpack:"wave"`
	Player  ActorState   `msgpack:"player"`
	Enemies []ActorState `msgpack:"enemies"`
	Bullets []TrailState `msgpack:"bullets"`
	Decals  int          `msgpack:"decals"`
}

// ActorState is one body in a snapshot.
type ActorState struct {
	ID int     `msgpack:"id"`
	X  float64 `msgpack:"x"`
	Y  float64 `msgpack:"y"`
	OX float64 `msgpack:"ox"`
	OY float64 `msgpack:"oy"`
	HP int     `msgpack:"hp"`
}

// TrailState is one bullet path in a snapshot.
type TrailState struct {
	X1      float64 `msgpack:"x1"`
	Y1      float64 `msgpack:"y1"`
	X2      float64 `msgpack:"x2"`
	Y2      float64 `msgpack:"y2"`
	FiredAt float64 `msgpack:"fired_at"`
}

func actorState(id int, b *Body) ActorState {
	return ActorState{ID: id, X: b.Pos.X, Y: b.Pos.Y, OX: b.Orientation.X, OY: b.Orientation.Y, HP: b.HP}
}

// Snapshot captures the current state.
func (a *Arena) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    a.tick,
		Now:     a.now,
		Score:   a.Score,
		Best:    a.best,
		Kills:   a.Kills,
		Wave:    a.Wave(),
		Player:  actorState(0, &a.Player.Body),
		Enemies: make([]ActorState, 0, len(a.Enemies)),
		Bullets: make([]TrailState, 0, len(a.Bullets)),
		Decals:  len(a.Decals),
	}
	for _, e := range a.Enemies {
		snap.Enemies = append(snap.Enemies, actorState(e.ID, &e.Body))
	}
	for _, b := range a.Bullets {
		snap.Bullets = append(snap.Bullets, TrailState{
			X1: b.Start.X, Y1: b.Start.Y, X2: b.End.X, Y2: b.End.Y, FiredAt: b.FiredAt,
		})
	}
	return snap
}

// Encode returns the MessagePack form of the snapshot.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("arena: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("arena: decode snapshot: %w", err)
	}
	return s, nil
}

// Hash is the FNV-1a hash of the encoded snapshot, for determinism testing.
func (s Snapshot) Hash() uint64 {
	data, err := s.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}
