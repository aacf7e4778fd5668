package core

import "sync"

// SoundPlayer plays a named sound effect. Play must return immediately;
// unknown or unloaded names are ignored.
type SoundPlayer interface {
	Play(name string)
}

// ScoreKeeper exposes the persisted best score for one arena.
// Submit is fire-and-forget; it only ever raises the stored value.
type ScoreKeeper interface {
	Best() int
	Submit(score int)
}

// NopSound discards every sound.
type NopSound struct{}

func (NopSound) Play(string) {}

// MemoryScores keeps the best score in memory.
type MemoryScores struct {
	mu   sync.Mutex
	best int
}

// NewMemoryScores creates a keeper seeded with best.
func NewMemoryScores(best int) *MemoryScores {
	return &MemoryScores{best: best}
}

func (m *MemoryScores) Best() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

func (m *MemoryScores) Submit(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.best {
		m.best = score
	}
}

// SoundRecorder records played sound names. Tests and headless runs use it.
type SoundRecorder struct {
	mu     sync.Mutex
	played []string
}

func (r *SoundRecorder) Play(name string) {
	r.mu.Lock()
	r.played = append(r.played, name)
	r.mu.Unlock()
}

// Played returns a copy of the names played so far.
func (r *SoundRecorder) Played() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.played...)
}

// Count returns how many times name was played.
func (r *SoundRecorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}
