package storage

import (
	"sync"

	"github.com/vovakirdan/tui-boxhead/internal/core"
)

// Keeper adapts a Store to core.ScoreKeeper for one game. The best score
// is cached; Submit persists only improvements.
type Keeper struct {
	store  *Store
	gameID string

	mu   sync.Mutex
	best int
	err  error
}

var _ core.ScoreKeeper = (*Keeper)(nil)

// NewKeeper loads the current best score for gameID.
func NewKeeper(store *Store, gameID string) (*Keeper, error) {
	best, err := store.HighScore(gameID)
	if err != nil {
		return nil, err
	}
	return &Keeper{store: store, gameID: gameID, best: best}, nil
}

// Best returns the cached best score.
func (k *Keeper) Best() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.best
}

// Submit raises the best score if score beats it.
func (k *Keeper) Submit(score int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if score <= k.best {
		return
	}
	k.best = score
	if err := k.store.SetHighScore(k.gameID, score); err != nil {
		k.err = err
	}
}

// Err returns the last write error, if any.
func (k *Keeper) Err() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.err
}
