package tui

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boxhead/internal/core"
	"github.com/vovakirdan/tui-boxhead/internal/storage"
)

// scoreQueueSize bounds the pending writes of one session.
const scoreQueueSize = 16

// asyncScores is a ScoreKeeper that never touches the database on the
// simulation goroutine. The stored best is loaded in the background and
// improvements are written by a single writer goroutine.
type asyncScores struct {
	logger *log.Logger
	best   atomic.Int64

	mu     sync.RWMutex
	closed bool
	queue  chan int
	done   chan struct{}
}

// newScoreKeeper returns a keeper backed by store, or an in-memory one
// when there is no store. The writer stops when ctx ends or on Close.
func newScoreKeeper(ctx context.Context, store *storage.Store, gameID string, logger *log.Logger) core.ScoreKeeper {
	if store == nil {
		return core.NewMemoryScores(0)
	}
	s := &asyncScores{
		logger: logger,
		queue:  make(chan int, scoreQueueSize),
		done:   make(chan struct{}),
	}
	go s.run(ctx, store, gameID)
	return s
}

func (s *asyncScores) run(ctx context.Context, store *storage.Store, gameID string) {
	defer close(s.done)

	keeper, err := storage.NewKeeper(store, gameID)
	if err != nil {
		s.logger.Warn("could not load best score", "game", gameID, "error", err)
	} else {
		s.raise(keeper.Best())
	}

	save := func(score int) {
		if keeper == nil {
			err = store.SetHighScore(gameID, score)
		} else {
			keeper.Submit(score)
			err = keeper.Err()
		}
		if err != nil {
			s.logger.Error("could not save best score", "game", gameID, "score", score, "error", err)
		}
	}

	for {
		select {
		case score, ok := <-s.queue:
			if !ok {
				return
			}
			save(score)
		case <-ctx.Done():
			// Writes queued before the end still land.
			s.stop()
			for score := range s.queue {
				save(score)
			}
			return
		}
	}
}

// raise stores score if it beats the cached best.
func (s *asyncScores) raise(score int) bool {
	for {
		cur := s.best.Load()
		if int64(score) <= cur {
			return false
		}
		if s.best.CompareAndSwap(cur, int64(score)) {
			return true
		}
	}
}

// Best returns the cached best score.
func (s *asyncScores) Best() int {
	return int(s.best.Load())
}

// Submit records score. It never blocks; writes are dropped if the
// queue is full.
func (s *asyncScores) Submit(score int) {
	if !s.raise(score) {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}
	select {
	case s.queue <- score:
	default:
		s.logger.Warn("score queue full, dropping write", "score", score)
	}
}

// Close flushes pending writes and stops the writer.
func (s *asyncScores) Close() {
	s.stop()
	<-s.done
}

// stop refuses further writes and closes the queue once.
func (s *asyncScores) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
}

// closeScores stops k's writer if it has one.
func closeScores(k core.ScoreKeeper) {
	if c, ok := k.(interface{ Close() }); ok {
		c.Close()
	}
}
