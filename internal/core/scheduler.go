package core

const (
	// DefaultTimestep is the length of one tick in milliseconds (60 Hz).
	DefaultTimestep = 1000.0 / 60.0
	// DefaultMaxSteps caps the ticks run for a single frame.
	DefaultMaxSteps = 5
)

// Scheduler turns irregular frame callbacks into fixed-length simulation
// ticks. Elapsed wall time accumulates until it covers a whole timestep;
// a frame that would need more than MaxSteps ticks drops the rest of its
// backlog instead of catching up.
type Scheduler struct {
	Timestep float64
	MaxSteps int
	Paused   bool

	lastFrame float64
	delta     float64
	started   bool
}

// NewScheduler creates a scheduler for the given tick rate.
// Non-positive rates fall back to 60 ticks per second.
func NewScheduler(tickRate int) *Scheduler {
	step := DefaultTimestep
	if tickRate > 0 {
		step = 1000.0 / float64(tickRate)
	}
	return &Scheduler{Timestep: step, MaxSteps: DefaultMaxSteps}
}

// Frame accounts for a frame at wall time now (ms) and runs tick once per
// whole timestep owed. It returns the number of ticks run.
//
// The first frame only records the clock. Frames arriving less than one
// timestep after the last accepted frame are skipped entirely. While
// paused the clock keeps moving but nothing accumulates.
func (s *Scheduler) Frame(now float64, tick func(dt float64)) int {
	if !s.started {
		s.started = true
		s.lastFrame = now
		return 0
	}
	if now < s.lastFrame+s.Timestep {
		return 0
	}
	if s.Paused {
		s.lastFrame = now
		s.delta = 0
		return 0
	}

	s.delta += now - s.lastFrame
	s.lastFrame = now

	steps := 0
	for s.delta >= s.Timestep {
		tick(s.Timestep)
		s.delta -= s.Timestep
		steps++
		if s.MaxSteps > 0 && steps >= s.MaxSteps {
			s.delta = 0
			break
		}
	}
	return steps
}

// Pending returns the accumulated time not yet consumed by ticks.
func (s *Scheduler) Pending() float64 {
	return s.delta
}

// Reset forgets the frame clock; the next frame starts a fresh timeline.
func (s *Scheduler) Reset() {
	s.started = false
	s.delta = 0
	s.lastFrame = 0
}
