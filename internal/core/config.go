package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Services Services
}

// Services are the collaborator handles owned by the application shell.
// Nil fields are replaced with no-op implementations by WithDefaults.
type Services struct {
	Sound  SoundPlayer
	Scores ScoreKeeper
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WithDefaults fills missing services so games never nil-check them.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.Services.Sound == nil {
		c.Services.Sound = NopSound{}
	}
	if c.Services.Scores == nil {
		c.Services.Scores = NewMemoryScores(0)
	}
	if c.TickRate <= 0 {
		c.TickRate = 60
	}
	return c
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	Best     int
	Wave     int
	Kills    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
