package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boxhead/internal/core"
	"github.com/vovakirdan/tui-boxhead/internal/registry"
	"github.com/vovakirdan/tui-boxhead/internal/storage"
)

// Options tune the host loop. Zero values fall back to defaults.
type Options struct {
	FPS          int
	MaxSteps     int
	HoldMs       float64
	RepeatHoldMs float64
	Sound        core.SoundPlayer
	Logger       *log.Logger
	// Context bounds background work such as score writes.
	Context context.Context
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = 60
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = core.DefaultMaxSteps
	}
	if o.HoldMs <= 0 {
		o.HoldMs = 550
	}
	if o.RepeatHoldMs <= 0 {
		o.RepeatHoldMs = 120
	}
	if o.Sound == nil {
		o.Sound = core.NopSound{}
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
	return o
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running an arena.
// The last terminal row holds the key help; the game gets the rest.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	scores    core.ScoreKeeper
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	scheduler *core.Scheduler
	held      *HeldKeys
	edges     core.InputFrame
	start     time.Time
	keys      GameKeyMap
	help      help.Model

	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	opts = opts.withDefaults()

	sched := core.NewScheduler(cfg.TickRate)
	sched.MaxSteps = opts.MaxSteps

	m := Model{
		game:      game,
		store:     store,
		config:    cfg,
		opts:      opts,
		logger:    opts.Logger,
		scheduler: sched,
		held:      NewHeldKeys(opts.HoldMs, opts.RepeatHoldMs),
		edges:     core.NewInputFrame(),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
	}
	m.scores = newScoreKeeper(opts.Context, store, game.ID(), opts.Logger)
	m.config.Services = core.Services{Sound: opts.Sound, Scores: m.scores}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	m.help.Width = cfg.ScreenW
	return m
}

func (m Model) gameHeight() int {
	return max(m.config.ScreenH-1, 1)
}

// gameConfig is the runtime config with the help row taken out.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Debug("run started", "game", m.game.ID(), "seed", m.config.Seed)
	return frameCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	a := m.keys.MapKey(msg)
	switch {
	case a == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case a == core.ActionBack:
		if m.gameState.Paused || m.gameState.GameOver {
			m.backToMenu = true
			return m, tea.Quit
		}
	case isHeldAction(a):
		m.held.Press(a, time.Now())
	case a != core.ActionNone:
		m.edges.Set(a)
	}
	return m, nil
}

// handleMouse tracks the pointer and the left button. The button acts as
// a fire trigger in play and as a click on overlay buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.edges.Pointer.X, m.edges.Pointer.Y = msg.X, msg.Y
	m.edges.Pointer.Valid = true

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.edges.Pointer.Clicked = true
			m.held.SetMouseFire(true)
		}
	case tea.MouseActionRelease:
		m.held.SetMouseFire(false)
	}
	return m, nil
}

// handleResize keeps the run going at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight())
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame hands the frame's input to the game and runs the ticks the
// elapsed time pays for.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = now
	}

	frame := m.edges.Clone()
	m.held.Apply(&frame, now)

	m.game.HandleFrame(frame)
	m.gameState = m.game.State()
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.scheduler.Paused = m.gameState.Paused
	ms := float64(now.Sub(m.start)) / float64(time.Millisecond)
	m.scheduler.Frame(ms, func(float64) {
		m.gameState = m.game.Step(frame).State
	})
	m.edges.Clear()

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, frameCmd(m.opts.FPS)
}

// saveRun records the finished run. Failures are logged; play goes on.
func (m Model) saveRun() {
	st := m.gameState
	m.logger.Info("run over", "game", m.game.ID(), "score", st.Score, "kills", st.Kills, "wave", st.Wave)
	if m.store == nil || st.Score <= 0 {
		return
	}
	id, err := m.store.SaveRun(storage.RunResult{
		GameID: m.game.ID(),
		Score:  st.Score,
		Kills:  st.Kills,
		Wave:   st.Wave,
	})
	if err != nil {
		m.logger.Error("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("run saved", "run", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state seen at the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Close flushes pending score writes.
func (m Model) Close() {
	closeScores(m.scores)
}

// Run starts the Bubble Tea program for one game. It reports whether the
// player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
