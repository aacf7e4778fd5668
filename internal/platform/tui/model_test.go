package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boxhead/internal/core"
	"github.com/vovakirdan/tui-boxhead/internal/games/arena"
	"github.com/vovakirdan/tui-boxhead/internal/registry"
)

func newTestModel(t *testing.T) (Model, *arena.Game) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g, err := registry.Create("warehouse")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}
	m := NewModel(g, nil, cfg, Options{Logger: log.New(io.Discard)})
	m.Init()
	return m, g.(*arena.Game)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm
}

func TestModelRunsTicks(t *testing.T) {
	m, g := newTestModel(t)

	m = update(t, m, FrameMsg(at(0)))
	m = update(t, m, FrameMsg(at(60)))
	if got := g.Arena().Ticks(); got != 3 {
		t.Errorf("Ticks() = %d, expected 3", got)
	}

	// A long stall only runs MaxSteps ticks.
	m = update(t, m, FrameMsg(at(1060)))
	if got := g.Arena().Ticks(); got != 3+core.DefaultMaxSteps {
		t.Errorf("Ticks() = %d, expected %d", got, 3+core.DefaultMaxSteps)
	}
	_ = m
}

func TestModelPauseStopsTicks(t *testing.T) {
	m, g := newTestModel(t)

	m = update(t, m, FrameMsg(at(0)))
	m = update(t, m, runeKey('p'))
	m = update(t, m, FrameMsg(at(100)))
	if !m.State().Paused {
		t.Fatal("State().Paused = false, expected true")
	}
	if got := g.Arena().Ticks(); got != 0 {
		t.Errorf("Ticks() = %d while paused, expected 0", got)
	}
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, FrameMsg(at(0)))
	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("BackToMenu() = true during play")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, FrameMsg(at(20)))
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("BackToMenu() = false while paused")
	}
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m, g := newTestModel(t)
	start := g.Arena().Player.Center()

	now := time.Now()
	m = update(t, m, FrameMsg(now))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, FrameMsg(now.Add(100*time.Millisecond)))

	if got := g.Arena().Player.Center(); got.X <= start.X {
		t.Errorf("player x = %v, expected more than %v", got.X, start.X)
	}
	_ = m
}

func TestModelMouse(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.edges.Pointer.Valid || !m.edges.Pointer.Clicked {
		t.Errorf("Pointer = %+v, expected a valid click", m.edges.Pointer)
	}
	if m.edges.Pointer.X != 12 || m.edges.Pointer.Y != 5 {
		t.Errorf("Pointer at (%d, %d), expected (12, 5)", m.edges.Pointer.X, m.edges.Pointer.Y)
	}
	if !m.held.Held(core.ActionFire, time.Now()) {
		t.Error("left press should hold fire")
	}

	m = update(t, m, tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	if m.held.Held(core.ActionFire, time.Now()) {
		t.Error("release should stop fire")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, g := newTestModel(t)
	m = update(t, m, FrameMsg(at(0)))
	m = update(t, m, FrameMsg(at(50)))
	ticks := g.Arena().Ticks()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if g.Arena().Ticks() != ticks {
		t.Error("resize restarted the run")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, FrameMsg(at(0)))

	if v := m.View(); v == "" {
		t.Error("View() is empty")
	}
	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("quit should blank the view")
	}
}
