package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boxhead/internal/core"
	"github.com/vovakirdan/tui-boxhead/internal/storage"
)

func TestMenuListsArenasWithBest(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.RunResult{GameID: "pillars", Score: 1400, Kills: 7, Wave: 2}); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) != 3 {
		t.Fatalf("len(items) = %d, expected 3", len(m.items))
	}
	for _, item := range m.items {
		expected := 0
		if item.GameID == "pillars" {
			expected = 1400
		}
		if item.Best != expected {
			t.Errorf("%s best = %d, expected %d", item.GameID, item.Best, expected)
		}
	}
	if !strings.Contains(m.View(), "1400") {
		t.Error("View() should show the best score")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	step := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	step(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, expected 2", m.cursor)
	}
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != m.items[2].GameID {
		t.Errorf("Selected() = %v, expected %s", m.Selected(), m.items[2].GameID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}

func TestThumbnail(t *testing.T) {
	text := "" +
		"######\n" +
		"#p   #\n" +
		"#  e #\n" +
		"######"

	full := thumbnail(text, 10, 10)
	expected := []string{"██████", "█@   █", "█    █", "██████"}
	if strings.Join(full, "|") != strings.Join(expected, "|") {
		t.Errorf("thumbnail() = %q, expected %q", full, expected)
	}

	// Half size: every cell covers a 2x2 block.
	half := thumbnail(text, 3, 2)
	if len(half) != 2 || half[0] != "███" || half[1] != "███" {
		t.Errorf("thumbnail() at half size = %q", half)
	}

	if got := thumbnail(text, 2, 2); got != nil {
		t.Errorf("thumbnail() with no room = %q, expected nil", got)
	}
}

func TestMenuShowsPreview(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 120, ScreenH: 40})
	for _, item := range m.items {
		if item.Preview == "" {
			t.Errorf("%s has no preview", item.GameID)
		}
	}
	if !strings.Contains(m.View(), "█") {
		t.Error("View() should draw the map preview")
	}
}
