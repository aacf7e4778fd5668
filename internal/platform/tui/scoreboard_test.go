package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boxhead/internal/storage"
)

func TestScoreboardLoadsRuns(t *testing.T) {
	store := openStore(t)
	runs := []storage.RunResult{
		{GameID: "crossroads", Score: 400, Kills: 2, Wave: 1},
		{GameID: "crossroads", Score: 1800, Kills: 9, Wave: 3},
		{GameID: "warehouse", Score: 200, Kills: 1, Wave: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 2 {
		t.Fatalf("len(scores) = %d, expected 2", len(m.scores))
	}
	if m.scores[0].Score != 1800 {
		t.Errorf("top score = %d, expected 1800", m.scores[0].Score)
	}
	if m.stats == nil || m.stats.TotalKills != 11 || m.stats.BestWave != 3 {
		t.Errorf("stats = %+v, expected 11 kills and best wave 3", m.stats)
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][2] != "9" || rows[0][3] != "3" {
		t.Errorf("rows = %v, expected kills and wave columns", rows)
	}

	// crossroads -> pillars -> warehouse
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Score != 200 {
		t.Errorf("warehouse scores = %v, expected one run of 200", m.scores)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.scores) != 0 {
		t.Errorf("len(scores) = %d, expected 0", len(m.scores))
	}
	if m.View() == "" {
		t.Error("View() is empty")
	}

	next, _ := m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}

func TestMapName(t *testing.T) {
	if got := mapName("Boxhead: Warehouse"); got != "Warehouse" {
		t.Errorf("mapName() = %q, expected Warehouse", got)
	}
}

func TestScoreboardRecentMode(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.RunResult{
		{GameID: "warehouse", Score: 300, Kills: 1, Wave: 1},
		{GameID: "pillars", Score: 100, Kills: 0, Wave: 1},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	if m.mode != boardRecent {
		t.Fatalf("mode = %v, expected recent", m.mode)
	}

	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][0] != "pillars" || rows[1][0] != "warehouse" {
		t.Errorf("rows = %v, expected newest first with arena names", rows)
	}

	// Arena switching only applies to the top view.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).cursor != 0 {
		t.Error("tab moved the arena cursor in recent mode")
	}
}
