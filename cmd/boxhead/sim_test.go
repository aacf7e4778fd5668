package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-boxhead/internal/core"
	"github.com/vovakirdan/tui-boxhead/internal/games/arena"
)

func TestBotInput(t *testing.T) {
	tests := []struct {
		tick     int
		expected core.Vec2
	}{
		{0, core.V(1, 0)},
		{44, core.V(1, 0)},
		{45, core.V(1, 1)},
		{135, core.V(-1, 1)},
		{315, core.V(1, -1)},
		{360, core.V(1, 0)},
	}

	for _, tt := range tests {
		in := botInput(tt.tick)
		if got := in.Direction(); got != tt.expected {
			t.Errorf("botInput(%d).Direction() = %v, expected %v", tt.tick, got, tt.expected)
		}
		if !in.Has(core.ActionFire) {
			t.Errorf("botInput(%d) should fire", tt.tick)
		}
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	a, err := simulate("pillars", 99, 900)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	b, err := simulate("pillars", 99, 900)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	if a.Snapshot.Hash() != b.Snapshot.Hash() {
		t.Errorf("hashes differ: %x vs %x", a.Snapshot.Hash(), b.Snapshot.Hash())
	}
	if a.State != b.State {
		t.Errorf("states differ: %+v vs %+v", a.State, b.State)
	}
	if a.Ticks == 0 || a.Ticks > 900 {
		t.Errorf("Ticks = %d, expected 1..900", a.Ticks)
	}
	if a.Sounds[arena.SoundFire] == 0 {
		t.Error("the bot never fired")
	}
}

func TestSimulateUnknownArena(t *testing.T) {
	if _, err := simulate("nowhere", 1, 10); err == nil {
		t.Error("simulate() error = nil, expected unknown arena")
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	tests := []struct {
		in, expected string
	}{
		{"~/.arcade/scores.db", "/home/tester/.arcade/scores.db"},
		{"~", "/home/tester"},
		{"./scores.db", "./scores.db"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestPort(t *testing.T) {
	if got := port(":23234"); got != "23234" {
		t.Errorf("port() = %q, expected 23234", got)
	}
	if got := port("0.0.0.0:2222"); got != "2222" {
		t.Errorf("port() = %q, expected 2222", got)
	}
}

func TestConfigureArenaRejectsBrokenConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		flagConfig = ""
		arena.SetConfigPath("")
	})

	dir := t.TempDir()
	tests := []struct {
		name string
		yaml string
		ok   bool
	}{
		{"valid layout", "arena:\n  layout: |\n    #####\n    #p e#\n    #####\n", true},
		{"no player spawn", "arena:\n  layout: |\n    ####\n    #  #\n    ####\n", false},
		{"ragged rows", "arena:\n  layout: |\n    #####\n    #p e#\n    ###\n", false},
		{"bad yaml", "arena: [", false},
	}
	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			flagConfig = path
			err := configureArena()
			if (err == nil) != tc.ok {
				t.Errorf("configureArena() error = %v, expected ok = %v", err, tc.ok)
			}
		})
	}
}
