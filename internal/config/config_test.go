package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeArena(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults don't decode: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultArenaConfig()) {
		t.Errorf("embedded defaults = %+v\nexpected %+v", cfg, DefaultArenaConfig())
	}
}

func TestLoadArenaImplicitLocations(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadArena("")
	if err != nil {
		t.Fatalf("LoadArena() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultArenaConfig()) {
		t.Error("without config files LoadArena() should return the defaults")
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", arenaConfigFile), []byte("enemy:\n  score: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadArena("")
	if err != nil {
		t.Fatalf("LoadArena() error = %v", err)
	}
	if cfg.Enemy.Score != 300 {
		t.Errorf("Enemy.Score = %d, expected 300 from ./configs", cfg.Enemy.Score)
	}
}

func TestLoadArenaCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, cfg ArenaConfig)
	}{
		{
			name:    "partial override keeps defaults",
			content: "waves: [1, 2]\nplayer:\n  max_hp: 50\n",
			check: func(t *testing.T, cfg ArenaConfig) {
				if !reflect.DeepEqual(cfg.Waves, []int{1, 2}) {
					t.Errorf("Waves = %v, expected [1 2]", cfg.Waves)
				}
				if cfg.Player.MaxHP != 50 {
					t.Errorf("Player.MaxHP = %d, expected 50", cfg.Player.MaxHP)
				}
				if cfg.Player.Speed != DefaultArenaConfig().Player.Speed {
					t.Errorf("Player.Speed = %v, expected default", cfg.Player.Speed)
				}
			},
		},
		{
			name:    "decreasing waves rejected",
			content: "waves: [5, 3]\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "player larger than a tile rejected",
			content: "player:\n  size: 60\n",
			wantErr: ErrInvalidConfig,
		},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadArena(path)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("case %d: LoadArena() error = %v, expected %v", i, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadArena() error = %v", err)
			}
			tc.check(t, cfg)
		})
	}

	if _, err := LoadArena(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadArena() with a missing custom file should fail")
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("waves: [1,"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArena(filepath.Join(dir, "broken.yaml")); err == nil {
		t.Error("LoadArena() with malformed YAML should fail")
	}
}

func TestPresets(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}

	cfg := DefaultArenaConfig()
	ApplyArenaPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}
	ApplyArenaPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	before := cfg.Difficulty
	ApplyArenaPreset(&cfg, "")
	if cfg.Difficulty != before {
		t.Error("empty preset should leave the config alone")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(Progress{Score: tc.score}); got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
	if got := d.Speed(0.1, Progress{Score: 1000}); got < 0.2-1e-9 || got > 0.2+1e-9 {
		t.Errorf("Speed() at max level = %v, expected 0.2", got)
	}

	cfg.Enabled = false
	fixed := NewDifficultyManager(cfg)
	if fixed.IsEnabled() || fixed.Level(Progress{Score: 1000}) != 0.2 {
		t.Error("disabled manager should stay at the initial level")
	}

	timed := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := timed.Level(Progress{Ticks: 300}); got != 0.5 {
		t.Errorf("time Level() = %v, expected 0.5", got)
	}

	waves := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressionWave, MaxAt: 8},
	})
	if got := waves.Level(Progress{Score: 99999, Wave: 2}); got != 0.25 {
		t.Errorf("wave Level() = %v, expected 0.25", got)
	}
}

func TestValidateProgressionType(t *testing.T) {
	cfg := DefaultArenaConfig()
	cfg.Difficulty.Progression.Type = "lunar"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, expected ErrInvalidConfig", err)
	}
	cfg.Difficulty.Progression.Type = ProgressionWave
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, expected nil", err)
	}
}
