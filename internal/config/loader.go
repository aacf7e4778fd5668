package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const arenaConfigFile = "boxhead.yaml"

// LoadArena loads the arena configuration.
// Search order: customPath -> ~/.arcade/configs/boxhead.yaml ->
// ./configs/boxhead.yaml -> embedded default -> DefaultArenaConfig.
// Files are decoded over the defaults, so they only need the keys they change.
// A custom path that can't be read, parsed or validated is an error; the
// implicit locations are skipped when broken.
func LoadArena(customPath string) (ArenaConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultArenaConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeArena(data)
		if err != nil {
			return DefaultArenaConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(arenaConfigFile), filepath.Join("configs", arenaConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeArena(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decodeArena(defaultArenaYAML); err == nil {
		return cfg, nil
	}
	return DefaultArenaConfig(), nil
}

func decodeArena(data []byte) (ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyArenaPreset modifies the config based on a difficulty preset.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
