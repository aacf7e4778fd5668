package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boxhead/internal/platform/tui"
	"github.com/vovakirdan/tui-boxhead/internal/registry"
	"github.com/vovakirdan/tui-boxhead/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an arena picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an arena.
Pause and press B, or press B after game over, to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select arena
  Tab          - Scoreboard
  Q            - Quit

Examples:
  boxhead menu
  boxhead menu --fps 30
  boxhead menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("boxhead")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sound, closeSound := newSound(ctx, logger)
	defer closeSound()

	cfg := runtimeConfig()
	opts := gameOptions(logger, sound)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// A fixed seed replays the same run every time.
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, runCfg, opts)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
