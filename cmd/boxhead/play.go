package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boxhead/internal/platform/tui"
	"github.com/vovakirdan/tui-boxhead/internal/registry"
	"github.com/vovakirdan/tui-boxhead/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <arena>",
	Short: "Play an arena",
	Long: `Start playing the specified arena.

Controls:
  WASD/Arrows  - Move (diagonals by holding two keys)
  Space/F      - Fire (or hold the left mouse button)
  P/Esc        - Pause (click or Enter on the overlay buttons)
  R            - Restart
  B            - Back (while paused or after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Enemies start slow and speed up with your score
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, enemies keep the configured speed

Examples:
  boxhead play warehouse
  boxhead play pillars --difficulty hard
  boxhead play crossroads --mute
  boxhead play warehouse --layout ./my-map.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown arena %q; run 'boxhead list' to see available arenas", gameID)
	}

	logger, closeLog, err := newLogger("boxhead")
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sound, closeSound := newSound(ctx, logger)
	defer closeSound()

	if _, err := tui.Run(game, store, runtimeConfig(), gameOptions(logger, sound)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
