// boxhead is a top-down arena shooter for the terminal.
//
// Usage:
//
//	boxhead list              - List available arenas
//	boxhead play <arena>      - Play an arena
//	boxhead menu              - Start menu to pick arenas interactively
//	boxhead serve             - Start SSH server for remote play
//	boxhead scores [arena]    - Show high scores
//	boxhead sim <arena>       - Run a headless scripted game
//
// Global flags:
//
//	--fps <rate>           - Set frame rate (default: from config)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--config <path>        - Custom arena config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--layout <path>        - Custom map file
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-boxhead/internal/audio"
	"github.com/vovakirdan/tui-boxhead/internal/core"
	"github.com/vovakirdan/tui-boxhead/internal/games/arena"
	"github.com/vovakirdan/tui-boxhead/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLayout     string
	flagMute       bool
	flagSounds     string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxhead",
	Short: "Boxhead - survive the waves in your terminal",
	Long: `Boxhead is a top-down arena shooter played in the terminal.
Hold your ground against endless waves, one arena at a time.

Available commands:
  list     - Show all available arenas
  play     - Play a specific arena directly
  menu     - Interactive arena picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  sim      - Run a headless scripted game

Examples:
  boxhead list
  boxhead play warehouse
  boxhead menu --difficulty hard
  boxhead serve --ssh :2222
  boxhead sim pillars --seed 7 --ticks 3600`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return configureArena()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Path to a custom map file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagSounds, "sounds", "~/.arcade/sounds", "Directory with WAV sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/boxhead.log", "Log file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// configureArena hands the arena flags to the arena package before any
// game is created.
func configureArena() error {
	arena.SetConfigPath(expandHome(flagConfig))
	if err := arena.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	if err := arena.SetLayoutFile(expandHome(flagLayout)); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if _, err := arena.Configure(); err != nil {
		return err
	}
	return nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// newLogger opens the log file. The terminal belongs to the game, so
// logs only go to stderr when the file is "-".
func newLogger(prefix string) (*log.Logger, func(), error) {
	opts := log.Options{ReportTimestamp: true, Prefix: prefix}
	if flagVerbose {
		opts.Level = log.DebugLevel
	}
	if flagLogFile == "-" {
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}

// newSound starts the audio output and loads the effects in the
// background. Audio failures only cost the sound.
func newSound(ctx context.Context, logger *log.Logger) (core.SoundPlayer, func()) {
	if flagMute {
		return core.NopSound{}, func() {}
	}
	mgr := audio.NewManager(logger)
	if err := mgr.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return core.NopSound{}, func() {}
	}
	mgr.Load(ctx, expandHome(flagSounds), arena.SoundNames...)
	return mgr, mgr.Close
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg, _ := arena.LoadConfig()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}
}

// gameOptions builds the host loop options from the arena config.
func gameOptions(logger *log.Logger, sound core.SoundPlayer) tui.Options {
	cfg, _ := arena.LoadConfig()
	opts := tui.Options{
		FPS:          cfg.Timing.FPS,
		MaxSteps:     cfg.Timing.MaxSteps,
		HoldMs:       cfg.Input.HoldMs,
		RepeatHoldMs: cfg.Input.RepeatHoldMs,
		Sound:        sound,
		Logger:       logger,
	}
	if flagFPS > 0 {
		opts.FPS = flagFPS
	}
	return opts
}
