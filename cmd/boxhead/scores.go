package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boxhead/internal/registry"
	"github.com/vovakirdan/tui-boxhead/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
	flagRunID       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [arena]",
	Short: "Show high scores",
	Long: `Display the top scores for an arena, or a summary of every arena
when none is given.

Examples:
  boxhead scores
  boxhead scores warehouse
  boxhead scores warehouse --limit 25
  boxhead scores --recent
  boxhead scores --run 6f1c...
  boxhead scores pillars --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show (0 shows all)")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs of every arena")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score of the arena")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run by its ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagRunID != "":
		return showRun(store, flagRunID)
	case flagRecent:
		return showRecent(store, flagScoresLimit)
	case len(args) == 0:
		return showSummary(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown arena %q; run 'boxhead list' to see available arenas", gameID)
	}
	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	}
	return showTop(store, gameID, flagScoresLimit)
}

func showTop(store *storage.Store, gameID string, limit int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var scores []storage.ScoreEntry
	if limit > 0 {
		scores, err = store.TopScores(gameID, limit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'boxhead play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-4s  %s\n", "Rank", "Score", "Kills", "Wave", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-4s  %s\n", "----", "-----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %-4d  %s\n", i+1, entry.Score, entry.Kills, entry.Wave, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func showRecent(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-5s  %-4s  %-16s  %s\n", "Arena", "Score", "Kills", "Wave", "Date", "Run")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-10d  %-5d  %-4d  %-16s  %s\n", r.GameID, r.Score, r.Kills, r.Wave, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}
	return nil
}

func showRun(store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run %q", runID)
	}
	fmt.Printf("Run %s\n", run.RunID)
	fmt.Printf("  Arena: %s\n", run.GameID)
	fmt.Printf("  Score: %d\n", run.Score)
	fmt.Printf("  Kills: %d\n", run.Kills)
	fmt.Printf("  Wave:  %d\n", run.Wave)
	fmt.Printf("  Date:  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func showSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-5s  %-8s  %-8s  %-7s  %-4s  %s\n", "Arena", "Runs", "Best", "Avg", "Kills", "Wave", "Last played")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-16s  %-5d  %-8d  %-8.0f  %-7d  %-4d  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.TotalKills, s.BestWave, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
