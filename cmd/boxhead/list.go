package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boxhead/internal/games/arena"
	"github.com/vovakirdan/tui-boxhead/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available arenas",
	Long:  `Shows every built-in arena with its size and opening enemy count.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No arenas available.")
		return
	}

	layouts := make(map[string]*arena.Layout)
	for _, m := range arena.BuiltinMaps() {
		if l, err := arena.ParseLayout(m.Text); err == nil {
			layouts[m.ID] = l
		}
	}

	fmt.Println("Available arenas:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-7s  %s\n", maxIDLen, "ID", "Size", "Enemies", "Title")
	fmt.Printf("  %-*s  %-7s  %-7s  %s\n", maxIDLen, "--", "----", "-------", "-----")

	for _, g := range games {
		size, enemies := "?", "?"
		if l, ok := layouts[g.ID]; ok {
			size = fmt.Sprintf("%dx%d", l.Cols, l.Rows)
			enemies = fmt.Sprintf("%d", len(l.Enemies))
		}
		fmt.Printf("  %-*s  %-7s  %-7s  %s\n", maxIDLen, g.ID, size, enemies, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'boxhead play <id>' to play an arena.")
}
