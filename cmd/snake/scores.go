package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-snake/internal/games/snake"
	"github.com/vovakirdan/retro-snake/internal/platform/tui"
)

var (
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show highscores and run statistics",
	Long: `Display the top 10 highscores and per-map statistics of every
finished round.

Examples:
  snake scores
  snake scores -i
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete highscores and run history")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
}

func runScores(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, flagInteractive)
	if err != nil {
		return err
	}
	defer a.close()

	if a.store == nil {
		return errors.New("scores database is unavailable")
	}

	if flagClear {
		if err := a.book.ClearHighscores(); err != nil {
			return err
		}
		if err := a.store.ClearRuns(""); err != nil {
			return err
		}
		fmt.Println("Highscores and run history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := terminalSize()
		return tui.RunScoreboard(a.book, a.store, width, height)
	}

	entries, err := a.book.Highscores()
	if err != nil {
		return err
	}

	fmt.Println("High Scores")
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-16s  %6s  %5s  %-8s  %s\n", "Rank", "Name", "Score", "Level", "Map", "Date")
		fmt.Printf("  %-4s  %-16s  %6s  %5s  %-8s  %s\n", "----", "----", "-----", "-----", "---", "----")
		for i, e := range entries {
			fmt.Printf("  %-4d  %-16s  %6d  %5d  %-8s  %s\n", i+1, e.Name, e.Score, e.Level, e.MapID, e.Date)
		}
	}

	fmt.Println()
	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  %-8s  %5s  %6s  %7s  %s\n", "Map", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-8s  %5s  %6s  %7s  %s\n", "---", "-----", "----", "-------", "-----------")
	for _, id := range append(snake.MapIDs(), "") {
		stats, err := a.store.RunStats(id)
		if err != nil {
			return err
		}
		if stats.Games == 0 && id != "" {
			continue
		}
		name, last := id, "-"
		if name == "" {
			name = "all"
		}
		if !stats.LastPlayed.IsZero() {
			last = stats.LastPlayed.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-8s  %5d  %6d  %7.1f  %s\n", name, stats.Games, stats.HighScore, stats.AvgScore, last)
	}
	return nil
}
