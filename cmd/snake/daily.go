package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-snake/internal/core"
	"github.com/vovakirdan/retro-snake/internal/games/snake"
)

var (
	flagDate    string
	flagPreview bool
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the daily challenge",
	Long: `Show the daily challenge for today or a given date: its difficulty,
wall count and your best run. Every player gets the same layout on the
same date.

Examples:
  snake daily
  snake daily --preview
  snake daily --date 2026-01-01`,
	Args: cobra.NoArgs,
	RunE: runDaily,
}

func init() {
	dailyCmd.Flags().StringVar(&flagDate, "date", "", "Date as YYYY-MM-DD (default: today)")
	dailyCmd.Flags().BoolVar(&flagPreview, "preview", false, "Print the layout")
}

func runDaily(cmd *cobra.Command, _ []string) error {
	date := snake.DateString(time.Now())
	if flagDate != "" {
		if _, err := time.Parse(snake.DateLayout, flagDate); err != nil {
			return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", flagDate)
		}
		date = flagDate
	}

	a, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	m := snake.DailyMap(date)
	fmt.Println(m.Name)
	fmt.Println()
	fmt.Printf("  Difficulty: %s (%d/5)\n", snake.DifficultyStars(m.Difficulty), m.Difficulty)
	fmt.Printf("  Walls:      %d\n", len(m.Walls))

	if a.book != nil {
		rec, err := a.book.DailyRecord(date)
		switch {
		case err != nil:
			a.logger.Warn("cannot read daily record", "date", date, "error", err)
		case rec == nil:
			fmt.Println("  Best:       not played yet")
		default:
			fmt.Printf("  Best:       %d (level %d, %d attempts)\n", rec.Score, rec.Level, rec.Attempts)
		}
	}

	if flagPreview {
		fmt.Println()
		fmt.Println(previewMap(m))
	}
	return nil
}

// previewMap draws walls and the starting snake as plain text.
func previewMap(m snake.MapConfig) string {
	screen := core.NewScreen(snake.GridWidth+2, snake.GridHeight+2)
	screen.DrawBox(core.NewRect(0, 0, snake.GridWidth+2, snake.GridHeight+2))
	for _, w := range m.Walls {
		screen.Set(w.X+1, w.Y+1, '#')
	}

	start := snake.NewEngine(1).NewState("classic", snake.ModeClassic, time.Now())
	for i, p := range start.Snake {
		r := 'o'
		if i == 0 {
			r = '@'
		}
		screen.Set(p.X+1, p.Y+1, r)
	}
	return screen.String()
}
