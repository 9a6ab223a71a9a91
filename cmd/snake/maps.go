package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-snake/internal/games/snake"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List all available maps and modes",
	Long:  `Shows every map, including today's daily challenge, and the game modes.`,
	Args:  cobra.NoArgs,
	Run:   runMaps,
}

func runMaps(_ *cobra.Command, _ []string) {
	today := snake.DateString(time.Now())

	fmt.Println("Available maps:")
	fmt.Println()
	fmt.Printf("  %-8s  %-28s  %-10s  %5s  %s\n", "ID", "Name", "Difficulty", "Walls", "Description")
	fmt.Printf("  %-8s  %-28s  %-10s  %5s  %s\n", "--", "----", "----------", "-----", "-----------")
	for _, id := range snake.MapIDs() {
		m := snake.ResolveMapOn(id, today)
		fmt.Printf("  %-8s  %-28s  %-10s  %5d  %s\n",
			m.ID, m.Name, snake.DifficultyStars(m.Difficulty), len(m.Walls), m.Description)
	}

	fmt.Println()
	fmt.Println("Modes:")
	fmt.Println()
	for _, info := range snake.Modes() {
		fmt.Printf("  %-8s  %-12s  %s\n", info.ID, info.Name, info.Description)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --map <id> --mode <mode>' to play.")
}
