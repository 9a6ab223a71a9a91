package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-snake/internal/games/snake"
	"github.com/vovakirdan/retro-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a map and mode, then play",
	Long: `Start with an interactive map and mode picker.

Up/Down choose a map, Left/Right choose a mode and Enter plays.
Esc on the game's title screen returns to the picker.

Examples:
  snake menu
  snake menu --mute`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer a.close()

	width, height := terminalSize()
	player := startAudio(a)
	defer player.Close()

	sel := tui.Selection{MapID: a.cfg.Game.Map, Mode: snake.ParseMode(a.cfg.Game.Mode)}
	for {
		picked, err := tui.RunMenu(sel, width, height)
		if err != nil {
			return err
		}
		if picked == nil {
			return nil
		}
		sel = *picked

		opts := a.options(width, height)
		opts.MapID, opts.Mode = sel.MapID, sel.Mode
		opts.AutoStart, opts.BackExits = true, true

		result, err := tui.Run(opts, a.services(player))
		if err != nil {
			return err
		}
		if !result.Back {
			return nil
		}
		// Keep whatever was selected in-game for the next pick
		sel = tui.Selection{MapID: result.State.MapID, Mode: result.State.Mode}
	}
}
