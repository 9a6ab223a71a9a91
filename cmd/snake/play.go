package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-snake/internal/audio"
	"github.com/vovakirdan/retro-snake/internal/games/snake"
	"github.com/vovakirdan/retro-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game on the title screen.

Controls:
  Arrows/WASD  - Move
  Space/P      - Pause
  Enter        - Start / retry
  Esc/B        - Back to the title screen
  Tab/S-Tab    - Cycle maps (title screen)
  G            - Cycle modes (title screen)
  H            - Highscores
  N            - Mute
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --map daily
  snake play --map arena --mode fog --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer a.close()

	width, height := terminalSize()
	player := startAudio(a)
	defer player.Close()

	_, err = tui.Run(a.options(width, height), a.services(player))
	return err
}

// options builds the session options from the configuration.
func (a *app) options(width, height int) tui.Options {
	return tui.Options{
		MapID:      a.cfg.Game.Map,
		Mode:       snake.ParseMode(a.cfg.Game.Mode),
		Seed:       flagSeed,
		PlayerName: a.cfg.Player.Name,
		Width:      width,
		Height:     height,
	}
}

// services wires storage and audio into a session.
func (a *app) services(player *audio.Player) tui.Services {
	svc := tui.Services{Player: player, Book: a.book, Logger: a.logger}
	if a.store != nil {
		svc.History = a.store
	}
	return svc
}

// startAudio opens the audio device. Failure leaves a silent player.
func startAudio(a *app) *audio.Player {
	player := audio.NewPlayer(audio.Config{
		Enabled: a.cfg.Audio.Enabled,
		Volume:  a.cfg.Audio.Volume,
	}, a.logger)
	if err := player.Init(); err != nil {
		a.logger.Warn("audio disabled", "error", err)
	}
	return player
}

// terminalSize returns the terminal size and warns when the board will not fit.
func terminalSize() (int, int) {
	width, height := snake.ScreenWidth, snake.ScreenHeight+1
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return width, height
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return width, height
	}
	if w < width || h < height {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n", w, h, width, height)
	}
	return w, h
}
