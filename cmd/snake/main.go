// snake is a retro snake game for the terminal.
//
// Usage:
//
//	snake play              - Play a round
//	snake menu              - Pick a map and mode interactively
//	snake maps              - List available maps
//	snake daily             - Show today's daily challenge
//	snake scores            - Show highscores and run statistics
//
// Global flags:
//
//	--config <path>     - Use a specific config file
//	--db <path>         - Set database path (default: ~/.snake-retro/snake.db)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--map <id>          - Map to start on
//	--mode <id>         - Game mode to start in
//	--mute              - Disable audio
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-snake/internal/config"
	"github.com/vovakirdan/retro-snake/internal/games/snake"
	"github.com/vovakirdan/retro-snake/internal/records"
	"github.com/vovakirdan/retro-snake/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagMap      string
	flagMode     string
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Retro Snake - an 8-bit snake game in your terminal",
	Long: `Retro Snake is a terminal snake game with power-ups, combos,
several maps, timed and fog modes and a daily challenge.

Available commands:
  play     - Play a round
  menu     - Pick a map and mode interactively
  maps     - List available maps
  daily    - Show the daily challenge
  scores   - View highscores

Examples:
  snake play
  snake play --map maze --mode timed
  snake daily --preview
  snake scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Map id: "+strings.Join(snake.MapIDs(), ", "))
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Game mode: classic, timed, fog")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(scoresCmd)
}

// app bundles what every command needs.
type app struct {
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store // nil when the database could not be opened
	book   *records.Book  // session-only when store is nil
	closer io.Closer      // log file, if any
}

// setup loads the configuration, applies flag overrides and opens storage.
// With toFile the log goes to ~/.snake-retro/snake.log so it does not
// corrupt the TUI; otherwise it goes to stderr.
func setup(cmd *cobra.Command, toFile bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, &cfg)

	a := &app{cfg: cfg}
	a.logger, a.closer = newLogger(cfg.Log.Level, toFile)

	if !snake.IsMapID(cfg.Game.Map) {
		a.logger.Warn("unknown map, using classic", "map", cfg.Game.Map)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		// Continue without storage - scores last for this session only
		a.logger.Warn("could not open scores database", "path", cfg.Storage.DBPath, "error", err)
		a.book = records.New(storage.NewMemoryStore(), a.logger)
		return a, nil
	}
	a.store = store
	a.book = records.New(store, a.logger)
	return a, nil
}

// applyFlags lets explicitly set flags override the configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("map") {
		cfg.Game.Map = flagMap
	}
	if flags.Changed("mode") {
		cfg.Game.Mode = flagMode
	}
	if flags.Changed("mute") && flagMute {
		cfg.Audio.Enabled = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

// close releases storage and the log file.
func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing database", "error", err)
		}
	}
	if a.closer != nil {
		//nolint:errcheck // Best-effort close on exit
		a.closer.Close()
	}
}

// newLogger builds the process logger.
func newLogger(level string, toFile bool) (*log.Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer

	if toFile {
		out = io.Discard
		if path := config.UserPath("snake.log"); path != "" {
			//nolint:errcheck // Best-effort directory creation
			os.MkdirAll(filepath.Dir(path), 0o755)
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
				out, closer = f, f
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger, closer
}
