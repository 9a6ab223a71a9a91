package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultDBPath is where scores live unless configured otherwise.
const DefaultDBPath = "~/.snake-retro/snake.db"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			Name: "Player",
		},
		Game: GameConfig{
			Map:  "classic",
			Mode: "classic",
		},
		Storage: StorageConfig{
			DBPath: DefaultDBPath,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.7,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
