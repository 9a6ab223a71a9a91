// Package config provides YAML-based application configuration loading
// for the snake game.
package config

// Config contains all user-tunable settings. Engine rules are fixed and
// are not part of the configuration.
type Config struct {
	Player  PlayerConfig  `yaml:"player"`
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
}

// PlayerConfig holds the name used for highscore entries.
type PlayerConfig struct {
	Name string `yaml:"name"`
}

// GameConfig selects what a new game starts with.
type GameConfig struct {
	Map  string `yaml:"map"`  // classic, maze, cave, arena or daily
	Mode string `yaml:"mode"` // classic, timed or fog
}

// StorageConfig locates the SQLite database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// AudioConfig controls the soundtrack.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}
