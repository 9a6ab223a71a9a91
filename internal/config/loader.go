package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppDirName is the per-user directory under $HOME.
const AppDirName = ".snake-retro"

// Load loads the configuration.
// Search order: customPath -> ~/.snake-retro/config.yaml -> ./configs/snake.yaml -> embedded default
//
// Only an explicit customPath that cannot be read or parsed is an error;
// a broken file anywhere else is skipped. Fields missing from the file keep
// their Default() values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{UserPath("config.yaml"), filepath.Join("configs", "snake.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// UserPath returns a path inside ~/.snake-retro, or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDirName, filename)
}

// parse decodes data over the defaults and normalizes the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize fills blanks and clamps out-of-range values.
func (c *Config) normalize() {
	def := Default()

	c.Player.Name = strings.TrimSpace(c.Player.Name)
	if c.Player.Name == "" {
		c.Player.Name = def.Player.Name
	}
	c.Game.Map = strings.ToLower(strings.TrimSpace(c.Game.Map))
	if c.Game.Map == "" {
		c.Game.Map = def.Game.Map
	}
	c.Game.Mode = strings.ToLower(strings.TrimSpace(c.Game.Mode))
	if c.Game.Mode == "" {
		c.Game.Mode = def.Game.Mode
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
