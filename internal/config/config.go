// Package config handles loading the weeklynotes config.toml file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/snils/weeklynotes/internal/paths"
)

// ConfigPathEnv overrides the config file location when set.
const ConfigPathEnv = "WN_CONFIG"

// Config represents the weeklynotes config.toml configuration file.
type Config struct {
	// DataDir overrides the default data directory.
	DataDir string `toml:"data-dir"`

	Notes Notes `toml:"notes"`
}

// Notes contains note-display configuration.
type Notes struct {
	// HideClosed hides done, cancelled, and moved notes when a new
	// session starts.
	HideClosed bool `toml:"hide-closed"`
}

// Load loads configuration from the global config file, or the file
// named by WN_CONFIG when set. Returns an empty config if no config
// file exists.
func Load() (*Config, error) {
	path := os.Getenv(ConfigPathEnv)
	if path == "" {
		defaultPath, err := paths.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, nil
}
