// Package paths resolves the directories weeklynotes uses for data and
// configuration.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirEnv overrides the data directory when set.
const DataDirEnv = "WN_DATA_DIR"

// DefaultDataDir returns the default weeklynotes data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "weeklynotes"), nil
}

// DefaultConfigPath returns the path of the global config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "weeklynotes", "config.toml"), nil
}

// DataDir resolves the data directory: an explicit override wins, then
// the WN_DATA_DIR environment variable, then the default location.
func DataDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if env := os.Getenv(DataDirEnv); env != "" {
		return env, nil
	}
	return DefaultDataDir()
}
