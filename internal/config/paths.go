// Package config resolves where gitexplore keeps its files and loads the
// user's settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvHome overrides the data directory.
	EnvHome = "GITEXPLORE_HOME"
	// EnvDB overrides the path of the history database.
	EnvDB = "GITEXPLORE_DB"
)

// DataDir returns the directory used to store gitexplore data.
func DataDir() (string, error) {
	if d := os.Getenv(EnvHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gitexplore"), nil
}

// EnsureDataDir returns DataDir after creating it if needed.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return d, nil
}

// DBPath returns the full path to the SQLite history database.
func DBPath() (string, error) {
	if p := os.Getenv(EnvDB); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "history.db"), nil
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.toml"), nil
}
