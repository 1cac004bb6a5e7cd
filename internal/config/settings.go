package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the user's defaults. Command line flags override them.
type Settings struct {
	// Mode is the scoring mode, "substring" or "word".
	Mode    string `toml:"mode"`
	// History enables the query log.
	History bool   `toml:"history"`
	// Data points at a reference file used instead of the bundled one.
	Data    string `toml:"data"`
	// Color enables styled output.
	Color   bool   `toml:"color"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{Mode: "substring", History: true, Color: true}
}

// LoadSettings reads the settings file. A missing file yields
// DefaultSettings; keys absent from the file keep their default value.
func LoadSettings() (Settings, error) {
	p, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}
	return ReadSettings(p)
}

// ReadSettings reads settings from path.
func ReadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return Settings{}, err
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	switch s.Mode {
	case "", "substring", "word":
	default:
		return Settings{}, fmt.Errorf("parse %s: invalid mode %q", path, s.Mode)
	}
	// a relative data path is relative to the settings file
	if s.Data != "" && !filepath.IsAbs(s.Data) {
		s.Data = filepath.Join(filepath.Dir(path), s.Data)
	}
	return s, nil
}
