package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Settings holds the user-tunable behaviour of the assistant.
// Values come from an optional YAML file and are then overridden by CLI flags.
type Settings struct {
	Language string `yaml:"language"` // ISO 639-1 code, see SupportedLanguages
	Window   int    `yaml:"window"`   // Lookahead window of the birthdays report, in days
	Seed     int    `yaml:"seed"`     // Number of fake contacts created at start-up
	Plain    bool   `yaml:"plain"`    // Force the line-based prompt even on a terminal
}

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Language: DefaultLanguage,
		Window:   DefaultWindowDays,
	}
}

// DefaultSettingsPath returns <user config dir>/contact-assistant/config.yaml.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}
	return filepath.Join(dir, AppName, SettingsFile), nil
}

// LoadSettings reads a YAML settings file.
// A missing or empty file yields the defaults without error.
// Unknown fields are rejected so typos do not silently fall back to defaults.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return &s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &s, nil
		}
		return nil, fmt.Errorf("%s %s: %w", ErrSettingsRead, path, err)
	}

	if len(data) == 0 {
		return &s, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("%s %s: %w", ErrSettingsParse, path, err)
	}

	return &s, nil
}

// Validate checks that settings values are usable.
func (s *Settings) Validate() error {
	if !slices.Contains(SupportedLanguages, s.Language) {
		return fmt.Errorf("%s: %s %q", ErrSettingsInvalid, ErrLanguage, s.Language)
	}
	if s.Window < 0 || s.Window > MaxWindowDays {
		return fmt.Errorf("%s: %s, got %d", ErrSettingsInvalid, ErrWindowRange, s.Window)
	}
	if s.Seed < 0 || s.Seed > MaxSeedContacts {
		return fmt.Errorf("%s: %s, got %d", ErrSettingsInvalid, ErrSeedRange, s.Seed)
	}
	return nil
}
