// Package config manages the cubesim configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubesim/internal/scheme"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

// ErrUnknownKey is returned by Set for keys that are not part of Settings.
var ErrUnknownKey = errors.New("config: unknown key")

// ErrInvalidValue is returned by Set when a value does not parse.
var ErrInvalidValue = errors.New("config: invalid value")

// DefaultTurnDelay is the pause between moves when a line of turns is
// played back in the console.
const DefaultTurnDelay = 450 * time.Millisecond

// Settings is the persistent configuration.
type Settings struct {
	DBPath         string `yaml:"db_path,omitempty"`
	Scheme         string `yaml:"scheme"`
	ScrambleLength int    `yaml:"scramble_length"`
	TurnDelay      string `yaml:"turn_delay"`
	LogLevel       string `yaml:"log_level"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		Scheme:         scheme.Default,
		ScrambleLength: scramble.DefaultLength,
		TurnDelay:      DefaultTurnDelay.String(),
		LogLevel:       "info",
	}
}

// Delay returns TurnDelay as a duration, falling back to the default.
func (s Settings) Delay() time.Duration {
	d, err := time.ParseDuration(s.TurnDelay)
	if err != nil || d < 0 {
		return DefaultTurnDelay
	}
	return d
}

// Level returns LogLevel as an slog level. Unknown names map to info.
func (s Settings) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// File manages the configuration file.
type File struct {
	path     string
	settings Settings
}

// DefaultDir returns the directory holding the config file and database.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".cubesim")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return dir, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Open loads the file at path. A missing file yields the defaults.
func Open(path string) (*File, error) {
	f := &File{path: path, settings: Defaults()}

	if err := f.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return f, nil
}

// OpenDefault loads the config file from the default path.
func OpenDefault() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Load reads the file from disk. Keys absent from the file keep their
// current values.
func (f *File) Load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, &f.settings); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", f.path, err)
	}
	return nil
}

// Save writes the file to disk.
func (f *File) Save() error {
	data, err := yaml.Marshal(f.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Path returns the file location.
func (f *File) Path() string {
	return f.path
}

// Settings returns the current settings.
func (f *File) Settings() Settings {
	return f.settings
}

// Keys returns the settable keys in sorted order.
func Keys() []string {
	keys := []string{"db_path", "scheme", "scramble_length", "turn_delay", "log_level"}
	sort.Strings(keys)
	return keys
}

// Set validates and stores a single key, then saves the file.
func (f *File) Set(key, value string) error {
	next := f.settings

	switch key {
	case "db_path":
		next.DBPath = value
	case "scheme":
		sc, err := scheme.Lookup(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		next.Scheme = sc.Name
	case "scramble_length":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: scramble_length must be a non-negative integer", ErrInvalidValue)
		}
		next.ScrambleLength = n
	case "turn_delay":
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: turn_delay must be a duration like 450ms", ErrInvalidValue)
		}
		next.TurnDelay = d.String()
	case "log_level":
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("%w: log_level must be debug, info, warn or error", ErrInvalidValue)
		}
		next.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}

	f.settings = next
	return f.Save()
}
