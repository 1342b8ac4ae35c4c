// Package config loads wordchain settings from an optional TOML file.
//
// The file is looked up in this order:
//
//  1. the path given with --config (must exist),
//  2. $WORDCHAIN_CONFIG (must exist),
//  3. <user config dir>/wordchain/config.toml (optional).
//
// Command-line flags override anything read from the file.
//
// Example config.toml:
//
//	max_words = 20
//	format    = "json"
//	verbose   = true
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/wordchain/hamilton"
)

// EnvConfig names the environment variable holding a config file path.
const EnvConfig = "WORDCHAIN_CONFIG"

// ErrInvalidConfig is returned when a config file parses but holds bad values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings a config file may provide.
type Config struct {
	// MaxWords is the largest word list the solver accepts.
	MaxWords int `toml:"max_words"`

	// Format is the default output format (plain, json, yaml, pretty).
	Format string `toml:"format"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`

	// Path is the file the settings came from; empty for defaults.
	Path string `toml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MaxWords: hamilton.DefaultMaxVertices,
		Format:   "plain",
	}
}

// DefaultPath returns <user config dir>/wordchain/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, "wordchain", "config.toml"), nil
}

// Load resolves the config file (see package doc) and decodes it over Default().
// An explicit path, or one from $WORDCHAIN_CONFIG, must exist; the default
// location is skipped silently when absent.
func Load(path string) (*Config, error) {
	required := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		required = false
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg, err := LoadFile(path)
	if !required && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile decodes the TOML file at path over Default() and validates it.
// Unknown keys are rejected so typos do not pass silently.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MaxWords < 1 || c.MaxWords > hamilton.HardMaxVertices {
		return fmt.Errorf("%w: max_words must be in [1,%d], got %d", ErrInvalidConfig, hamilton.HardMaxVertices, c.MaxWords)
	}
	return nil
}
