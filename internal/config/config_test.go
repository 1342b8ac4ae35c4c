package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/wordchain/hamilton"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxWords != hamilton.DefaultMaxVertices {
		t.Errorf("MaxWords = %d, want %d", cfg.MaxWords, hamilton.DefaultMaxVertices)
	}
	if cfg.Format != "plain" {
		t.Errorf("Format = %q, want plain", cfg.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "max_words = 12\nformat = \"json\"\nverbose = true\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.MaxWords != 12 || cfg.Format != "json" || !cfg.Verbose {
		t.Errorf("LoadFile() = %+v", cfg)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeFile(t, "verbose = true\n"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.MaxWords != hamilton.DefaultMaxVertices || cfg.Format != "plain" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "max_wrods = 3\n"},
		{"zero max", "max_words = 0\n"},
		{"above hard max", "max_words = 99\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("LoadFile() error = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if _, err := LoadFile(writeFile(t, "max_words = \"many\"\n")); err == nil {
		t.Error("LoadFile() with wrong type should fail")
	}
}

func TestLoad_Resolution(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfig, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") with no files error = %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}

	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := Load(missing); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want fs.ErrNotExist", err)
	}

	path := writeFile(t, "max_words = 7\n")
	t.Setenv(EnvConfig, path)
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load via env error = %v", err)
	}
	if cfg.MaxWords != 7 {
		t.Errorf("MaxWords = %d, want 7", cfg.MaxWords)
	}
}
