package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matthewsawatzky/themepref/internal/theme"
)

func TestLoadOrDefaultMissingFile(t *testing.T) {
	dataDir := t.TempDir()
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.json"), dataDir)
	if err != nil {
		t.Fatalf("LoadOrDefault() unexpected error: %v", err)
	}
	want := Default(dataDir)
	if cfg != want {
		t.Fatalf("LoadOrDefault() = %+v, want %+v", cfg, want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := Default(t.TempDir())
	cfg.Storage = " Keyring "
	cfg.DefaultPreference = "DARK"
	cfg.LogLevel = "debug"
	cfg.TerminalBackground = true
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	got, err := LoadOrDefault(path, "")
	if err != nil {
		t.Fatalf("LoadOrDefault() unexpected error: %v", err)
	}
	if got.Storage != "keyring" || got.DefaultPreference != "dark" || !got.TerminalBackground {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestDataDirOverrideWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default("/from/file")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	got, err := LoadOrDefault(path, "/from/flag")
	if err != nil {
		t.Fatalf("LoadOrDefault() unexpected error: %v", err)
	}
	if got.DataDir != "/from/flag" {
		t.Fatalf("DataDir = %q, want /from/flag", got.DataDir)
	}
}

func TestLoadOrDefaultMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadOrDefault(path, ""); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestValidate(t *testing.T) {
	base := Default("/data")
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "memory without data dir", mutate: func(c *Config) { c.Storage = "memory"; c.DataDir = "" }},
		{name: "sqlite without data dir", mutate: func(c *Config) { c.DataDir = " " }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage = "localstorage" }, wantErr: true},
		{name: "empty key", mutate: func(c *Config) { c.StorageKey = "" }, wantErr: true},
		{name: "bad default", mutate: func(c *Config) { c.DefaultPreference = "auto" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWrapsPreferenceError(t *testing.T) {
	cfg := Default("/data")
	cfg.DefaultPreference = "sepia"
	if err := Validate(cfg); !errors.Is(err, theme.ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference, got %v", err)
	}
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Setenv("THEMEPREF_CONFIG", "/tmp/custom.json")
	p, err := ConfigPathFromEnv()
	if err != nil {
		t.Fatalf("ConfigPathFromEnv() unexpected error: %v", err)
	}
	if p != "/tmp/custom.json" {
		t.Fatalf("ConfigPathFromEnv() = %q", p)
	}
}
