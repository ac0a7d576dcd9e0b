package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/matthewsawatzky/themepref/internal/storage"
	"github.com/matthewsawatzky/themepref/internal/theme"
)

const appName = "themepref"

type Config struct {
	DataDir            string `json:"data_dir"`
	Storage            string `json:"storage"`
	StorageKey         string `json:"storage_key"`
	DefaultPreference  string `json:"default_preference"`
	LogLevel           string `json:"log_level"`
	PaletteFile        string `json:"palette_file"`
	TerminalBackground bool   `json:"terminal_background"`
}

func DefaultPaths() (configPath, dataDir string, err error) {
	cfgRoot, err := os.UserConfigDir()
	if err != nil {
		return "", "", fmt.Errorf("resolve user config dir: %w", err)
	}
	var dataRoot string
	switch runtime.GOOS {
	case "windows", "darwin":
		dataRoot = cfgRoot
	default:
		if p := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); p != "" {
			dataRoot = p
		} else if p, derr := os.UserHomeDir(); derr == nil {
			dataRoot = filepath.Join(p, ".local", "share")
		} else {
			dataRoot = cfgRoot
		}
	}
	configPath = filepath.Join(cfgRoot, appName, "config.json")
	dataDir = filepath.Join(dataRoot, appName)
	return configPath, dataDir, nil
}

func Default(dataDir string) Config {
	return Config{
		DataDir:            dataDir,
		Storage:            storage.BackendSQLite,
		StorageKey:         "theme",
		DefaultPreference:  string(theme.PreferenceSystem),
		LogLevel:           "info",
		PaletteFile:        "",
		TerminalBackground: false,
	}
}

func normalize(cfg Config) Config {
	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	cfg.StorageKey = strings.TrimSpace(cfg.StorageKey)
	cfg.DefaultPreference = strings.ToLower(strings.TrimSpace(cfg.DefaultPreference))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return cfg
}

func LoadOrDefault(configPath, dataDirOverride string) (Config, error) {
	_, defaultData, err := DefaultPaths()
	if err != nil {
		return Config{}, err
	}
	cfg := Default(defaultData)
	if dataDirOverride != "" {
		cfg.DataDir = dataDirOverride
	}

	b, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if dataDirOverride != "" {
		cfg.DataDir = dataDirOverride
	}
	cfg = normalize(cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Save(configPath string, cfg Config) error {
	cfg = normalize(cfg)
	if err := Validate(cfg); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	buf, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(configPath, buf, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func Validate(cfg Config) error {
	switch cfg.Storage {
	case storage.BackendSQLite, storage.BackendKeyring, storage.BackendMemory:
	default:
		return fmt.Errorf("invalid storage backend %q", cfg.Storage)
	}
	if cfg.Storage == storage.BackendSQLite && strings.TrimSpace(cfg.DataDir) == "" {
		return fmt.Errorf("sqlite storage requires a data dir")
	}
	if cfg.StorageKey == "" {
		return fmt.Errorf("storage key cannot be empty")
	}
	if _, err := theme.ParsePreference(cfg.DefaultPreference); err != nil {
		return fmt.Errorf("invalid default preference: %w", err)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return nil
}

func ConfigPathFromEnv() (string, error) {
	if p := strings.TrimSpace(os.Getenv("THEMEPREF_CONFIG")); p != "" {
		return p, nil
	}
	cfgPath, _, err := DefaultPaths()
	return cfgPath, err
}
