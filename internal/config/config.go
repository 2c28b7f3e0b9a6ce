package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "selfbank.db"
	DefaultCacheDirName   = "cache"
)

type Config struct {
	DBPath   string `toml:"db_path"`
	CacheDir string `toml:"cache_dir"`
	// User is the active scope identifier: an externally issued user id,
	// the offline sentinel, or empty when no profile has been chosen.
	User string `toml:"user"`
}

// DefaultDir returns the per-user config directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(base, "selfbank"), nil
}

func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFileName), nil
}

// LoadOrCreate reads the config at path, writing the defaults first if the
// file does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg, err := defaultConfig(filepath.Dir(path))
	if err != nil {
		return Config{}, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DBPath == "" || cfg.CacheDir == "" {
		fallback, err := defaultConfig(filepath.Dir(path))
		if err != nil {
			return cfg, err
		}
		if cfg.DBPath == "" {
			cfg.DBPath = fallback.DBPath
		}
		if cfg.CacheDir == "" {
			cfg.CacheDir = fallback.CacheDir
		}
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func defaultConfig(dir string) (Config, error) {
	return Config{
		DBPath:   filepath.Join(dir, DefaultDBName),
		CacheDir: filepath.Join(dir, DefaultCacheDirName),
	}, nil
}
