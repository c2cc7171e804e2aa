// Package config loads storefront configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`

	// DataDir is where the persisted cart slot lives.
	DataDir string `yaml:"data_dir"`
}

// Load builds the configuration: defaults, then the YAML file named by
// STOREFRONT_CONFIG (if any), then environment overrides.
func Load() Config {
	cfg := Config{
		AppEnv:   "dev",
		LogLevel: "info",
		DataDir:  defaultDataDir(),
	}

	if path := os.Getenv("STOREFRONT_CONFIG"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			// A broken config file falls back to defaults rather than
			// aborting a demo.
			_ = yaml.Unmarshal(data, &cfg)
		}
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.DataDir = getEnv("STOREFRONT_DATA_DIR", cfg.DataDir)

	return cfg
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront"
	}
	return filepath.Join(home, ".storefront")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
