// Package config loads and saves the YAML-backed run defaults that seed
// the CLI flags when a flag is not given on the command line.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults for one run. Every Run field has a matching
// CLI flag (spec section 6); an explicitly-set flag overrides the config
// value. The General fields have no flag.
type Config struct {
	Run struct {
		Dictionary    string  `yaml:"dictionary"`
		KeyLimit      int     `yaml:"keyLimit"`
		Threshold     float64 `yaml:"threshold"`
		MaxHits       int     `yaml:"maxHits"`
		Workers       int     `yaml:"workers"`
		ChunkSize     int     `yaml:"chunkSize"`
		ProgressEvery int     `yaml:"progressEvery"`
		BifidAlphabet string  `yaml:"bifidAlphabet"`
	} `yaml:"run"`

	General struct {
		LogLevel string `yaml:"logLevel"`
		Debug    bool   `yaml:"debug"`
	} `yaml:"general"`
}

// LoadConfig loads the configuration from configPath. If configPath is
// empty, it defaults to ~/.cipherpipe/config.yaml. A missing file is not
// an error: a default config is created and persisted there.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configPath = filepath.Join(homeDir, ".cipherpipe", "config.yaml")
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := createDefaultConfig()
		if err := SaveConfig(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes cfg to configPath as YAML.
func SaveConfig(configPath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// createDefaultConfig mirrors the CLI flag defaults from spec section 6,
// so a freshly generated config file documents them in one place.
func createDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Run.Dictionary = "dictionary.txt"
	cfg.Run.KeyLimit = 0
	cfg.Run.Threshold = 0.80
	cfg.Run.MaxHits = 50
	cfg.Run.Workers = 1
	cfg.Run.ChunkSize = 10000
	cfg.Run.ProgressEvery = 50
	cfg.Run.BifidAlphabet = "standard"

	cfg.General.LogLevel = "info"
	cfg.General.Debug = false
	return cfg
}
