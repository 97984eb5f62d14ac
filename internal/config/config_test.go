package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "cipherpipe-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	configPath := filepath.Join(tempDir, "config.yaml")
	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Run.Dictionary != "dictionary.txt" {
		t.Errorf("Dictionary = %q, want dictionary.txt", cfg.Run.Dictionary)
	}
	if cfg.Run.Threshold != 0.80 {
		t.Errorf("Threshold = %v, want 0.80", cfg.Run.Threshold)
	}
	if cfg.Run.MaxHits != 50 {
		t.Errorf("MaxHits = %d, want 50", cfg.Run.MaxHits)
	}
	if cfg.Run.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Run.Workers)
	}
	if cfg.Run.ChunkSize != 10000 {
		t.Errorf("ChunkSize = %d, want 10000", cfg.Run.ChunkSize)
	}
	if cfg.Run.ProgressEvery != 50 {
		t.Errorf("ProgressEvery = %d, want 50", cfg.Run.ProgressEvery)
	}
	if cfg.Run.BifidAlphabet != "standard" {
		t.Errorf("BifidAlphabet = %q, want standard", cfg.Run.BifidAlphabet)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.General.LogLevel)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not persisted on first load")
	}
}

func TestSaveConfigRoundTrips(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "cipherpipe-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	cfg := createDefaultConfig()
	cfg.Run.Threshold = 1.2
	cfg.Run.Workers = 8
	configPath := filepath.Join(tempDir, "config.yaml")

	if err := SaveConfig(configPath, cfg); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}
	if loaded.Run.Threshold != 1.2 {
		t.Errorf("Threshold round-trip mismatch: got %v, want 1.2", loaded.Run.Threshold)
	}
	if loaded.Run.Workers != 8 {
		t.Errorf("Workers round-trip mismatch: got %d, want 8", loaded.Run.Workers)
	}
}

func TestLoadConfigReusesExistingFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "cipherpipe-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)
	configPath := filepath.Join(tempDir, "config.yaml")

	first, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("first LoadConfig: %v", err)
	}
	first.Run.MaxHits = 999
	if err := SaveConfig(configPath, first); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	second, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("second LoadConfig: %v", err)
	}
	if second.Run.MaxHits != 999 {
		t.Errorf("MaxHits = %d, want 999 (existing file should not be overwritten with defaults)", second.Run.MaxHits)
	}
}
