// Package config handles the on-disk configuration in the .cadet dot-dir.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat cadet-tracker configuration
type Config struct {
	Version          string `json:"version"`
	UnitName         string `json:"unit_name,omitempty"`          // e.g. squadron designation
	DatabasePath     string `json:"database_path,omitempty"`      // overrides ~/.cadet/cadet.db
	DefaultInspector int    `json:"default_inspector,omitempty"`  // CAP ID pre-filled on inspections
	ChecklistPath    string `json:"checklist_path,omitempty"`     // YAML catalog override
}

// LoadConfig reads .cadet/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".cadet", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cadetDir := filepath.Join(dir, ".cadet")
	if err := os.MkdirAll(cadetDir, 0755); err != nil {
		return fmt.Errorf("failed to create .cadet dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cadetDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultConfigDir returns the directory searched for .cadet/config.json.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return home, nil
}
