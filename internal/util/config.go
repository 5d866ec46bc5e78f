// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 pdakit Authors

package util

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds pdakit CLI configuration settings.
type Config struct {
	// Programs maps extra program names to base58 addresses, merged over
	// the built-in registry.
	Programs map[string]string `yaml:"programs"`

	// KeypairDir is where keygen writes keypair files (relative paths are
	// resolved against the data directory).
	KeypairDir string `yaml:"keypair_dir"`
}

// DefaultConfig returns the default configuration for runtime use.
func DefaultConfig() Config {
	return Config{
		Programs:   map[string]string{},
		KeypairDir: "keys",
	}
}

// DefaultDataDir is the default data directory for pdakit.
const DefaultDataDir = "~/.pdakit"

// GetDataDir returns the pdakit data directory.
// Resolution order: -d flag > PDAKIT_DATA env var > ~/.pdakit
func GetDataDir(flagValue string) string {
	if flagValue != "" {
		return expandHome(flagValue)
	}
	if env := os.Getenv("PDAKIT_DATA"); env != "" {
		return expandHome(env)
	}
	return expandHome(DefaultDataDir)
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// LoadConfig reads config.yaml from the data directory. A missing file is
// not an error; defaults are returned.
func LoadConfig(dataDir string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Programs == nil {
		cfg.Programs = map[string]string{}
	}
	if cfg.KeypairDir == "" {
		cfg.KeypairDir = DefaultConfig().KeypairDir
	}
	return cfg, nil
}

// SaveConfig writes config.yaml to the data directory, creating it if needed.
func SaveConfig(dataDir string, cfg Config) error {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "config.yaml"), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
