package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat fitlog configuration
type Config struct {
	ListenAddr string `json:"listen_addr,omitempty"` // HTTP listen address, e.g. ":3000"
	DBPath     string `json:"db_path,omitempty"`     // SQLite database file
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		ListenAddr: ":3000",
	}
}

// Load reads .fitlog/config.json from the user's home directory, falling
// back to defaults when the file is absent. Environment variables
// FITLOG_ADDR and FITLOG_DB override file values.
func Load() (*Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		if fileCfg, err := LoadFrom(filepath.Join(home, ".fitlog", "config.json")); err == nil {
			cfg = fileCfg
		}
	}

	if addr := os.Getenv("FITLOG_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if path := os.Getenv("FITLOG_DB"); path != "" {
		cfg.DBPath = path
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = Default().ListenAddr
	}

	return cfg, nil
}

// LoadFrom reads a config file from an explicit path.
// Returns error if no config found - caller should handle accordingly.
func LoadFrom(path string) (*Config, error) {
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

// Save writes the config to .fitlog/config.json under the given directory.
func Save(dir string, cfg *Config) error {
	fitlogDir := filepath.Join(dir, ".fitlog")
	if err := os.MkdirAll(fitlogDir, 0755); err != nil {
		return fmt.Errorf("failed to create .fitlog dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(fitlogDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
