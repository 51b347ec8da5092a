package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configSubdir   = "config"
	configFileName = "ibcevent_config.json"
)

//go:embed default_config.json
var defaultConfigJSON []byte

func validateConfig(cfg *Config) error {
	if cfg.LogLevel < 0 || cfg.LogLevel > 5 {
		return fmt.Errorf("log_level %d out of range [0, 5]", cfg.LogLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return fmt.Errorf("unknown log_format %q", cfg.LogFormat)
	}

	if cfg.ChainID == "" {
		return fmt.Errorf("chain_id must be set")
	}

	return nil
}

// Validate checks cfg and fills in defaults for unset optional fields.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}

// Save writes the given config to <basePath>/config/ibcevent_config.json.
func Save(cfg *Config, basePath string) error {
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configDir := filepath.Join(basePath, configSubdir)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, configFileName)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads, validates and returns the config from <basePath>/config/ibcevent_config.json.
func Load(basePath string) (Config, error) {
	configFile := filepath.Join(basePath, configSubdir, configFileName)
	data, err := os.ReadFile(filepath.Clean(configFile))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDefaultConfig loads the default configuration from embedded JSON
func LoadDefaultConfig() (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(defaultConfigJSON, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %w", err)
	}
	return &cfg, nil
}
