// Package config loads and saves the billcal configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file inside the billcal home directory.
	FileName = "config.yaml"
	// TokenFileName is the stored bearer token inside the billcal home.
	TokenFileName = "token"

	// DefaultBaseURL is used until `billcal init` points the client at a
	// real server.
	DefaultBaseURL = "http://localhost:4000/api"

	envHome    = "BILLCAL_HOME"
	envBaseURL = "BILLCAL_API_URL"
)

// Config is the top-level config.yaml.
type Config struct {
	API APIConfig `yaml:"api"`
}

// APIConfig points the client at a Bill Calendar server.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// Default returns a Config for the given base URL, falling back to
// DefaultBaseURL when empty.
func Default(baseURL string) *Config {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Config{API: APIConfig{BaseURL: baseURL}}
}

// HomeDir resolves the billcal home directory: the --home flag value if set,
// else $BILLCAL_HOME, else ~/.config/billcal.
func HomeDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(envHome); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "billcal"), nil
}

// Load reads config.yaml from the billcal home. A missing file yields the
// defaults so that the tool works before `billcal init` has run.
// $BILLCAL_API_URL overrides the configured base URL either way.
func Load(home string) (*Config, error) {
	cfg := Default("")

	data, err := os.ReadFile(filepath.Join(home, FileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// keep defaults
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.API.BaseURL = v
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	return cfg, nil
}

// Save writes config.yaml into the billcal home, creating it as needed.
func Save(home string, cfg *Config) error {
	if err := os.MkdirAll(home, 0o755); err != nil {
		return fmt.Errorf("creating billcal home: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(home, FileName), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
