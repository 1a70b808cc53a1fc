package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Console defaults
const (
	DefaultAPIURL     = "http://localhost:8000"
	DefaultAPITimeout = 10 * time.Second
	consoleEnvPrefix  = "hrms"
)

// ConsoleConfig holds configuration for the admin console
type ConsoleConfig struct {
	APIURL   string        `yaml:"apiUrl"   envconfig:"API_URL"`
	Timeout  time.Duration `yaml:"timeout"  envconfig:"API_TIMEOUT"`
	LogLevel string        `yaml:"logLevel" envconfig:"LOG_LEVEL"`
}

// DefaultConsolePath returns ~/.hrms/console.yaml
func DefaultConsolePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".hrms", "console.yaml")
}

// LoadConsole reads the optional YAML file at path, then applies HRMS_*
// environment overrides. An empty path falls back to DefaultConsolePath
// when that file exists.
func LoadConsole(path string) (*ConsoleConfig, error) {
	cfg := &ConsoleConfig{
		APIURL:   DefaultAPIURL,
		Timeout:  DefaultAPITimeout,
		LogLevel: "warn",
	}

	if path == "" {
		if userPath := DefaultConsolePath(); userPath != "" {
			if _, err := os.Stat(userPath); err == nil {
				path = userPath
			}
		}
	}

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := envconfig.Process(consoleEnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("api url must not be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("invalid api timeout: %s", cfg.Timeout)
	}
	return cfg, nil
}
