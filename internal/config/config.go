package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the client configuration
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url" env:"SISCTL_API_BASE_URL"`
		Timeout string `yaml:"timeout" env:"SISCTL_API_TIMEOUT"`
	} `yaml:"api"`

	Session struct {
		// Path of the session state file. Empty means the per-user
		// default under the OS config directory.
		Path string `yaml:"path" env:"SISCTL_SESSION_PATH"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" env:"SISCTL_LOG_LEVEL"`
		Format string `yaml:"format" env:"SISCTL_LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A .env file in the working directory is honored first, then the yaml
// file when it exists, then SISCTL_* environment variables on top.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.API.BaseURL = "http://127.0.0.1:8000"
	config.API.Timeout = "15s"

	config.Logging.Level = "warn"
	config.Logging.Format = "text"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.API.BaseURL == "" {
		return fmt.Errorf("api base_url is required")
	}

	parsed, err := url.Parse(config.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api base_url %q is not a valid URL", config.API.BaseURL)
	}

	if _, err := time.ParseDuration(config.API.Timeout); err != nil {
		return fmt.Errorf("invalid api timeout format: %w", err)
	}

	return nil
}

// Timeout returns the request timeout as a duration. Validation has
// already guaranteed the format parses.
func (c *Config) Timeout() time.Duration {
	d, _ := time.ParseDuration(c.API.Timeout)
	return d
}

// SessionPath resolves the session state file location, falling back to
// the per-user config directory.
func (c *Config) SessionPath() (string, error) {
	if c.Session.Path != "" {
		return c.Session.Path, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(base, "sisctl", "session.json"), nil
}
