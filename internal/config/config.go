package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Storage struct {
		// Path is the SQLite file backing the collection store.
		Path string `yaml:"path" env:"LRNBOX_STORAGE_PATH"`
	} `yaml:"storage"`

	API struct {
		// Simulated request latency bounds; every service call sleeps a
		// uniform duration in [LatencyMin, LatencyMax].
		LatencyMin string `yaml:"latency_min" env:"LRNBOX_LATENCY_MIN"`
		LatencyMax string `yaml:"latency_max" env:"LRNBOX_LATENCY_MAX"`

		// Point amounts and fees.
		LoginBonus         int `yaml:"login_bonus" env:"LRNBOX_LOGIN_BONUS"`
		SignupBonus        int `yaml:"signup_bonus" env:"LRNBOX_SIGNUP_BONUS"`
		PlatformFeePercent int `yaml:"platform_fee_percent" env:"LRNBOX_PLATFORM_FEE_PERCENT"`
	} `yaml:"api"`

	Logging struct {
		Level  string `yaml:"level" env:"LRNBOX_LOG_LEVEL"`
		Format string `yaml:"format" env:"LRNBOX_LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env cover the common case.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
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
	config.Storage.Path = "data/lrnbox.db"

	config.API.LatencyMin = "200ms"
	config.API.LatencyMax = "1s"
	config.API.LoginBonus = 50
	config.API.SignupBonus = 100
	config.API.PlatformFeePercent = 10

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}

	min, err := time.ParseDuration(config.API.LatencyMin)
	if err != nil {
		return fmt.Errorf("invalid latency_min format: %w", err)
	}
	max, err := time.ParseDuration(config.API.LatencyMax)
	if err != nil {
		return fmt.Errorf("invalid latency_max format: %w", err)
	}
	if max < min {
		return fmt.Errorf("latency_max must not be below latency_min")
	}

	if config.API.PlatformFeePercent < 0 || config.API.PlatformFeePercent > 100 {
		return fmt.Errorf("platform_fee_percent must be between 0 and 100")
	}

	return nil
}

// LatencyBounds returns the parsed simulated-latency window.
func (c *Config) LatencyBounds() (time.Duration, time.Duration) {
	min, _ := time.ParseDuration(c.API.LatencyMin)
	max, _ := time.ParseDuration(c.API.LatencyMax)
	return min, max
}
