package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Remote entity store configuration
	RemoteAPIBaseURL    string `mapstructure:"REMOTE_API_BASE_URL"`
	RemoteAPITimeoutSec int    `mapstructure:"REMOTE_API_TIMEOUT_SEC"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7009")
	viper.SetDefault("LOG_LEVEL", "info")

	// Remote entity store defaults
	viper.SetDefault("REMOTE_API_BASE_URL", "http://localhost:4000/api")
	viper.SetDefault("REMOTE_API_TIMEOUT_SEC", 30)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func validate(config *Config) error {
	if config.RemoteAPIBaseURL == "" {
		return fmt.Errorf("REMOTE_API_BASE_URL is required")
	}

	if config.RemoteAPITimeoutSec <= 0 {
		return fmt.Errorf("REMOTE_API_TIMEOUT_SEC must be positive")
	}

	return nil
}

// RemoteAPITimeout returns the remote store timeout as a duration
func (c *Config) RemoteAPITimeout() time.Duration {
	return time.Duration(c.RemoteAPITimeoutSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
