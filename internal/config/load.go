package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Error definitions for the config package.
var (
	// ErrInvalidConfig is returned when the loaded configuration fails validation.
	ErrInvalidConfig = errors.New("configuration validation failed")

	// ErrMissingAPIKey is returned when no Retell API key is configured.
	// The server must not start without it.
	ErrMissingAPIKey = errors.New("RETELL_API_KEY environment variable is not set")
)

// EnvPrefix is the prefix for all relay environment variables.
const EnvPrefix = "RELAY"

// Default values applied before any file or environment source is read.
const (
	DefaultPort                   = 5001
	DefaultLogLevel               = "info"
	DefaultShutdownTimeoutSeconds = 10
	DefaultAllowedOrigin          = "http://localhost:3000"
	DefaultRetellBaseURL          = "https://api.retellai.com"
	DefaultRetellTimeoutSeconds   = 30
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory is loaded first without overriding
// variables that are already set.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.shutdown_timeout_seconds", DefaultShutdownTimeoutSeconds)
	v.SetDefault("cors.allowed_origin", DefaultAllowedOrigin)
	v.SetDefault("retell.base_url", DefaultRetellBaseURL)
	v.SetDefault("retell.timeout_seconds", DefaultRetellTimeoutSeconds)
	v.SetDefault("agents.catalog_path", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The provider key keeps its conventional unprefixed name.
	if err := v.BindEnv("retell.api_key", EnvPrefix+"_RETELL_API_KEY", "RETELL_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind retell api key: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if strings.TrimSpace(cfg.Retell.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &cfg, nil
}
