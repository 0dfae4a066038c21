package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/retell-relay/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logAppConfig records the non-secret configuration at startup.
func logAppConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"allowed_origin", cfg.CORS.AllowedOrigin,
		"retell_base_url", cfg.Retell.BaseURL)

	logger.Debug("Retell configuration",
		"api_key_present", cfg.Retell.APIKey != "",
		"timeout_seconds", cfg.Retell.TimeoutSeconds)
}
