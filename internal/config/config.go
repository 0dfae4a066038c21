package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"   validate:"required"`
	Retell RetellConfig `mapstructure:"retell" validate:"required"`
	Agents AgentsConfig `mapstructure:"agents"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// CORSConfig contains the cross-origin policy for browser clients.
type CORSConfig struct {
	// AllowedOrigin is the single frontend origin allowed to call the API.
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"required,url"`
}

// RetellConfig contains settings for the Retell AI voice-call provider.
type RetellConfig struct {
	APIKey  string `mapstructure:"api_key"  validate:"required"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// TimeoutSeconds bounds each outbound create-call request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gt=0"`
}

// AgentsConfig contains settings for the agent catalog.
type AgentsConfig struct {
	// CatalogPath points to a YAML catalog. Empty means the built-in catalog.
	CatalogPath string `mapstructure:"catalog_path"`
}
