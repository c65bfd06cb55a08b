package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"    validate:"required"`
	Reviews ReviewsConfig `mapstructure:"reviews"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// AuthConfig contains credential handling settings.
type AuthConfig struct {
	// BcryptCost is the work factor used when hashing user passwords.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,min=4,max=31"`
}

// ReviewsConfig contains review business rules.
type ReviewsConfig struct {
	// OnePerUserPlace rejects a second review of the same place by the same user.
	OnePerUserPlace bool `mapstructure:"one_per_user_place"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Path        string `mapstructure:"path"         validate:"required,startswith=/"`
	ServiceName string `mapstructure:"service_name" validate:"required"`
}
