// Package config loads and validates application configuration from
// environment variables via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Store driver names accepted in STORE_DRIVER.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config holds all configuration values for the server.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `mapstructure:"PORT"`

	// StoreDriver selects the persistence backend: "file" or "sqlite".
	StoreDriver string `mapstructure:"STORE_DRIVER"`

	// DataPath is the state file (file driver) or database file (sqlite
	// driver) location.
	DataPath string `mapstructure:"DATA_PATH"`

	// LogLevel controls the minimum log level: debug, info, warn, error.
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	// MaxBodyBytes caps incoming request bodies. Imports carry inline
	// attachment data, so the default is deliberately generous.
	MaxBodyBytes int64 `mapstructure:"MAX_BODY_BYTES"`

	// SuggestAPIURL is the endpoint of the external itinerary-suggestion
	// service. Empty disables the suggestion feature.
	SuggestAPIURL string `mapstructure:"SUGGEST_API_URL"`

	// SuggestAPIKey is the bearer token for the suggestion service.
	SuggestAPIKey string `mapstructure:"SUGGEST_API_KEY"`
}

// Load reads configuration from the environment, applying defaults for
// anything unset. Returns an error for values that cannot be used, such
// as an unknown store driver.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("STORE_DRIVER", DriverFile)
	v.SetDefault("DATA_PATH", "wayfarer.json")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", []string{"http://localhost:5173"})
	v.SetDefault("MAX_BODY_BYTES", int64(10<<20))

	v.BindEnv("PORT")
	v.BindEnv("STORE_DRIVER")
	v.BindEnv("DATA_PATH")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("MAX_BODY_BYTES")
	v.BindEnv("SUGGEST_API_URL")
	v.BindEnv("SUGGEST_API_KEY")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	if cfg.StoreDriver != DriverFile && cfg.StoreDriver != DriverSQLite {
		return Config{}, fmt.Errorf("config.Load: unknown STORE_DRIVER %q (want %q or %q)",
			cfg.StoreDriver, DriverFile, DriverSQLite)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive")
	}

	return cfg, nil
}
