// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.http_port", "80")
	v.SetDefault("server.https_port", "443")
	v.SetDefault("server.tls_enabled", false)
	v.SetDefault("server.tls_domain", "")
	v.SetDefault("server.behind_proxy", false)

	// TLS defaults
	v.SetDefault("tls.email", "")
	v.SetDefault("tls.cert_dir", "/var/lib/platefront/certs")
	v.SetDefault("tls.staging", false)

	// Storage defaults
	v.SetDefault("storage.data_dir", "/var/lib/platefront")
	v.SetDefault("storage.uploads_dir", "/var/lib/platefront/uploads")

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "/var/lib/platefront/platefront.db")

	// Generator hand-off defaults
	v.SetDefault("generator.endpoint", "http://localhost:9000/api/generate")
	v.SetDefault("generator.timeout", "30s")

	// Draft token defaults
	v.SetDefault("drafts.token_secret", "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR")
	v.SetDefault("drafts.token_expiry_hours", 72)
	v.SetDefault("drafts.cleanup_interval", "24h")

	// Logo extraction defaults
	v.SetDefault("extraction.quality", 10)
	v.SetDefault("extraction.alpha_threshold", 128)
	v.SetDefault("extraction.min_contrast", 1.5)

	// Upload rate limit defaults
	v.SetDefault("uploads.rate_limit", 10)
	v.SetDefault("uploads.rate_interval", "1m")
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetFloat returns a config value as float64
func GetFloat(key string) float64 {
	if v == nil {
		return 0
	}
	return v.GetFloat64(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
