package config

import (
	"os"
	"strconv"
	"time"

	"paydash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Sheets   SheetsConfig
	Server   ServerConfig
	Database DatabaseConfig
	Refresh  RefreshConfig
	Paths    PathConfig
}

// SheetsConfig identifies the spreadsheet and the two worksheets
type SheetsConfig struct {
	SpreadsheetID string
	PaymentGID    string
	ProposalGID   string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	UIPort  string
	APIPort string
	GinMode string
}

// DatabaseConfig holds the optional refresh-log database settings.
// An empty URL disables refresh logging entirely.
type DatabaseConfig struct {
	URL string
}

// RefreshConfig holds auto-refresh settings
type RefreshConfig struct {
	AutoRefresh bool
	Interval    time.Duration
	Timeout     time.Duration
}

// PathConfig holds file system paths
type PathConfig struct {
	// WorkbookFile is an optional local .xlsx/.csv used instead of the
	// network sources (offline operation)
	WorkbookFile string
	ExportDir    string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Sheets: SheetsConfig{
			SpreadsheetID: os.Getenv("SPREADSHEET_ID"),
			PaymentGID:    getEnvOrDefault("PAYMENT_SHEET_GID", "0"),
			ProposalGID:   getEnvOrDefault("PROPOSAL_SHEET_GID", ""),
		},
		Server: ServerConfig{
			UIPort:  getEnvOrDefault("PORT", "8080"),
			APIPort: getEnvOrDefault("API_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Refresh: RefreshConfig{
			AutoRefresh: getEnvBoolOrDefault("AUTO_REFRESH", false),
			Interval:    getEnvDurationOrDefault("REFRESH_INTERVAL", 60*time.Second),
			Timeout:     getEnvDurationOrDefault("FETCH_TIMEOUT", 30*time.Second),
		},
		Paths: PathConfig{
			WorkbookFile: getEnvOrDefault("WORKBOOK_FILE", ""),
			ExportDir:    getEnvOrDefault("EXPORT_DIR", "exports"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	// A local workbook is a complete substitute for the spreadsheet ID;
	// with neither set only the demo dataset remains, which is still a
	// valid (if loudly degraded) configuration.
	if config.Refresh.Interval < 10*time.Second {
		return errors.ConfigInvalid("REFRESH_INTERVAL must be at least 10s")
	}
	if config.Refresh.Timeout <= 0 {
		return errors.ConfigInvalid("FETCH_TIMEOUT must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
