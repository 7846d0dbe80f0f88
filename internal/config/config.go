package config

import (
	"os"
	"strconv"

	"sigtab/domain/sig"
	"sigtab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data    DataConfig
	Stats   StatsConfig
	Logging LoggingConfig
}

// DataConfig holds input file settings
type DataConfig struct {
	TableFile string
}

// StatsConfig holds significance testing settings
type StatsConfig struct {
	ConfidenceLevel sig.ConfidenceLevel
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	statsConfig, err := loadStatsConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stats configuration")
	}

	return &Config{
		Data: DataConfig{
			TableFile: getEnvOrDefault("TABLE_FILE", ""),
		},
		Stats: *statsConfig,
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}, nil
}

func loadStatsConfig() (*StatsConfig, error) {
	pct := getEnvIntOrDefault("CONFIDENCE_LEVEL", 95)
	level, err := sig.ParseConfidenceLevel(pct)
	if err != nil {
		return nil, errors.ConfigInvalid("CONFIDENCE_LEVEL must be one of 95, 90, 80")
	}
	return &StatsConfig{ConfidenceLevel: level}, nil
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
