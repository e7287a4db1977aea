package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Quality QualityConfig
	Export  ExportConfig
}

// QualityConfig holds the quality-gate thresholds exposed to operators.
type QualityConfig struct {
	MinScore       int
	MinLines       int
	MinChars       int
	RequireAmount  bool
	RequireSignals bool
}

// ExportConfig holds batch-export configuration.
type ExportConfig struct {
	SheetName string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Quality: QualityConfig{
			MinScore:       getEnvAsInt("QUALITY_MIN_SCORE", 50),
			MinLines:       getEnvAsInt("QUALITY_MIN_LINES", 6),
			MinChars:       getEnvAsInt("QUALITY_MIN_CHARS", 80),
			RequireAmount:  getEnvAsBool("QUALITY_REQUIRE_AMOUNT", true),
			RequireSignals: getEnvAsBool("QUALITY_REQUIRE_SIGNALS", true),
		},
		Export: ExportConfig{
			SheetName: getEnv("EXPORT_SHEET_NAME", "Receipts"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Quality.MinScore < 0 || c.Quality.MinScore > 100 {
		return NewAppError("CONFIG_ERROR", "QUALITY_MIN_SCORE must be 0-100", ErrInvalidInput)
	}
	if c.Quality.MinLines < 1 {
		return NewAppError("CONFIG_ERROR", "QUALITY_MIN_LINES must be positive", ErrInvalidInput)
	}
	return nil
}
