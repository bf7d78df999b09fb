package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read here and nowhere else.
type Config struct {
	// Environment
	Env string // development, staging, production

	// Logging
	LogLevel  string
	LogFormat string

	// Calculation defaults (overridable per request)
	Ayanamsha   string
	HouseSystem string
	NodeMode    string

	// Ephemeris validity window (years)
	EphemerisMinYear int
	EphemerisMaxYear int

	// Optional YAML calculation preferences file
	ChartConfigPath string
}

// Load reads configuration from environment variables.
// Only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		Ayanamsha:   getEnv("AYANAMSHA", "lahiri"),
		HouseSystem: getEnv("HOUSE_SYSTEM", "whole_sign"),
		NodeMode:    getEnv("NODE_MODE", "mean"),

		EphemerisMinYear: getEnvAsInt("EPHEMERIS_MIN_YEAR", 1800),
		EphemerisMaxYear: getEnvAsInt("EPHEMERIS_MAX_YEAR", 2050),

		ChartConfigPath: getEnv("CHART_CONFIG_PATH", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}
	if c.EphemerisMinYear >= c.EphemerisMaxYear {
		return fmt.Errorf("EPHEMERIS_MIN_YEAR must be before EPHEMERIS_MAX_YEAR")
	}
	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

// getEnv reads an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as int with a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
