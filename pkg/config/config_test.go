package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Ayanamsha != "lahiri" {
		t.Errorf("Expected Ayanamsha to be lahiri, got %s", cfg.Ayanamsha)
	}

	if cfg.HouseSystem != "whole_sign" {
		t.Errorf("Expected HouseSystem to be whole_sign, got %s", cfg.HouseSystem)
	}

	if cfg.NodeMode != "mean" {
		t.Errorf("Expected NodeMode to be mean, got %s", cfg.NodeMode)
	}

	if cfg.EphemerisMinYear != 1800 || cfg.EphemerisMaxYear != 2050 {
		t.Errorf("Expected ephemeris window 1800..2050, got %d..%d",
			cfg.EphemerisMinYear, cfg.EphemerisMaxYear)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("ENV", "production")
	os.Setenv("AYANAMSHA", "raman")
	os.Setenv("HOUSE_SYSTEM", "placidus")
	os.Setenv("EPHEMERIS_MIN_YEAR", "1900")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("CHART_CONFIG_PATH", "/etc/jyotish/chart.yaml")

	defer func() {
		os.Unsetenv("ENV")
		os.Unsetenv("AYANAMSHA")
		os.Unsetenv("HOUSE_SYSTEM")
		os.Unsetenv("EPHEMERIS_MIN_YEAR")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("CHART_CONFIG_PATH")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Ayanamsha != "raman" {
		t.Errorf("Expected Ayanamsha to be raman, got %s", cfg.Ayanamsha)
	}

	if cfg.HouseSystem != "placidus" {
		t.Errorf("Expected HouseSystem to be placidus, got %s", cfg.HouseSystem)
	}

	if cfg.EphemerisMinYear != 1900 {
		t.Errorf("Expected EphemerisMinYear to be 1900, got %d", cfg.EphemerisMinYear)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}

	if cfg.ChartConfigPath != "/etc/jyotish/chart.yaml" {
		t.Errorf("Expected ChartConfigPath to be set, got %s", cfg.ChartConfigPath)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "invalid")
	defer os.Unsetenv("ENV")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateEphemerisWindow(t *testing.T) {
	os.Setenv("EPHEMERIS_MIN_YEAR", "2100")
	defer os.Unsetenv("EPHEMERIS_MIN_YEAR")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when min year is past max year, got nil")
	}
}

func TestGetEnvAsInt(t *testing.T) {
	os.Setenv("TEST_INT", "100")
	defer os.Unsetenv("TEST_INT")

	value := getEnvAsInt("TEST_INT", 50)
	if value != 100 {
		t.Errorf("Expected value to be 100, got %d", value)
	}
}

func TestGetEnvAsIntInvalid(t *testing.T) {
	os.Setenv("TEST_INT", "not-a-number")
	defer os.Unsetenv("TEST_INT")

	value := getEnvAsInt("TEST_INT", 50)
	if value != 50 {
		t.Errorf("Expected default value 50, got %d", value)
	}
}
