package config

import (
	"os"

	"github.com/spf13/cast"
)

// Config captures the environment-driven settings for one machine process
type Config struct {
	// CatalogPath points at a yaml seed catalog; empty means the built-in
	// demo catalog.
	CatalogPath string
	// LogMode selects the zap configuration, "development" or "production".
	LogMode string
	// LogFileEnable turns on rotated file logging in addition to stderr.
	LogFileEnable bool
	// LogFile is the rotated log destination when file logging is enabled.
	LogFile string
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		CatalogPath:   GetEnv("VENDING_CATALOG", ""),
		LogMode:       GetEnv("VENDING_LOG_MODE", "production"),
		LogFileEnable: GetEnvBool("VENDING_LOG_FILE_ENABLE", false),
		LogFile:       GetEnv("VENDING_LOG_FILE", "vending.log"),
	}
}

// GetEnv returns the value of an environment variable or a fallback
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvBool reads a boolean environment variable, accepting the usual
// spellings ("1", "true", "T"); unset or unparsable values fall back.
func GetEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return fallback
	}
	return b
}
