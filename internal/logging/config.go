package logging

import (
	"os"
)

// Environment variables read by NewConfigFromEnv
const (
	EnvLevel  = "CORENOTES_LOG_LEVEL"
	EnvFormat = "CORENOTES_LOG_FORMAT"
)

// Config describes how log records are emitted
type Config struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string

	// AddSource adds file:line to every record
	AddSource bool
}

// NewConfigFromEnv builds a Config from the environment, defaulting to info/text
func NewConfigFromEnv() *Config {
	return &Config{
		Level:  getEnvWithDefault(EnvLevel, "info"),
		Format: getEnvWithDefault(EnvFormat, "text"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
