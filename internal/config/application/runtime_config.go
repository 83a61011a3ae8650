package application

import (
	"os"
	"strconv"
	"strings"
)

// RuntimeConfig holds all runtime configuration from CLI flags, environment variables, and .env file
type RuntimeConfig struct {
	// API Configuration
	APIPort string

	// Services config file path
	ServicesPath string

	// Development Mode
	DevMode bool

	// Logging Configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadRuntimeConfig loads configuration with precedence: CLI flags > env vars > .env file > defaults
func LoadRuntimeConfig(port, servicesPath, logLevel, logFormat, logOutput string, devMode bool) *RuntimeConfig {
	cfg := &RuntimeConfig{
		APIPort:      getValue(port, "PIDASH_API_PORT", "5555"),
		ServicesPath: getValue(servicesPath, "PIDASH_SERVICES_CONFIG", "config/services.json"),
		DevMode:      devMode || getBoolEnv("PIDASH_DEV_MODE", false),
		LogLevel:     getValue(logLevel, "PIDASH_LOG_LEVEL", "INFO"),
		LogFormat:    getValue(logFormat, "PIDASH_LOG_FORMAT", "text"),
		LogOutput:    getValue(logOutput, "PIDASH_LOG_OUTPUT", "stdout"),
	}

	return cfg
}

// getValue returns the first non-empty value from CLI flag, env var, or default
func getValue(cliValue, envKey, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable
func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "true" || value == "1" || value == "yes" {
		return true
	}
	if value == "false" || value == "0" || value == "no" {
		return false
	}
	return defaultValue
}

// Validate checks that the configuration is usable
func (c *RuntimeConfig) Validate() error {
	port, err := strconv.Atoi(c.APIPort)
	if err != nil || port < 1 || port > 65535 {
		return &ConfigError{Field: "port", Message: "API port must be a number between 1 and 65535 (set PIDASH_API_PORT or use --port flag)"}
	}
	if c.ServicesPath == "" {
		return &ConfigError{Field: "services-config", Message: "Services config file path is required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
