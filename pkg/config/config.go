// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Every key is optional; defaults reproduce the reference deployment

package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"time"

	runconfig "users-audit/core/config"
)

// Config holds all application configuration
type Config struct {
	// Source contains the users endpoint settings
	Source SourceConfig

	// Logging contains logging sink configuration
	Logging LoggingConfig
}

// SourceConfig holds the remote users API configuration
type SourceConfig struct {
	// URL is the users endpoint fetched once per run
	URL string

	// Policy is the error-propagation policy (lenient/strict)
	Policy runconfig.Policy

	// Timeout bounds the single GET request
	Timeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum level written (debug/info/warn/error)
	Level string

	// File is the log file path; empty disables the file sink
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	policy, err := runconfig.ParsePolicy(os.Getenv("USERS_POLICY"))
	if err != nil {
		return nil, err
	}

	logFile := "index.log"
	if value, ok := os.LookupEnv("LOG_FILE"); ok {
		logFile = value
	}

	cfg := &Config{
		Source: SourceConfig{
			URL:     getEnvOrDefault("USERS_API_URL", runconfig.DefaultUsersURL),
			Policy:  policy,
			Timeout: time.Duration(getEnvAsIntOrDefault("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			File:  logFile,
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// RunOptions converts the source settings into options for the users pipeline
func (c *Config) RunOptions() []runconfig.RunOption {
	return []runconfig.RunOption{
		runconfig.WithPolicy(c.Source.Policy),
		runconfig.WithUsersURL(c.Source.URL),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return errors.New("users API URL cannot be empty")
	}

	parsed, err := url.Parse(c.Source.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("users API URL must be an absolute URL")
	}

	if c.Source.Policy != runconfig.PolicyLenient && c.Source.Policy != runconfig.PolicyStrict {
		return errors.New("policy must be 'lenient' or 'strict'")
	}

	if c.Source.Timeout < time.Second {
		return errors.New("HTTP timeout must be at least 1 second")
	}

	return nil
}
