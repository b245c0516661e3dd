// Package config provides centralized configuration management for the Calculator MCP Server.
package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// Config holds the complete configuration for the application
type Config struct {
	// Server identity reported during the MCP handshake
	Server struct {
		Name    string
		Version string
	}

	// Transport selects how the server is exposed: "stdio" or "http"
	Transport string

	// HTTPAddr is the listen address for the streamable HTTP transport
	HTTPAddr string

	// LogLevel controls the stderr logger (debug, info, warn, error)
	LogLevel string

	// Limits bound the only caller-controlled unbounded inputs
	Limits struct {
		// MaxValues caps the length of the proportion values list
		MaxValues int

		// MaxBatch caps the number of calculations in one batch request
		MaxBatch int
	}
}

var (
	once   sync.Once
	config *Config
)

// Load initializes and loads the configuration from environment variables.
// All settings are optional; defaults produce a stdio server matching the
// published tool contract.
func Load() *Config {
	once.Do(func() {
		v := viper.New()

		v.SetEnvPrefix("CALC")
		v.AutomaticEnv()

		// Set default values
		v.SetDefault("server_name", "Calculator Server")
		v.SetDefault("server_version", "1.0.0")
		v.SetDefault("transport", "stdio")
		v.SetDefault("http_addr", ":8000")
		v.SetDefault("log_level", "info")
		v.SetDefault("max_values", 10000)
		v.SetDefault("max_batch", 1000)

		config = &Config{}
		config.Server.Name = v.GetString("server_name")
		config.Server.Version = v.GetString("server_version")
		config.Transport = v.GetString("transport")
		config.HTTPAddr = v.GetString("http_addr")
		config.LogLevel = v.GetString("log_level")
		config.Limits.MaxValues = v.GetInt("max_values")
		config.Limits.MaxBatch = v.GetInt("max_batch")
	})

	return config
}

// Validate checks if the loaded configuration values make sense together
func (c *Config) Validate() error {
	var errors []string

	if c.Transport != "stdio" && c.Transport != "http" {
		errors = append(errors, fmt.Sprintf("unknown transport %q (expected stdio or http)", c.Transport))
	}

	if c.Transport == "http" && c.HTTPAddr == "" {
		errors = append(errors, "http transport selected but no listen address configured")
	}

	if c.Limits.MaxValues <= 0 {
		errors = append(errors, "max_values must be positive")
	}

	if c.Limits.MaxBatch <= 0 {
		errors = append(errors, "max_batch must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}
