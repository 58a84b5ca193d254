package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv
const (
	EnvSource   = "SITE_CONFIG"
	EnvPort     = "SITE_PORT"
	EnvOutDir   = "SITE_OUT_DIR"
	EnvTemplate = "SITE_TEMPLATE"
)

// FromEnv creates a configuration from environment variables. Unset variables leave
// fields empty so the result can be merged under file or flag values.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Source:   os.Getenv(EnvSource),
		OutDir:   os.Getenv(EnvOutDir),
		Template: os.Getenv(EnvTemplate),
	}

	if portStr := os.Getenv(EnvPort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvPort, err)
		}
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("%s must be between 1 and 65535, got: %d", EnvPort, port)
		}
		cfg.Port = port
	}

	return cfg, nil
}
