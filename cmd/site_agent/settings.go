package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-customizer/internal/config"
)

// loadSettings resolves the effective configuration. Precedence is flags, then the
// --config file, then SITE_* environment variables, then package defaults.
func loadSettings(cmd *cobra.Command, configPath string, overrides func(cfg *config.Config)) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	overrides(&cfg)

	env, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}
	cfg = cfg.MergeWithDefaults(*env)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Verbose && configPath != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Loaded config from: %s\n", configPath)
	}
	return cfg, nil
}
