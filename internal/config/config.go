// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/site-customizer/internal/fetch"
)

// Defaults applied by MergeWithDefaults when nothing else sets a value
const (
	DefaultSource     = "site.json"
	DefaultOutDir     = "dist"
	DefaultPort       = 8080
	DefaultDebounceMS = 300
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Source   string `json:"source,omitempty"`   // Path or http(s) URL of the site configuration document (JSON or YAML)
	Template string `json:"template,omitempty"` // Path to a page template overriding the embedded one
	OutDir   string `json:"out_dir,omitempty"`  // Directory build artifacts are written to

	// Preview server
	Host       string `json:"host,omitempty" validate:"omitempty,hostname|ip"`
	Port       int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	DebounceMS int    `json:"debounce_ms,omitempty" validate:"omitempty,min=10,max=10000"` // Watcher debounce window
	LiveReload bool   `json:"live_reload,omitempty"`                                       // Inject the live-reload client

	// Behavior
	AllowThemeFallback bool `json:"allow_theme_fallback,omitempty"` // Use the default palette when a color is malformed
	Verbose            bool `json:"verbose,omitempty"`              // Print detailed debug information
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("'%s' failed %s", jsonName(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	if c.Source != "" && !fetch.IsURL(c.Source) {
		if _, err := os.Stat(c.Source); os.IsNotExist(err) {
			return fmt.Errorf("config error: source file not found: %s", c.Source)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// then from the package defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Source == "" {
		result.Source = firstNonEmpty(defaults.Source, DefaultSource)
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.OutDir == "" {
		result.OutDir = firstNonEmpty(defaults.OutDir, DefaultOutDir)
	}
	if result.Host == "" {
		result.Host = defaults.Host
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = firstPositive(defaults.Port, DefaultPort)
	}
	if result.DebounceMS == 0 {
		result.DebounceMS = firstPositive(defaults.DebounceMS, DefaultDebounceMS)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Addr returns the listen address for the preview server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var jsonNames = map[string]string{
	"Host":       "host",
	"Port":       "port",
	"DebounceMS": "debounce_ms",
}

func jsonName(field string) string {
	if name, ok := jsonNames[field]; ok {
		return name
	}
	return field
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
