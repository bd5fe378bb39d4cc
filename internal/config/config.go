// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Credentials
	APIKey         string `json:"api_key,omitempty"`          // Gemini API key
	SearchAPIKey   string `json:"search_api_key,omitempty"`   // Google Custom Search API key
	SearchEngineID string `json:"search_engine_id,omitempty"` // Programmable search engine cx

	// Infrastructure
	Port        int    `json:"port,omitempty"`         // HTTP server port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (optional)
	RedisAddr   string `json:"redis_addr,omitempty"`   // Redis address for the page cache (optional)

	// Pipeline limits
	MaxResultsPerQuery int `json:"max_results_per_query,omitempty"` // Hits requested per query
	Concurrency        int `json:"concurrency,omitempty"`           // Bounded fan-out width
	RunTimeoutSeconds  int `json:"run_timeout_seconds,omitempty"`   // Whole-run deadline

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed progress information
}

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
// Required fields are checked later, after CLI flags and environment
// variables are merged in.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxResultsPerQuery < 0 {
		return fmt.Errorf("config error: 'max_results_per_query' must be non-negative")
	}
	if c.MaxResultsPerQuery > 10 {
		return fmt.Errorf("config error: 'max_results_per_query' must be at most 10")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.RunTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'run_timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SearchAPIKey == "" {
		result.SearchAPIKey = defaults.SearchAPIKey
	}
	if result.SearchEngineID == "" {
		result.SearchEngineID = defaults.SearchEngineID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxResultsPerQuery == 0 {
		result.MaxResultsPerQuery = defaults.MaxResultsPerQuery
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.RunTimeoutSeconds == 0 {
		result.RunTimeoutSeconds = defaults.RunTimeoutSeconds
	}

	// Bools: false is indistinguishable from unset, so defaults only
	// apply when they are true.
	if defaults.UseBrowser {
		result.UseBrowser = true
	}
	if defaults.Verbose {
		result.Verbose = true
	}

	return result
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port:               8080,
		MaxResultsPerQuery: 10,
		Concurrency:        8,
		RunTimeoutSeconds:  120,
	}
}
