// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultAddr is the default listen address for the HTTP server.
const DefaultAddr = ":8080"

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Inputs
	Resume       string   `json:"resume,omitempty"`       // Path to resume text file
	Job          string   `json:"job,omitempty"`          // Path to job posting text file
	JobURL       string   `json:"job_url,omitempty"`      // URL to fetch job posting from
	Requirements []string `json:"requirements,omitempty"` // Explicit requirements, overriding extraction

	// LLM
	APIKey string `json:"api_key,omitempty"` // Gemini API key for the section classifier
	Model  string `json:"model,omitempty"`   // Gemini model name override

	// Server
	Addr           string  `json:"addr,omitempty"`             // HTTP listen address
	RateLimitRPS   float64 `json:"rate_limit_rps,omitempty"`   // Requests per second per client
	RateLimitBurst int     `json:"rate_limit_burst,omitempty"` // Burst size per client

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Debug logging
	JSONLogs bool `json:"json_logs,omitempty"` // Structured JSON log output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks that the configuration has valid values. Required fields
// are enforced later by CLI flag validation, not here.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config error: 'rate_limit_rps' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if len(result.Requirements) == 0 {
		result.Requirements = defaults.Requirements
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}
	if result.RateLimitRPS == 0 {
		result.RateLimitRPS = defaults.RateLimitRPS
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win.

	return result
}

// APIKeyFromEnv returns the configured API key, falling back to the
// GEMINI_API_KEY environment variable.
func (c *Config) APIKeyFromEnv() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}
