package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Refresh struct {
		IntervalSeconds int  `yaml:"interval_seconds"`
		Serialize       bool `yaml:"serialize"`
	} `yaml:"refresh"`
	Chart struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"chart"`
	Defaults struct {
		PeriodDays int `yaml:"period_days"`
	} `yaml:"defaults"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("API_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("REFRESH_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Refresh.IntervalSeconds = n
		}
	}
	if v := os.Getenv("REFRESH_SERIALIZE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Refresh.Serialize = b
		}
	}
	if v := os.Getenv("CHART_OUTPUT_DIR"); v != "" {
		cfg.Chart.OutputDir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8000"
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 30
	}
	if cfg.Refresh.IntervalSeconds == 0 {
		cfg.Refresh.IntervalSeconds = 30
	}
	if cfg.Chart.OutputDir == "" {
		cfg.Chart.OutputDir = "data/charts"
	}
	if cfg.Defaults.PeriodDays == 0 {
		cfg.Defaults.PeriodDays = 30
	}

	return cfg, nil
}

// Validate checks that all required fields are sane.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive")
	}
	if c.Refresh.IntervalSeconds <= 0 {
		return fmt.Errorf("refresh.interval_seconds must be positive")
	}
	if c.Defaults.PeriodDays <= 0 {
		return fmt.Errorf("defaults.period_days must be positive")
	}
	return nil
}
