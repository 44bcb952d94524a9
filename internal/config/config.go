// Package config loads service configuration from an optional YAML file
// with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the classification service.
type Config struct {
	Port            string
	CacheTTL        time.Duration
	RateLimitPerMin int
	LogLevel        string
}

// rawConfig represents the YAML structure.
type rawConfig struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Cache struct {
		TTLMinutes int `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	RateLimit struct {
		PerMinute int `yaml:"per_minute"`
	} `yaml:"rate_limit"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Port:            "3000",
		CacheTTL:        5 * time.Minute,
		RateLimitPerMin: 10,
		LogLevel:        "info",
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when absent), then environment overrides. Path may be empty.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if raw.Server.Port != "" {
		cfg.Port = raw.Server.Port
	}
	if raw.Cache.TTLMinutes > 0 {
		cfg.CacheTTL = time.Duration(raw.Cache.TTLMinutes) * time.Minute
	}
	if raw.RateLimit.PerMinute > 0 {
		cfg.RateLimitPerMin = raw.RateLimit.PerMinute
	}
	if raw.Log.Level != "" {
		cfg.LogLevel = raw.Log.Level
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if ttl := os.Getenv("CACHE_TTL_MINUTES"); ttl != "" {
		minutes, err := strconv.Atoi(ttl)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL_MINUTES %q: %w", ttl, err)
		}
		cfg.CacheTTL = time.Duration(minutes) * time.Minute
	}
	if limit := os.Getenv("RATE_LIMIT_PER_MIN"); limit != "" {
		perMinute, err := strconv.Atoi(limit)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_PER_MIN %q: %w", limit, err)
		}
		cfg.RateLimitPerMin = perMinute
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	return nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.CacheTTL)
	}
	if c.RateLimitPerMin <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimitPerMin)
	}
	return nil
}
