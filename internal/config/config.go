// Package config loads application settings from defaults, an optional YAML file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katiamach/pogoda/internal/client"
	"github.com/katiamach/pogoda/internal/retry"
)

// Environment variables.
const (
	EnvConfigPath     = "POGODA_CONFIG"
	EnvAPIKey         = "OPENWEATHER_API_KEY"
	EnvBaseURL        = "OPENWEATHER_BASE_URL"
	EnvPort           = "PORT"
	EnvOrigin         = "ORIGIN"
	EnvLogLevel       = "LOG_LEVEL"
	EnvConnectTimeout = "HTTP_CONNECT_TIMEOUT"
	EnvReadTimeout    = "HTTP_READ_TIMEOUT"
	EnvWriteTimeout   = "HTTP_WRITE_TIMEOUT"
	EnvMaxAttempts    = "RETRY_MAX_ATTEMPTS"
	EnvInitialDelay   = "RETRY_INITIAL_DELAY"
	EnvMaxDelay       = "RETRY_MAX_DELAY"
	EnvBackoffFactor  = "RETRY_BACKOFF_FACTOR"
)

// Config errors.
var (
	ErrNoAPIKey       = errors.New("api key is not set, provide " + EnvAPIKey)
	ErrInvalidTimeout = errors.New("timeouts should be positive")
)

// Provider contains weather provider endpoint settings.
type Provider struct {
	BaseURL        string        `yaml:"base_url"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
}

// Config contains all application settings.
type Config struct {
	APIKey   string       `yaml:"api_key"`
	Port     string       `yaml:"port"`
	Origin   string       `yaml:"origin"`
	LogLevel string       `yaml:"log_level"`
	Provider Provider     `yaml:"provider"`
	Retry    retry.Config `yaml:"retry"`
}

// Default returns settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Port:     "8080",
		LogLevel: "info",
		Provider: Provider{
			BaseURL:        client.DefaultBaseURL,
			ConnectTimeout: client.DefaultTimeout,
			ReadTimeout:    client.DefaultTimeout,
			WriteTimeout:   client.DefaultTimeout,
		},
		Retry: retry.DefaultConfig,
	}
}

// Load reads config file at path (POGODA_CONFIG when path is empty, skipped when both are empty)
// and applies environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.APIKey, EnvAPIKey)
	setString(&c.Provider.BaseURL, EnvBaseURL)
	setString(&c.Port, EnvPort)
	setString(&c.Origin, EnvOrigin)
	setString(&c.LogLevel, EnvLogLevel)

	durations := map[string]*time.Duration{
		EnvConnectTimeout: &c.Provider.ConnectTimeout,
		EnvReadTimeout:    &c.Provider.ReadTimeout,
		EnvWriteTimeout:   &c.Provider.WriteTimeout,
		EnvInitialDelay:   &c.Retry.InitialDelay,
		EnvMaxDelay:       &c.Retry.MaxDelay,
	}
	for env, dst := range durations {
		if err := setDuration(dst, env); err != nil {
			return err
		}
	}

	if v := os.Getenv(EnvMaxAttempts); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s is not a number: %w", EnvMaxAttempts, err)
		}
		c.Retry.MaxAttempts = n
	}

	if v := os.Getenv(EnvBackoffFactor); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s is not a number: %w", EnvBackoffFactor, err)
		}
		c.Retry.BackoffFactor = f
	}

	return nil
}

// Validate checks timeouts and retry settings.
func (c *Config) Validate() error {
	p := c.Provider
	if p.ConnectTimeout <= 0 || p.ReadTimeout <= 0 || p.WriteTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if err := c.Retry.Validate(); err != nil {
		return fmt.Errorf("invalid retry settings: %w", err)
	}

	return nil
}

// RequireAPIKey fails when no API key is configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrNoAPIKey
	}

	return nil
}

// ClientConfig returns weather client settings.
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		BaseURL:        c.Provider.BaseURL,
		ConnectTimeout: c.Provider.ConnectTimeout,
		ReadTimeout:    c.Provider.ReadTimeout,
		WriteTimeout:   c.Provider.WriteTimeout,
	}
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, env string) error {
	v := os.Getenv(env)
	if v == "" {
		return nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s is not a duration: %w", env, err)
	}
	*dst = d

	return nil
}
