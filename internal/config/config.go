// Package config loads the service configuration from YAML, falling back
// to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoginDelay returns the simulated login verification delay.
func (c *Config) LoginDelay() time.Duration {
	return time.Duration(c.Auth.LoginDelayMS) * time.Millisecond
}

// PaymentDelay returns the simulated payment processing delay.
func (c *Config) PaymentDelay() time.Duration {
	return time.Duration(c.Payment.DelayMS) * time.Millisecond
}

// Config represents the application configuration
type Config struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	SigningKey  string `yaml:"signing_key"`
	Seed        int64  `yaml:"seed"`

	Auth struct {
		LoginDelayMS int `yaml:"login_delay_ms"`
	} `yaml:"auth"`

	Payment struct {
		SuccessRate float64 `yaml:"success_rate"`
		DelayMS     int     `yaml:"delay_ms"`
	} `yaml:"payment"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Port:        8080,
		MetricsPort: 9090,
		SigningKey:  "crescendo-dev-key",
	}
	cfg.Auth.LoginDelayMS = 800
	cfg.Payment.SuccessRate = 0.95
	cfg.Payment.DelayMS = 1500
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"
	return cfg
}

// Load reads the configuration file at path, applying defaults for any
// omitted field. A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Payment.SuccessRate < 0 || cfg.Payment.SuccessRate > 1 {
		return nil, fmt.Errorf("payment success_rate must be in [0,1]")
	}
	return cfg, nil
}
