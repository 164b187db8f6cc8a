// Package config loads the service configuration from a YAML file, with
// optional overrides from a .env file and the process environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Session struct {
		Secret string `yaml:"secret"`
	} `yaml:"session"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Database.Path = "cape.db"
	cfg.Session.Secret = "dev-session-secret"
	cfg.LogLevel = "info"
	return cfg
}

// Load reads the YAML file at path and applies environment overrides.
// A missing file falls back to defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults plus environment only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// .env is optional; ignore a missing file.
	_ = godotenv.Load()
	cfg.applyEnv()

	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("session secret must not be empty")
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CAPE_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("CAPE_SESSION_SECRET"); v != "" {
		c.Session.Secret = v
	}
	if v := os.Getenv("CAPE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
