// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBodySizeLimit is the default maximum request body size (10MB).
const DefaultBodySizeLimit int64 = 10 * 1024 * 1024

// DefaultCORSOrigin is the origin allowed by default for local frontend development.
const DefaultCORSOrigin = "http://localhost:3000"

// Config holds the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	CORS    CORSConfig    `yaml:"cors"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port          string `yaml:"port"`
	MasterKey     string `yaml:"master_key"`
	BodySizeLimit int64  `yaml:"body_size_limit"`
}

// MongoConfig holds MongoDB connection configuration
type MongoConfig struct {
	URL      string `yaml:"url"`
	Database string `yaml:"database"`
}

// CORSConfig holds cross-origin request configuration
type CORSConfig struct {
	// Origins is the list of origins allowed to make cross-origin requests.
	Origins []string `yaml:"origins"`
}

// MetricsConfig holds Prometheus metrics configuration
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

// LoggingConfig holds structured logging configuration
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info).
	Level string `yaml:"level"`
	// Format is "json" or "console" (default: json).
	Format string `yaml:"format"`
}

// Default returns a Config populated with defaults for a freshly
// scaffolded project.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:          "8080",
			BodySizeLimit: DefaultBodySizeLimit,
		},
		Mongo: MongoConfig{
			URL:      "mongodb://localhost:27017",
			Database: "gostarter",
		},
		CORS: CORSConfig{
			Origins: []string{DefaultCORSOrigin},
		},
		Metrics: MetricsConfig{
			Enabled:  false,
			Endpoint: "/metrics",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from an optional config.yaml, an optional .env
// file, and the process environment. Environment variables take precedence
// over file values.
func Load() (*Config, error) {
	return LoadFile("config.yaml")
}

// LoadFile is Load with an explicit YAML config path. A missing file is not
// an error; a malformed one is.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Load .env into the process environment (optional, won't fail if missing)
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides config values from environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("GOSTARTER_MASTER_KEY"); v != "" {
		c.Server.MasterKey = v
	}
	if v := os.Getenv("BODY_SIZE_LIMIT"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit <= 0 {
			return fmt.Errorf("invalid BODY_SIZE_LIMIT %q: must be a positive integer", v)
		}
		c.Server.BodySizeLimit = limit
	}
	if v, ok := os.LookupEnv("MONGO_URL"); ok {
		c.Mongo.URL = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		c.Mongo.Database = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORS.Origins = splitAndTrim(v)
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid METRICS_ENABLED %q: must be a boolean", v)
		}
		c.Metrics.Enabled = enabled
	}
	if v := os.Getenv("METRICS_ENDPOINT"); v != "" {
		c.Metrics.Endpoint = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// splitAndTrim splits a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
