package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Hermes  HermesConfig  `yaml:"hermes"`
	Scoring ScoringConfig `yaml:"scoring"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port               int `yaml:"port"`
	MetricsPort        int `yaml:"metrics_port"`
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

type ScoringConfig struct {
	DefaultRating float64 `yaml:"default_rating"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 240,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "file:shortlist.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)",
		},
		Scoring: ScoringConfig{
			DefaultRating: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.Scoring.DefaultRating < 0 || c.Scoring.DefaultRating > 10 {
		return fmt.Errorf("default rating %.2f outside [0,10]", c.Scoring.DefaultRating)
	}
	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.Server.RateLimitPerMinute)
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger from the logging section.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.ToLower(c.Logging.Format) == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SHORTLIST_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("SHORTLIST_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("SHORTLIST_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("SHORTLIST_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("SHORTLIST_STORAGE_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("SHORTLIST_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("SHORTLIST_DEFAULT_RATING"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.DefaultRating = f
		}
	}
	if v := os.Getenv("SHORTLIST_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SHORTLIST_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
