package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

var envVars = []string{
	"SHORTLIST_PORT", "SHORTLIST_METRICS_PORT", "SHORTLIST_RATE_LIMIT",
	"SHORTLIST_STORAGE_DRIVER", "SHORTLIST_STORAGE_DSN", "SHORTLIST_HERMES_URL",
	"SHORTLIST_DEFAULT_RATING", "SHORTLIST_LOG_LEVEL", "SHORTLIST_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimitPerMinute != 240 {
		t.Errorf("expected rate limit 240, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.Storage.Driver)
	}
	if cfg.Hermes.URL != "" {
		t.Errorf("expected hermes disabled by default, got %s", cfg.Hermes.URL)
	}
	if cfg.Scoring.DefaultRating != 5 {
		t.Errorf("expected default rating 5, got %f", cfg.Scoring.DefaultRating)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "shortlist.yaml")
	content := `
server:
  port: 9000
storage:
  driver: postgres
  dsn: postgres://db/shortlist
hermes:
  url: nats://nats:4222
scoring:
  default_rating: 7.5
logging:
  level: debug
  format: text
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port default kept, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Storage.Driver != "postgres" || cfg.Storage.DSN != "postgres://db/shortlist" {
		t.Errorf("unexpected storage: %+v", cfg.Storage)
	}
	if cfg.Hermes.URL != "nats://nats:4222" {
		t.Errorf("unexpected hermes url %s", cfg.Hermes.URL)
	}
	if cfg.Scoring.DefaultRating != 7.5 {
		t.Errorf("expected default rating 7.5, got %f", cfg.Scoring.DefaultRating)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "shortlist.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHORTLIST_PORT", "9100")
	t.Setenv("SHORTLIST_STORAGE_DRIVER", "memory")
	t.Setenv("SHORTLIST_DEFAULT_RATING", "2.5")
	t.Setenv("SHORTLIST_METRICS_PORT", "not-a-number")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected env port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "memory" {
		t.Errorf("expected memory driver, got %s", cfg.Storage.Driver)
	}
	if cfg.Scoring.DefaultRating != 2.5 {
		t.Errorf("expected 2.5, got %f", cfg.Scoring.DefaultRating)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("invalid env value should be ignored, got %d", cfg.Server.MetricsPort)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)

	t.Setenv("SHORTLIST_STORAGE_DRIVER", "mongo")
	if _, err := Load(""); err == nil {
		t.Error("expected error for unknown driver")
	}

	clearEnv(t)
	t.Setenv("SHORTLIST_DEFAULT_RATING", "11")
	if _, err := Load(""); err == nil {
		t.Error("expected error for default rating above 10")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"bogus": slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := &Config{Logging: LoggingConfig{Level: in}}
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("level %q: expected %v, got %v", in, want, got)
		}
	}
}
