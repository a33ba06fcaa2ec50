package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv clears env vars that would leak host settings into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH", "INSIGHTS_PROVIDER", "INSIGHTS_API_KEY", "STORAGE_DRIVER",
		"STORAGE_SQLITE_PATH", "DATABASE_DSN", "SERVER_PORT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
dictionary:
  base_url: "https://dict.example.com/api/v2/entries/en/"
  timeout: "3s"

insights:
  provider: "anthropic"
  api_key: "sk-test"
  model: "claude-test"
  max_tokens: 1024
  timeout: "20s"

storage:
  driver: "sqlite"
  sqlite_path: "/tmp/leximind-test.db"
  key_prefix: "leximind_"

server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

rate_limit:
  requests_per_minute: 60
  burst: 5

log:
  level: "debug"
  format: "json"
`

func validConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{BaseURL: "https://api.dictionaryapi.dev/api/v2/entries/en", Timeout: 10 * time.Second},
		Insights:   InsightsConfig{Provider: InsightProviderStub, MaxTokens: 2048},
		Storage:    StorageConfig{Driver: StorageMemory},
		Server:     ServerConfig{Host: "127.0.0.1", Port: 8080},
		RateLimit:  RateLimitConfig{RequestsPerMinute: 120, Burst: 20},
		Log:        LogConfig{Level: "info", Format: "text"},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Dictionary
	if cfg.Dictionary.BaseURL != "https://dict.example.com/api/v2/entries/en" {
		t.Errorf("dictionary.base_url = %q (trailing slash should be trimmed)", cfg.Dictionary.BaseURL)
	}
	if cfg.Dictionary.Timeout != 3*time.Second {
		t.Errorf("dictionary.timeout = %v, want 3s", cfg.Dictionary.Timeout)
	}

	// Insights
	if cfg.Insights.EffectiveProvider() != InsightProviderAnthropic {
		t.Errorf("insights provider = %q", cfg.Insights.EffectiveProvider())
	}
	if cfg.Insights.Model != "claude-test" {
		t.Errorf("insights.model = %q", cfg.Insights.Model)
	}
	if cfg.Insights.MaxTokens != 1024 {
		t.Errorf("insights.max_tokens = %d, want 1024", cfg.Insights.MaxTokens)
	}

	// Storage
	if cfg.Storage.SQLitePath != "/tmp/leximind-test.db" {
		t.Errorf("storage.sqlite_path = %q", cfg.Storage.SQLitePath)
	}
	if cfg.Storage.KeyPrefix != "leximind_" {
		t.Errorf("storage.key_prefix = %q", cfg.Storage.KeyPrefix)
	}

	// Server
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("server.shutdown_timeout = %v, want default 10s", cfg.Server.ShutdownTimeout)
	}

	// Rate limit
	if cfg.RateLimit.RequestsPerMinute != 60 || cfg.RateLimit.Burst != 5 {
		t.Errorf("rate_limit = %+v", cfg.RateLimit)
	}

	// Log
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadFrom_ExplicitPathWins(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "missing.yaml"))

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("server.port = %d, want 7070 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn (ENV override)", cfg.Log.Level)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	isolateEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Dictionary.BaseURL != "https://api.dictionaryapi.dev/api/v2/entries/en" {
		t.Errorf("dictionary.base_url default = %q", cfg.Dictionary.BaseURL)
	}
	if cfg.Insights.EffectiveProvider() != InsightProviderStub {
		t.Errorf("provider without key = %q, want stub", cfg.Insights.EffectiveProvider())
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format default = %q, want text", cfg.Log.Format)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantMsg string
	}{
		{"relative dictionary url", func(c *Config) { c.Dictionary.BaseURL = "/entries" }, "base_url"},
		{"negative dictionary timeout", func(c *Config) { c.Dictionary.Timeout = -time.Second }, "timeout"},
		{"anthropic without key", func(c *Config) { c.Insights.Provider = InsightProviderAnthropic }, "api_key"},
		{"unknown insight provider", func(c *Config) { c.Insights.Provider = "gemini" }, "unknown provider"},
		{"zero max tokens", func(c *Config) {
			c.Insights.Provider = InsightProviderAnthropic
			c.Insights.APIKey = "k"
			c.Insights.MaxTokens = 0
		}, "max_tokens"},
		{"unknown storage driver", func(c *Config) { c.Storage.Driver = "redis" }, "unknown driver"},
		{"postgres without dsn", func(c *Config) { c.Storage.Driver = StoragePostgres }, "dsn"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative rpm", func(c *Config) { c.RateLimit.RequestsPerMinute = -1 }, "requests_per_minute"},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, "burst"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_RateLimitDisabledAllowsZeroBurst(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit = RateLimitConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SQLiteDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg := validConfig()
	cfg.Storage.Driver = StorageSQLite
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(cfg.Storage.SQLitePath, filepath.Join("leximind", "leximind.db")) {
		t.Errorf("sqlite_path = %q", cfg.Storage.SQLitePath)
	}
}

func TestInsightsConfig_EffectiveProvider(t *testing.T) {
	if got := (InsightsConfig{}).EffectiveProvider(); got != InsightProviderStub {
		t.Errorf("empty = %q, want stub", got)
	}
	if got := (InsightsConfig{APIKey: "k"}).EffectiveProvider(); got != InsightProviderAnthropic {
		t.Errorf("with key = %q, want anthropic", got)
	}
	if got := (InsightsConfig{Provider: "stub", APIKey: "k"}).EffectiveProvider(); got != InsightProviderStub {
		t.Errorf("explicit = %q, want stub", got)
	}
}
