package config

import "time"

// Config is the root application configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Insights   InsightsConfig   `yaml:"insights"`
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig holds settings for the public dictionary lookup API.
// A zero Timeout disables the per-request timeout.
type DictionaryConfig struct {
	BaseURL string        `yaml:"base_url" env:"DICTIONARY_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout time.Duration `yaml:"timeout"  env:"DICTIONARY_TIMEOUT"  env-default:"10s"`
}

// Insight providers.
const (
	InsightProviderAnthropic = "anthropic"
	InsightProviderStub      = "stub"
)

// InsightsConfig holds settings for the generative-language service.
// An empty Provider selects anthropic when an API key is present, stub otherwise.
type InsightsConfig struct {
	Provider  string        `yaml:"provider"   env:"INSIGHTS_PROVIDER"`
	APIKey    string        `yaml:"api_key"    env:"INSIGHTS_API_KEY"`
	BaseURL   string        `yaml:"base_url"   env:"INSIGHTS_BASE_URL"`
	Model     string        `yaml:"model"      env:"INSIGHTS_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64         `yaml:"max_tokens" env:"INSIGHTS_MAX_TOKENS" env-default:"2048"`
	Timeout   time.Duration `yaml:"timeout"    env:"INSIGHTS_TIMEOUT"    env-default:"45s"`
}

// Storage drivers.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// StorageConfig selects and configures the key-value backend for
// history, session and theme.
type StorageConfig struct {
	Driver     string         `yaml:"driver"      env:"STORAGE_DRIVER"      env-default:"sqlite"`
	SQLitePath string         `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH"`
	KeyPrefix  string         `yaml:"key_prefix"  env:"STORAGE_KEY_PREFIX"`
	Postgres   DatabaseConfig `yaml:"postgres"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// ServerConfig holds HTTP server settings. The default host keeps the API on
// the loopback interface.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits for the HTTP API.
// A zero RequestsPerMinute disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"   env-default:"120"`
	Burst             int `yaml:"burst"               env:"RATE_LIMIT_BURST" env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// EffectiveProvider resolves the insight provider, defaulting to anthropic
// when a key is configured and stub otherwise.
func (c InsightsConfig) EffectiveProvider() string {
	if c.Provider != "" {
		return c.Provider
	}
	if c.APIKey != "" {
		return InsightProviderAnthropic
	}
	return InsightProviderStub
}
