package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration
// and fills derived defaults. Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}
	if err := c.Insights.validate(); err != nil {
		return fmt.Errorf("insights: %w", err)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 when limiting is enabled (got %d)", c.RateLimit.Burst)
	}
	return nil
}

func (d *DictionaryConfig) validate() error {
	u, err := url.Parse(d.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", d.BaseURL)
	}
	d.BaseURL = strings.TrimRight(d.BaseURL, "/")
	if d.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", d.Timeout)
	}
	return nil
}

func (i *InsightsConfig) validate() error {
	switch i.EffectiveProvider() {
	case InsightProviderAnthropic:
		if i.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", InsightProviderAnthropic)
		}
		if i.MaxTokens <= 0 {
			return fmt.Errorf("max_tokens must be > 0 (got %d)", i.MaxTokens)
		}
	case InsightProviderStub:
	default:
		return fmt.Errorf("unknown provider %q", i.Provider)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case StorageSQLite:
		if s.SQLitePath == "" {
			path, err := DefaultSQLitePath()
			if err != nil {
				return err
			}
			s.SQLitePath = path
		}
	case StoragePostgres:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for driver %q", StoragePostgres)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown driver %q", s.Driver)
	}
	return nil
}

// DefaultSQLitePath returns the on-device database location under the
// user's config directory.
func DefaultSQLitePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "leximind", "leximind.db"), nil
}
