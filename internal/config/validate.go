package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Validate performs business-rule validation on the loaded configuration
// and resolves derived paths. It must be called after loading; Load calls
// it automatically.
func (c *Config) Validate() error {
	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if err := c.History.validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}

	switch c.History.Backend {
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %q history backend", BackendPostgres)
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the %q history backend", BackendRedis)
		}
	case BackendSQLite:
		if c.SQLite.Path == "" {
			c.SQLite.Path = filepath.Join(c.History.DataDir, "history.db")
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	return nil
}

func (d *DictionaryConfig) validate() error {
	u, err := url.Parse(d.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be http or https (got %q)", d.BaseURL)
	}
	if d.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", d.Timeout)
	}
	if d.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be >= 0 (got %v)", d.CacheTTL)
	}
	if d.RateLimitRPS < 0 {
		return fmt.Errorf("rate_limit_rps must be >= 0 (got %v)", d.RateLimitRPS)
	}
	if d.RateLimitBurst < 1 {
		d.RateLimitBurst = 1
	}
	return nil
}

func (h *HistoryConfig) validate() error {
	switch h.Backend {
	case BackendFile, BackendRedis, BackendPostgres, BackendSQLite:
	default:
		return fmt.Errorf("backend must be one of file, redis, postgres, sqlite (got %q)", h.Backend)
	}
	if h.Key == "" {
		return fmt.Errorf("key must not be empty")
	}
	if h.DataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve data_dir: %w", err)
		}
		h.DataDir = filepath.Join(dir, "wordlookup")
	}
	return nil
}
