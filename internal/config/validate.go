package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Lexicon.BaseDir) == "" {
		return errors.New("lexicon.base_dir is required")
	}
	if c.Lexicon.MaxIssuesPerFile < 0 {
		return fmt.Errorf("lexicon.max_issues_per_file must be >= 0 (got %d)", c.Lexicon.MaxIssuesPerFile)
	}

	if c.Lookup.CacheSize <= 0 {
		return fmt.Errorf("lookup.cache_size must be > 0 (got %d)", c.Lookup.CacheSize)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}

// RequireDatabase reports an error when no database DSN is configured.
func (c *Config) RequireDatabase() error {
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required for this command")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
