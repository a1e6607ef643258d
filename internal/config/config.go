// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"habithub/internal/shared"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logging      LoggingConfig      `toml:"logging"`
	Cache        CacheConfig        `toml:"cache"`
	Seed         SeedConfig         `toml:"seed"`
	Housekeeping HousekeepingConfig `toml:"housekeeping"`

	// Runtime computed values
	CacheTTL             time.Duration `toml:"-"`
	HousekeepingInterval time.Duration `toml:"-"`
	CompletionMaxAge     time.Duration `toml:"-"`
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// CacheConfig controls the repository read cache.
type CacheConfig struct {
	TTL string `toml:"ttl"` // e.g. "5m", "30s"
}

// SeedConfig controls seeding of the predefined habits on startup.
type SeedConfig struct {
	Enabled bool `toml:"enabled"`
	Days    int  `toml:"days"`
}

// HousekeepingConfig controls the background maintenance worker.
// Durations accept a "d" suffix for days; "0" disables.
type HousekeepingConfig struct {
	Interval string `toml:"interval"` // e.g. "1h"
	MaxAge   string `toml:"max_age"`  // completions older than this are deleted, e.g. "365d"

	// DeleteUnparseable removes completions whose timestamp cannot be read.
	// They are only reported by default.
	DeleteUnparseable bool `toml:"delete_unparseable"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w: %v", shared.ErrorCreateFile, err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w: %v", shared.ErrorEncodeFile, err)
	}
	return nil
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing.
func (c *Config) ParseAndValidate() error {
	if c.Cache.TTL == "" {
		c.Cache.TTL = "5m"
	}

	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return fmt.Errorf("invalid cache ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("invalid cache ttl: must be positive, got %s", c.Cache.TTL)
	}
	c.CacheTTL = ttl

	if c.Seed.Days < 0 {
		return fmt.Errorf("invalid seed days: %d", c.Seed.Days)
	}
	if c.Seed.Days == 0 {
		c.Seed.Days = 30
	}

	if c.Housekeeping.Interval == "" {
		c.Housekeeping.Interval = "1h"
	}
	if c.HousekeepingInterval, err = shared.ParseDuration(c.Housekeeping.Interval); err != nil {
		return fmt.Errorf("invalid housekeeping interval: %w", err)
	}
	if c.Housekeeping.MaxAge == "" {
		c.Housekeeping.MaxAge = "0"
	}
	if c.CompletionMaxAge, err = shared.ParseDuration(c.Housekeeping.MaxAge); err != nil {
		return fmt.Errorf("invalid housekeeping max_age: %w", err)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	return nil
}
