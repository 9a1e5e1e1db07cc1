// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Marquin099/Cinema-Dublado/internal/constants"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
	// Default database path for the TMDB enrichment cache
	defaultDatabasePath = "./cache.db"
)

// Config holds the application configuration.
// It supports loading from environment variables and JSON files.
type Config struct {
	// Record sources
	MoviesPath string `json:"MOVIES_PATH"`
	SeriesPath string `json:"SERIES_PATH"`

	// HTTP
	Port string `json:"PORT"`

	// Optional metadata enrichment
	TMDBAPIKey string `json:"TMDB_API_KEY"`

	// Storage settings
	DatabasePath string        `json:"DATABASE_PATH"`
	CacheSize    int           `json:"CACHE_SIZE"`
	CacheTTL     time.Duration `json:"CACHE_TTL"`
}

// Load reads configuration from environment variables and optional JSON file.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	cfg := &Config{
		MoviesPath:   constants.DefaultMoviesFile,
		SeriesPath:   constants.DefaultSeriesFile,
		Port:         constants.DefaultPort,
		DatabasePath: defaultDatabasePath,
		CacheSize:    constants.DefaultCacheSize,
		CacheTTL:     time.Duration(constants.DefaultCacheTTL) * time.Hour,
	}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		// Ignore file not found errors
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() {
	if movies := os.Getenv("MOVIES_PATH"); movies != "" {
		c.MoviesPath = movies
	}

	if series := os.Getenv("SERIES_PATH"); series != "" {
		c.SeriesPath = series
	}

	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}

	if tmdbKey := os.Getenv("TMDB_API_KEY"); tmdbKey != "" {
		c.TMDBAPIKey = tmdbKey
	}

	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		c.DatabasePath = dbPath
	}

	if size := os.Getenv("CACHE_SIZE"); size != "" {
		if v, err := strconv.Atoi(size); err == nil {
			c.CacheSize = v
		}
	}

	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if d, err := parseTTL(ttl); err == nil {
			c.CacheTTL = d
		}
	}
}

// parseTTL accepts either a plain number of hours ("36") or a Go
// duration string ("36h", "90m").
func parseTTL(s string) (time.Duration, error) {
	if hours, err := strconv.Atoi(s); err == nil {
		return time.Duration(hours) * time.Hour, nil
	}
	return time.ParseDuration(s)
}

// loadFromFile loads configuration from a JSON file.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

// Validate checks the configuration and restores defaults for optional
// fields that were blanked by the config file.
func (c *Config) Validate() error {
	// TMDB_API_KEY is optional; without it detail objects carry only
	// the fields present in the local records.

	if c.MoviesPath == "" {
		c.MoviesPath = constants.DefaultMoviesFile
	}

	if c.SeriesPath == "" {
		c.SeriesPath = constants.DefaultSeriesFile
	}

	if c.Port == "" {
		c.Port = constants.DefaultPort
	}

	if c.CacheSize <= 0 {
		c.CacheSize = constants.DefaultCacheSize
	}

	if c.CacheTTL <= 0 {
		c.CacheTTL = time.Duration(constants.DefaultCacheTTL) * time.Hour
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
