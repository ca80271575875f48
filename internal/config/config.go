package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	CatalogAddress     string
	PlaceholderImage   string
	AdminKeyHash       string
	LogLevel           string
	DeleteConfirmTTL   time.Duration
	TokenSweepInterval time.Duration
	ShutdownTimeout    time.Duration
}

const (
	defaultRunAddress         = ":8080"
	defaultPlaceholderImage   = "/images/placeholder.png"
	defaultLogLevel           = "info"
	defaultDeleteConfirmTTL   = 2 * time.Minute
	defaultTokenSweepInterval = time.Minute
	defaultShutdownTimeout    = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		CatalogAddress:     getString(lookup, "CATALOG_ADDRESS", ""),
		PlaceholderImage:   getString(lookup, "PLACEHOLDER_IMAGE", defaultPlaceholderImage),
		AdminKeyHash:       getString(lookup, "ADMIN_KEY_HASH", ""),
		LogLevel:           getString(lookup, "LOG_LEVEL", defaultLogLevel),
		DeleteConfirmTTL:   getDuration(lookup, "DELETE_CONFIRM_TTL", defaultDeleteConfirmTTL),
		TokenSweepInterval: getDuration(lookup, "TOKEN_SWEEP_INTERVAL", defaultTokenSweepInterval),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("cafeorders", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		confirmTTLStr      = cfg.DeleteConfirmTTL.String()
		sweepIntervalStr   = cfg.TokenSweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CatalogAddress, "c", cfg.CatalogAddress, "Shop catalog base URL")
	fs.StringVar(&cfg.PlaceholderImage, "placeholder-image", cfg.PlaceholderImage, "Image shown when a product image is unavailable")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&confirmTTLStr, "delete-confirm-ttl", confirmTTLStr, "Lifetime of delete confirmation tokens")
	fs.StringVar(&sweepIntervalStr, "token-sweep-interval", sweepIntervalStr, "Interval between expired token sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.DeleteConfirmTTL, err = time.ParseDuration(confirmTTLStr); err != nil {
		return nil, fmt.Errorf("invalid delete confirm ttl: %w", err)
	}

	if cfg.TokenSweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid token sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if hashFile, ok := lookup("ADMIN_KEY_HASH_FILE"); ok && hashFile != "" {
		content, err := os.ReadFile(hashFile)
		if err != nil {
			return nil, fmt.Errorf("read admin key hash file: %w", err)
		}
		cfg.AdminKeyHash = strings.TrimSpace(string(content))
	}

	if cfg.DeleteConfirmTTL <= 0 {
		cfg.DeleteConfirmTTL = defaultDeleteConfirmTTL
	}

	if cfg.TokenSweepInterval <= 0 {
		cfg.TokenSweepInterval = defaultTokenSweepInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
