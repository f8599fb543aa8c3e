// Copyright (c) 2026 Vatra. All rights reserved.
// Author: d.cebotari.dev@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, storage) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Vatra site server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis) — holds admin session tokens.
	RedisURL string `env:"REDIS_URL,required"`

	// SessionSecret signs short-lived upload authorization tokens.
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Admin credentials. The password is stored as a bcrypt hash so the
	// plain text never touches the environment.
	AdminUsername     string `env:"ADMIN_USERNAME,required"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	// Object Storage (Supabase-compatible storage API)
	StorageURL        string `env:"STORAGE_URL,required"`
	StorageServiceKey string `env:"STORAGE_SERVICE_KEY"`
	MenuBucket        string `env:"MENU_BUCKET"    envDefault:"menu"`
	GalleryBucket     string `env:"GALLERY_BUCKET" envDefault:"gallery"`

	// PublicDir is the local static root. It holds the prebuilt frontend and
	// the mirrored image buckets (public/<bucket>/<key>).
	PublicDir string `env:"PUBLIC_DIR" envDefault:"./public"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// STORAGE_URL must be an absolute URL; the image URL resolver prefix-matches
	// against it, so a malformed value would silently disable rewriting.
	parsed, err := url.Parse(cfg.StorageURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("config: STORAGE_URL must be an absolute URL, got %q", cfg.StorageURL)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
