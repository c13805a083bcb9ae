// Package config snapshots process configuration once at startup. Everything
// downstream receives the struct by value; nothing re-reads the environment.
package config

import (
	"errors"
	"os"
	"time"
)

type Config struct {
	DatabaseURL string
	HTTPPort    string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	// MasterToken, when non-empty, enables the pre-shared bypass secret.
	// Leaving it unset disables the bypass path entirely.
	MasterToken string
	TokenTTL    time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    os.Getenv("HTTP_PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   os.Getenv("JWT_ISSUER"),
		JWTAudience: os.Getenv("JWT_AUDIENCE"),
		MasterToken: os.Getenv("MASTER_TOKEN"),
		TokenTTL:    parseTTL(),
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}
	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET is empty")
	}
	return cfg, nil
}

func parseTTL() time.Duration {
	if s := os.Getenv("JWT_EXPIRES_IN"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return 24 * time.Hour
}
