package storage

import (
	"context"
	"fmt"
	"strings"
)

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config selects and configures a backend.
type Config struct {
	Driver   string // memory, sqlite or redis (default sqlite)
	Path     string // SQLite file path
	RedisURL string // Redis connection URL
	Prefix   string // Redis key prefix
}

// Open returns the backend named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("storage: sqlite path is required")
		}
		return OpenSQLite(cfg.Path)
	case DriverRedis:
		return OpenRedis(ctx, cfg.RedisURL, cfg.Prefix)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
