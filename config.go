package hub

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/edurancehub/hub/storage"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string `env:"HUB_SITE_NAME" envDefault:"Edurance Hub"`
	URL         string `env:"HUB_SITE_URL" envDefault:"http://localhost:3000"`
	Description string `env:"HUB_SITE_DESCRIPTION" envDefault:"Free calculators, browser games and a blog."`

	Addr     string `env:"HUB_ADDR" envDefault:":3000"`
	LogLevel string `env:"HUB_LOG_LEVEL" envDefault:"info"`

	StorageDriver string `env:"HUB_STORAGE_DRIVER" envDefault:"sqlite"` // sqlite, redis or memory
	DatabasePath  string `env:"HUB_DATABASE_PATH" envDefault:"data/hub.db"`
	RedisURL      string `env:"HUB_REDIS_URL"`
	RedisPrefix   string `env:"HUB_REDIS_PREFIX" envDefault:"hub:"`

	SessionSecret string `env:"HUB_SESSION_SECRET"`
	CookieSecure  bool   `env:"HUB_COOKIE_SECURE" envDefault:"false"`

	PostCacheTTL  time.Duration `env:"HUB_POST_CACHE_TTL" envDefault:"5m"`
	MaxImageWidth int           `env:"HUB_MAX_IMAGE_WIDTH" envDefault:"1200"`

	WriteLimit       int           `env:"HUB_WRITE_LIMIT" envDefault:"60"`        // admin writes per window per IP
	WriteLimitWindow time.Duration `env:"HUB_WRITE_LIMIT_WINDOW" envDefault:"1m"` // 0 disables the limiter
}

// LoadConfig reads an optional .env file and then HUB_* environment variables.
func LoadConfig(envFiles ...string) (SiteConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return SiteConfig{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Edurance Hub"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StorageDriver == "" {
		c.StorageDriver = storage.DriverSQLite
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/hub.db"
	}
	if c.RedisPrefix == "" {
		c.RedisPrefix = "hub:"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// StorageConfig returns the storage backend settings.
func (c SiteConfig) StorageConfig() storage.Config {
	return storage.Config{
		Driver:   c.StorageDriver,
		Path:     c.DatabasePath,
		RedisURL: c.RedisURL,
		Prefix:   c.RedisPrefix,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithStorage makes the App use s instead of opening the configured backend.
// The App does not close a storage it did not open.
func WithStorage(s storage.Storage) Option {
	return func(a *App) {
		a.storage = s
	}
}

// WithCatalog replaces the built-in article catalog.
func WithCatalog(c Catalog) Option {
	return func(a *App) {
		a.catalog = &c
	}
}
