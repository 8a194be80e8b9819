// Package hub is the blog desk of the Edurance Hub site: a draft store, a
// published store merged with the built-in articles, the publish workflow
// between them, and an Echo server that renders the reader pages and exposes
// the admin panel API.
//
// Pages are rendered by templ components supplied through ViewFuncs; package
// views provides the default set.
package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/edurancehub/hub/storage"
)

// ViewFuncs holds the templ components the server renders pages with.
type ViewFuncs struct {
	Home           func(featured Post, posts []Post, activeCategory string, categories []string) templ.Component
	Post           func(post Post, related []Post) templ.Component
	AdminDashboard func(drafts []Draft, posts []Post, notice string, csrfToken string) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App wires together storage, the stores, the cache, handlers and middleware.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Logger    *slog.Logger
	Drafts    *DraftStore
	Posts     *PublishedStore
	Publisher *Publisher
	Cache     *PostCache
	Views     ViewFuncs

	storage      storage.Storage
	ownsStorage  bool
	catalog      *Catalog
	writeLimiter *RateLimiter
	customRoutes []func(*App)
	staticDir    string
}

// UseLogger sets the application logger (default: text logger on stderr at Config.LogLevel).
func UseLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = NewLogger(os.Stderr, cfg.LogLevel)
	}
	a.Echo.HideBanner = true
	return a
}

// Init opens storage, builds the stores and registers middleware and routes.
func (a *App) Init(ctx context.Context) error {
	if a.Config.SessionSecret == "" {
		return errors.New("hub: SessionSecret is required")
	}
	if a.storage == nil {
		s, err := storage.Open(ctx, a.Config.StorageConfig())
		if err != nil {
			return fmt.Errorf("hub: init storage: %w", err)
		}
		a.storage = s
		a.ownsStorage = true
	}
	a.initStores()
	if a.Config.WriteLimit > 0 && a.Config.WriteLimitWindow > 0 {
		a.writeLimiter = NewRateLimiter(a.Config.WriteLimit, a.Config.WriteLimitWindow)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) initStores() {
	catalog := a.catalog
	if catalog == nil {
		c := BuiltinCatalog()
		catalog = &c
	}
	logOpt := WithLogger(a.Logger)
	a.Drafts = NewDraftStore(a.storage, logOpt)
	a.Posts = NewPublishedStore(a.storage, catalog.All(), logOpt)
	a.Publisher = NewPublisher(a.Drafts, a.Posts, logOpt)
	a.Cache = NewPostCache(a.Posts, catalog.Featured, a.Config.PostCacheTTL)
}

// Start initializes the app and serves until the server stops.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}
	a.Logger.Info("listening", "addr", a.Config.Addr, "storage", a.Config.StorageDriver)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Close releases resources opened by Init.
func (a *App) Close() error {
	if a.writeLimiter != nil {
		a.writeLimiter.Stop()
	}
	if a.storage != nil && a.ownsStorage {
		return a.storage.Close()
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Reader pages and read API
	e.GET("/", a.handleHome)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/api/posts", a.handleAPIPosts)
	e.GET("/api/posts/:slug", a.handleAPIPost)
	e.GET("/api/posts/:slug/related", a.handleAPIRelated)
	e.GET("/api/featured", a.handleAPIFeatured)

	// Admin panel
	e.GET("/admin/", a.handleAdmin)
	api := e.Group("/admin/api", a.limitWrites)
	api.GET("/options", handleEditorOptions)
	api.GET("/drafts", a.handleListDrafts)
	api.POST("/drafts", a.handleSaveDraft)
	api.GET("/drafts/active", a.handleActiveDraft)
	api.GET("/drafts/:id", a.handleGetDraft)
	api.DELETE("/drafts/:id", a.handleDeleteDraft)
	api.PUT("/drafts/:id/content", a.handleSaveContent)
	api.POST("/drafts/:id/publish", a.handlePublishDraft)
	api.POST("/publish", a.handlePublishUnsaved)
	api.POST("/images", a.handleImageUpload, middleware.BodyLimit("6M"))
}
