package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/labstack/echo/v4"

	"github.com/edurancehub/hub"
	"github.com/edurancehub/hub/storage"
	"github.com/edurancehub/hub/views"
)

const shutdownTimeout = 10 * time.Second

var (
	okf    = color.New(color.FgGreen).FprintfFunc()
	warnf  = color.New(color.FgYellow).FprintfFunc()
	errorf = func(format string, a ...any) { color.New(color.FgRed).Fprintf(os.Stderr, format, a...) }
)

func runServe(ctx context.Context) error {
	cfg, err := hub.LoadConfig()
	if err != nil {
		return err
	}
	app := hub.New(cfg, views.Default(cfg), hub.WithStaticDir("public"), hub.WithCustomRoutes(healthRoute))
	defer app.Close()

	errCh := make(chan error, 1)
	go func() { errCh <- app.Start(ctx) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		app.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.Shutdown(shutdownCtx)
	}
}

// healthRoute reports the storage driver and how many posts are readable.
func healthRoute(app *hub.App) {
	app.Echo.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"storage": app.Config.StorageDriver,
			"posts":   len(app.Cache.ListPosts(c.Request().Context(), "")),
		})
	})
}

// desk opens the configured storage and builds the stores without the HTTP server.
type desk struct {
	store     storage.Storage
	drafts    *hub.DraftStore
	posts     *hub.PublishedStore
	publisher *hub.Publisher
}

func openDesk(ctx context.Context) (*desk, error) {
	cfg, err := hub.LoadConfig()
	if err != nil {
		return nil, err
	}
	s, err := storage.Open(ctx, cfg.StorageConfig())
	if err != nil {
		return nil, err
	}
	logOpt := hub.WithLogger(hub.NewLogger(os.Stderr, cfg.LogLevel))
	d := &desk{store: s, drafts: hub.NewDraftStore(s, logOpt)}
	d.posts = hub.NewPublishedStore(s, hub.BuiltinCatalog().All(), logOpt)
	d.publisher = hub.NewPublisher(d.drafts, d.posts, logOpt)
	return d, nil
}

func runDrafts(ctx context.Context, out io.Writer) error {
	d, err := openDesk(ctx)
	if err != nil {
		return err
	}
	defer d.store.Close()

	drafts := d.drafts.List(ctx)
	if len(drafts) == 0 {
		fmt.Fprintln(out, "No drafts.")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tBLOCKS\tLAST MODIFIED")
	for _, dr := range drafts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", dr.ID, dr.Title, dr.Category, len(dr.Content), dr.LastModified.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

func runPosts(ctx context.Context, out io.Writer) error {
	d, err := openDesk(ctx)
	if err != nil {
		return err
	}
	defer d.store.Close()

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSLUG\tCATEGORY\tTITLE")
	for _, p := range hub.SortNewestFirst(d.posts.List(ctx)) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Date, p.Slug, p.Category, p.Title)
	}
	return tw.Flush()
}

func runPublish(ctx context.Context, out io.Writer, id string) error {
	d, err := openDesk(ctx)
	if err != nil {
		return err
	}
	defer d.store.Close()

	draft, ok := d.drafts.Get(ctx, id)
	if !ok {
		return fmt.Errorf("draft %s: %w", id, hub.ErrNotFound)
	}
	post, err := d.publisher.Publish(ctx, draft)

	var invalid hub.ValidationErrors
	switch {
	case errors.As(err, &invalid):
		for _, m := range invalid.Messages() {
			warnf(out, "  %s\n", m)
		}
		return errors.New("draft is not ready to publish")
	case errors.Is(err, hub.ErrDraftNotRemoved):
		warnf(out, "Published, but the draft could not be removed: %v\n", err)
	case err != nil:
		return err
	}
	okf(out, "Published %q at %s\n", post.Title, post.Link())
	return nil
}
