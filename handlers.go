package hub

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	defaultRelatedLimit = 3
	maxRelatedLimit     = 12
)

func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	category := c.QueryParam("category")
	posts := a.Cache.ListPosts(ctx, category)
	categories := a.Cache.ListCategories(ctx)
	return Render(c, a.Views.Home(a.Cache.Featured(ctx), posts, category, categories))
}

func (a *App) handlePost(c echo.Context) error {
	ctx := c.Request().Context()
	post, err := a.Cache.GetPost(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, a.Views.Post(post, a.Cache.Related(ctx, post, defaultRelatedLimit)))
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s\n", strings.TrimRight(a.Config.URL, "/")+"/sitemap.xml")
	return c.String(http.StatusOK, body)
}

func (a *App) handleAPIPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Cache.ListPosts(c.Request().Context(), c.QueryParam("category")))
}

func (a *App) handleAPIPost(c echo.Context) error {
	post, err := a.Cache.GetPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Post not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (a *App) handleAPIRelated(c echo.Context) error {
	ctx := c.Request().Context()
	post, err := a.Cache.GetPost(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Post not found")
		}
		return err
	}
	limit := defaultRelatedLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return respondError(c, http.StatusBadRequest, "limit must be a positive number")
		}
		limit = min(n, maxRelatedLimit)
	}
	return c.JSON(http.StatusOK, a.Cache.Related(ctx, post, limit))
}

func (a *App) handleAPIFeatured(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Cache.Featured(c.Request().Context()))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if isAPIPath(c.Request().URL.Path) {
		msg := http.StatusText(code)
		if ok && code < 500 {
			if s, isString := he.Message.(string); isString {
				msg = s
			}
		}
		if code >= 500 {
			a.Logger.Error("server error", "path", c.Request().URL.Path, "error", err)
		}
		_ = respondError(c, code, msg)
		return
	}
	if code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	if code >= 500 {
		a.Logger.Error("server error", "path", c.Request().URL.Path, "error", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func isAPIPath(p string) bool {
	return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/admin/api/")
}
