package hub

import (
	"encoding/xml"
	"time"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func buildSitemap(base string, posts []Post) sitemapURLSet {
	urls := []sitemapURL{{Loc: BuildURL(base, "")}}
	for _, p := range posts {
		u := sitemapURL{Loc: BuildURL(base, "blog", p.Slug)}
		if t, err := time.Parse(DateLayout, p.Date); err == nil {
			u.LastMod = t.Format(time.DateOnly)
		}
		urls = append(urls, u)
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	sm := buildSitemap(a.Config.URL, a.Cache.ListPosts(c.Request().Context(), ""))
	return writeXML(c, "application/xml; charset=utf-8", sm)
}
