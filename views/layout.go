package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/edurancehub/hub"
)

// Layout wraps body in the site shell: head with SEO metadata, header, footer.
// jsonLD is written verbatim into an ld+json script when non-empty.
func Layout(cfg hub.SiteConfig, meta hub.PageMeta, jsonLD string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		title := meta.Title
		if title == "" {
			title = cfg.Name
		} else if title != cfg.Name {
			title += " | " + cfg.Name
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		w.raw("<title>")
		w.text(title)
		w.raw("</title>")
		if meta.Description != "" {
			w.raw(`<meta name="description"`)
			w.attr("content", meta.Description)
			w.raw("/>")
		}
		if meta.URL != "" {
			w.raw(`<link rel="canonical"`)
			w.attr("href", meta.URL)
			w.raw("/>")
			w.raw(`<meta property="og:url"`)
			w.attr("content", meta.URL)
			w.raw("/>")
		}
		w.raw(`<meta property="og:title"`)
		w.attr("content", title)
		w.raw(`/><meta property="og:type"`)
		w.attr("content", ogType)
		w.raw("/>")
		if meta.Image != "" {
			w.raw(`<meta property="og:image"`)
			w.attr("content", meta.Image)
			w.raw("/>")
		}
		w.raw(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"`)
		w.attr("title", cfg.Name)
		w.raw("/>")
		if jsonLD != "" {
			w.raw(`<script type="application/ld+json">`)
			w.raw(jsonLD)
			w.raw("</script>")
		}
		w.raw(`</head><body><header class="site-header"><a href="/" class="brand">`)
		w.text(cfg.Name)
		w.raw(`</a></header><main>`)
		w.component(ctx, body)
		w.raw(`</main><footer class="site-footer"><p>`)
		w.text(cfg.Description)
		w.raw(`</p></footer></body></html>`)
		return w.err
	})
}
