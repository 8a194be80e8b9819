package views

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"

	"github.com/edurancehub/hub"
	"github.com/edurancehub/hub/blocks"
)

const excerptLength = 160

// Default returns the stock page set for cfg.
func Default(cfg hub.SiteConfig) hub.ViewFuncs {
	return hub.ViewFuncs{
		Home: func(featured hub.Post, posts []hub.Post, active string, categories []string) templ.Component {
			return Home(cfg, featured, posts, active, categories)
		},
		Post: func(post hub.Post, related []hub.Post) templ.Component {
			return PostPage(cfg, post, related)
		},
		AdminDashboard: func(drafts []hub.Draft, posts []hub.Post, notice, csrfToken string) templ.Component {
			return AdminDashboard(cfg, drafts, posts, notice, csrfToken)
		},
		NotFound: func() templ.Component {
			return Message(cfg, "Page not found", "The page you are looking for does not exist.")
		},
		ServerError: func() templ.Component {
			return Message(cfg, "Something went wrong", "Please try again in a moment.")
		},
	}
}

// Home lists posts newest first under the featured post, with category filters.
func Home(cfg hub.SiteConfig, featured hub.Post, posts []hub.Post, active string, categories []string) templ.Component {
	meta := hub.PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         hub.BuildURL(cfg.URL, ""),
		OGType:      "website",
	}
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		if active == "" && featured.Slug != "" {
			w.raw(`<section class="featured">`)
			writeCard(w, featured, "featured-post")
			w.raw(`</section>`)
		}

		w.raw(`<nav class="categories"><a`)
		w.attr("href", CategoryHref(""))
		w.attr("class", CategoryClass(active == ""))
		w.raw(`>All</a>`)
		for _, c := range categories {
			w.raw("<a")
			w.attr("href", CategoryHref(c))
			w.attr("class", CategoryClass(c == active))
			w.raw(">")
			w.text(c)
			w.raw("</a>")
		}
		w.raw(`</nav><section class="post-list">`)
		if len(posts) == 0 {
			w.raw(`<p class="empty">No posts yet.</p>`)
		}
		for _, p := range posts {
			writeCard(w, p, "post-card")
		}
		w.raw(`</section>`)
		return w.err
	})
	return Layout(cfg, meta, hub.WebsiteJsonLD(cfg), body)
}

func writeCard(w *writer, p hub.Post, class string) {
	w.raw("<article")
	w.attr("class", class)
	w.raw("><a")
	w.attr("href", p.Link())
	w.raw(">")
	if p.Image != "" {
		w.raw("<img")
		w.attr("src", p.Image)
		w.attr("alt", p.Title)
		w.raw(` loading="lazy"/>`)
	}
	w.raw("<h2>")
	w.text(p.Title)
	w.raw(`</h2></a><p class="meta">`)
	w.text(p.Category)
	w.raw(" · ")
	w.text(p.Date)
	w.raw(" · ")
	w.text(p.ReadTime)
	w.raw(`</p><p class="summary">`)
	w.text(excerpt(p.Description, excerptLength))
	w.raw("</p></article>")
}

// PostPage renders one published post with its related posts.
func PostPage(cfg hub.SiteConfig, post hub.Post, related []hub.Post) templ.Component {
	meta := hub.PageMeta{
		Title:       post.Title,
		Description: post.Description,
		URL:         hub.BuildURL(cfg.URL, "blog", post.Slug),
		OGType:      "article",
	}
	if post.Image != "" && hasHTTPPrefix(post.Image) {
		meta.Image = post.Image
	}
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<article class="post"><header><p class="category">`)
		w.text(post.Category)
		w.raw("</p><h1>")
		w.text(post.Title)
		w.raw(`</h1><p class="byline">`)
		w.text(post.Author)
		w.raw(" · <time>")
		w.text(post.Date)
		w.raw("</time> · ")
		w.text(post.ReadTime)
		w.raw("</p>")
		if post.Image != "" {
			w.raw(`<img class="hero"`)
			w.attr("src", post.Image)
			w.attr("alt", post.Title)
			w.raw("/>")
		}
		w.raw(`</header><div class="post-body">`)
		w.component(ctx, blocks.Render(post.Content))
		w.raw(`</div>`)
		if len(post.Tags) > 0 {
			w.raw(`<ul class="tags">`)
			for _, t := range post.Tags {
				w.raw("<li>")
				w.text(t)
				w.raw("</li>")
			}
			w.raw("</ul>")
		}
		w.raw("</article>")
		if len(related) > 0 {
			w.raw(`<aside class="related"><h2>Related posts</h2>`)
			for _, p := range related {
				writeCard(w, p, "post-card")
			}
			w.raw("</aside>")
		}
		return w.err
	})
	return Layout(cfg, meta, hub.BlogPostingJsonLD(post, cfg), body)
}

// AdminDashboard lists drafts and published posts. The editor client talks to
// /admin/api and reads the CSRF token from data-csrf-token.
func AdminDashboard(cfg hub.SiteConfig, drafts []hub.Draft, posts []hub.Post, notice, csrfToken string) templ.Component {
	meta := hub.PageMeta{Title: "Admin"}
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<section class="admin"`)
		w.attr("data-csrf-token", csrfToken)
		w.raw(">")
		if notice != "" {
			w.raw(`<div class="notice" role="status">`)
			w.text(notice)
			w.raw("</div>")
		}
		w.raw(`<h1>Drafts</h1>`)
		if len(drafts) == 0 {
			w.raw(`<p class="empty">No drafts.</p>`)
		} else {
			w.raw(`<table class="drafts"><thead><tr><th>Title</th><th>Category</th><th>Last modified</th></tr></thead><tbody>`)
			for _, d := range drafts {
				w.raw("<tr")
				w.attr("data-id", d.ID)
				w.raw("><td>")
				title := d.Title
				if title == "" {
					title = "(untitled)"
				}
				w.text(title)
				w.raw("</td><td>")
				w.text(d.Category)
				w.raw("</td><td>")
				if !d.LastModified.IsZero() {
					w.text(d.LastModified.Local().Format("Jan 2, 2006 15:04"))
				}
				w.raw("</td></tr>")
			}
			w.raw("</tbody></table>")
		}
		w.raw(`<h2>Published</h2><ul class="published">`)
		for _, p := range posts {
			w.raw("<li><a")
			w.attr("href", p.Link())
			w.raw(">")
			w.text(p.Title)
			w.raw(`</a> <span class="date">`)
			w.text(p.Date)
			w.raw(`</span> <span class="tags">`)
			w.text(hub.JoinTags(p.Tags))
			w.raw("</span></li>")
		}
		w.raw("</ul>")
		writeEditorOptions(w, hub.DefaultEditorOptions())
		w.raw("</section>")
		return w.err
	})
	return Layout(cfg, meta, "", body)
}

// writeEditorOptions emits the category suggestions and the block kind
// picker; each kind option carries its starter block as JSON.
func writeEditorOptions(w *writer, opts hub.EditorOptions) {
	w.raw(`<datalist id="categories">`)
	for _, c := range opts.Categories {
		w.raw("<option")
		w.attr("value", c.Value)
		w.raw(">")
		w.text(c.Name)
		w.raw("</option>")
	}
	w.raw(`</datalist><select id="content-kind" name="kind">`)
	for _, k := range opts.ContentTypes {
		tmpl, err := json.Marshal(opts.Templates[hub.ContentKind(k.Value)])
		if err != nil {
			w.err = err
			return
		}
		w.raw("<option")
		w.attr("value", k.Value)
		w.attr("data-template", string(tmpl))
		w.raw(">")
		w.text(k.Name)
		w.raw("</option>")
	}
	w.raw("</select>")
}

// Message renders a short full-page notice, used for error pages.
func Message(cfg hub.SiteConfig, title, text string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<section class="message"><h1>`)
		w.text(title)
		w.raw("</h1><p>")
		w.text(text)
		w.raw(`</p><p><a href="/">Back to the blog</a></p></section>`)
		return w.err
	})
	return Layout(cfg, hub.PageMeta{Title: title}, "", body)
}
