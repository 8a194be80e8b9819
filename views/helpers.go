package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/edurancehub/hub"
)

// writer collects the first write error so component bodies can stay linear.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

// attr writes name="value" with the value escaped, preceded by a space.
func (w *writer) attr(name, value string) {
	w.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (w *writer) component(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// CategoryClass returns CSS classes for a category pill, with active variant.
func CategoryClass(active bool) string {
	base := "inline-flex items-center rounded-full border px-3 py-1 text-xs font-semibold uppercase tracking-wide transition"
	if active {
		base += " bg-ink text-white"
	}
	return base
}

// CategoryHref links the home page filtered to one category.
func CategoryHref(category string) string {
	if category == "" {
		return "/"
	}
	return "/?category=" + hub.PathEscape(category)
}

func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}

func hasHTTPPrefix(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
