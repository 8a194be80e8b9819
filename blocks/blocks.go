// Package blocks renders post bodies (ordered content blocks) as HTML.
//
// Paragraphs, quotes, list items and image captions accept inline Markdown;
// the generated HTML is sanitized before it is written.
package blocks

import (
	"bytes"
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/edurancehub/hub"
)

var (
	md        = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

// Render returns a component that writes the blocks in order.
func Render(content []hub.ContentBlock) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		for _, b := range content {
			writeBlock(&buf, b)
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeBlock(buf *bytes.Buffer, b hub.ContentBlock) {
	switch b.Kind {
	case hub.KindHeading:
		buf.WriteString("<h2>")
		buf.WriteString(html.EscapeString(strings.TrimSpace(b.Text)))
		buf.WriteString("</h2>")
	case hub.KindParagraph:
		buf.WriteString("<p>")
		buf.WriteString(Inline(b.Text))
		buf.WriteString("</p>")
	case hub.KindQuote:
		buf.WriteString("<blockquote><p>")
		buf.WriteString(Inline(b.Text))
		buf.WriteString("</p></blockquote>")
	case hub.KindList:
		buf.WriteString("<ul>")
		for _, item := range b.Items {
			if strings.TrimSpace(item) == "" {
				continue
			}
			buf.WriteString("<li>")
			buf.WriteString(Inline(item))
			buf.WriteString("</li>")
		}
		buf.WriteString("</ul>")
	case hub.KindImage:
		src := strings.TrimSpace(b.Text)
		if !safeImageSource(src) {
			return
		}
		buf.WriteString(`<figure class="post-image"><img src="`)
		buf.WriteString(html.EscapeString(src))
		buf.WriteString(`" alt="`)
		buf.WriteString(html.EscapeString(strings.TrimSpace(b.Caption)))
		buf.WriteString(`" loading="lazy"/>`)
		if c := strings.TrimSpace(b.Caption); c != "" {
			buf.WriteString("<figcaption>")
			buf.WriteString(Inline(c))
			buf.WriteString("</figcaption>")
		}
		buf.WriteString("</figure>")
	case hub.KindCode:
		buf.WriteString(`<pre class="code-block"><code>`)
		buf.WriteString(html.EscapeString(b.Text))
		buf.WriteString("</code></pre>")
	}
}

// Inline renders one line of inline Markdown (emphasis, links, code spans)
// to sanitized HTML without a wrapping paragraph.
func Inline(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return html.EscapeString(text)
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return sanitizer.Sanitize(out)
}

// safeImageSource accepts site-relative paths, http(s) URLs and embedded
// image data URIs.
func safeImageSource(src string) bool {
	lower := strings.ToLower(src)
	switch {
	case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"):
		return true
	case strings.HasPrefix(lower, "data:image/"):
		return true
	case strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//"):
		return true
	}
	return false
}
