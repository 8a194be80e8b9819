package hub

import (
	"encoding/json"
	"fmt"
	"time"
)

// ContentKind names the kind of a content block.
type ContentKind string

const (
	KindHeading   ContentKind = "heading"
	KindParagraph ContentKind = "paragraph"
	KindList      ContentKind = "list"
	KindQuote     ContentKind = "quote"
	KindImage     ContentKind = "image"
	KindCode      ContentKind = "code"
)

// Valid reports whether k is one of the known kinds.
func (k ContentKind) Valid() bool {
	switch k {
	case KindHeading, KindParagraph, KindList, KindQuote, KindImage, KindCode:
		return true
	}
	return false
}

// ContentBlock is one unit of article body. Lists carry Items; every other
// kind carries Text. For images Text is the image source and Caption is shown
// underneath.
type ContentBlock struct {
	Kind    ContentKind `yaml:"type"`
	Text    string      `yaml:"text,omitempty"`
	Items   []string    `yaml:"items,omitempty"`
	Caption string      `yaml:"caption,omitempty"`
}

// contentBlockJSON is the wire shape: content is a string, or an array for lists.
type contentBlockJSON struct {
	Kind    ContentKind     `json:"type"`
	Content json.RawMessage `json:"content"`
	Caption string          `json:"caption,omitempty"`
}

// MarshalJSON encodes lists with an array content and everything else with a string.
func (b ContentBlock) MarshalJSON() ([]byte, error) {
	var content any = b.Text
	if b.Kind == KindList {
		items := b.Items
		if items == nil {
			items = []string{}
		}
		content = items
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(contentBlockJSON{Kind: b.Kind, Content: raw, Caption: b.Caption})
}

// UnmarshalJSON accepts content as either a string or an array of strings.
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var w contentBlockJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*b = ContentBlock{Kind: w.Kind, Caption: w.Caption}
	if len(w.Content) == 0 || string(w.Content) == "null" {
		return nil
	}
	switch w.Content[0] {
	case '"':
		return json.Unmarshal(w.Content, &b.Text)
	case '[':
		return json.Unmarshal(w.Content, &b.Items)
	default:
		return fmt.Errorf("content block: content must be a string or an array, got %s", w.Content)
	}
}

// Overview is the metadata of a post, entered before the body is written.
type Overview struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Author      string   `json:"author" yaml:"author"`
	Category    string   `json:"category" yaml:"category"`
	Tags        []string `json:"tags" yaml:"tags"`
	ReadTime    string   `json:"readTime" yaml:"read_time"`
	Featured    bool     `json:"featured" yaml:"featured"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Draft is an in-progress post. ID is empty until the first save.
type Draft struct {
	ID   string `json:"id,omitempty"`
	Slug string `json:"slug,omitempty"`
	Overview
	Content []ContentBlock `json:"content"`

	// ReadTimeManual is set when the author typed ReadTime by hand; otherwise
	// it is re-estimated from Content.
	ReadTimeManual bool      `json:"readTimeManual,omitempty"`
	LastModified   time.Time `json:"lastModified"`
}

// Post is a published, read-only post. Date is set once at publish time.
type Post struct {
	ID   string `json:"id" yaml:"id"`
	Slug string `json:"slug" yaml:"slug"`
	Overview `yaml:",inline"`
	Content  []ContentBlock `json:"content" yaml:"content"`
	Date     string         `json:"date" yaml:"date"`
}

// Link returns the post's path on the site.
func (p Post) Link() string {
	return "/blog/" + p.Slug + "/"
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string // og:image
	OGType      string // "website" or "article"
}
