package hub

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/articles.yaml
var builtinCatalog []byte

// Catalog is the set of articles that ship with the site.
type Catalog struct {
	Featured Post   `yaml:"featured"`
	Posts    []Post `yaml:"posts"`
}

// All returns the featured article followed by the other built-in posts.
func (c Catalog) All() []Post {
	out := make([]Post, 0, len(c.Posts)+1)
	if c.Featured.ID != "" {
		out = append(out, c.Featured)
	}
	return append(out, c.Posts...)
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	for i, p := range c.All() {
		if p.ID == "" || p.Slug == "" {
			return Catalog{}, fmt.Errorf("parse catalog: post %d has no id or slug", i)
		}
	}
	return c, nil
}

// BuiltinCatalog returns the catalog embedded in the binary.
func BuiltinCatalog() Catalog {
	c, err := ParseCatalog(builtinCatalog)
	if err != nil {
		panic(err)
	}
	return c
}
