package hub

import (
	"testing"
)

func TestBuiltinCatalog(t *testing.T) {
	c := BuiltinCatalog()
	if !c.Featured.Featured {
		t.Error("featured article should be flagged featured")
	}
	all := c.All()
	if len(all) != len(c.Posts)+1 {
		t.Fatalf("All() = %d posts, want %d", len(all), len(c.Posts)+1)
	}
	seen := make(map[string]bool)
	for _, p := range all {
		if seen[p.Slug] {
			t.Errorf("duplicate slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if PostTime(p).IsZero() {
			t.Errorf("%s: date %q does not parse", p.ID, p.Date)
		}
		if errs := ValidateOverview(p.Overview); len(errs) > 0 {
			t.Errorf("%s: overview invalid: %v", p.ID, errs.Messages())
		}
		if errs := ValidateContent(p.Content); len(errs) > 0 {
			t.Errorf("%s: content invalid: %v", p.ID, errs.Messages())
		}
	}
}

func TestParseCatalogRequiresIDAndSlug(t *testing.T) {
	_, err := ParseCatalog([]byte("posts:\n  - id: only-id\n    title: Missing slug\n"))
	if err == nil {
		t.Fatal("expected error for post without slug")
	}
	if _, err := ParseCatalog([]byte("posts: [")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
