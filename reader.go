package hub

import (
	"sort"
	"strings"
	"time"
)

// DateLayout is the long-form date stamped on published posts, e.g. "March 15, 2024".
const DateLayout = "January 2, 2006"

// PostTime parses p.Date. Posts with an unparseable date sort as the zero time.
func PostTime(p Post) time.Time {
	t, err := time.Parse(DateLayout, strings.TrimSpace(p.Date))
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortNewestFirst returns a copy of posts ordered by date, newest first.
// Posts with equal dates keep their relative order.
func SortNewestFirst(posts []Post) []Post {
	out := make([]Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		return PostTime(out[i]).After(PostTime(out[j]))
	})
	return out
}

// FindBySlug returns the first post with the given slug.
func FindBySlug(posts []Post, slug string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// FilterByCategory returns the posts in category, compared case-insensitively.
func FilterByCategory(posts []Post, category string) []Post {
	want := normalizeCategory(category)
	var out []Post
	for _, p := range posts {
		if normalizeCategory(p.Category) == want {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories of posts, sorted.
func Categories(posts []Post) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range posts {
		c := strings.TrimSpace(p.Category)
		if c == "" {
			continue
		}
		key := normalizeCategory(c)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// RelatedPosts returns up to limit posts other than current, preferring those
// in the same category and backfilling with the rest. posts is expected to be
// ordered newest first, and that order is kept within each group.
func RelatedPosts(current Post, posts []Post, limit int) []Post {
	if limit <= 0 {
		return nil
	}
	var same, other []Post
	for _, p := range posts {
		if p.ID == current.ID {
			continue
		}
		if p.Category == current.Category {
			same = append(same, p)
		} else {
			other = append(other, p)
		}
	}
	related := append(same, other...)
	if len(related) > limit {
		related = related[:limit]
	}
	return related
}

// FeaturedPost returns the most recently dated featured post other than
// fallback, or fallback when there is none.
func FeaturedPost(posts []Post, fallback Post) Post {
	var best Post
	found := false
	for _, p := range posts {
		if !p.Featured || p.ID == fallback.ID {
			continue
		}
		if !found || PostTime(p).After(PostTime(best)) {
			best = p
			found = true
		}
	}
	if found {
		return best
	}
	return fallback
}

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
