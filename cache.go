package hub

import (
	"context"
	"sync"
	"time"
)

// PostCache is an in-memory, newest-first view of all published posts with a TTL.
type PostCache struct {
	mu       sync.RWMutex
	posts    []Post
	fetched  time.Time
	ttl      time.Duration
	store    *PublishedStore
	fallback Post
}

// NewPostCache creates a PostCache backed by the given store. fallback is the
// post shown as featured when no other post is flagged.
func NewPostCache(s *PublishedStore, fallback Post, ttl time.Duration) *PostCache {
	return &PostCache{store: s, fallback: fallback, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ensureLoaded returns cached posts after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
// A degraded load is returned but never cached.
func (c *PostCache) ensureLoaded(ctx context.Context) []Post {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts
	}
	posts, err := c.store.Load(ctx)
	if err != nil {
		return SortNewestFirst(posts)
	}
	c.posts = SortNewestFirst(posts)
	c.fetched = time.Now()
	return c.posts
}

// ListPosts returns published posts newest first, optionally filtered by category.
func (c *PostCache) ListPosts(ctx context.Context, category string) []Post {
	posts := c.ensureLoaded(ctx)
	if category == "" {
		return posts
	}
	return FilterByCategory(posts, category)
}

// ListCategories returns the categories that have at least one post.
func (c *PostCache) ListCategories(ctx context.Context) []string {
	return Categories(c.ensureLoaded(ctx))
}

// GetPost returns a single published post by slug.
func (c *PostCache) GetPost(ctx context.Context, slug string) (Post, error) {
	p, ok := FindBySlug(c.ensureLoaded(ctx), slug)
	if !ok {
		return Post{}, ErrNotFound
	}
	return p, nil
}

// Related returns up to limit posts related to current.
func (c *PostCache) Related(ctx context.Context, current Post, limit int) []Post {
	return RelatedPosts(current, c.ensureLoaded(ctx), limit)
}

// Featured returns the post to feature on the home page.
func (c *PostCache) Featured(ctx context.Context) Post {
	return FeaturedPost(c.ensureLoaded(ctx), c.fallback)
}
