package hub

import (
	"context"
	"sync"

	"github.com/edurancehub/hub/storage"
)

// PublishedStore keeps published posts under PostsKey. Reads append the
// built-in catalog, which ships with the binary and is never written back.
type PublishedStore struct {
	mu      sync.Mutex
	coll    collection[Post]
	builtin []Post
	opts    storeOptions
}

// NewPublishedStore returns a PublishedStore over s whose reads include builtin.
func NewPublishedStore(s storage.Storage, builtin []Post, opts ...StoreOption) *PublishedStore {
	return &PublishedStore{
		coll:    collection[Post]{store: s, key: PostsKey},
		builtin: builtin,
		opts:    newStoreOptions(opts),
	}
}

// List returns the persisted posts followed by the built-in ones. Unreadable
// storage degrades to the built-in posts alone.
func (s *PublishedStore) List(ctx context.Context) []Post {
	posts, _ := s.Load(ctx)
	return posts
}

// Load is List that also reports the storage error behind a degraded result.
func (s *PublishedStore) Load(ctx context.Context) ([]Post, error) {
	posts, err := s.coll.load(ctx)
	if err != nil {
		s.opts.logger.Error("list published posts", "error", err)
		posts = nil
	}
	out := make([]Post, 0, len(posts)+len(s.builtin))
	out = append(out, posts...)
	out = append(out, s.builtin...)
	return out, err
}

// Insert appends p to the persisted posts. It does not check for an existing
// post with the same ID or slug.
func (s *PublishedStore) Insert(ctx context.Context, p Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.coll.load(ctx)
	if err != nil {
		s.opts.logger.Error("insert post: existing posts unreadable", "id", p.ID, "error", err)
		return err
	}
	posts = append(posts, p)
	if err := s.coll.save(ctx, posts); err != nil {
		s.opts.logger.Error("insert post", "id", p.ID, "error", err)
		return err
	}
	return nil
}
