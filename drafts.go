package hub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/edurancehub/hub/storage"
)

// StoreOption configures a DraftStore, PublishedStore or Publisher.
type StoreOption func(*storeOptions)

type storeOptions struct {
	now    func() time.Time
	logger *slog.Logger
}

func newStoreOptions(opts []StoreOption) storeOptions {
	o := storeOptions{now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces time.Now, for deterministic timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(o *storeOptions) {
		o.now = now
	}
}

// WithLogger sets the logger used to report storage failures.
func WithLogger(l *slog.Logger) StoreOption {
	return func(o *storeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// DraftStore keeps in-progress posts under DraftsKey. Lookups scan the list.
type DraftStore struct {
	mu   sync.Mutex // serializes read-modify-write cycles within this process
	coll collection[Draft]
	opts storeOptions
}

// NewDraftStore returns a DraftStore over s.
func NewDraftStore(s storage.Storage, opts ...StoreOption) *DraftStore {
	return &DraftStore{
		coll: collection[Draft]{store: s, key: DraftsKey},
		opts: newStoreOptions(opts),
	}
}

// Save inserts d, or replaces the draft with the same ID. A draft without an
// ID gets one. LastModified is always set to the current time. On failure the
// stored drafts are left as they were and the error is returned.
func (s *DraftStore) Save(ctx context.Context, d Draft) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drafts, err := s.coll.load(ctx)
	if err != nil {
		s.opts.logger.Error("save draft: existing drafts unreadable", "id", d.ID, "error", err)
		return Draft{}, err
	}
	if d.ID == "" {
		d.ID = GenerateID()
	}
	d.LastModified = s.opts.now().UTC()

	replaced := false
	for i := range drafts {
		if drafts[i].ID == d.ID {
			drafts[i] = d
			replaced = true
			break
		}
	}
	if !replaced {
		drafts = append(drafts, d)
	}
	if err := s.coll.save(ctx, drafts); err != nil {
		s.opts.logger.Error("save draft", "id", d.ID, "error", err)
		return Draft{}, err
	}
	return d, nil
}

// List returns every draft in stored order. Unreadable storage yields an empty list.
func (s *DraftStore) List(ctx context.Context) []Draft {
	drafts, err := s.coll.load(ctx)
	if err != nil {
		s.opts.logger.Error("list drafts", "error", err)
		return []Draft{}
	}
	if drafts == nil {
		return []Draft{}
	}
	return drafts
}

// Get returns the draft with the given ID.
func (s *DraftStore) Get(ctx context.Context, id string) (Draft, bool) {
	if id == "" {
		return Draft{}, false
	}
	for _, d := range s.List(ctx) {
		if d.ID == id {
			return d, true
		}
	}
	return Draft{}, false
}

// Delete removes the draft with the given ID. Deleting a missing draft is a no-op.
func (s *DraftStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drafts, err := s.coll.load(ctx)
	if err != nil {
		s.opts.logger.Error("delete draft: existing drafts unreadable", "id", id, "error", err)
		return err
	}
	kept := drafts[:0]
	for _, d := range drafts {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(drafts) {
		return nil
	}
	if err := s.coll.save(ctx, kept); err != nil {
		s.opts.logger.Error("delete draft", "id", id, "error", err)
		return err
	}
	return nil
}
