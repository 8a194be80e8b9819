package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/edurancehub/hub/storage"
)

// Storage keys of the persisted collections.
const (
	DraftsKey = "blog_drafts"
	PostsKey  = "blog_posts"
)

// schemaVersion is the envelope version written by this code. Version 0 is
// the untagged bare-array format, read for compatibility and upgraded on write.
const schemaVersion = 1

type envelope[T any] struct {
	Version int `json:"version"`
	Records []T `json:"records"`
}

// collection is an ordered list of records stored as one value under one key.
type collection[T any] struct {
	store storage.Storage
	key   string
}

// load returns the stored records. A missing key is an empty collection.
func (c collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}
	return decodeRecords[T](c.key, raw)
}

// save replaces the stored records.
func (c collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(envelope[T]{Version: schemaVersion, Records: records})
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}

func decodeRecords[T any](key string, raw []byte) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	if raw[0] == '[' {
		var records []T
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		return records, nil
	}
	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if env.Version > schemaVersion {
		return nil, fmt.Errorf("decode %s: unsupported version %d", key, env.Version)
	}
	return env.Records, nil
}
