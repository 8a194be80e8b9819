package hub

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/edurancehub/hub/storage"
)

var errBoom = errors.New("boom")

// faultyStorage wraps a Storage and fails the selected operations.
type faultyStorage struct {
	storage.Storage
	failGet    bool
	failSet    bool
	failSetKey string // when set, only writes to this key fail
}

func (f *faultyStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		return nil, errBoom
	}
	return f.Storage.Get(ctx, key)
}

func (f *faultyStorage) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet && (f.failSetKey == "" || f.failSetKey == key) {
		return errBoom
	}
	return f.Storage.Set(ctx, key, value)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedClock returns a clock that starts at t and advances one second per call.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time {
		now := t
		t = t.Add(time.Second)
		return now
	}
}

var testNow = time.Date(2024, time.March, 20, 9, 30, 0, 0, time.UTC)

func testOptions() []StoreOption {
	return []StoreOption{WithClock(fixedClock(testNow)), WithLogger(quietLogger())}
}

func validOverview() Overview {
	return Overview{
		Title:       "My First Post",
		Description: "A short introduction.",
		Image:       "https://example.com/cover.png",
		Author:      "Ada",
		Category:    "Education",
		Tags:        []string{"intro", "study"},
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func validContent() []ContentBlock {
	return []ContentBlock{
		{Kind: KindHeading, Text: "Welcome"},
		{Kind: KindParagraph, Text: words(50)},
	}
}

func mustSaveDraft(t *testing.T, s *DraftStore, d Draft) Draft {
	t.Helper()
	saved, err := s.Save(context.Background(), d)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	return saved
}
