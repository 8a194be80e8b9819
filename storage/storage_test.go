package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// runContract exercises the behaviour every backend must share.
func runContract(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "blog_drafts", []byte(`{"version":1}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := s.Get(ctx, "blog_drafts")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"version":1}` {
		t.Errorf("Get = %q, want %q", got, `{"version":1}`)
	}

	if err := s.Set(ctx, "blog_drafts", []byte(`[]`)); err != nil {
		t.Fatalf("Set overwrite failed: %v", err)
	}
	got, err = s.Get(ctx, "blog_drafts")
	if err != nil {
		t.Fatalf("Get after overwrite failed: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Get after overwrite = %q, want %q", got, `[]`)
	}

	if err := s.Delete(ctx, "blog_drafts"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, "blog_drafts"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete err = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "blog_drafts"); err != nil {
		t.Errorf("Delete of missing key should not error, got %v", err)
	}
}

func TestMemoryContract(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	runContract(t, m)
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	value := []byte("abc")
	if err := m.Set(ctx, "k", value); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value[0] = 'x'
	got, _ := m.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value changed through caller slice: %q", got)
	}
	got[1] = 'y'
	again, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value changed through returned slice: %q", again)
	}
}

func TestMemoryClosed(t *testing.T) {
	m := NewMemory()
	m.Close()
	if err := m.Set(context.Background(), "k", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after Close err = %v, want ErrClosed", err)
	}
}

func TestSQLiteContract(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "hub.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()
	runContract(t, s)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hub.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := s.Set(ctx, "blog_posts", []byte("persisted")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	s.Close()

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	got, err := s.Get(ctx, "blog_posts")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("Get = %q, want %q", got, "persisted")
	}
}

func TestRedisContract(t *testing.T) {
	url := os.Getenv("HUB_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: HUB_TEST_REDIS_URL not set")
	}
	r, err := OpenRedis(context.Background(), url, "hubtest:")
	if err != nil {
		t.Fatalf("OpenRedis failed: %v", err)
	}
	defer r.Close()
	runContract(t, r)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Config{Driver: "memory"})
	if err != nil {
		t.Fatalf("Open(memory) failed: %v", err)
	}
	if _, ok := s.(*Memory); !ok {
		t.Errorf("Open(memory) = %T, want *Memory", s)
	}
	s.Close()

	s, err = Open(ctx, Config{Path: filepath.Join(t.TempDir(), "hub.db")})
	if err != nil {
		t.Fatalf("Open(default) failed: %v", err)
	}
	if _, ok := s.(*SQLite); !ok {
		t.Errorf("Open(default) = %T, want *SQLite", s)
	}
	s.Close()

	if _, err := Open(ctx, Config{Driver: "etcd"}); err == nil {
		t.Error("Open(etcd) should fail")
	}
	if _, err := Open(ctx, Config{Driver: "sqlite"}); err == nil {
		t.Error("Open(sqlite) without path should fail")
	}
	if _, err := Open(ctx, Config{Driver: "redis"}); err == nil {
		t.Error("Open(redis) without URL should fail")
	}
}
