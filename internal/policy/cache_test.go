package policy

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheReflectsWriteAfterMtimeBump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list")
	if err := os.WriteFile(path, []byte("/a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCache()
	got := c.Get(path)
	if len(got) != 1 || got[0] != "/a" {
		t.Fatalf("got %v, want [/a]", got)
	}

	// Force the mtime forward; some filesystems have coarse mtime
	// resolution, so bump explicitly rather than relying on a sleep.
	future := time.Now().Add(time.Hour)
	if err := os.WriteFile(path, []byte("/a\n/b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	got = c.Get(path)
	if len(got) != 2 || got[1] != "/b" {
		t.Fatalf("got %v, want [/a /b] after refresh", got)
	}
}

func TestCacheReturnsStaleOnStatFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list")
	if err := os.WriteFile(path, []byte("/a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCache()
	first := c.Get(path)

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	second := c.Get(path)
	if len(second) != len(first) || second[0] != first[0] {
		t.Fatalf("got %v, want stale %v after removal", second, first)
	}
}

func TestCacheMissingFileReturnsNil(t *testing.T) {
	c := NewCache()
	got := c.Get("/nonexistent/path/xyz")
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}
