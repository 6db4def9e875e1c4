package policy

import (
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// entry is the cache's owned (path, mtime, contents) tuple.
type entry struct {
	mtime    time.Time
	contents List
}

// Cache is a cached, mtime-aware list loader. Get refreshes its entry for
// a path only when the file's mtime has advanced since the last read; a
// stat failure returns the previously cached contents unchanged.
//
// Cache is read-mostly: lookups that hit an already-loaded path never take
// the mutex, matching the "reads should not require locking" guidance for
// the process-wide singletons this type backs. Snapshot swaps are
// serialized with mu; the stat and file read that precede a swap are not.
type Cache struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[map[string]entry]
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache {
	c := &Cache{}
	empty := make(map[string]entry)
	c.snapshot.Store(&empty)
	return c
}

// Get returns the cached List for path, reloading it from disk if the
// file's mtime has advanced since the last successful read. If the file
// cannot be stat'd, the previously cached contents (possibly nil) are
// returned unchanged.
func (c *Cache) Get(path string) List {
	snap := *c.snapshot.Load()
	cur, ok := snap[path]

	info, err := os.Stat(path)
	if err != nil {
		if ok {
			return cur.contents
		}
		return nil
	}

	mtime := info.ModTime()
	if ok && !mtime.After(cur.mtime) {
		return cur.contents
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if ok {
			return cur.contents
		}
		return nil
	}

	fresh := entry{mtime: mtime, contents: ParseList(raw)}

	c.mu.Lock()
	defer c.mu.Unlock()

	old := *c.snapshot.Load()
	next := make(map[string]entry, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[path] = fresh
	c.snapshot.Store(&next)

	return fresh.contents
}
