// # internal/parser/cache.go
package parser

import (
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheEntry struct {
	modTime time.Time
	size    int64
	obs     []Observation
}

// Cache memoizes classified symbol tables per path so watch-mode re-runs only
// re-read the files that actually changed. Entries are validated against the
// file's current mtime and size.
type Cache struct {
	entries *lru.Cache[string, cacheEntry]
}

func NewCache(capacity int) (*Cache, error) {
	entries, err := lru.New[string, cacheEntry](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

func (c *Cache) Get(path string) ([]Observation, bool) {
	entry, ok := c.entries.Get(path)
	if !ok {
		return nil, false
	}
	info, err := os.Stat(path)
	if err != nil || !info.ModTime().Equal(entry.modTime) || info.Size() != entry.size {
		c.entries.Remove(path)
		return nil, false
	}
	return entry.obs, true
}

func (c *Cache) Put(path string, obs []Observation) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	c.entries.Add(path, cacheEntry{modTime: info.ModTime(), size: info.Size(), obs: obs})
}

func (c *Cache) Len() int {
	return c.entries.Len()
}
