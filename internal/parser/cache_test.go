// # internal/parser/cache_test.go
package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache_HitAndInvalidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.o")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := NewCache(8)
	if err != nil {
		t.Fatal(err)
	}

	obs := []Observation{{Symbol: "foo", Defined: true, Kind: KindFunction}}
	c.Put(path, obs)

	got, ok := c.Get(path)
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if len(got) != 1 || got[0].Symbol != "foo" {
		t.Errorf("Unexpected cached observations: %v", got)
	}

	// A content change (different size, newer mtime) invalidates the entry.
	time.Sleep(10 * time.Millisecond)
	if err := os.WriteFile(path, []byte("longer v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(path); ok {
		t.Error("Expected cache miss after file change")
	}
}

func TestCache_MissingFile(t *testing.T) {
	c, err := NewCache(8)
	if err != nil {
		t.Fatal(err)
	}

	c.Put("/nonexistent/a.o", []Observation{{Symbol: "foo"}})
	if _, ok := c.Get("/nonexistent/a.o"); ok {
		t.Error("Expected miss for nonexistent file")
	}
}
