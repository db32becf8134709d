// Package textcache provides a bounded in-memory cache for OCR text files.
// Entries are keyed by source path and modification time, so a rewritten
// file misses naturally; Invalidate drops a path's entry explicitly after
// the caller corrects the underlying text.
package textcache

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize bounds the cache to roughly one batch of scanned pages.
const DefaultSize = 128

type key struct {
	path  string
	mtime int64
}

// Cache is a bounded LRU of file contents. Safe for concurrent use.
type Cache struct {
	lru *lru.Cache[key, string]
}

// New returns a cache holding at most size entries; size <= 0 falls back to
// DefaultSize.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	inner, err := lru.New[key, string](size)
	if err != nil {
		return nil, fmt.Errorf("create text cache: %w", err)
	}
	return &Cache{lru: inner}, nil
}

// Read returns the contents of path, from cache when the file has not been
// modified since it was last read.
func (c *Cache) Read(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	k := key{path: path, mtime: info.ModTime().UnixNano()}

	if text, ok := c.lru.Get(k); ok {
		return text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text := string(data)
	c.lru.Add(k, text)
	return text, nil
}

// Invalidate drops every cached entry for path, regardless of the
// modification time it was cached under.
func (c *Cache) Invalidate(path string) {
	for _, k := range c.lru.Keys() {
		if k.path == path {
			c.lru.Remove(k)
		}
	}
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
