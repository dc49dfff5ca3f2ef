// Package compilecache caches a compiled component's summary by filename and
// content hash, so a caller that meets the same unchanged file twice does
// not re-derive its ComponentSummary. The cache is an in-memory LRU that
// lives as long as its Cache value; nothing is written to disk, so entries
// do not survive the process. It is grounded on gnana997/uispec's
// pkg/indexer.SymbolIndexer, which keys an equivalent LRU by path and evicts
// the same way.
package compilecache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kfly8/barefootjs-sub001/internal/cachekey"
	"github.com/kfly8/barefootjs-sub001/internal/loc"
	"github.com/kfly8/barefootjs-sub001/internal/symbols"
)

// DefaultSize is used when New is called with size <= 0.
const DefaultSize = 512

// Entry is what one cache slot holds: everything internal/compile.Result
// carries except the IR tree itself, which is cheap to rebuild and not
// worth keeping resident once a caller has consumed it.
type Entry struct {
	Summary  *symbols.ComponentSummary
	Warnings []loc.DiagnosticMessage
}

// Cache is an LRU of compiled component summaries keyed by
// internal/cachekey.FromFile(filename, source).
type Cache struct {
	lru *lru.Cache[string, *Entry]
}

// New creates a Cache holding at most size entries. size <= 0 uses
// DefaultSize.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	l, err := lru.New[string, *Entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Get looks up a previously cached Entry for filename+source. The cache key
// embeds the content hash, so a changed file is always a miss.
func (c *Cache) Get(filename, source string) (*Entry, bool) {
	return c.lru.Get(cachekey.FromFile(filename, source))
}

// Put records the Entry for filename+source, evicting the least recently
// used entry if the cache is full.
func (c *Cache) Put(filename, source string, entry *Entry) {
	c.lru.Add(cachekey.FromFile(filename, source), entry)
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge discards every cached entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}
