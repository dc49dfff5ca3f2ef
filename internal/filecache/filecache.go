// Package filecache reads component source files through memory-mapped I/O,
// falling back to a plain read when a file can't be mapped (zero-length
// files, or a filesystem that doesn't support mmap). It is grounded on
// gnana997/uispec's pkg/util.FileCache, trimmed to the one operation this
// repository's compile loop needs — byte access to a whole file — and
// without its memory/file-count limits, which exist there to bound an
// always-resident indexer cache; this cache is scoped to one compile or
// watch run.
package filecache

import (
	"fmt"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// Cache memory-maps source files on first access and keeps them mapped
// until Close. Safe for concurrent use: reads take an RLock, loads take a
// Lock, with double-checked locking so two goroutines racing to load the
// same path only map it once.
type Cache struct {
	mu       sync.RWMutex
	mapped   map[string]mmap.MMap
	files    map[string]*os.File
	fallback map[string][]byte
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		mapped:   make(map[string]mmap.MMap),
		files:    make(map[string]*os.File),
		fallback: make(map[string][]byte),
	}
}

// Read returns path's contents, mapping the file on first access. The
// returned slice is only valid until Close; callers that need to retain
// the bytes past that point must copy them.
func (c *Cache) Read(path string) ([]byte, error) {
	c.mu.RLock()
	if data, ok := c.mapped[path]; ok {
		c.mu.RUnlock()
		return data, nil
	}
	if data, ok := c.fallback[path]; ok {
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have loaded path while we waited for the lock.
	if data, ok := c.mapped[path]; ok {
		return data, nil
	}
	if data, ok := c.fallback[path]; ok {
		return data, nil
	}

	return c.load(path)
}

// load must be called with mu held for writing.
func (c *Cache) load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("filecache: open %s: %w", path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("filecache: stat %s: %w", path, err)
	}
	if stat.Size() == 0 {
		f.Close()
		c.fallback[path] = nil
		return nil, nil
	}

	mapped, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		// Fall back to a plain read; a file too small or on an
		// unsupported filesystem still needs to compile.
		data, readErr := os.ReadFile(path)
		f.Close()
		if readErr != nil {
			return nil, fmt.Errorf("filecache: mmap %s failed (%v) and fallback read failed: %w", path, err, readErr)
		}
		c.fallback[path] = data
		return data, nil
	}

	c.mapped[path] = mapped
	c.files[path] = f
	return mapped, nil
}

// Len reports how many distinct files are currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.mapped) + len(c.fallback)
}

// Close unmaps every mapped file and closes its descriptor. The Cache is
// unusable afterwards.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for path, data := range c.mapped {
		if err := data.Unmap(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("filecache: unmap %s: %w", path, err)
		}
	}
	for path, f := range c.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("filecache: close %s: %w", path, err)
		}
	}
	c.mapped = make(map[string]mmap.MMap)
	c.files = make(map[string]*os.File)
	c.fallback = make(map[string][]byte)
	return firstErr
}
