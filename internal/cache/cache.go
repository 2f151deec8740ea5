// Package cache keeps the most recently parsed bookmarks document in memory.
package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikbrunner/bmx/internal/importer"
	"github.com/nikbrunner/bmx/internal/model"
)

// Entry is one parsed document. Entries are never modified after creation.
type Entry struct {
	ID       string
	FileName string
	HTML     string
	Store    *model.Store
	ParsedAt time.Time
}

// Cache holds a single Entry and replaces it as a whole when another file
// is loaded.
type Cache struct {
	mu    sync.Mutex
	entry *Entry
	now   func() time.Time
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{now: time.Now}
}

// Get returns the cached entry for name, if that is the file currently held.
func (c *Cache) Get(name string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil || c.entry.FileName != name {
		return Entry{}, false
	}
	return *c.entry, true
}

// Load returns the cached entry for name, or reads and parses the file and
// makes it the cached entry. A failed read leaves the cache untouched.
func (c *Cache) Load(name string, read func() (string, error)) (Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry != nil && c.entry.FileName == name {
		return *c.entry, nil
	}

	src, err := read()
	if err != nil {
		return Entry{}, err
	}

	c.entry = &Entry{
		ID:       uuid.NewString(),
		FileName: name,
		HTML:     src,
		Store:    importer.Parse(src),
		ParsedAt: c.now(),
	}
	return *c.entry, nil
}

// Invalidate drops the cached entry for name, e.g. after it was overwritten.
// An empty name drops whatever is cached.
func (c *Cache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry != nil && (name == "" || c.entry.FileName == name) {
		c.entry = nil
	}
}
