package resolve

import "github.com/atomicstack/tvgrid/internal/catalog"

type cacheEntry struct {
	display Display
	err     error
}

// Cache memoizes Resolve per tile id for a single requested aspect ratio. It is
// owned by the UI goroutine and is not safe for concurrent use.
type Cache struct {
	ratio   AspectRatio
	entries map[string]cacheEntry
}

// NewCache returns an empty cache resolving against ratio.
func NewCache(ratio AspectRatio) *Cache {
	return &Cache{ratio: ratio, entries: make(map[string]cacheEntry)}
}

// AspectRatio returns the ratio this cache resolves against.
func (c *Cache) AspectRatio() AspectRatio { return c.ratio }

// Resolve returns the cached display for id, resolving item on first use. An
// empty id is never cached.
func (c *Cache) Resolve(id string, item catalog.RawItem) (Display, error) {
	if id != "" {
		if entry, ok := c.entries[id]; ok {
			return entry.display, entry.err
		}
	}
	display, err := Resolve(item, c.ratio)
	if id != "" {
		c.entries[id] = cacheEntry{display: display, err: err}
	}
	return display, err
}

// Lookup returns a previously resolved display.
func (c *Cache) Lookup(id string) (Display, bool) {
	entry, ok := c.entries[id]
	return entry.display, ok
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return len(c.entries) }
