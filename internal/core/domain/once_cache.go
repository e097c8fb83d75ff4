package domain

import "sync"

// OnceCache remembers which resolved paths were already delivered in one
// compiler invocation. It is never cleared; drop the cache with its session.
type OnceCache struct {
	mu    sync.Mutex
	seen  map[InternedString]struct{}
	order []InternedString
}

// NewOnceCache returns an empty cache.
func NewOnceCache() *OnceCache {
	return &OnceCache{
		seen: make(map[InternedString]struct{}),
	}
}

// ShouldEmit returns true the first time path is offered and records it.
// Every later call for the same path returns false.
func (c *OnceCache) ShouldEmit(path string) bool {
	key := NewInternedString(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen[key]; ok {
		return false
	}
	c.seen[key] = struct{}{}
	c.order = append(c.order, key)
	return true
}

// Seen reports whether path was already delivered, without recording it.
func (c *OnceCache) Seen(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.seen[NewInternedString(path)]
	return ok
}

// Paths returns the delivered paths in first-delivery order.
func (c *OnceCache) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.order))
	for i, k := range c.order {
		out[i] = k.String()
	}
	return out
}

// Len returns the number of delivered paths.
func (c *OnceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}
