package valorant

import (
	"container/list"
	"sync"
	"time"
)

// memoCache implements a thread-safe LRU cache with optional per-entry TTL
type memoCache struct {
	size      int
	ttl       time.Duration
	evictList *list.List
	items     map[string]*list.Element
	mu        sync.Mutex
}

// memoEntry is stored in the cache
type memoEntry struct {
	key      string
	value    any
	storedAt time.Time
}

// newMemoCache creates a new cache with the given size bound and TTL.
// A TTL of zero disables expiry.
func newMemoCache(size int, ttl time.Duration) *memoCache {
	return &memoCache{
		size:      size,
		ttl:       ttl,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get retrieves a value from the cache. Expired entries are removed
// and reported as misses.
func (c *memoCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, exists := c.items[key]
	if !exists {
		return nil, false
	}

	ent := node.Value.(*memoEntry)
	if c.ttl > 0 && time.Since(ent.storedAt) > c.ttl {
		c.evictList.Remove(node)
		delete(c.items, key)
		return nil, false
	}

	// Move to front (most recently used)
	c.evictList.MoveToFront(node)
	return ent.value, true
}

// Put adds or updates a value in the cache
func (c *memoCache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, exists := c.items[key]; exists {
		c.evictList.MoveToFront(node)
		ent := node.Value.(*memoEntry)
		ent.value = value
		ent.storedAt = time.Now()
		return
	}

	ent := &memoEntry{key: key, value: value, storedAt: time.Now()}
	node := c.evictList.PushFront(ent)
	c.items[key] = node

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

// Delete removes a key from the cache, ignoring absence
func (c *memoCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, exists := c.items[key]; exists {
		c.evictList.Remove(node)
		delete(c.items, key)
	}
}

// removeOldest removes the least recently used item
func (c *memoCache) removeOldest() {
	node := c.evictList.Back()
	if node != nil {
		c.evictList.Remove(node)
		kv := node.Value.(*memoEntry)
		delete(c.items, kv.key)
	}
}

// Clear removes all items from the cache
func (c *memoCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.evictList.Init()
}

// Len returns the number of items in the cache
func (c *memoCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.evictList.Len()
}
