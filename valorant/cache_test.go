package valorant

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoCacheBasic(t *testing.T) {
	cache := newMemoCache(4, 0)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Put("a", 1)
	v, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	cache.Put("a", 2)
	v, _ = cache.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, cache.Len())

	cache.Delete("a")
	_, ok = cache.Get("a")
	assert.False(t, ok)

	// Deleting an absent key is a no-op
	cache.Delete("a")
}

func TestMemoCacheLRUEviction(t *testing.T) {
	cache := newMemoCache(2, 0)

	cache.Put("a", 1)
	cache.Put("b", 2)

	// Touch "a" so "b" becomes the eviction candidate
	cache.Get("a")
	cache.Put("c", 3)

	_, ok := cache.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")

	_, ok = cache.Get("a")
	assert.True(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())
}

func TestMemoCacheTTL(t *testing.T) {
	cache := newMemoCache(4, 10*time.Millisecond)

	cache.Put("a", 1)
	_, ok := cache.Get("a")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = cache.Get("a")
	assert.False(t, ok, "expired entry should miss")
	assert.Equal(t, 0, cache.Len())
}

func TestMemoCacheClear(t *testing.T) {
	cache := newMemoCache(4, 0)
	cache.Put("a", 1)
	cache.Put("b", 2)

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)
}

func TestCacheKeyIsNameQualified(t *testing.T) {
	first := url.Values{}
	first.Set("language", "en-US")
	first.Set("isPlayableCharacter", "true")

	second := url.Values{}
	second.Set("isPlayableCharacter", "true")
	second.Set("language", "en-US")

	// Same parameters in a different insertion order produce the same key
	assert.Equal(t, cacheKey("/agents", first), cacheKey("/agents", second))

	// Same value under a different name produces a different key
	third := url.Values{}
	third.Set("language", "en-US")
	third.Set("isBaseContent", "true")
	assert.NotEqual(t, cacheKey("/agents", first), cacheKey("/agents", third))

	assert.Equal(t, "/agents", cacheKey("/agents", url.Values{}))
}
