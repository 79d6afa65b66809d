package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache(t *testing.T) {
	InitCache(time.Minute)

	_, ok := CacheGetPage("page:tvshows")
	assert.False(t, ok)

	CacheSetPage("page:tvshows", "<p>list</p>")
	got, ok := CacheGetPage("page:tvshows")
	require.True(t, ok)
	assert.Equal(t, "<p>list</p>", got)

	CacheDelete("page:tvshows")
	_, ok = CacheGetPage("page:tvshows")
	assert.False(t, ok)

	CacheSetPage("a", "1")
	CacheClear()
	_, ok = CacheGetPage("a")
	assert.False(t, ok)
}

func TestCacheSetPageIfCurrent(t *testing.T) {
	InitCache(time.Minute)

	gen := CachePageGeneration()
	assert.True(t, CacheSetPageIfCurrent("page:tvshows", "fresh", gen))
	got, ok := CacheGetPage("page:tvshows")
	require.True(t, ok)
	assert.Equal(t, "fresh", got)

	// 渲染期间列表被修改
	gen = CachePageGeneration()
	CacheDelete("page:tvshows")
	assert.False(t, CacheSetPageIfCurrent("page:tvshows", "stale", gen))
	_, ok = CacheGetPage("page:tvshows")
	assert.False(t, ok)

	assert.True(t, CacheSetPageIfCurrent("page:tvshows", "fresh", CachePageGeneration()))
}

func TestLRUCacheExpiry(t *testing.T) {
	c, err := NewLRUCache[int](2, time.Minute)
	require.NoError(t, err)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestLRUCacheEviction(t *testing.T) {
	c, err := NewLRUCache[string](2, time.Hour)
	require.NoError(t, err)

	c.Set("a", "A")
	c.Set("b", "B")
	c.Set("c", "C")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.Delete("b")
	_, ok = c.Get("b")
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestNewLRUCacheInvalidSize(t *testing.T) {
	_, err := NewLRUCache[int](0, time.Minute)
	assert.Error(t, err)
}
