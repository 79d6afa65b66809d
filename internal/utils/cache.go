package utils

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
)

// PageCache 渲染好的页面缓存（进程内）
var PageCache *cache.Cache

var (
	pageMu  sync.Mutex
	pageGen uint64 // 每次删除或清空缓存时递增
)

// InitCache 初始化页面缓存
func InitCache(ttl time.Duration) {
	PageCache = cache.New(ttl, 2*ttl)
}

// CacheGetPage 获取缓存的页面
func CacheGetPage(key string) (string, bool) {
	if v, ok := PageCache.Get(key); ok {
		if html, ok := v.(string); ok {
			return html, true
		}
	}
	return "", false
}

// CacheSetPage 缓存页面，使用默认过期时间
func CacheSetPage(key, html string) {
	PageCache.SetDefault(key, html)
}

// CachePageGeneration 当前缓存版本，渲染页面前读取
func CachePageGeneration() uint64 {
	pageMu.Lock()
	defer pageMu.Unlock()
	return pageGen
}

// CacheSetPageIfCurrent 只有在 gen 之后没有发生过删除时才写入，返回是否写入
func CacheSetPageIfCurrent(key, html string, gen uint64) bool {
	pageMu.Lock()
	defer pageMu.Unlock()
	if gen != pageGen {
		return false
	}
	PageCache.SetDefault(key, html)
	return true
}

// CacheDelete 删除缓存
func CacheDelete(key string) {
	pageMu.Lock()
	defer pageMu.Unlock()
	pageGen++
	PageCache.Delete(key)
}

// CacheClear 清空所有缓存
func CacheClear() {
	pageMu.Lock()
	defer pageMu.Unlock()
	pageGen++
	PageCache.Flush()
}

type lruItem[T any] struct {
	Value     T
	ExpiredAt time.Time
}

// LRUCache 带过期时间的 LRU 缓存，线程安全
type LRUCache[T any] struct {
	storage *lru.Cache[string, lruItem[T]]
	ttl     time.Duration
	now     func() time.Time
}

// NewLRUCache size 为最大条数，ttl 为有效期
func NewLRUCache[T any](size int, ttl time.Duration) (*LRUCache[T], error) {
	c, err := lru.New[string, lruItem[T]](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache[T]{
		storage: c,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// Set 新增或覆盖
func (c *LRUCache[T]) Set(key string, value T) {
	c.storage.Add(key, lruItem[T]{
		Value:     value,
		ExpiredAt: c.now().Add(c.ttl),
	})
}

// Get 读取，过期条目会被顺手删除
func (c *LRUCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	if c.now().After(item.ExpiredAt) {
		c.storage.Remove(key)
		return zero, false
	}
	return item.Value, true
}

func (c *LRUCache[T]) Delete(key string) {
	c.storage.Remove(key)
}

func (c *LRUCache[T]) Clear() {
	c.storage.Purge()
}

func (c *LRUCache[T]) Len() int {
	return c.storage.Len()
}
