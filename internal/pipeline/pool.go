package pipeline

import (
	"sync"

	"github.com/palettum/palettum/internal/cache"
)

// cachePool reuses *cache.ThreadLocalCache instances across frames (the
// common case is many frames of one GIF/animation sharing the same
// worker count), the same bucketed-reuse idea as internal/pool's
// sync.Pool-backed byte buffers, adapted here to the pipeline's actual
// allocation pressure: a fresh presized map per worker per frame.
var cachePool = sync.Pool{
	New: func() any { return cache.New() },
}

func getThreadLocalCache() *cache.ThreadLocalCache {
	return cachePool.Get().(*cache.ThreadLocalCache)
}

func putThreadLocalCache(c *cache.ThreadLocalCache) {
	c.Reset()
	cachePool.Put(c)
}
