// Package cache implements the per-worker RGBA->RGBA memoization cache
// used by the pixel pipeline's non-dithered fast path.
package cache

// key packs a full 8-bit RGBA input into a single comparable value.
type key uint32

func makeKey(r, g, b, a uint8) key {
	return key(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGBA is an 8-bit color with alpha.
type RGBA struct {
	R, G, B, A uint8
}

// ThreadLocalCache is an eager RGBA->RGBA memoization map owned by exactly
// one worker for the lifetime of its chunk. It has no eviction policy --
// bounded in practice by the number of distinct input pixels processed --
// and must never be shared across goroutines.
type ThreadLocalCache struct {
	m map[key]RGBA
}

// presizeEntries matches the original ThreadLocalCache's pre-sizing.
const presizeEntries = 4096

// New returns an empty, pre-sized cache ready for a single worker's chunk.
func New() *ThreadLocalCache {
	return &ThreadLocalCache{m: make(map[key]RGBA, presizeEntries)}
}

// Get returns the cached output for the given input, if present.
func (c *ThreadLocalCache) Get(r, g, b, a uint8) (RGBA, bool) {
	v, ok := c.m[makeKey(r, g, b, a)]
	return v, ok
}

// Set records the output for the given input.
func (c *ThreadLocalCache) Set(r, g, b, a uint8, out RGBA) {
	c.m[makeKey(r, g, b, a)] = out
}

// Reset clears the cache for reuse by a new worker/frame, without
// discarding the underlying map allocation.
func (c *ThreadLocalCache) Reset() {
	for k := range c.m {
		delete(c.m, k)
	}
}
