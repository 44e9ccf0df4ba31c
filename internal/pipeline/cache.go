package pipeline

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// Cache memoises Run by input hash. Each distinct hash is computed at most
// once, even with concurrent callers; the shared Result must not be mutated.
type Cache struct {
	mu      sync.RWMutex
	results map[string]*Result
	group   singleflight.Group
	runs    int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{results: make(map[string]*Result)}
}

// Get returns the cached Result for hash, computing it from deliveries on
// the first request.
func (c *Cache) Get(hash string, deliveries []model.Delivery) *Result {
	c.mu.RLock()
	res, ok := c.results[hash]
	c.mu.RUnlock()
	if ok {
		zap.L().Debug("pipeline cache hit", zap.String("hash", short(hash)))
		return res
	}

	v, _, _ := c.group.Do(hash, func() (any, error) {
		c.mu.RLock()
		res, ok := c.results[hash]
		c.mu.RUnlock()
		if ok {
			return res, nil
		}

		res = Run(deliveries)
		res.Hash = hash

		c.mu.Lock()
		c.results[hash] = res
		c.runs++
		c.mu.Unlock()
		return res, nil
	})
	return v.(*Result)
}

// Runs returns how many times the pipeline actually ran.
func (c *Cache) Runs() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.runs
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

func short(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
