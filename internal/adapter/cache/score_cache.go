// Package cache memoizes model scores across a query batch.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"trecsearch/internal/domain"
	"trecsearch/internal/port"
)

// ScoreCache is a concurrency-safe LRU of scored results keyed by model and
// term list. Query batches often repeat a term list under several models or
// several names; against a frozen index the scores never change, so repeats
// are served from memory. Cached slices are shared, and callers must treat
// them as read-only.
type ScoreCache struct {
	mu      sync.Mutex
	entries map[string][]domain.ScoredDoc
	order   []string
	maxSize int
}

// NewScoreCache creates a cache holding at most maxSize entries.
func NewScoreCache(maxSize int) *ScoreCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &ScoreCache{
		entries: make(map[string][]domain.ScoredDoc),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// cacheKey hashes the model and terms. Terms are separated by a zero byte so
// term boundaries survive hashing.
func cacheKey(model domain.QueryType, terms []string) string {
	h := sha256.New()
	h.Write([]byte{byte(model)})
	for _, t := range terms {
		h.Write([]byte(t))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}

// Get returns the cached results for (model, terms), if present.
func (c *ScoreCache) Get(model domain.QueryType, terms []string) ([]domain.ScoredDoc, bool) {
	key := cacheKey(model, terms)

	c.mu.Lock()
	defer c.mu.Unlock()

	results, exists := c.entries[key]
	if !exists {
		return nil, false
	}
	c.moveToEnd(key)
	return results, true
}

// Put stores the results for (model, terms), evicting the least recently
// used entry when full.
func (c *ScoreCache) Put(model domain.QueryType, terms []string, results []domain.ScoredDoc) {
	key := cacheKey(model, terms)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = results
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = results
	c.order = append(c.order, key)
}

// Size returns the number of cached entries.
func (c *ScoreCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ScoreCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *ScoreCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *ScoreCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// CachedModel serves Score calls through a ScoreCache.
type CachedModel struct {
	model port.Model
	cache *ScoreCache
}

// NewCachedModel wraps model so repeated Score calls hit the cache.
func NewCachedModel(model port.Model, cache *ScoreCache) *CachedModel {
	return &CachedModel{
		model: model,
		cache: cache,
	}
}

// Type reports the wrapped model's type.
func (m *CachedModel) Type() domain.QueryType {
	return m.model.Type()
}

// Score returns cached results when available and scores through the wrapped
// model otherwise.
func (m *CachedModel) Score(idx port.Index, terms []string) []domain.ScoredDoc {
	if results, hit := m.cache.Get(m.model.Type(), terms); hit {
		return results
	}

	results := m.model.Score(idx, terms)
	m.cache.Put(m.model.Type(), terms, results)
	return results
}
