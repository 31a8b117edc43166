package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/couchcryptid/sounding-analysis/internal/observability"
)

// CachedTransformer wraps a Transformer with an in-memory LRU keyed by the
// SHA-256 of the raw payload, so replayed or duplicated soundings are not
// re-analyzed. Memory only — nothing is persisted.
type CachedTransformer struct {
	inner   Transformer
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedTransformer creates a cache decorator around a transformer.
func NewCachedTransformer(inner Transformer, maxEntries int, metrics *observability.Metrics) *CachedTransformer {
	return &CachedTransformer{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedTransformer) Transform(ctx context.Context, raw RawMessage) (OutputMessage, error) {
	sum := sha256.Sum256(raw.Value)
	key := hex.EncodeToString(sum[:])

	if out, ok := c.cache.get(key); ok {
		c.metrics.CacheLookups.WithLabelValues("hit").Inc()
		// The analysis is identical; only the message key follows the input.
		out.Key = raw.Key
		return out, nil
	}
	c.metrics.CacheLookups.WithLabelValues("miss").Inc()

	out, err := c.inner.Transform(ctx, raw)
	if err != nil {
		// Failures are not cached: a skipped sounding stays observable on
		// every replay.
		return out, err
	}
	c.cache.put(key, out)
	return out, nil
}

// lruCache is a simple thread-safe LRU cache for output messages.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value OutputMessage
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (OutputMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return OutputMessage{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value OutputMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
