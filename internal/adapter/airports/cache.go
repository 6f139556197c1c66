package airports

import (
	"container/list"
	"context"
	"strings"
	"sync"

	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
	"github.com/couchcryptid/aero-bulletin-etl/internal/observability"
)

// CachedDirectory wraps an AirportDirectory with an in-memory LRU cache.
// Only successful lookups are cached, so misses and failures are retried.
type CachedDirectory struct {
	inner   domain.AirportDirectory
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedDirectory creates a cache decorator holding at most maxEntries airports.
func NewCachedDirectory(inner domain.AirportDirectory, maxEntries int, metrics *observability.Metrics) *CachedDirectory {
	return &CachedDirectory{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedDirectory) LookupAirport(ctx context.Context, icao string) (domain.Airport, error) {
	key := strings.ToUpper(strings.TrimSpace(icao))
	if a, ok := c.cache.get(key); ok {
		c.metrics.AirportCache.WithLabelValues("hit").Inc()
		return a, nil
	}
	c.metrics.AirportCache.WithLabelValues("miss").Inc()

	a, err := c.inner.LookupAirport(ctx, key)
	if err != nil {
		return a, err
	}
	c.cache.put(key, a)
	return a, nil
}

type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	order      *list.List // front is most recently used
	items      map[string]*list.Element
}

type cacheItem struct {
	key     string
	airport domain.Airport
}

func newLRUCache(maxEntries int) *lruCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &lruCache{
		maxEntries: maxEntries,
		order:      list.New(),
		items:      make(map[string]*list.Element),
	}
}

func (c *lruCache) get(key string) (domain.Airport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return domain.Airport{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheItem).airport, true
}

func (c *lruCache) put(key string, a domain.Airport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*cacheItem).airport = a
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&cacheItem{key: key, airport: a})
	if c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheItem).key)
	}
}

func (c *lruCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
