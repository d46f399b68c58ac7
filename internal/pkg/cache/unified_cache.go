package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Clock abstracts wall-clock time so expiry can be tested deterministically.
type Clock func() time.Time

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Evictions int64
}

// UnifiedCache is a generic TTL cache bounded by maxSize. Expired entries are
// dropped lazily; when full, the entry closest to expiry is evicted.
type UnifiedCache[T any] struct {
	mu      sync.Mutex
	items   map[string]cacheEntry[T]
	ttl     time.Duration
	maxSize int
	name    string // For logging/debugging
	now     Clock
	metrics CacheMetrics
	logger  *zap.Logger
}

type cacheEntry[T any] struct {
	value      T
	expiration time.Time
}

// NewUnifiedCache creates a new generic cache. maxSize <= 0 means unbounded;
// a nil clock uses time.Now.
func NewUnifiedCache[T any](ttl time.Duration, maxSize int, name string, clock Clock, logger *zap.Logger) *UnifiedCache[T] {
	if logger == nil {
		logger = zap.NewNop() // Use no-op logger if none provided
	}
	if clock == nil {
		clock = time.Now
	}
	return &UnifiedCache[T]{
		items:   make(map[string]cacheEntry[T]),
		ttl:     ttl,
		maxSize: maxSize,
		name:    name,
		now:     clock,
		logger:  logger,
	}
}

// Set stores an item in the cache with the given key
func (c *UnifiedCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.items[key]; !exists && c.maxSize > 0 && len(c.items) >= c.maxSize {
		c.purgeExpiredLocked(now)
		if len(c.items) >= c.maxSize {
			c.evictOldestLocked()
		}
	}

	c.items[key] = cacheEntry[T]{
		value:      value,
		expiration: now.Add(c.ttl),
	}
	c.metrics.Sets++

	c.logger.Debug("Cache set",
		zap.String("cache", c.name),
		zap.String("key", key),
		zap.Duration("ttl", c.ttl),
	)
}

// Get retrieves an item from the cache
func (c *UnifiedCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	item, found := c.items[key]
	if !found {
		c.metrics.Misses++
		return zero, false
	}

	if c.now().After(item.expiration) {
		delete(c.items, key)
		c.metrics.Misses++
		c.logger.Debug("Cache expired",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		return zero, false
	}

	c.metrics.Hits++
	return item.value, true
}

// Update applies fn to the live value for key (or the zero value when absent
// or expired) and stores the result. The TTL window is kept for live entries.
func (c *UnifiedCache[T]) Update(key string, fn func(current T, found bool) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	item, found := c.items[key]
	if found && now.After(item.expiration) {
		found = false
	}
	if !found {
		if c.maxSize > 0 && len(c.items) >= c.maxSize {
			c.purgeExpiredLocked(now)
			if len(c.items) >= c.maxSize {
				c.evictOldestLocked()
			}
		}
		var zero T
		item = cacheEntry[T]{value: zero, expiration: now.Add(c.ttl)}
	}
	item.value = fn(item.value, found)
	c.items[key] = item
	c.metrics.Sets++
	return item.value
}

// Delete removes an item from the cache
func (c *UnifiedCache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *UnifiedCache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]cacheEntry[T])
	c.logger.Info("Cache cleared",
		zap.String("cache", c.name),
	)
}

// GetMetrics returns current cache metrics
func (c *UnifiedCache[T]) GetMetrics() CacheMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}

// Size returns the number of items in the cache, expired ones included
func (c *UnifiedCache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *UnifiedCache[T]) purgeExpiredLocked(now time.Time) {
	expired := 0
	for key, item := range c.items {
		if now.After(item.expiration) {
			delete(c.items, key)
			expired++
		}
	}
	if expired > 0 {
		c.logger.Debug("Cache cleanup",
			zap.String("cache", c.name),
			zap.Int("expired_items", expired),
			zap.Int("remaining_items", len(c.items)),
		)
	}
}

func (c *UnifiedCache[T]) evictOldestLocked() {
	var (
		oldestKey string
		oldest    time.Time
		first     = true
	)
	for key, item := range c.items {
		if first || item.expiration.Before(oldest) {
			oldestKey, oldest, first = key, item.expiration, false
		}
	}
	if !first {
		delete(c.items, oldestKey)
		c.metrics.Evictions++
	}
}

// CacheKeyBuilder helps build consistent cache keys
type CacheKeyBuilder struct {
	components []interface{}
	logger     *zap.Logger
}

// NewCacheKeyBuilder creates a new cache key builder
func NewCacheKeyBuilder(logger *zap.Logger) *CacheKeyBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheKeyBuilder{
		components: make([]interface{}, 0, 8),
		logger:     logger,
	}
}

// Add adds a component to the cache key
func (b *CacheKeyBuilder) Add(key string, value interface{}) *CacheKeyBuilder {
	b.components = append(b.components, map[string]interface{}{key: value})
	return b
}

// AddDestination adds the destination name to the cache key
func (b *CacheKeyBuilder) AddDestination(name string) *CacheKeyBuilder {
	return b.Add("destination", name)
}

// AddPreferences adds trip preferences to the cache key
func (b *CacheKeyBuilder) AddPreferences(prefs interface{}) *CacheKeyBuilder {
	return b.Add("preferences", prefs)
}

// AddEvidence adds the evidence list to the cache key
func (b *CacheKeyBuilder) AddEvidence(evidence interface{}) *CacheKeyBuilder {
	return b.Add("evidence", evidence)
}

// Build generates the final cache key as an MD5 hash
func (b *CacheKeyBuilder) Build() (string, error) {
	jsonBytes, err := json.Marshal(b.components)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache key components: %w", err)
	}

	hash := md5.Sum(jsonBytes)
	key := hex.EncodeToString(hash[:])

	b.logger.Debug("Cache key built", zap.String("key", key))

	return key, nil
}

// BuildOrDefault builds the cache key, returns empty string on error
func (b *CacheKeyBuilder) BuildOrDefault() string {
	key, err := b.Build()
	if err != nil {
		b.logger.Error("Failed to build cache key", zap.Error(err))
		return ""
	}
	return key
}
