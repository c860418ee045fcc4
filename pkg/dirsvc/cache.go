package dirsvc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// CacheEntry represents one cached response body.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
	ETag      string    `json:"etag,omitempty"`
}

// Cache is the backend interface for response caching.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// MemoryCache is a bounded in-memory cache backend.
type MemoryCache struct {
	mu      sync.RWMutex
	maxSize int
	entries map[string]*CacheEntry
}

// NewMemoryCache creates a new in-memory cache holding at most maxSize
// entries. When full, the entry closest to expiry is evicted first.
func NewMemoryCache(maxSize int) *MemoryCache {
	return &MemoryCache{
		maxSize: maxSize,
		entries: make(map[string]*CacheEntry),
	}
}

// Get returns the entry for key, or an error when absent or expired.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if time.Now().After(entry.ExpiresAt) {
		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return entry, nil
}

// Set stores the entry, evicting the entry closest to expiry when full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = entry

	return nil
}

// evictOldest removes the entry with the earliest expiry. Caller holds the
// write lock.
func (c *MemoryCache) evictOldest() {
	var (
		oldestKey string
		oldestAt  time.Time
	)

	for key, entry := range c.entries {
		if oldestKey == "" || entry.ExpiresAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.ExpiresAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Delete removes the entry for key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)

	return nil
}

// Has reports whether a non-expired entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Cleanup removes expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
		}
	}
}

// NATSKVConfig configures the NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL (e.g. nats.DefaultURL).
	URL string
	// Bucket is the key-value bucket name; created when missing.
	Bucket string
	// CredsFile is an optional NATS credentials file.
	CredsFile string
}

// NATSKVCache is a cache backend on a NATS JetStream key-value bucket.
// Entries are JSON-encoded; expiry is enforced on read.
type NATSKVCache struct {
	conn *nats.Conn
	kv   nats.KeyValue
}

// NewNATSKVCache connects to NATS and binds (or creates) the configured
// key-value bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	var opts []nats.Option
	if config.CredsFile != "" {
		opts = append(opts, nats.UserCredentials(config.CredsFile))
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	kv, err := js.KeyValue(config.Bucket)
	if err != nil {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{Bucket: config.Bucket})
		if err != nil {
			conn.Close()

			return nil, fmt.Errorf("creating key-value bucket %q: %w", config.Bucket, err)
		}
	}

	return &NATSKVCache{conn: conn, kv: kv}, nil
}

// encodeKey maps arbitrary cache keys onto the restricted NATS KV key
// alphabet.
func encodeKey(key string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key))
}

// Get returns the entry for key, or an error when absent or expired.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kvEntry, err := c.kv.Get(encodeKey(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	var entry CacheEntry

	err = json.Unmarshal(kvEntry.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = c.kv.Delete(encodeKey(key))

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryExpired, key)
	}

	return &entry, nil
}

// Set stores the entry.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(encodeKey(key), data)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}

	return nil
}

// Delete removes the entry for key.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(encodeKey(key))
	if err != nil {
		return fmt.Errorf("deleting cache entry: %w", err)
	}

	return nil
}

// Clear removes all entries from the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys()
	if err != nil {
		if strings.Contains(err.Error(), "no keys found") {
			return nil
		}

		return fmt.Errorf("listing cache keys: %w", err)
	}

	for _, key := range keys {
		_ = c.kv.Delete(key)
	}

	return nil
}

// Has reports whether a non-expired entry exists for key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Close releases the NATS connection.
func (c *NATSKVCache) Close() {
	c.conn.Close()
}

// CacheStats track cache effectiveness.
type CacheStats struct {
	Hits   int64
	Misses int64
	Sets   int64
}

// GetHitRate returns the fraction of reads served from cache.
func (s *CacheStats) GetHitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// CacheManager wraps a Cache backend with key construction, TTL handling,
// and hit/miss statistics.
type CacheManager struct {
	cache  Cache
	logger Logger

	mu    sync.Mutex
	stats CacheStats
}

// NewCacheManager creates a manager over the given backend. Both arguments
// may be nil; a nil backend disables caching.
func NewCacheManager(cache Cache, logger Logger) *CacheManager {
	return &CacheManager{cache: cache, logger: logger}
}

// GetCacheKey builds a stable cache key from method, path, and parameters.
func (m *CacheManager) GetCacheKey(method, path string, params map[string]string) string {
	if len(params) == 0 {
		return method + ":" + path
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+params[name])
	}

	return method + ":" + path + ":" + strings.Join(pairs, "&")
}

// Get returns cached data for key.
func (m *CacheManager) Get(ctx context.Context, key string) ([]byte, error) {
	if m.cache == nil {
		return nil, ErrCacheDisabled
	}

	entry, err := m.cache.Get(ctx, key)
	if err != nil {
		m.record(func(s *CacheStats) { s.Misses++ })

		return nil, err
	}

	m.record(func(s *CacheStats) { s.Hits++ })

	return entry.Data, nil
}

// Set stores data for key with the given TTL.
func (m *CacheManager) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return m.SetWithETag(ctx, key, data, "", ttl)
}

// SetWithETag stores data for key with the given TTL and ETag.
func (m *CacheManager) SetWithETag(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) error {
	if m.cache == nil {
		return ErrCacheDisabled
	}

	entry := &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
		ETag:      etag,
	}

	err := m.cache.Set(ctx, key, entry)
	if err != nil {
		return err
	}

	m.record(func(s *CacheStats) { s.Sets++ })

	return nil
}

// GetStats returns a snapshot of the cache statistics.
func (m *CacheManager) GetStats() CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stats
}

func (m *CacheManager) record(update func(*CacheStats)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	update(&m.stats)
}
