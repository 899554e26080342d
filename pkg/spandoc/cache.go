package spandoc

import (
	"container/list"
	"encoding/hex"
	"sync"
	"time"

	"github.com/zeebo/blake3"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
)

// CacheConfig contains configuration options for the buffer cache
type CacheConfig struct {
	// MaxSize is the maximum number of buffers to cache. 0 disables caching.
	MaxSize int
	// TTL is the time-to-live for cached buffers. 0 means no expiration.
	TTL time.Duration
}

// BufferCache is an LRU cache of imported buffers keyed by a digest of the
// raw input. Buffers are immutable, so a hit hands out the cached value
// itself.
type BufferCache struct {
	mu     sync.Mutex
	cache  map[string]*cacheEntry
	lru    *list.List
	config CacheConfig
	now    func() time.Time
}

type cacheEntry struct {
	key     string
	buffer  *rich.Buffer
	expiry  time.Time
	element *list.Element
}

// NewBufferCache creates a new buffer cache with the given configuration
func NewBufferCache(config CacheConfig) *BufferCache {
	return &BufferCache{
		cache:  make(map[string]*cacheEntry),
		lru:    list.New(),
		config: config,
		now:    time.Now,
	}
}

// CacheKey returns the cache key for raw input bytes.
func CacheKey(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Get retrieves a buffer from the cache
func (bc *BufferCache) Get(key string) (*rich.Buffer, bool) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	entry, exists := bc.cache[key]
	if !exists {
		return nil, false
	}

	if bc.expired(entry) {
		bc.removeLocked(entry)
		return nil, false
	}

	bc.lru.MoveToFront(entry.element)
	return entry.buffer, true
}

// Set adds a buffer to the cache
func (bc *BufferCache) Set(key string, buffer *rich.Buffer) {
	if bc.config.MaxSize <= 0 {
		return
	}

	bc.mu.Lock()
	defer bc.mu.Unlock()

	expiry := time.Time{}
	if bc.config.TTL > 0 {
		expiry = bc.now().Add(bc.config.TTL)
	}

	if existing, exists := bc.cache[key]; exists {
		existing.buffer = buffer
		existing.expiry = expiry
		bc.lru.MoveToFront(existing.element)
		return
	}

	// Evict least recently used
	for bc.lru.Len() >= bc.config.MaxSize {
		oldest := bc.lru.Back()
		if oldest == nil {
			break
		}
		bc.removeLocked(oldest.Value.(*cacheEntry))
	}

	entry := &cacheEntry{
		key:    key,
		buffer: buffer,
		expiry: expiry,
	}
	entry.element = bc.lru.PushFront(entry)
	bc.cache[key] = entry
}

// Remove removes a buffer from the cache
func (bc *BufferCache) Remove(key string) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if entry, exists := bc.cache[key]; exists {
		bc.removeLocked(entry)
	}
}

// Clear removes all buffers from the cache
func (bc *BufferCache) Clear() {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	bc.cache = make(map[string]*cacheEntry)
	bc.lru = list.New()
}

// Size returns the current number of cached buffers
func (bc *BufferCache) Size() int {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	return len(bc.cache)
}

func (bc *BufferCache) expired(entry *cacheEntry) bool {
	return bc.config.TTL > 0 && bc.now().After(entry.expiry)
}

func (bc *BufferCache) removeLocked(entry *cacheEntry) {
	delete(bc.cache, entry.key)
	bc.lru.Remove(entry.element)
}
