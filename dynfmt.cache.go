package dynfmt

import (
	"sync"
	"time"
)

// TemplateCache caches parsed templates by source text. Templates are
// immutable, so a cached template is shared by every caller that parses the
// same source.
type TemplateCache struct {
	mu        sync.RWMutex
	entries   map[string]*templateCacheEntry
	config    CacheConfig
	stats     CacheStats
	evictList []string // LRU order, least recently used first
	now       func() time.Time
}

// templateCacheEntry holds a cached template with metadata.
type templateCacheEntry struct {
	Template  *Template
	ExpiresAt time.Time
	HitCount  int
}

// CacheConfig configures the parse cache.
type CacheConfig struct {
	// MaxEntries is the maximum number of cached templates. Default: 512.
	MaxEntries int

	// TTL is how long a template stays cached. Zero keeps entries until evicted.
	TTL time.Duration
}

// CacheStats tracks cache performance metrics.
type CacheStats struct {
	Hits       int64
	Misses     int64
	Evictions  int64
	EntryCount int
}

// DefaultCacheConfig returns the default parse cache configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxEntries: DefaultCacheMaxEntries,
		TTL:        0,
	}
}

// NewTemplateCache creates a new parse cache.
func NewTemplateCache(config CacheConfig) *TemplateCache {
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultCacheMaxEntries
	}
	return &TemplateCache{
		entries:   make(map[string]*templateCacheEntry),
		config:    config,
		evictList: make([]string, 0, config.MaxEntries),
		now:       time.Now,
	}
}

// Get returns the cached template for source if present and not expired.
func (c *TemplateCache) Get(source string) (*Template, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[source]
	if !exists {
		c.stats.Misses++
		return nil, false
	}

	if c.expired(entry) {
		c.remove(source)
		c.stats.Misses++
		return nil, false
	}

	entry.HitCount++
	c.stats.Hits++
	c.touch(source)
	return entry.Template, true
}

// Set stores a parsed template, evicting the least recently used entry when
// the cache is full.
func (c *TemplateCache) Set(source string, tmpl *Template) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.entries[source]; exists {
		entry.Template = tmpl
		entry.ExpiresAt = c.expiry()
		c.touch(source)
		return
	}

	for len(c.entries) >= c.config.MaxEntries && len(c.evictList) > 0 {
		c.evictOldest()
	}

	c.entries[source] = &templateCacheEntry{
		Template:  tmpl,
		ExpiresAt: c.expiry(),
	}
	c.evictList = append(c.evictList, source)
	c.stats.EntryCount = len(c.entries)
}

// Invalidate removes the entry for source.
func (c *TemplateCache) Invalidate(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(source)
}

// Clear removes all entries from the cache.
func (c *TemplateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*templateCacheEntry)
	c.evictList = make([]string, 0, c.config.MaxEntries)
	c.stats.EntryCount = 0
}

// Cleanup removes expired entries and returns how many were removed.
func (c *TemplateCache) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for source, entry := range c.entries {
		if c.expired(entry) {
			c.remove(source)
			removed++
		}
	}
	return removed
}

// Len returns the number of cached templates.
func (c *TemplateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns current cache statistics.
func (c *TemplateCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate (0.0 to 1.0).
func (c *TemplateCache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.stats.Hits + c.stats.Misses
	if total == 0 {
		return 0
	}
	return float64(c.stats.Hits) / float64(total)
}

func (c *TemplateCache) expiry() time.Time {
	if c.config.TTL <= 0 {
		return time.Time{}
	}
	return c.now().Add(c.config.TTL)
}

func (c *TemplateCache) expired(entry *templateCacheEntry) bool {
	return !entry.ExpiresAt.IsZero() && c.now().After(entry.ExpiresAt)
}

// touch moves source to the most recently used end of the eviction list.
func (c *TemplateCache) touch(source string) {
	for i, key := range c.evictList {
		if key == source {
			c.evictList = append(c.evictList[:i], c.evictList[i+1:]...)
			break
		}
	}
	c.evictList = append(c.evictList, source)
}

func (c *TemplateCache) remove(source string) {
	if _, exists := c.entries[source]; !exists {
		return
	}
	delete(c.entries, source)
	for i, key := range c.evictList {
		if key == source {
			c.evictList = append(c.evictList[:i], c.evictList[i+1:]...)
			break
		}
	}
	c.stats.EntryCount = len(c.entries)
}

// evictOldest removes the least recently used entry.
func (c *TemplateCache) evictOldest() {
	if len(c.evictList) == 0 {
		return
	}

	oldest := c.evictList[0]
	c.evictList = c.evictList[1:]
	if _, exists := c.entries[oldest]; exists {
		delete(c.entries, oldest)
		c.stats.Evictions++
	}
	c.stats.EntryCount = len(c.entries)
}
