package workers

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/models"
)

// WidgetCache is an in-memory cache of per-profile widget payloads. Widget
// data is slow-moving and fetched from rate-limited third parties, so page
// views within the TTL share one upstream fetch.
//
// Safe for concurrent use.
type WidgetCache struct {
	mu      sync.RWMutex
	entries map[int64]widgetCacheEntry
	ttl     time.Duration
}

type widgetCacheEntry struct {
	widgets   models.WidgetSet
	fetchedAt time.Time
}

// NewWidgetCache constructs a cache whose entries expire after ttl.
func NewWidgetCache(ttl time.Duration) *WidgetCache {
	return &WidgetCache{
		entries: make(map[int64]widgetCacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached widget set for the profile if it is still fresh.
func (c *WidgetCache) Get(profileID int64) (models.WidgetSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[profileID]
	if !ok || time.Since(entry.fetchedAt) >= c.ttl {
		return models.WidgetSet{}, false
	}

	return entry.widgets, true
}

// Put stores a freshly fetched widget set for the profile.
func (c *WidgetCache) Put(profileID int64, widgets models.WidgetSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[profileID] = widgetCacheEntry{widgets: widgets, fetchedAt: time.Now()}
}

// evictExpired drops every entry older than the TTL and reports how many
// were removed.
func (c *WidgetCache) evictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for profileID, entry := range c.entries {
		if time.Since(entry.fetchedAt) >= c.ttl {
			delete(c.entries, profileID)
			evicted++
		}
	}

	return evicted
}

// len reports the number of entries currently held, fresh or not.
func (c *WidgetCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// WidgetCacheJanitor is a background [Worker] that periodically evicts
// expired widget cache entries so that profiles which stopped being viewed
// do not pin memory forever.
type WidgetCacheJanitor struct {
	cache    *WidgetCache
	interval time.Duration
	logger   *logger.Logger
	stop     chan struct{}
}

// NewWidgetCacheJanitor constructs a janitor sweeping the cache every
// interval.
func NewWidgetCacheJanitor(cache *WidgetCache, interval time.Duration, logger *logger.Logger) *WidgetCacheJanitor {
	return &WidgetCacheJanitor{
		cache:    cache,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Run implements [Worker]. It spawns the sweep loop and returns immediately.
func (j *WidgetCacheJanitor) Run() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if evicted := j.cache.evictExpired(); evicted > 0 {
					j.logger.Debug().
						Int("evicted", evicted).
						Int("remaining", j.cache.len()).
						Msg("widget cache sweep")
				}
			case <-j.stop:
				return
			}
		}
	}()
}

// Stop terminates the sweep loop. Safe to call once.
func (j *WidgetCacheJanitor) Stop() {
	close(j.stop)
}
