// Package cache bounds directory lookups: an in-process LRU with TTL in front
// of an optional Redis tier.
package cache

import (
	"container/list"
	"sync"
	"time"

	"bulwark/internal/identity/models"
)

type entry struct {
	key      string
	profile  models.Profile
	storedAt time.Time
}

// ProfileCache is a fixed-capacity LRU whose entries expire after ttl.
type ProfileCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	ll       *list.List
	items    map[string]*list.Element
}

type Option func(*ProfileCache)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *ProfileCache) {
		c.now = now
	}
}

func NewProfileCache(capacity int, ttl time.Duration, opts ...Option) *ProfileCache {
	if capacity <= 0 {
		capacity = 1
	}
	c := &ProfileCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a live entry and marks it recently used. Expired entries are evicted.
func (c *ProfileCache) Get(key string) (models.Profile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return models.Profile{}, false
	}
	e := el.Value.(*entry)
	if c.ttl > 0 && c.now().Sub(e.storedAt) >= c.ttl {
		c.removeElement(el)
		return models.Profile{}, false
	}
	c.ll.MoveToFront(el)
	return e.profile, true
}

// Set stores a profile, evicting the least recently used entry when full.
func (c *ProfileCache) Set(key string, p models.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry)
		e.profile = p
		e.storedAt = c.now()
		c.ll.MoveToFront(el)
		return
	}
	c.items[key] = c.ll.PushFront(&entry{key: key, profile: p, storedAt: c.now()})
	for c.ll.Len() > c.capacity {
		c.removeElement(c.ll.Back())
	}
}

func (c *ProfileCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

func (c *ProfileCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}

func (c *ProfileCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *ProfileCache) removeElement(el *list.Element) {
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
