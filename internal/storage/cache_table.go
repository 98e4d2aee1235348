package storage

import "time"

// cacheTable is an insertion-ordered map of cached resources. Insertion
// order is what "oldest" means for eviction, matching spec §4.1: "mark
// the oldest-aged entry for immediate release".
type cacheTable struct {
	order []string
	byName map[string]*Resource
}

func newCacheTable() *cacheTable {
	return &cacheTable{byName: make(map[string]*Resource)}
}

func (c *cacheTable) get(name string) (*Resource, bool) {
	r, ok := c.byName[name]
	return r, ok
}

func (c *cacheTable) put(name string, r *Resource) {
	if _, exists := c.byName[name]; !exists {
		c.order = append(c.order, name)
	}
	c.byName[name] = r
}

func (c *cacheTable) len() int { return len(c.byName) }

func (c *cacheTable) clear() {
	c.order = nil
	c.byName = make(map[string]*Resource)
}

// age advances every resource's age by delta and releases any entry
// whose age exceeds limit.
func (c *cacheTable) age(delta time.Duration, limit time.Duration) {
	var kept []string
	for _, name := range c.order {
		r, ok := c.byName[name]
		if !ok {
			continue
		}
		r.age += delta
		if r.age > limit {
			delete(c.byName, name)
			continue
		}
		kept = append(kept, name)
	}
	c.order = kept
}

// evictOldest drops the longest-resident entry by insertion order,
// regardless of its age. Returns false if the cache is empty.
func (c *cacheTable) evictOldest() bool {
	for len(c.order) > 0 {
		name := c.order[0]
		c.order = c.order[1:]
		if _, ok := c.byName[name]; ok {
			delete(c.byName, name)
			return true
		}
	}
	return false
}
