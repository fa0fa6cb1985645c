package graph

import (
	"cogentcore.org/core/base/ordmap"
)

// Object is a GL object realized from a cached descriptor.
type Object struct {
	// Handle is the GL name of the object. Caches of objects without a GL
	// name (settings, descriptor sets) leave it zero.
	Handle uint32

	uses int
}

// Uses returns the number of live pipelines sharing the object.
func (o *Object) Uses() int {
	return o.uses
}

// Entry pairs a cached descriptor with the object realized for it.
type Entry[D any] struct {
	Descriptor D
	Object     *Object
}

// descriptor is implemented by every cache key type. The key is a canonical
// rendering of the structure, so equal descriptors share an object no
// matter where they were built.
type descriptor interface {
	cacheKey() string
}

// Cache deduplicates GL objects by structural descriptor.
//
// Entries iterate in the order their descriptors were first seen, which
// keeps repeated dumps of the same graph byte-identical.
//
// Cache is not safe for concurrent use.
type Cache[D descriptor] struct {
	entries *ordmap.Map[string, *Entry[D]]

	hits   uint64
	misses uint64
}

func newCache[D descriptor]() *Cache[D] {
	return &Cache[D]{entries: ordmap.New[string, *Entry[D]]()}
}

// acquire returns the object for d, realizing it with alloc on a miss.
// Every call adds a use.
func (c *Cache[D]) acquire(d D, alloc func() uint32) *Object {
	key := d.cacheKey()
	if e, ok := c.entries.ValueByKeyTry(key); ok {
		c.hits++
		e.Object.uses++
		return e.Object
	}

	c.misses++
	obj := &Object{Handle: alloc(), uses: 1}
	c.entries.Add(key, &Entry[D]{Descriptor: d, Object: obj})
	return obj
}

// release drops one use of d and evicts the entry when no use remains.
// It reports whether the entry was evicted.
func (c *Cache[D]) release(d D) bool {
	key := d.cacheKey()
	e, ok := c.entries.ValueByKeyTry(key)
	if !ok {
		return false
	}
	e.Object.uses--
	if e.Object.uses > 0 {
		return false
	}
	c.entries.DeleteKey(key)
	return true
}

// Lookup returns the object cached for d.
func (c *Cache[D]) Lookup(d D) (*Object, bool) {
	e, ok := c.entries.ValueByKeyTry(d.cacheKey())
	if !ok {
		return nil, false
	}
	return e.Object, true
}

// Entries returns the cached entries in insertion order.
func (c *Cache[D]) Entries() []Entry[D] {
	out := make([]Entry[D], 0, c.entries.Len())
	for _, kv := range c.entries.Order {
		out = append(out, *kv.Value)
	}
	return out
}

// Stats returns the number of cache hits and misses.
func (c *Cache[D]) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}
