package dispatch

import (
	"slices"
	"sync"
)

// Cache memoises successful selections. Errors are never stored.
type Cache struct {
	d *Dispatcher

	mu      sync.RWMutex
	entries map[Query]Result
}

func NewCache(d *Dispatcher) *Cache {
	return &Cache{
		d:       d,
		entries: make(map[Query]Result),
	}
}

func (c *Cache) Dispatcher() *Dispatcher {
	return c.d
}

// Select returns the cached result for q, computing it on a miss.
func (c *Cache) Select(q Query) (Result, error) {
	key := q
	key.B = q.Shape().B

	c.mu.RLock()
	if res, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return clone(res), nil
	}
	c.mu.RUnlock()

	res, err := c.d.Select(q)
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	c.entries[key] = res
	c.mu.Unlock()

	return clone(res), nil
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[Query]Result)
	c.mu.Unlock()
}

func clone(res Result) Result {
	res.ReshapedRHS = slices.Clone(res.ReshapedRHS)
	return res
}
