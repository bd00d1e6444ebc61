package dfa

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CompileCache memoizes compiled automata by structural fingerprint.
// Hits take only a read lock; concurrent first-time compiles of the
// same definition are collapsed into one via singleflight. A stale
// duplicate compile would be harmless (the output is idempotent), the
// de-duplication just avoids wasted work.
type CompileCache struct {
	mu      sync.RWMutex
	entries map[uint64]*Compiled
	flight  singleflight.Group
}

// NewCompileCache returns an empty cache.
func NewCompileCache() *CompileCache {
	return &CompileCache{entries: make(map[uint64]*Compiled)}
}

// Get returns the compiled form of a, compiling at most once per
// distinct automaton definition.
func (c *CompileCache) Get(a *Automaton) *Compiled {
	fp := a.Fingerprint()

	c.mu.RLock()
	if entry, ok := c.entries[fp]; ok {
		c.mu.RUnlock()
		return entry
	}
	c.mu.RUnlock()

	key := strconv.FormatUint(fp, 16)
	v, _, _ := c.flight.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		entry, ok := c.entries[fp]
		c.mu.RUnlock()
		if ok {
			return entry, nil
		}
		entry = Compile(a)
		c.mu.Lock()
		c.entries[fp] = entry
		c.mu.Unlock()
		return entry, nil
	})
	return v.(*Compiled)
}

// Len returns the number of cached entries.
func (c *CompileCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge drops all cached entries.
func (c *CompileCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*Compiled)
}

// DefaultCache backs (*Automaton).Compiled. Automata are typically
// built once and executed many times, so a process-wide cache is the
// common case.
var DefaultCache = NewCompileCache()

// Compiled returns the compiled form of a from the process-wide
// DefaultCache.
func (a *Automaton) Compiled() *Compiled {
	return DefaultCache.Get(a)
}
