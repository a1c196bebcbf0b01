package color

import (
	"sync"

	"github.com/wudi/pdfcolor/pdfobj"
)

// Cache stores parsed color spaces keyed by indirect-object identity or
// by resource-dictionary name, so the parser doesn't reconstruct the
// same space twice. A miss returns ok==false; Set is idempotent on
// (name, ref).
type Cache interface {
	GetByRef(ref pdfobj.ObjectRef) (Space, bool)
	GetByName(name string) (Space, bool)
	Set(name string, ref pdfobj.ObjectRef, hasRef bool, sp Space)
}

// MapCache is the default in-memory Cache, safe for concurrent read-only
// lookups once populated by a single-threaded parse pass.
type MapCache struct {
	mu     sync.RWMutex
	byRef  map[pdfobj.ObjectRef]Space
	byName map[string]Space
}

func NewMapCache() *MapCache {
	return &MapCache{
		byRef:  make(map[pdfobj.ObjectRef]Space),
		byName: make(map[string]Space),
	}
}

func (c *MapCache) GetByRef(ref pdfobj.ObjectRef) (Space, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sp, ok := c.byRef[ref]
	return sp, ok
}

func (c *MapCache) GetByName(name string) (Space, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sp, ok := c.byName[name]
	return sp, ok
}

func (c *MapCache) Set(name string, ref pdfobj.ObjectRef, hasRef bool, sp Space) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hasRef {
		c.byRef[ref] = sp
	}
	if name != "" {
		c.byName[name] = sp
	}
}
