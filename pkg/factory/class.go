package factory

import (
	"reflect"
	"sync"
)

// ClassResolver resolves a fully-qualified type name to the concrete
// struct type behind it. The Builder depends on this interface so tests
// can count resolution calls.
type ClassResolver interface {
	// ResolveClass returns the struct type indexed under name.
	ResolveClass(name string) (reflect.Type, bool)
}

// ClassIndex is the standard ClassResolver: a thread-safe table of
// concrete view struct types keyed by fully-qualified name. Widget
// catalogs and applications populate it at startup; the Builder consults
// it only on a factory miss.
type ClassIndex struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewClassIndex returns an empty class index.
func NewClassIndex() *ClassIndex {
	return &ClassIndex{types: make(map[string]reflect.Type)}
}

// RegisterClass indexes the struct type of sample under name. The sample
// may be a value or a pointer; only its element type is recorded.
// Last registration wins, mirroring the factory registry.
func (c *ClassIndex) RegisterClass(name string, sample any) {
	if name == "" || sample == nil {
		return
	}
	t := reflect.TypeOf(sample)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	c.mu.Lock()
	c.types[name] = t
	c.mu.Unlock()
}

// ResolveClass returns the struct type indexed under name.
func (c *ClassIndex) ResolveClass(name string) (reflect.Type, bool) {
	c.mu.RLock()
	t, ok := c.types[name]
	c.mu.RUnlock()
	return t, ok
}
