package uitest

import (
	"reflect"
	"sync/atomic"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/factory"
)

// CountingResolver wraps a ClassResolver and counts resolution calls.
// Tests use it to prove the reflective builder discovers a type once and
// serves every later construction from the factory cache.
type CountingResolver struct {
	Inner factory.ClassResolver

	calls atomic.Int64
}

// NewCountingResolver wraps inner.
func NewCountingResolver(inner factory.ClassResolver) *CountingResolver {
	return &CountingResolver{Inner: inner}
}

// ResolveClass delegates to the wrapped resolver, counting the call.
func (c *CountingResolver) ResolveClass(name string) (reflect.Type, bool) {
	c.calls.Add(1)
	return c.Inner.ResolveClass(name)
}

// Calls returns the number of ResolveClass invocations so far.
func (c *CountingResolver) Calls() int {
	return int(c.calls.Load())
}
