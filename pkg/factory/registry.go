// Package factory maps declarative type names to view constructors, with a
// reflective fallback that is discovered once and cached.
//
// The hot path is a plain map lookup: pre-registered constructors are
// served with zero reflection-related branching. The reflective Builder is
// the explicit miss path; on its first success it installs the discovered
// constructor into the Registry, so every later request for the same type
// is a hit.
package factory

import (
	goerrors "errors"
	"strings"
	"sync"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/errors"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// DefaultNamespace qualifies short type names: "Label" resolves to
// "widget.Label".
const DefaultNamespace = "widget"

// errConstructorReplaced marks a deliberate last-wins overwrite in the
// registry. Reported as a warning, never returned.
var errConstructorReplaced = goerrors.New("constructor replaced")

// Constructor produces a view from a construction context.
type Constructor func(ctx *view.Context) view.View

// Registry maps fully-qualified type names to constructors. Registration
// and lookup are safe from any goroutine.
//
// Unlike the attribute registry, re-registering a type name here is a
// supported use case (overriding a stock widget with a customized one),
// so the last registration wins and the overwrite is reported as a
// warning rather than failing.
type Registry struct {
	mu        sync.RWMutex
	ctors     map[string]Constructor
	namespace string
}

// NewRegistry returns an empty factory registry using DefaultNamespace
// for short names.
func NewRegistry() *Registry {
	return &Registry{
		ctors:     make(map[string]Constructor),
		namespace: DefaultNamespace,
	}
}

// SetNamespace overrides the namespace used to qualify short type names.
func (r *Registry) SetNamespace(ns string) {
	r.mu.Lock()
	if ns != "" {
		r.namespace = ns
	}
	r.mu.Unlock()
}

// Register stores ctor under typeName, overwriting any previous entry.
// Overwrites are reported through the error handler so an accidental
// collision at startup is visible in logs.
func (r *Registry) Register(typeName string, ctor Constructor) {
	if typeName == "" || ctor == nil {
		return
	}
	name := r.Resolve(typeName)

	r.mu.Lock()
	_, overwrote := r.ctors[name]
	r.ctors[name] = ctor
	r.mu.Unlock()

	if overwrote {
		errors.Report(&errors.InflateError{
			Op:   "factory.Registry.Register",
			Kind: errors.KindFactory,
			Node: name,
			Err:  errConstructorReplaced,
		})
	}
}

// Create resolves typeName and invokes its registered constructor. The
// second return is false when no constructor is registered; the caller
// decides whether to fall back to reflective construction.
func (r *Registry) Create(typeName string, ctx *view.Context) (view.View, bool) {
	name := r.Resolve(typeName)

	r.mu.RLock()
	ctor := r.ctors[name]
	r.mu.RUnlock()

	if ctor == nil {
		return nil, false
	}
	return ctor(ctx), true
}

// Resolve qualifies a short type name with the registry's namespace.
// Names already containing a namespace separator pass through unchanged.
func (r *Registry) Resolve(typeName string) string {
	if strings.Contains(typeName, ".") {
		return typeName
	}
	r.mu.RLock()
	ns := r.namespace
	r.mu.RUnlock()
	return ns + "." + typeName
}

// Registered reports whether a constructor exists for typeName.
func (r *Registry) Registered(typeName string) bool {
	name := r.Resolve(typeName)
	r.mu.RLock()
	_, ok := r.ctors[name]
	r.mu.RUnlock()
	return ok
}
