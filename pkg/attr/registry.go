package attr

import (
	"fmt"
	"sync"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/errors"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// ID is the dense integer assigned to an attribute name in registration
// order. IDs index the duplicate-application bitmask directly, so they
// stay dense for the process lifetime and are never reassigned.
type ID int32

// Phase places a handler in the dispatch order. The phase is declared at
// registration rather than inferred from the attribute name, so the
// two-stage constraint ordering is a structural guarantee instead of a
// naming convention.
type Phase int

const (
	// PhaseOrdinary attributes are mutually independent and apply in any
	// order. This independence is a documented precondition on handler
	// authors, not something the dispatcher enforces.
	PhaseOrdinary Phase = iota
	// PhaseConstraint attributes establish edge-to-edge or anchor
	// relations and apply after all ordinary attributes.
	PhaseConstraint
	// PhaseBias attributes adjust positioning within already-declared
	// constraints and apply last, so a bias is never dropped by a toolkit
	// that requires the matching constraint to exist first.
	PhaseBias
)

// HandlerSpec describes one registered attribute: the capability a target
// view must satisfy, the declared value kind, the dispatch phase, and the
// apply function. The apply function is never invoked with a view or
// value outside its declared types.
type HandlerSpec struct {
	// Name is the attribute name, filled in by the registry.
	Name string
	// Kind is the declared value type.
	Kind ValueKind
	// Phase is the dispatch phase.
	Phase Phase
	// CanApply reports whether the target view satisfies the handler's
	// capability.
	CanApply func(target view.View) bool
	// Apply mutates the target. Called only after CanApply passed and the
	// value parsed as Kind.
	Apply func(target view.View, val Value) error
}

// Handler builds a HandlerSpec whose capability is membership of V, so a
// handler declares the interface (or concrete view type) it needs and the
// dispatcher resolves the capability with one type assertion.
func Handler[V view.View](kind ValueKind, phase Phase, apply func(target V, val Value) error) HandlerSpec {
	return HandlerSpec{
		Kind:  kind,
		Phase: phase,
		CanApply: func(target view.View) bool {
			_, ok := target.(V)
			return ok
		},
		Apply: func(target view.View, val Value) error {
			t, ok := target.(V)
			if !ok {
				return errors.ErrTypeMismatch
			}
			return apply(t, val)
		},
	}
}

// Registry maps attribute names to dense IDs and IDs to handlers.
//
// Registration happens at startup and is safe from any goroutine; the
// check-then-insert is atomic under the registry lock. Lookups take the
// read lock only, so a warm registry never blocks readers on other
// readers.
type Registry struct {
	mu       sync.RWMutex
	ids      map[string]ID
	handlers []HandlerSpec
}

// NewRegistry returns an empty attribute registry. Each composition root
// (and each test) constructs its own; there is no package-level instance.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]ID)}
}

// Register assigns the next dense ID to name and stores its handler.
// Registering a name twice fails with ErrDuplicateRegistration; the
// original handler stays in place.
func (r *Registry) Register(name string, spec HandlerSpec) (ID, error) {
	if name == "" {
		return 0, fmt.Errorf("attr: empty attribute name")
	}
	if name == IDAttribute {
		return 0, fmt.Errorf("attr: %q is reserved for the identity attribute", name)
	}

	// Fast path for the common already-registered probe during
	// single-threaded startup.
	r.mu.RLock()
	_, exists := r.ids[name]
	r.mu.RUnlock()
	if exists {
		return 0, duplicateErr(name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Double-check: another registrant may have won the race between the
	// read unlock and here.
	if _, exists := r.ids[name]; exists {
		return 0, duplicateErr(name)
	}
	id := ID(len(r.handlers))
	spec.Name = name
	r.ids[name] = id
	r.handlers = append(r.handlers, spec)
	return id, nil
}

func duplicateErr(name string) error {
	return fmt.Errorf("%w: %s", errors.ErrDuplicateRegistration, name)
}

// MustRegister is Register for startup catalog installation, where a
// duplicate registration is a programming error that should abort
// composition of the offending module.
func (r *Registry) MustRegister(name string, spec HandlerSpec) ID {
	id, err := r.Register(name, spec)
	if err != nil {
		panic(err)
	}
	return id
}

// Lookup returns the dense ID for name.
func (r *Registry) Lookup(name string) (ID, bool) {
	r.mu.RLock()
	id, ok := r.ids[name]
	r.mu.RUnlock()
	return id, ok
}

// Handler returns the handler registered under id.
func (r *Registry) Handler(id ID) (HandlerSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || int(id) >= len(r.handlers) {
		return HandlerSpec{}, false
	}
	return r.handlers[id], true
}

// Len returns the number of registered attributes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}
