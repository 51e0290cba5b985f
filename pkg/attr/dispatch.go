package attr

import (
	"strings"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/errors"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// IDAttribute is the reserved identity attribute. It is handled by the
// dispatcher itself, before any registered handler: it allocates the
// view's stable runtime ID and records the declared name in the nearest
// ancestor id-scope so later attributes can resolve anchors by name.
const IDAttribute = "id"

// Entry is one name/value pair from the document.
type Entry struct {
	Name  string
	Value string
}

// Batch is the full attribute list for one node, in document order.
// Document order only matters for duplicate detection (the first
// occurrence wins); the application order is imposed by phases.
type Batch []Entry

// Dispatcher applies attribute batches against views. It owns a
// duplicate-application tracker, so one Dispatcher serves one ApplyBatch
// call at a time; concurrent batches need their own Dispatcher.
type Dispatcher struct {
	reg     *Registry
	applied tracker
}

// NewDispatcher returns a dispatcher over the given registry.
func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{reg: reg}
}

// resolved is a batch entry bound to its handler.
type resolved struct {
	id   ID
	spec HandlerSpec
	raw  string
}

// ApplyBatch configures target with every entry in batch, in this order:
//
//  1. The duplicate tracker is cleared.
//  2. The identity attribute, if present, applies first and in isolation.
//  3. Ordinary attributes apply in document order.
//  4. Constraint attributes apply, then bias attributes, so a bias always
//     lands after the relation it adjusts.
//
// Unknown names, duplicates, capability and value mismatches are collected
// and returned; none of them aborts the rest of the batch. The first
// application of a duplicated attribute wins. The target is mutated in
// place.
func (d *Dispatcher) ApplyBatch(target view.View, batch Batch) []error {
	d.applied.clear()

	var errs []error
	report := func(name string, err error) {
		errs = append(errs, &errors.InflateError{
			Op:   "attr.Dispatcher.ApplyBatch",
			Kind: errors.KindAttribute,
			Attr: name,
			Err:  err,
		})
	}

	// Phase: identity. Applied before everything else because later
	// phases may resolve this view by name.
	idApplied := false
	for _, e := range batch {
		if e.Name != IDAttribute {
			continue
		}
		if idApplied {
			report(e.Name, errors.ErrDuplicateAttribute)
			continue
		}
		applyIdentity(target, e.Value)
		idApplied = true
	}

	// Bind the remaining entries to handlers, preserving document order
	// within each phase bucket.
	var ordinary, constraint, bias []resolved
	for _, e := range batch {
		if e.Name == IDAttribute {
			continue
		}
		id, ok := d.reg.Lookup(e.Name)
		if !ok {
			report(e.Name, errors.ErrUnknownAttribute)
			continue
		}
		spec, _ := d.reg.Handler(id)
		r := resolved{id: id, spec: spec, raw: e.Value}
		switch spec.Phase {
		case PhaseConstraint:
			constraint = append(constraint, r)
		case PhaseBias:
			bias = append(bias, r)
		default:
			ordinary = append(ordinary, r)
		}
	}

	for _, bucket := range [][]resolved{ordinary, constraint, bias} {
		for _, r := range bucket {
			d.applyOne(target, r, report)
		}
	}
	return errs
}

// applyOne runs the duplicate, capability and value checks for one entry
// and invokes its handler. Failures are reported and skipped; a later
// duplicate never overwrites an earlier application.
func (d *Dispatcher) applyOne(target view.View, r resolved, report func(string, error)) {
	if !d.applied.tryMark(r.id) {
		report(r.spec.Name, errors.ErrDuplicateAttribute)
		return
	}
	if r.spec.CanApply != nil && !r.spec.CanApply(target) {
		report(r.spec.Name, errors.ErrTypeMismatch)
		return
	}
	val, err := Parse(r.raw, r.spec.Kind)
	if err != nil {
		report(r.spec.Name, err)
		return
	}
	if err := r.spec.Apply(target, val); err != nil {
		report(r.spec.Name, err)
	}
}

// applyIdentity allocates a runtime ID for target and records the
// declared name in the nearest ancestor id-scope.
func applyIdentity(target view.View, raw string) {
	id := view.GenerateID()
	target.SetRuntimeID(id)
	name := NormalizeIDName(raw)
	if name == "" {
		return
	}
	if scope := view.ScopeFor(target); scope != nil {
		scope.RegisterName(name, id)
	}
}

// NormalizeIDName strips the declaration prefixes from an identity value,
// leaving the bare name ("@+id/box1" and "box1" both yield "box1").
func NormalizeIDName(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "@+id/")
	raw = strings.TrimPrefix(raw, "@id/")
	return raw
}
