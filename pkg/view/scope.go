package view

// IDScope maps declared view names to runtime IDs. A group that acts as an
// id-scope (typically a layout root) lets later attributes resolve sibling
// anchors by name.
type IDScope interface {
	// RegisterName records a name for a runtime ID. Re-registering a name
	// overwrites the previous entry; documents that declare the same name
	// twice reference the most recent view, matching toolkit behavior.
	RegisterName(name string, id int32)
	// ResolveName returns the runtime ID recorded for name.
	ResolveName(name string) (int32, bool)
}

// NameTable is an embeddable IDScope backed by a plain map. The view tree
// has a single logical owner at a time, so no locking is done here.
type NameTable struct {
	names map[string]int32
}

// RegisterName records a name for a runtime ID.
func (t *NameTable) RegisterName(name string, id int32) {
	if t.names == nil {
		t.names = make(map[string]int32)
	}
	t.names[name] = id
}

// ResolveName returns the runtime ID recorded for name.
func (t *NameTable) ResolveName(name string) (int32, bool) {
	id, ok := t.names[name]
	return id, ok
}

// ScopeFor walks up from v and returns the nearest ancestor that serves as
// an IDScope, or nil when the view is detached or no ancestor qualifies.
// If v is itself a scope-bearing group it is its own scope root for
// children but not for itself; resolution always starts at the parent.
func ScopeFor(v View) IDScope {
	if v == nil {
		return nil
	}
	for p := v.Parent(); p != nil; p = p.Parent() {
		if s, ok := p.(IDScope); ok {
			return s
		}
	}
	return nil
}
