package widgets

import (
	"fmt"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/attr"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// Constraint positions children by anchoring their edges to siblings or
// to the layout itself. It is the id-scope its children's anchor names
// resolve against, which is why the dispatcher applies the identity
// attribute before any constraint attribute.
type Constraint struct {
	view.GroupBase
	view.NameTable
}

func (c *Constraint) Init(ctx *view.Context) {}

// Edge is one side of a view in a constraint relation.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeStart
	EdgeEnd
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeStart:
		return "start"
	case EdgeEnd:
		return "end"
	default:
		return "invalid"
	}
}

// horizontal reports whether the edge is on the horizontal axis.
func (e Edge) horizontal() bool { return e == EdgeStart || e == EdgeEnd }

// Target identifies the view an edge anchors to.
type Target struct {
	// Parent anchors to the enclosing Constraint.
	Parent bool
	// ID is the anchor's runtime id when Parent is false.
	ID int32
}

// Relation anchors one edge of a child to an edge of a target.
type Relation struct {
	From   Edge
	To     Edge
	Target Target
}

// ConstraintParams is the layout-parameter record a Constraint reads
// when measuring children. Handlers build it up attribute by attribute.
type ConstraintParams struct {
	Relations []Relation

	HorizontalBias float64
	VerticalBias   float64
	HasHBias       bool
	HasVBias       bool
}

// hasAxis reports whether any relation constrains the given axis.
func (p *ConstraintParams) hasAxis(horizontal bool) bool {
	for _, r := range p.Relations {
		if r.From.horizontal() == horizontal {
			return true
		}
	}
	return false
}

// paramsFor returns the child's ConstraintParams, creating the record on
// first use. Fails when the child is not inside a Constraint.
func paramsFor(v view.View) (*ConstraintParams, error) {
	if _, ok := v.Parent().(*Constraint); !ok {
		return nil, fmt.Errorf("view is not a child of a Constraint layout")
	}
	if p, ok := v.LayoutParams().(*ConstraintParams); ok {
		return p, nil
	}
	p := &ConstraintParams{}
	v.SetLayoutParams(p)
	return p, nil
}

// resolveTarget maps an anchor reference to a target: "parent" is the
// enclosing layout, anything else resolves by name in the nearest
// id-scope. Resolution fails for names no identity attribute has
// recorded yet; anchors must be declared before they are referenced.
func resolveTarget(v view.View, val attr.Value) (Target, error) {
	if val.IsParentRef() {
		return Target{Parent: true}, nil
	}
	scope := view.ScopeFor(v)
	if scope == nil {
		return Target{}, fmt.Errorf("no id-scope for anchor %q", val.Ref())
	}
	id, ok := scope.ResolveName(val.Ref())
	if !ok {
		return Target{}, fmt.Errorf("unknown anchor %q", val.Ref())
	}
	return Target{ID: id}, nil
}

// relationHandler builds the handler for one edge-to-edge attribute.
func relationHandler(from, to Edge) attr.HandlerSpec {
	return attr.Handler[view.View](attr.KindReference, attr.PhaseConstraint,
		func(v view.View, val attr.Value) error {
			p, err := paramsFor(v)
			if err != nil {
				return err
			}
			target, err := resolveTarget(v, val)
			if err != nil {
				return err
			}
			p.Relations = append(p.Relations, Relation{From: from, To: to, Target: target})
			return nil
		})
}

// biasHandler builds the handler for an axis bias. A bias without a
// relation on its axis is an error; phase ordering guarantees relations
// from the same batch are already applied.
func biasHandler(horizontal bool) attr.HandlerSpec {
	return attr.Handler[view.View](attr.KindFloat, attr.PhaseBias,
		func(v view.View, val attr.Value) error {
			b := val.Float()
			if b < 0 || b > 1 {
				return fmt.Errorf("bias %v outside [0, 1]", b)
			}
			p, err := paramsFor(v)
			if err != nil {
				return err
			}
			if !p.hasAxis(horizontal) {
				return fmt.Errorf("bias without a constraint on its axis")
			}
			if horizontal {
				p.HorizontalBias = b
				p.HasHBias = true
			} else {
				p.VerticalBias = b
				p.HasVBias = true
			}
			return nil
		})
}

// installConstraintAttrs registers the relation and bias attributes.
func installConstraintAttrs(attrs *attr.Registry) {
	relations := []struct {
		name     string
		from, to Edge
	}{
		{"layout_constraintTop_toTopOf", EdgeTop, EdgeTop},
		{"layout_constraintTop_toBottomOf", EdgeTop, EdgeBottom},
		{"layout_constraintBottom_toTopOf", EdgeBottom, EdgeTop},
		{"layout_constraintBottom_toBottomOf", EdgeBottom, EdgeBottom},
		{"layout_constraintStart_toStartOf", EdgeStart, EdgeStart},
		{"layout_constraintStart_toEndOf", EdgeStart, EdgeEnd},
		{"layout_constraintEnd_toStartOf", EdgeEnd, EdgeStart},
		{"layout_constraintEnd_toEndOf", EdgeEnd, EdgeEnd},
	}
	for _, r := range relations {
		attrs.MustRegister(r.name, relationHandler(r.from, r.to))
	}

	attrs.MustRegister("layout_constraintHorizontal_bias", biasHandler(true))
	attrs.MustRegister("layout_constraintVertical_bias", biasHandler(false))
}
