package widgets

import (
	"strings"
	"testing"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/document"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/inflater"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

func inflateJSON(t *testing.T, src string) *inflater.Result {
	t.Helper()
	attrs, f, classes := newCatalog(t)
	doc, err := document.ParseJSON([]byte(src))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	res, err := inflater.New(attrs, f, classes).Inflate(view.NewContext(), doc, nil)
	if err != nil {
		t.Fatalf("Inflate: %v", err)
	}
	return res
}

func TestConstraint_RelationsAndBias(t *testing.T) {
	res := inflateJSON(t, `{
        "type": "Constraint",
        "children": [
            {
                "type": "Label",
                "attributes": {
                    "id": "@+id/title",
                    "text": "Hello",
                    "layout_constraintTop_toTopOf": "parent"
                }
            },
            {
                "type": "Button",
                "attributes": {
                    "text": "Go",
                    "layout_constraintTop_toBottomOf": "@id/title",
                    "layout_constraintStart_toStartOf": "parent",
                    "layout_constraintHorizontal_bias": "0.25"
                }
            }
        ]
    }`)
	if len(res.Diagnostics) != 0 {
		t.Fatalf("diagnostics: %v", res.Diagnostics)
	}

	root := res.Root.(*Constraint)
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}
	title := children[0].(*Label)
	button := children[1].(*Button)

	tp, ok := title.LayoutParams().(*ConstraintParams)
	if !ok {
		t.Fatalf("title params = %T", title.LayoutParams())
	}
	if len(tp.Relations) != 1 || !tp.Relations[0].Target.Parent {
		t.Fatalf("title relations = %+v, want one parent anchor", tp.Relations)
	}

	bp, ok := button.LayoutParams().(*ConstraintParams)
	if !ok {
		t.Fatalf("button params = %T", button.LayoutParams())
	}
	if len(bp.Relations) != 2 {
		t.Fatalf("button relations = %+v, want 2", bp.Relations)
	}
	top := bp.Relations[0]
	if top.From != EdgeTop || top.To != EdgeBottom {
		t.Errorf("relation edges = %v->%v, want top->bottom", top.From, top.To)
	}
	if top.Target.Parent || top.Target.ID != title.RuntimeID() {
		t.Errorf("anchor = %+v, want title's runtime id %d", top.Target, title.RuntimeID())
	}
	if !bp.HasHBias || bp.HorizontalBias != 0.25 {
		t.Errorf("horizontal bias = %v (set %v), want 0.25", bp.HorizontalBias, bp.HasHBias)
	}
	if bp.HasVBias {
		t.Error("vertical bias should be unset")
	}
}

func TestConstraint_UnknownAnchor(t *testing.T) {
	res := inflateJSON(t, `{
        "type": "Constraint",
        "children": [
            {
                "type": "Label",
                "attributes": {"layout_constraintTop_toBottomOf": "@id/missing"}
            }
        ]
    }`)
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want 1", res.Diagnostics)
	}
	if !strings.Contains(res.Diagnostics[0].Error(), "unknown anchor") {
		t.Errorf("diagnostic = %v", res.Diagnostics[0])
	}

	label := res.Root.(*Constraint).Children()[0].(*Label)
	if p, ok := label.LayoutParams().(*ConstraintParams); ok && len(p.Relations) != 0 {
		t.Errorf("failed relation was recorded: %+v", p.Relations)
	}
}

func TestConstraint_ForwardAnchorUnresolved(t *testing.T) {
	// The dispatcher configures nodes in document order, so an anchor
	// declared by a later sibling is not visible yet.
	res := inflateJSON(t, `{
        "type": "Constraint",
        "children": [
            {
                "type": "Button",
                "attributes": {"layout_constraintTop_toBottomOf": "@id/late"}
            },
            {
                "type": "Label",
                "attributes": {"id": "@+id/late"}
            }
        ]
    }`)
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want 1", res.Diagnostics)
	}
}

func TestConstraint_BiasWithoutAxis(t *testing.T) {
	res := inflateJSON(t, `{
        "type": "Constraint",
        "children": [
            {
                "type": "Label",
                "attributes": {
                    "layout_constraintTop_toTopOf": "parent",
                    "layout_constraintHorizontal_bias": "0.5"
                }
            }
        ]
    }`)
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want 1", res.Diagnostics)
	}
	if !strings.Contains(res.Diagnostics[0].Error(), "without a constraint on its axis") {
		t.Errorf("diagnostic = %v", res.Diagnostics[0])
	}
}

func TestConstraint_BiasOutOfRange(t *testing.T) {
	res := inflateJSON(t, `{
        "type": "Constraint",
        "children": [
            {
                "type": "Label",
                "attributes": {
                    "layout_constraintStart_toStartOf": "parent",
                    "layout_constraintHorizontal_bias": "1.5"
                }
            }
        ]
    }`)
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want 1", res.Diagnostics)
	}
	if !strings.Contains(res.Diagnostics[0].Error(), "outside [0, 1]") {
		t.Errorf("diagnostic = %v", res.Diagnostics[0])
	}
}

func TestConstraint_RelationOutsideConstraint(t *testing.T) {
	res := inflateJSON(t, `{
        "type": "Frame",
        "children": [
            {
                "type": "Label",
                "attributes": {"layout_constraintTop_toTopOf": "parent"}
            }
        ]
    }`)
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want 1", res.Diagnostics)
	}
	if !strings.Contains(res.Diagnostics[0].Error(), "not a child of a Constraint") {
		t.Errorf("diagnostic = %v", res.Diagnostics[0])
	}
}

func TestEdgeString(t *testing.T) {
	cases := map[Edge]string{
		EdgeTop:    "top",
		EdgeBottom: "bottom",
		EdgeStart:  "start",
		EdgeEnd:    "end",
		Edge(9):    "invalid",
	}
	for e, want := range cases {
		if got := e.String(); got != want {
			t.Errorf("Edge(%d).String() = %q, want %q", e, got, want)
		}
	}
}
