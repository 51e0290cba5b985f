package factory

import (
	"testing"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/errors"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

type stubView struct {
	view.Base
	tag string
}

func stubCtor(tag string) Constructor {
	return func(ctx *view.Context) view.View {
		return &stubView{tag: tag}
	}
}

// captureHandler records reported warnings for assertions.
type captureHandler struct {
	errors.LogHandler
	reported []*errors.InflateError
}

func (h *captureHandler) HandleError(err *errors.InflateError) {
	h.reported = append(h.reported, err)
}

func TestResolve(t *testing.T) {
	reg := NewRegistry()
	tests := []struct{ in, want string }{
		{"Label", "widget.Label"},
		{"widget.Label", "widget.Label"},
		{"custom.Chart", "custom.Chart"},
	}
	for _, tt := range tests {
		if got := reg.Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveCustomNamespace(t *testing.T) {
	reg := NewRegistry()
	reg.SetNamespace("acme")
	if got := reg.Resolve("Label"); got != "acme.Label" {
		t.Errorf("Resolve = %q, want %q", got, "acme.Label")
	}
	if got := reg.Resolve("widget.Label"); got != "widget.Label" {
		t.Errorf("qualified names pass through, got %q", got)
	}
}

func TestCreateShortAndQualified(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Label", stubCtor("label"))

	ctx := view.NewContext()
	v, ok := reg.Create("Label", ctx)
	if !ok {
		t.Fatal("Create by short name should hit")
	}
	if v.(*stubView).tag != "label" {
		t.Error("wrong constructor invoked")
	}
	if _, ok := reg.Create("widget.Label", ctx); !ok {
		t.Error("short registration must be reachable by qualified name")
	}
}

func TestCreateMissReturnsFalse(t *testing.T) {
	reg := NewRegistry()
	v, ok := reg.Create("Missing", view.NewContext())
	if ok || v != nil {
		t.Error("Create on an unregistered name returns (nil, false), not an error")
	}
}

func TestRegisterOverwriteWinsAndWarns(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	reg := NewRegistry()
	reg.Register("Label", stubCtor("stock"))
	reg.Register("Label", stubCtor("custom"))

	v, ok := reg.Create("Label", view.NewContext())
	if !ok || v.(*stubView).tag != "custom" {
		t.Error("last registration must win")
	}
	if len(handler.reported) != 1 {
		t.Fatalf("expected exactly one overwrite warning, got %d", len(handler.reported))
	}
	if handler.reported[0].Kind != errors.KindFactory {
		t.Errorf("warning kind = %v, want KindFactory", handler.reported[0].Kind)
	}
}

func TestRegisterIgnoresEmpty(t *testing.T) {
	reg := NewRegistry()
	reg.Register("", stubCtor("x"))
	reg.Register("Label", nil)
	if reg.Registered("Label") {
		t.Error("nil constructor should not register")
	}
}
