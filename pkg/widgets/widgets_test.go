package widgets

import (
	goerrors "errors"
	"image/color"
	"testing"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/attr"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/errors"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/factory"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

func newCatalog(t *testing.T) (*attr.Registry, *factory.Registry, *factory.ClassIndex) {
	t.Helper()
	attrs := attr.NewRegistry()
	f := factory.NewRegistry()
	classes := factory.NewClassIndex()
	Install(attrs, f, classes)
	return attrs, f, classes
}

func TestInstall_Constructors(t *testing.T) {
	_, f, _ := newCatalog(t)
	ctx := view.NewContext()

	names := []string{"Frame", "Linear", "Constraint", "Label", "Button", "Image", "Checkbox", "ProgressBar"}
	for _, name := range names {
		v, ok := f.Create(name, ctx)
		if !ok {
			t.Fatalf("Create(%q) not registered", name)
		}
		if v == nil {
			t.Fatalf("Create(%q) returned nil view", name)
		}
	}

	if _, ok := f.Create("widget.Label", ctx); !ok {
		t.Fatal("qualified name widget.Label should resolve to the same entry")
	}
}

func TestInstall_ProgressBarDefaults(t *testing.T) {
	_, f, _ := newCatalog(t)

	v, _ := f.Create("ProgressBar", view.NewContext())
	p, ok := v.(*ProgressBar)
	if !ok {
		t.Fatalf("Create(ProgressBar) = %T", v)
	}
	if p.Max != 100 {
		t.Fatalf("default Max = %d, want 100", p.Max)
	}
}

func TestInstall_SecondCallPanics(t *testing.T) {
	attrs, f, classes := newCatalog(t)

	defer func() {
		if recover() == nil {
			t.Fatal("second Install on the same attribute registry should panic")
		}
	}()
	Install(attrs, f, classes)
}

func TestCommonAttributes(t *testing.T) {
	attrs, _, _ := newCatalog(t)
	d := attr.NewDispatcher(attrs)

	l := &Label{}
	errs := d.ApplyBatch(l, attr.Batch{
		{Name: "layout_width", Value: "match_parent"},
		{Name: "layout_height", Value: "120dp"},
		{Name: "padding", Value: "8dp"},
		{Name: "paddingLeft", Value: "16dp"},
		{Name: "background", Value: "#ff8800"},
		{Name: "visible", Value: "false"},
		{Name: "enabled", Value: "false"},
	})
	if len(errs) != 0 {
		t.Fatalf("ApplyBatch errors: %v", errs)
	}

	if l.Width != view.MatchParent {
		t.Errorf("Width = %v, want MatchParent", l.Width)
	}
	if l.Height != 120 {
		t.Errorf("Height = %v, want 120", l.Height)
	}
	want := view.Insets{Left: 16, Top: 8, Right: 8, Bottom: 8}
	if l.Padding != want {
		t.Errorf("Padding = %+v, want %+v", l.Padding, want)
	}
	bg, ok := l.Background()
	if !ok || bg != (color.NRGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}) {
		t.Errorf("Background = %v, %v", bg, ok)
	}
	if !l.Hidden {
		t.Error("visible=false should set Hidden")
	}
	if !l.Disabled {
		t.Error("enabled=false should set Disabled")
	}
}

func TestTextAttributes(t *testing.T) {
	attrs, _, _ := newCatalog(t)
	d := attr.NewDispatcher(attrs)

	b := &Button{}
	errs := d.ApplyBatch(b, attr.Batch{
		{Name: "text", Value: "Submit"},
		{Name: "textColor", Value: "#ffffff"},
		{Name: "textSize", Value: "18sp"},
	})
	if len(errs) != 0 {
		t.Fatalf("ApplyBatch errors: %v", errs)
	}
	if b.Text != "Submit" {
		t.Errorf("Text = %q", b.Text)
	}
	if b.TextColor != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("TextColor = %v", b.TextColor)
	}
	if b.TextSize != 18 {
		t.Errorf("TextSize = %v", b.TextSize)
	}
}

func TestTextSizeCapability(t *testing.T) {
	attrs, _, _ := newCatalog(t)
	d := attr.NewDispatcher(attrs)

	// Checkbox carries text but no text size.
	c := &Checkbox{}
	errs := d.ApplyBatch(c, attr.Batch{
		{Name: "text", Value: "Remember me"},
		{Name: "textSize", Value: "18sp"},
	})
	if c.Text != "Remember me" {
		t.Errorf("Text = %q", c.Text)
	}
	if len(errs) != 1 || !goerrors.Is(errs[0], errors.ErrTypeMismatch) {
		t.Fatalf("errs = %v, want one ErrTypeMismatch", errs)
	}
}

func TestLinearAttributes(t *testing.T) {
	attrs, _, _ := newCatalog(t)
	d := attr.NewDispatcher(attrs)

	l := &Linear{}
	if errs := d.ApplyBatch(l, attr.Batch{
		{Name: "orientation", Value: "horizontal"},
		{Name: "gap", Value: "12dp"},
	}); len(errs) != 0 {
		t.Fatalf("ApplyBatch errors: %v", errs)
	}
	if l.Orientation != Horizontal {
		t.Errorf("Orientation = %v, want Horizontal", l.Orientation)
	}
	if l.Gap != 12 {
		t.Errorf("Gap = %v, want 12", l.Gap)
	}

	if errs := d.ApplyBatch(&Linear{}, attr.Batch{
		{Name: "orientation", Value: "diagonal"},
	}); len(errs) != 1 {
		t.Fatalf("bad orientation: errs = %v, want 1", errs)
	}
}

func TestImageAttributes(t *testing.T) {
	attrs, f, _ := newCatalog(t)
	d := attr.NewDispatcher(attrs)

	ctx := view.NewContext()
	ctx.Resolve = func(name string) (string, bool) {
		if name == "drawable/logo" {
			return "/assets/logo.png", true
		}
		return "", false
	}

	v, _ := f.Create("Image", ctx)
	img := v.(*Image)
	if errs := d.ApplyBatch(img, attr.Batch{
		{Name: "src", Value: "drawable/logo"},
		{Name: "scaleType", Value: "fill"},
	}); len(errs) != 0 {
		t.Fatalf("ApplyBatch errors: %v", errs)
	}
	if img.Source != "/assets/logo.png" {
		t.Errorf("Source = %q, want resolved path", img.Source)
	}
	if img.Scale != ScaleFill {
		t.Errorf("Scale = %v, want ScaleFill", img.Scale)
	}

	if errs := d.ApplyBatch(img, attr.Batch{
		{Name: "scaleType", Value: "stretch"},
	}); len(errs) != 1 {
		t.Fatalf("bad scale: errs = %v, want 1", errs)
	}
}

func TestCheckboxAttributes(t *testing.T) {
	attrs, _, _ := newCatalog(t)
	d := attr.NewDispatcher(attrs)

	var fired []bool
	c := &Checkbox{OnChange: func(checked bool) { fired = append(fired, checked) }}
	if errs := d.ApplyBatch(c, attr.Batch{
		{Name: "checked", Value: "true"},
	}); len(errs) != 0 {
		t.Fatalf("ApplyBatch errors: %v", errs)
	}
	if !c.Checked {
		t.Error("Checked not set")
	}
	if len(fired) != 1 || !fired[0] {
		t.Errorf("OnChange calls = %v, want [true]", fired)
	}

	// Same state again: no notification.
	c.SetChecked(true)
	if len(fired) != 1 {
		t.Errorf("OnChange fired on no-op transition: %v", fired)
	}
}

func TestProgressAttributes(t *testing.T) {
	attrs, f, _ := newCatalog(t)
	d := attr.NewDispatcher(attrs)

	v, _ := f.Create("ProgressBar", view.NewContext())
	p := v.(*ProgressBar)
	if errs := d.ApplyBatch(p, attr.Batch{
		{Name: "max", Value: "50"},
		{Name: "progress", Value: "75"},
		{Name: "indeterminate", Value: "true"},
	}); len(errs) != 0 {
		t.Fatalf("ApplyBatch errors: %v", errs)
	}
	if p.Max != 50 {
		t.Errorf("Max = %d, want 50", p.Max)
	}
	if p.Progress != 50 {
		t.Errorf("Progress = %d, want clamped to 50", p.Progress)
	}
	if !p.Indeterminate {
		t.Error("Indeterminate not set")
	}

	if errs := d.ApplyBatch(p, attr.Batch{
		{Name: "max", Value: "0"},
	}); len(errs) != 1 {
		t.Fatalf("non-positive max: errs = %v, want 1", errs)
	}
}

func TestClassIndexFallback(t *testing.T) {
	_, _, classes := newCatalog(t)

	for _, name := range []string{"widget.Frame", "widget.Label", "widget.Constraint"} {
		if _, ok := classes.ResolveClass(name); !ok {
			t.Errorf("ResolveClass(%q) missing", name)
		}
	}
}
