package widgets

import (
	"image/color"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/attr"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/factory"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// styled is the capability every Base-embedding view exposes for the
// common attributes.
type styled interface {
	view.View
	SetWidth(view.Size)
	SetHeight(view.Size)
	SetPadding(view.Insets)
	SetBackground(color.NRGBA)
	SetHidden(bool)
	SetDisabled(bool)
}

// texty is the capability of text-bearing views.
type texty interface {
	view.View
	SetText(string)
	SetTextColor(color.NRGBA)
}

// Install registers the stock catalog: constructors and class entries
// for every widget type, plus the attribute handler set. Call it once
// per registry pair at composition time; a second call on the same
// attribute registry panics with a duplicate registration.
func Install(attrs *attr.Registry, f *factory.Registry, classes *factory.ClassIndex) {
	installConstructors(f, classes)
	installCommonAttrs(attrs)
	installTextAttrs(attrs)
	installWidgetAttrs(attrs)
	installConstraintAttrs(attrs)
}

func installConstructors(f *factory.Registry, classes *factory.ClassIndex) {
	f.Register("Frame", func(ctx *view.Context) view.View { w := &Frame{}; w.Init(ctx); return w })
	f.Register("Linear", func(ctx *view.Context) view.View { w := &Linear{}; w.Init(ctx); return w })
	f.Register("Constraint", func(ctx *view.Context) view.View { w := &Constraint{}; w.Init(ctx); return w })
	f.Register("Label", func(ctx *view.Context) view.View { w := &Label{}; w.Init(ctx); return w })
	f.Register("Button", func(ctx *view.Context) view.View { w := &Button{}; w.Init(ctx); return w })
	f.Register("Image", func(ctx *view.Context) view.View { w := &Image{}; w.Init(ctx); return w })
	f.Register("Checkbox", func(ctx *view.Context) view.View { w := &Checkbox{}; w.Init(ctx); return w })
	f.Register("ProgressBar", func(ctx *view.Context) view.View { w := &ProgressBar{}; w.Init(ctx); return w })

	// The class index carries the same types so documents naming a stock
	// widget still resolve if an application clears or replaces the
	// factory entry. Registry hits win; these are the fallback.
	classes.RegisterClass("widget.Frame", Frame{})
	classes.RegisterClass("widget.Linear", Linear{})
	classes.RegisterClass("widget.Constraint", Constraint{})
	classes.RegisterClass("widget.Label", Label{})
	classes.RegisterClass("widget.Button", Button{})
	classes.RegisterClass("widget.Image", Image{})
	classes.RegisterClass("widget.Checkbox", Checkbox{})
	classes.RegisterClass("widget.ProgressBar", ProgressBar{})
}

// installCommonAttrs registers the attributes every view understands.
func installCommonAttrs(attrs *attr.Registry) {
	attrs.MustRegister("layout_width", attr.Handler[styled](attr.KindDimension, attr.PhaseOrdinary,
		func(v styled, val attr.Value) error { v.SetWidth(val.Dim()); return nil }))
	attrs.MustRegister("layout_height", attr.Handler[styled](attr.KindDimension, attr.PhaseOrdinary,
		func(v styled, val attr.Value) error { v.SetHeight(val.Dim()); return nil }))

	attrs.MustRegister("padding", attr.Handler[styled](attr.KindDimension, attr.PhaseOrdinary,
		func(v styled, val attr.Value) error {
			v.SetPadding(view.InsetsAll(float64(val.Dim())))
			return nil
		}))
	edge := func(set func(in *view.Insets, px float64)) func(styled, attr.Value) error {
		return func(v styled, val attr.Value) error {
			in := paddingOf(v)
			set(&in, float64(val.Dim()))
			v.SetPadding(in)
			return nil
		}
	}
	attrs.MustRegister("paddingLeft", attr.Handler[styled](attr.KindDimension, attr.PhaseOrdinary,
		edge(func(in *view.Insets, px float64) { in.Left = px })))
	attrs.MustRegister("paddingTop", attr.Handler[styled](attr.KindDimension, attr.PhaseOrdinary,
		edge(func(in *view.Insets, px float64) { in.Top = px })))
	attrs.MustRegister("paddingRight", attr.Handler[styled](attr.KindDimension, attr.PhaseOrdinary,
		edge(func(in *view.Insets, px float64) { in.Right = px })))
	attrs.MustRegister("paddingBottom", attr.Handler[styled](attr.KindDimension, attr.PhaseOrdinary,
		edge(func(in *view.Insets, px float64) { in.Bottom = px })))

	attrs.MustRegister("background", attr.Handler[styled](attr.KindColor, attr.PhaseOrdinary,
		func(v styled, val attr.Value) error { v.SetBackground(val.Color()); return nil }))
	attrs.MustRegister("visible", attr.Handler[styled](attr.KindBool, attr.PhaseOrdinary,
		func(v styled, val attr.Value) error { v.SetHidden(!val.Bool()); return nil }))
	attrs.MustRegister("enabled", attr.Handler[styled](attr.KindBool, attr.PhaseOrdinary,
		func(v styled, val attr.Value) error { v.SetDisabled(!val.Bool()); return nil }))
}

// paddingOf reads the current padding so per-edge attributes compose.
func paddingOf(v view.View) view.Insets {
	type padded interface{ CurrentPadding() view.Insets }
	if p, ok := v.(padded); ok {
		return p.CurrentPadding()
	}
	return view.Insets{}
}

// installTextAttrs registers the attributes shared by text-bearing views.
func installTextAttrs(attrs *attr.Registry) {
	attrs.MustRegister("text", attr.Handler[texty](attr.KindString, attr.PhaseOrdinary,
		func(v texty, val attr.Value) error { v.SetText(val.Str()); return nil }))
	attrs.MustRegister("textColor", attr.Handler[texty](attr.KindColor, attr.PhaseOrdinary,
		func(v texty, val attr.Value) error { v.SetTextColor(val.Color()); return nil }))

	type sized interface {
		view.View
		SetTextSize(view.Size)
	}
	attrs.MustRegister("textSize", attr.Handler[sized](attr.KindDimension, attr.PhaseOrdinary,
		func(v sized, val attr.Value) error { v.SetTextSize(val.Dim()); return nil }))
}

// installWidgetAttrs registers the per-widget attributes.
func installWidgetAttrs(attrs *attr.Registry) {
	attrs.MustRegister("orientation", attr.Handler[*Linear](attr.KindString, attr.PhaseOrdinary,
		func(l *Linear, val attr.Value) error { return l.SetOrientation(val.Str()) }))
	attrs.MustRegister("gap", attr.Handler[*Linear](attr.KindDimension, attr.PhaseOrdinary,
		func(l *Linear, val attr.Value) error { l.Gap = val.Dim(); return nil }))

	attrs.MustRegister("src", attr.Handler[*Image](attr.KindString, attr.PhaseOrdinary,
		func(i *Image, val attr.Value) error { i.SetSource(val.Str()); return nil }))
	attrs.MustRegister("scaleType", attr.Handler[*Image](attr.KindString, attr.PhaseOrdinary,
		func(i *Image, val attr.Value) error { return i.SetScale(val.Str()) }))

	attrs.MustRegister("checked", attr.Handler[*Checkbox](attr.KindBool, attr.PhaseOrdinary,
		func(c *Checkbox, val attr.Value) error { c.SetChecked(val.Bool()); return nil }))

	attrs.MustRegister("progress", attr.Handler[*ProgressBar](attr.KindInt, attr.PhaseOrdinary,
		func(p *ProgressBar, val attr.Value) error { p.SetProgress(int(val.Int())); return nil }))
	attrs.MustRegister("max", attr.Handler[*ProgressBar](attr.KindInt, attr.PhaseOrdinary,
		func(p *ProgressBar, val attr.Value) error { return p.SetMax(int(val.Int())) }))
	attrs.MustRegister("indeterminate", attr.Handler[*ProgressBar](attr.KindBool, attr.PhaseOrdinary,
		func(p *ProgressBar, val attr.Value) error { p.Indeterminate = val.Bool(); return nil }))
}
