package widgets

import (
	"fmt"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// ScaleMode controls how an image fits its bounds.
type ScaleMode int

const (
	ScaleFit ScaleMode = iota
	ScaleFill
	ScaleCenter
)

// Image displays a bitmap or resource reference. Decoding and rendering
// belong to the toolkit; the catalog only records the source.
type Image struct {
	view.Base

	// Source is the image location, with resource references already
	// resolved through the construction context.
	Source string
	Scale  ScaleMode

	ctx *view.Context
}

func (i *Image) Init(ctx *view.Context) {
	i.ctx = ctx
}

// SetSource records the image source, resolving resource references
// through the construction context.
func (i *Image) SetSource(src string) {
	if i.ctx != nil {
		src = i.ctx.ResolveRef(src)
	}
	i.Source = src
}

// SetScale parses the document form of the scale mode.
func (i *Image) SetScale(s string) error {
	switch s {
	case "fit":
		i.Scale = ScaleFit
	case "fill":
		i.Scale = ScaleFill
	case "center":
		i.Scale = ScaleCenter
	default:
		return fmt.Errorf("unknown scale mode %q", s)
	}
	return nil
}
