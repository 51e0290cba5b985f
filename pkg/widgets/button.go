package widgets

import (
	"image/color"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// Button is a tappable label. Tap wiring happens in application code
// after inflation; the document only configures appearance.
type Button struct {
	view.Base

	Text      string
	TextColor color.NRGBA
	TextSize  view.Size

	// OnTap is invoked when the button is activated. Never set from a
	// document attribute.
	OnTap func()
}

func (b *Button) Init(ctx *view.Context) {}

func (b *Button) SetText(s string) { b.Text = s }
func (b *Button) SetTextColor(c color.NRGBA) { b.TextColor = c }
func (b *Button) SetTextSize(size view.Size) { b.TextSize = size }
