package widgets

import (
	"image/color"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// Checkbox is a two-state toggle with an optional label.
type Checkbox struct {
	view.Base

	Text      string
	TextColor color.NRGBA
	Checked   bool

	// OnChange is invoked with the new state. Never set from a document
	// attribute.
	OnChange func(checked bool)
}

func (c *Checkbox) Init(ctx *view.Context) {}

func (c *Checkbox) SetText(s string) { c.Text = s }
func (c *Checkbox) SetTextColor(cc color.NRGBA) { c.TextColor = cc }

// SetChecked flips the state and notifies OnChange when it changed.
func (c *Checkbox) SetChecked(checked bool) {
	if c.Checked == checked {
		return
	}
	c.Checked = checked
	if c.OnChange != nil {
		c.OnChange(checked)
	}
}
