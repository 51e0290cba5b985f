package widgets

import (
	"image/color"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// Label displays a single run of text.
type Label struct {
	view.Base

	Text      string
	TextColor color.NRGBA
	// TextSize is the font size in density-independent units; zero means
	// the toolkit default.
	TextSize view.Size
}

func (l *Label) Init(ctx *view.Context) {}

func (l *Label) SetText(s string) { l.Text = s }
func (l *Label) SetTextColor(c color.NRGBA) { l.TextColor = c }
func (l *Label) SetTextSize(size view.Size) { l.TextSize = size }
