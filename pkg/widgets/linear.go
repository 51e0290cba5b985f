package widgets

import (
	"fmt"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// Orientation is the main axis of a Linear.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Linear lays children out along one axis, like a column or row.
// It is an id-scope for the names declared inside it.
type Linear struct {
	view.GroupBase
	view.NameTable

	Orientation Orientation
	// Gap is the spacing between consecutive children.
	Gap view.Size
}

func (l *Linear) Init(ctx *view.Context) {}

// SetOrientation parses the document form of the orientation.
func (l *Linear) SetOrientation(s string) error {
	switch s {
	case "vertical":
		l.Orientation = Vertical
	case "horizontal":
		l.Orientation = Horizontal
	default:
		return fmt.Errorf("unknown orientation %q", s)
	}
	return nil
}
