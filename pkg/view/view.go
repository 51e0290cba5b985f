// Package view defines the minimal retained-mode node model the inflation
// engine configures: the View and Group interfaces, common base storage,
// runtime ID allocation, and name-to-ID scopes.
//
// The dispatch and factory packages treat views as opaque beyond two
// capabilities: interface membership (for handler capability checks) and
// child attachment (for tree assembly). Everything else here is the thin
// binding layer a concrete widget catalog builds on.
package view

import "image/color"

// Size is a dimension in density-independent units. The two negative
// sentinels mirror the usual retained-mode toolkit conventions.
type Size float64

const (
	// MatchParent sizes a view to fill its parent.
	MatchParent Size = -1
	// WrapContent sizes a view to its content.
	WrapContent Size = -2
)

// Insets describes padding on the four edges of a view.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// InsetsAll returns uniform insets on all four edges.
func InsetsAll(v float64) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// View is a node in the retained-mode tree.
//
// A runtime ID of zero means "unassigned". IDs are allocated by GenerateID
// and recorded in the nearest ancestor IDScope when the identity attribute
// is applied.
type View interface {
	// RuntimeID returns the view's stable numeric id, or zero.
	RuntimeID() int32
	// SetRuntimeID assigns the view's stable numeric id.
	SetRuntimeID(id int32)
	// Parent returns the group this view is attached to, or nil.
	Parent() Group
	// SetParent records the group this view is attached to.
	// Called by Group.AddChild; not intended for direct use.
	SetParent(p Group)
	// LayoutParams returns the layout parameters owned by the parent
	// layout, or nil when none have been set.
	LayoutParams() any
	// SetLayoutParams stores layout parameters for the parent layout.
	SetLayoutParams(p any)
}

// Group is a view that holds children.
type Group interface {
	View
	// AddChild attaches a child and records the parent link.
	AddChild(child View)
	// Children returns the attached children in attachment order.
	Children() []View
}

// Base provides the common storage every concrete view embeds.
//
// Field zero values are the enabled, visible defaults: Hidden and Disabled
// are false, Background is unset until SetBackground.
type Base struct {
	Width    Size
	Height   Size
	Padding  Insets
	Hidden   bool
	Disabled bool

	background    color.NRGBA
	hasBackground bool

	runtimeID int32
	parent    Group
	params    any
}

func (b *Base) RuntimeID() int32      { return b.runtimeID }
func (b *Base) SetRuntimeID(id int32) { b.runtimeID = id }

func (b *Base) Parent() Group     { return b.parent }
func (b *Base) SetParent(p Group) { b.parent = p }

func (b *Base) LayoutParams() any     { return b.params }
func (b *Base) SetLayoutParams(p any) { b.params = p }

// Setter methods let attribute handlers address the common properties
// through small capability interfaces instead of concrete types.

func (b *Base) SetWidth(s Size) { b.Width = s }
func (b *Base) SetHeight(s Size) { b.Height = s }
func (b *Base) SetPadding(in Insets) { b.Padding = in }
func (b *Base) SetHidden(hidden bool) { b.Hidden = hidden }
func (b *Base) SetDisabled(d bool) { b.Disabled = d }

// CurrentPadding returns the padding, for handlers that rewrite one edge.
func (b *Base) CurrentPadding() Insets { return b.Padding }

// SetBackground sets the background fill color.
func (b *Base) SetBackground(c color.NRGBA) {
	b.background = c
	b.hasBackground = true
}

// Background returns the background color and whether one has been set.
func (b *Base) Background() (color.NRGBA, bool) {
	return b.background, b.hasBackground
}

// GroupBase provides the common storage for views with children.
type GroupBase struct {
	Base
	children []View
}

// AddChild attaches a child and records the parent link.
func (g *GroupBase) AddChild(child View) {
	if child == nil {
		return
	}
	g.children = append(g.children, child)
}

// Children returns the attached children in attachment order.
func (g *GroupBase) Children() []View {
	return g.children
}

// Attach adds child to parent and records the parent link. Groups embed
// GroupBase, whose AddChild cannot see the outer type, so attachment goes
// through this helper.
func Attach(parent Group, child View) {
	if parent == nil || child == nil {
		return
	}
	parent.AddChild(child)
	child.SetParent(parent)
}
