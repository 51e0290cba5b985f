package widgets

import "github.com/A0ks9/XmlRuntime-sub001/pkg/view"

// Frame is the plain container: children stack in attachment order with
// no layout opinion. A Frame is an id-scope, so names declared inside it
// resolve against it.
type Frame struct {
	view.GroupBase
	view.NameTable
}

// Init is the single-argument construction shape the reflective builder
// discovers.
func (f *Frame) Init(ctx *view.Context) {}
