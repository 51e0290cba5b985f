package view

// Context is the construction context handed to every view constructor.
// It carries the environment a view needs at creation time and nothing
// about the document being inflated.
type Context struct {
	// Density converts density-independent units to device pixels.
	Density float64
	// Resolve looks up a resource reference (e.g. "@string/title") and
	// returns its value. Nil when no resource table is attached.
	Resolve func(ref string) (string, bool)
}

// NewContext returns a context with 1:1 density and no resource table.
func NewContext() *Context {
	return &Context{Density: 1}
}

// ResolveRef resolves a resource reference through the attached table,
// returning the input unchanged when no table is attached or the
// reference is unknown.
func (c *Context) ResolveRef(ref string) string {
	if c == nil || c.Resolve == nil {
		return ref
	}
	if v, ok := c.Resolve(ref); ok {
		return v
	}
	return ref
}
