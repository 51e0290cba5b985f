// Package widgets is the stock view catalog: the concrete node types a
// declarative document can name, their constructors, and the attribute
// handlers that configure them.
//
// Install wires the whole catalog into an attribute registry, a factory
// registry, and a class index in one call:
//
//	attrs := attr.NewRegistry()
//	f := factory.NewRegistry()
//	classes := factory.NewClassIndex()
//	widgets.Install(attrs, f, classes)
//	inf := inflater.New(attrs, f, classes)
//
// Handlers here are mechanical call-throughs from typed values to view
// setters; everything with design weight lives in pkg/attr and
// pkg/factory. Applications override any stock widget by re-registering
// its type name with their own constructor.
package widgets
