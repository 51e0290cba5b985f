// Package inflater walks a parsed document tree and materializes it
// against the retained-mode view model: create each node through the
// factory, configure it through the attribute dispatcher, attach it to
// its parent, recurse.
//
// Composition is best-effort by default: anything attributable to a
// single attribute or a single node is recorded as a diagnostic and the
// rest of the tree still builds. Only a node that cannot be constructed
// at all takes its subtree down with it, since children cannot attach to
// a view that does not exist.
package inflater

import (
	"fmt"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/attr"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/document"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/errors"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/factory"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// Inflater materializes document trees. Construct one per attribute/
// factory registry pair; it is safe for sequential reuse, and each
// Inflate call owns its own dispatcher, so concurrent calls over the
// same registries are fine as long as they target distinct view trees.
type Inflater struct {
	// Attrs is the attribute registry configured views dispatch against.
	Attrs *attr.Registry
	// Factory creates views for pre-registered type names.
	Factory *factory.Registry
	// Builder is the reflective fallback. Nil disables the fallback, in
	// which case an unregistered type name fails that node.
	Builder *factory.Builder
	// Strict aborts the walk on the first diagnostic instead of
	// accumulating. Default is best-effort.
	Strict bool
}

// New returns an inflater over the given registries with the reflective
// fallback enabled.
func New(attrs *attr.Registry, f *factory.Registry, classes factory.ClassResolver) *Inflater {
	inf := &Inflater{Attrs: attrs, Factory: f}
	if classes != nil {
		inf.Builder = factory.NewBuilder(classes, f)
	}
	return inf
}

// Result is the outcome of one Inflate call.
type Result struct {
	// Root is the materialized root view, already attached to the parent
	// passed to Inflate when one was given.
	Root view.View
	// Diagnostics lists every per-attribute and per-node error collected
	// during the walk, in encounter order.
	Diagnostics []error
}

// errStrict marks the strict-mode early abort.
var errStrict = fmt.Errorf("strict mode: aborting on first diagnostic")

// Inflate materializes doc. A non-nil parent receives the root as a
// child; passing nil builds a detached tree. The returned error is
// non-nil only when the root itself cannot be constructed or strict mode
// aborted the walk; partial trees with diagnostics are the normal,
// successful outcome.
func (inf *Inflater) Inflate(ctx *view.Context, doc *document.Node, parent view.Group) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("inflater: nil document")
	}
	if ctx == nil {
		ctx = view.NewContext()
	}

	res := &Result{}
	d := attr.NewDispatcher(inf.Attrs)

	root, err := inf.inflateNode(ctx, d, doc, parent, res)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("inflater: could not construct root %q: %w", doc.Type, firstErr(res.Diagnostics))
	}
	res.Root = root
	return res, nil
}

// inflateNode builds one node and its subtree. A nil view return with a
// nil error means the node failed to construct and was recorded; the
// caller continues with siblings.
func (inf *Inflater) inflateNode(ctx *view.Context, d *attr.Dispatcher, node *document.Node, parent view.Group, res *Result) (view.View, error) {
	v, err := inf.construct(ctx, node, res)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}

	// Attach before configuring: the identity attribute records the
	// view's name in the nearest ancestor scope, and anchor references
	// resolve through that same ancestry.
	if parent != nil {
		view.Attach(parent, v)
	}

	if errs := d.ApplyBatch(v, toBatch(node.Attrs)); len(errs) > 0 {
		for _, e := range errs {
			if ie, ok := e.(*errors.InflateError); ok {
				ie.Node = node.Type
				errors.Report(ie)
			}
		}
		res.Diagnostics = append(res.Diagnostics, errs...)
		if inf.Strict {
			return nil, errStrict
		}
	}

	if len(node.Children) > 0 {
		group, ok := v.(view.Group)
		if !ok {
			res.Diagnostics = append(res.Diagnostics, &errors.InflateError{
				Op:   "inflater.Inflate",
				Kind: errors.KindFactory,
				Node: node.Type,
				Err:  fmt.Errorf("%q cannot hold children", node.Type),
			})
			if inf.Strict {
				return nil, errStrict
			}
			return v, nil
		}
		for _, child := range node.Children {
			if _, err := inf.inflateNode(ctx, d, child, group, res); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

// construct creates the view for a node: registry hit first, reflective
// fallback second. Failures are diagnostics; the node's subtree is
// skipped but siblings continue.
func (inf *Inflater) construct(ctx *view.Context, node *document.Node, res *Result) (view.View, error) {
	if v, ok := inf.Factory.Create(node.Type, ctx); ok {
		return v, nil
	}
	if inf.Builder == nil {
		err := &errors.InflateError{
			Op:   "inflater.Inflate",
			Kind: errors.KindFactory,
			Node: node.Type,
			Err:  fmt.Errorf("%w: no constructor for %q", errors.ErrClassResolution, node.Type),
		}
		errors.Report(err)
		res.Diagnostics = append(res.Diagnostics, err)
		if inf.Strict {
			return nil, errStrict
		}
		return nil, nil
	}

	v, err := inf.Builder.BuildAndCache(node.Type, ctx)
	if err != nil {
		// BuildAndCache already reported; record and move on.
		res.Diagnostics = append(res.Diagnostics, err)
		if inf.Strict {
			return nil, errStrict
		}
		return nil, nil
	}
	return v, nil
}

func toBatch(attrs []document.Attr) attr.Batch {
	batch := make(attr.Batch, len(attrs))
	for i, a := range attrs {
		batch[i] = attr.Entry{Name: a.Name, Value: a.Value}
	}
	return batch
}

func firstErr(errs []error) error {
	if len(errs) == 0 {
		return fmt.Errorf("no constructor registered")
	}
	return errs[0]
}
