package factory

import (
	"fmt"
	"reflect"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/errors"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// initMethod is the single-argument construction shape the builder looks
// for: func (v *T) Init(ctx *view.Context).
const initMethod = "Init"

var (
	contextType = reflect.TypeOf((*view.Context)(nil))
	viewType    = reflect.TypeOf((*view.View)(nil)).Elem()
)

// Builder is the reflective fallback path for node construction.
//
// BuildAndCache pays the reflective lookup at most once per distinct type:
// the discovered constructor is installed into the factory registry, so
// every subsequent Create for the same name is an ordinary map hit. An
// application can avoid the reflective path entirely by pre-registering
// its constructors.
type Builder struct {
	Classes ClassResolver
	Factory *Registry
}

// NewBuilder returns a builder over the given class index and factory.
func NewBuilder(classes ClassResolver, factory *Registry) *Builder {
	return &Builder{Classes: classes, Factory: factory}
}

// BuildAndCache constructs a view for a type name with no registered
// constructor. It resolves the class, verifies the construction shape,
// wraps it as a Constructor, registers the wrapper under the
// fully-qualified name, and invokes it once for the requested instance.
//
// On failure the factory registry is left untouched: no partial cache
// entry exists for a type that cannot be built.
func (b *Builder) BuildAndCache(typeName string, ctx *view.Context) (view.View, error) {
	name := b.Factory.Resolve(typeName)

	// A previous call may already have installed the constructor; serve
	// the cached one so the reflective lookup is never repeated.
	if v, ok := b.Factory.Create(name, ctx); ok {
		return v, nil
	}

	t, ok := b.Classes.ResolveClass(name)
	if !ok {
		return nil, b.fail(name, fmt.Errorf("%w: %s", errors.ErrClassResolution, name))
	}

	ctor, err := constructorFor(t)
	if err != nil {
		return nil, b.fail(name, fmt.Errorf("%w: %s: %v", errors.ErrNoSuitableConstructor, name, err))
	}

	// Discover once, serve forever: from here on the registry owns the
	// constructor and this builder is out of the picture for this type.
	b.Factory.Register(name, ctor)
	return ctor(ctx), nil
}

func (b *Builder) fail(name string, err error) error {
	errors.Report(&errors.InflateError{
		Op:   "factory.Builder.BuildAndCache",
		Kind: errors.KindFactory,
		Node: name,
		Err:  err,
	})
	return err
}

// constructorFor validates that *T implements view.View and exposes the
// one-parameter Init shape, and wraps the pair as a Constructor.
func constructorFor(t reflect.Type) (Constructor, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is not a struct type", t)
	}
	ptr := reflect.PointerTo(t)
	if !ptr.Implements(viewType) {
		return nil, fmt.Errorf("*%s does not implement view.View", t)
	}

	m, ok := ptr.MethodByName(initMethod)
	if !ok {
		return nil, fmt.Errorf("*%s has no %s method", t, initMethod)
	}
	// NumIn counts the receiver; the shape is exactly Init(*view.Context).
	mt := m.Func.Type()
	if mt.NumIn() != 2 || mt.In(1) != contextType || mt.NumOut() != 0 {
		return nil, fmt.Errorf("*%s.%s does not take exactly one *view.Context", t, initMethod)
	}

	idx := m.Index
	return func(ctx *view.Context) view.View {
		v := reflect.New(t)
		v.Method(idx).Call([]reflect.Value{reflect.ValueOf(ctx)})
		return v.Interface().(view.View)
	}, nil
}
