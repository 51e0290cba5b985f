// Package uitest provides finder helpers for asserting over inflated
// view trees in tests: locate views by concrete type, declared name,
// runtime id, or an arbitrary predicate.
package uitest

import (
	"fmt"
	"reflect"

	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
)

// Finder locates views in an inflated tree.
type Finder interface {
	// Evaluate returns all matching views under root (depth-first pre-order).
	Evaluate(root view.View) []view.View
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	views  []view.View
	finder Finder
}

// Find evaluates the finder against root.
func Find(root view.View, f Finder) FinderResult {
	return FinderResult{views: f.Evaluate(root), finder: f}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() view.View {
	if len(r.views) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no views: %s", desc))
	}
	return r.views[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() view.View {
	if len(r.views) == 0 {
		return nil
	}
	return r.views[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []view.View {
	return r.views
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.views)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.views) > 0
}

// --- Concrete finders ---

// typeFinder matches views of the specified concrete type.
type typeFinder struct {
	viewType reflect.Type
	typeName string
}

func (f *typeFinder) Evaluate(root view.View) []view.View {
	return collectMatches(root, func(v view.View) bool {
		return reflect.TypeOf(v) == f.viewType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches views of concrete type T.
func ByType[T view.View]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &typeFinder{viewType: t, typeName: t.String()}
}

// nameFinder matches the view whose declared name resolves in the scope
// that covers it.
type nameFinder struct {
	name string
}

func (f *nameFinder) Evaluate(root view.View) []view.View {
	// Resolve the name in every scope of the tree, then match views by
	// the resolved runtime id. A name can legitimately resolve in more
	// than one scope.
	ids := make(map[int32]bool)
	walkTree(root, func(v view.View) bool {
		if scope, ok := v.(view.IDScope); ok {
			if id, found := scope.ResolveName(f.name); found {
				ids[id] = true
			}
		}
		return true
	})
	if len(ids) == 0 {
		return nil
	}
	return collectMatches(root, func(v view.View) bool {
		return v.RuntimeID() != 0 && ids[v.RuntimeID()]
	})
}

func (f *nameFinder) Description() string {
	return fmt.Sprintf("ByName(%q)", f.name)
}

// ByName returns a finder that matches views declared under name by the
// identity attribute.
func ByName(name string) Finder {
	return &nameFinder{name: name}
}

// idFinder matches views by runtime id.
type idFinder struct {
	id int32
}

func (f *idFinder) Evaluate(root view.View) []view.View {
	return collectMatches(root, func(v view.View) bool {
		return v.RuntimeID() == f.id
	})
}

func (f *idFinder) Description() string {
	return fmt.Sprintf("ByRuntimeID(%d)", f.id)
}

// ByRuntimeID returns a finder that matches the view carrying id.
func ByRuntimeID(id int32) Finder {
	return &idFinder{id: id}
}

// textFinder matches views whose Text field equals the given content.
type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(root view.View) []view.View {
	return collectMatches(root, func(v view.View) bool {
		rv := reflect.ValueOf(v)
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return false
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return false
		}
		field := rv.FieldByName("Text")
		return field.IsValid() && field.Kind() == reflect.String && field.String() == f.text
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches text-bearing views by exact
// content. Any view struct exposing a string field named Text
// participates, so custom catalogs work without registration.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// predicateFinder matches views satisfying a predicate.
type predicateFinder struct {
	fn   func(view.View) bool
	desc string
}

func (f *predicateFinder) Evaluate(root view.View) []view.View {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches views satisfying fn.
func ByPredicate(fn func(view.View) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds views matching 'matching' inside the subtrees
// of views matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root view.View) []view.View {
	ancestors := f.of.Evaluate(root)
	if len(ancestors) == 0 {
		return nil
	}
	var results []view.View
	seen := make(map[view.View]bool)
	for _, ancestor := range ancestors {
		group, ok := ancestor.(view.Group)
		if !ok {
			continue
		}
		for _, child := range group.Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches views satisfying 'matching'
// that are descendants of views matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectMatches performs depth-first pre-order traversal, collecting
// views that satisfy the predicate.
func collectMatches(root view.View, predicate func(view.View) bool) []view.View {
	var results []view.View
	walkTree(root, func(v view.View) bool {
		if predicate(v) {
			results = append(results, v)
		}
		return true
	})
	return results
}

// walkTree performs a depth-first pre-order traversal. The visitor
// returns false to stop traversal.
func walkTree(root view.View, visitor func(view.View) bool) {
	if root == nil || !visitor(root) {
		return
	}
	if group, ok := root.(view.Group); ok {
		for _, child := range group.Children() {
			walkTree(child, visitor)
		}
	}
}
