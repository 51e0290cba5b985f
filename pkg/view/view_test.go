package view

import (
	"sync"
	"testing"
)

// testGroup is a plain group with an ID scope, standing in for a layout root.
type testGroup struct {
	GroupBase
	NameTable
}

// plainGroup has no scope of its own.
type plainGroup struct {
	GroupBase
}

type testLeaf struct {
	Base
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[int32]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		if id == 0 {
			t.Fatal("GenerateID returned zero, which means unassigned")
		}
		if seen[id] {
			t.Fatalf("GenerateID returned duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestGenerateID_Concurrent(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 200

	var mu sync.Mutex
	seen := make(map[int32]int)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int32, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids = append(ids, GenerateID())
			}
			mu.Lock()
			for _, id := range ids {
				seen[id]++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	for id, count := range seen {
		if count > 1 {
			t.Fatalf("id %d allocated %d times", id, count)
		}
	}
	if len(seen) != goroutines*perGoroutine {
		t.Fatalf("expected %d distinct ids, got %d", goroutines*perGoroutine, len(seen))
	}
}

func TestAttach(t *testing.T) {
	parent := &testGroup{}
	child := &testLeaf{}

	Attach(parent, child)

	if child.Parent() != Group(parent) {
		t.Error("Attach should set the child's parent")
	}
	if len(parent.Children()) != 1 || parent.Children()[0] != View(child) {
		t.Error("Attach should append the child")
	}
}

func TestAttachNilSafe(t *testing.T) {
	parent := &testGroup{}
	Attach(nil, &testLeaf{})
	Attach(parent, nil)
	if len(parent.Children()) != 0 {
		t.Error("attaching nil should be a no-op")
	}
}

func TestScopeFor_NearestAncestor(t *testing.T) {
	outer := &testGroup{}
	inner := &testGroup{}
	mid := &plainGroup{}
	leaf := &testLeaf{}

	Attach(outer, inner)
	Attach(inner, mid)
	Attach(mid, leaf)

	scope := ScopeFor(leaf)
	if scope == nil {
		t.Fatal("expected a scope")
	}
	if scope != IDScope(inner) {
		t.Error("ScopeFor should return the nearest scope-bearing ancestor")
	}
}

func TestScopeFor_SkipsSelf(t *testing.T) {
	outer := &testGroup{}
	inner := &testGroup{}
	Attach(outer, inner)

	if got := ScopeFor(inner); got != IDScope(outer) {
		t.Error("a scope-bearing view resolves against its ancestor, not itself")
	}
}

func TestScopeFor_Detached(t *testing.T) {
	if ScopeFor(&testLeaf{}) != nil {
		t.Error("detached view has no scope")
	}
	if ScopeFor(nil) != nil {
		t.Error("nil view has no scope")
	}
}

func TestNameTable(t *testing.T) {
	var nt NameTable
	if _, ok := nt.ResolveName("missing"); ok {
		t.Error("empty table should resolve nothing")
	}
	nt.RegisterName("box1", 7)
	if id, ok := nt.ResolveName("box1"); !ok || id != 7 {
		t.Errorf("ResolveName = (%d, %v), want (7, true)", id, ok)
	}
	nt.RegisterName("box1", 9)
	if id, _ := nt.ResolveName("box1"); id != 9 {
		t.Error("re-registering a name should overwrite")
	}
}

func TestContextResolveRef(t *testing.T) {
	ctx := NewContext()
	if got := ctx.ResolveRef("@string/title"); got != "@string/title" {
		t.Errorf("no table: expected identity, got %q", got)
	}

	ctx.Resolve = func(ref string) (string, bool) {
		if ref == "@string/title" {
			return "Hello", true
		}
		return "", false
	}
	if got := ctx.ResolveRef("@string/title"); got != "Hello" {
		t.Errorf("expected resolved value, got %q", got)
	}
	if got := ctx.ResolveRef("@string/other"); got != "@string/other" {
		t.Errorf("unknown ref: expected identity, got %q", got)
	}
}
