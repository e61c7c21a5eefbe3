// Released under an MIT license. See LICENSE.

package context

import (
	"testing"

	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
)

type probe struct {
	tag string
}

func (p *probe) Equal(c cell.T) bool {
	o, ok := c.(*probe)

	return ok && o.tag == p.tag
}

func (p *probe) Name() string { return "probe" }

func (p *probe) Clone(h *heap.Heap) cell.T { return &probe{tag: p.tag} }

func (p *probe) Trace() []heap.Traceable { return nil }

func TestDefineGoesToInnermostScope(t *testing.T) {
	h := heap.New()
	c := New(h)

	c.PushEmptyScope(h)
	c.Define("x", &probe{tag: "inner"}, h)

	if !c.Contains("x") {
		t.Fatalf("Contains(%q) = false after Define", "x")
	}

	got, ok := c.Get("x").(*probe)
	if !ok || got.tag != "inner" {
		t.Fatalf("Get(%q) = %v, want probe{inner}", "x", c.Get("x"))
	}
}

func TestGetPrefersInnermostBinding(t *testing.T) {
	h := heap.New()
	c := New(h)

	c.Define("x", &probe{tag: "outer"}, h)
	c.PushEmptyScope(h)
	c.Define("x", &probe{tag: "inner"}, h)

	got, ok := c.Get("x").(*probe)
	if !ok || got.tag != "inner" {
		t.Fatalf("Get(%q) = %v, want the innermost binding", "x", c.Get("x"))
	}

	c.PopScope()

	got, ok = c.Get("x").(*probe)
	if !ok || got.tag != "outer" {
		t.Fatalf("Get(%q) after PopScope = %v, want the outer binding", "x", c.Get("x"))
	}
}

func TestPushPopSymmetric(t *testing.T) {
	h := heap.New()
	c := New(h)

	if got := c.Depth(); got != 1 {
		t.Fatalf("Depth() on a fresh context = %d, want 1", got)
	}

	c.PushEmptyScope(h)
	c.PushEmptyScope(h)

	if got := c.Depth(); got != 3 {
		t.Fatalf("Depth() after two pushes = %d, want 3", got)
	}

	c.PopScope()

	if got := c.Depth(); got != 2 {
		t.Fatalf("Depth() after one pop = %d, want 2", got)
	}
}

func TestChangeUpdatesTheOwningScope(t *testing.T) {
	h := heap.New()
	c := New(h)

	c.Define("x", &probe{tag: "old"}, h)
	c.PushEmptyScope(h)

	c.Change("x", &probe{tag: "new"}, h)
	c.PopScope()

	got, ok := c.Get("x").(*probe)
	if !ok || got.tag != "new" {
		t.Fatalf("Get(%q) = %v, want probe{new} (Change must find the outer scope)", "x", c.Get("x"))
	}
}

func TestChangeOnUnboundNameIsNoOp(t *testing.T) {
	h := heap.New()
	c := New(h)

	c.Change("never-defined", &probe{tag: "x"}, h)

	if c.Contains("never-defined") {
		t.Fatalf("Change defined an unbound name, want no-op")
	}
}

func TestCopySharesFramesButNotFutureScopes(t *testing.T) {
	h := heap.New()
	c := New(h)

	c.Define("x", &probe{tag: "shared"}, h)

	cp := Copy(h, c)

	// A binding changed in a frame both still share is visible through
	// both.
	c.Change("x", &probe{tag: "changed"}, h)

	got, ok := cp.Get("x").(*probe)
	if !ok || got.tag != "changed" {
		t.Fatalf("Copy did not see a Change to a shared frame: got %v", cp.Get("x"))
	}

	// A scope pushed onto c after Copy is invisible to cp.
	c.PushEmptyScope(h)
	c.Define("y", &probe{tag: "new-scope-only"}, h)

	if cp.Contains("y") {
		t.Fatalf("Copy saw a scope pushed onto the original after the copy was made")
	}

	if got := cp.Depth(); got != 1 {
		t.Fatalf("Copy's Depth() = %d, want 1 (unaffected by pushes on the original)", got)
	}
}

func TestTraceReportsEveryScope(t *testing.T) {
	h := heap.New()
	c := New(h)

	c.PushEmptyScope(h)

	edges := c.Trace()
	if len(edges) != 2 {
		t.Fatalf("Trace() returned %d edges, want 2", len(edges))
	}
}
