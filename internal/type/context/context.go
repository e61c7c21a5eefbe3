// Released under an MIT license. See LICENSE.

// Package context provides the interpreter's environment: an ordered chain
// of scopes, outermost (global) first, innermost last.
package context

import (
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/scope"
)

// T (context) is an ordered sequence of scope frames.
type T struct {
	scopes []*scope.T
}

// New creates a context with a single (global) scope and registers it
// with h.
func New(h *heap.Heap) *T {
	c := &T{scopes: []*scope.T{scope.New(h)}}
	h.Track(c)

	return c
}

// Copy creates a new context sharing the same scope frames as c at the
// moment of the call. A later PushEmptyScope/PopScope on either context
// does not affect the other, but a Define or Change into a frame both
// contexts already hold is visible through both — this is exactly what a
// lambda needs when it captures its declaring environment (spec §4.4,
// original_source's Context copy constructor, which copies the vector of
// scope pointers, not the scopes themselves).
func Copy(h *heap.Heap, c *T) *T {
	scopes := make([]*scope.T, len(c.scopes))
	copy(scopes, c.scopes)

	cp := &T{scopes: scopes}
	h.Track(cp)

	return cp
}

// Contains reports whether name is bound in any scope of the chain.
func (c *T) Contains(name string) bool {
	for _, s := range c.scopes {
		if s.Contains(name) {
			return true
		}
	}

	return false
}

// Get returns the value bound to name in the innermost scope that contains
// it, or nil if no scope does.
func (c *T) Get(name string) cell.T {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if c.scopes[i].Contains(name) {
			return c.scopes[i].Get(name)
		}
	}

	return nil
}

// Define binds name in the innermost scope (spec invariant 2: the deepest
// scope is always the target of a new define).
func (c *T) Define(name string, value cell.T, h *heap.Heap) {
	c.scopes[len(c.scopes)-1].Define(name, value, h)
}

// Change updates the value bound to name in the innermost scope that
// contains it. If no scope contains name, Change does nothing; callers that
// must reject an unbound set! check Contains first (spec §4.4, §4.5.2).
func (c *T) Change(name string, value cell.T, h *heap.Heap) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if c.scopes[i].Contains(name) {
			c.scopes[i].Change(name, value, h)

			return
		}
	}
}

// PushEmptyScope adds a new, empty innermost scope. Used around each lambda
// activation.
func (c *T) PushEmptyScope(h *heap.Heap) {
	c.scopes = append(c.scopes, scope.New(h))
}

// PopScope removes the innermost scope. Called on every exit path from a
// lambda activation, including the error path (spec §5).
func (c *T) PopScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// Depth reports the number of scopes currently on the chain. Exposed for
// tests that check scopes are popped on every exit path, including errors.
func (c *T) Depth() int {
	return len(c.scopes)
}

// Trace reports every scope on the chain, for the collector.
func (c *T) Trace() []heap.Traceable {
	edges := make([]heap.Traceable, len(c.scopes))
	for i, s := range c.scopes {
		edges[i] = s
	}

	return edges
}
