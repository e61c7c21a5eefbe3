// Released under an MIT license. See LICENSE.

// Package boolval provides the interpreter's boolean atom: the two literals
// #t and #f. Only #f is false; every other cell is truthy (spec §4.5).
package boolval

import (
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
)

const name = "boolean"

// T (boolean) wraps a single bit.
type T bool

// New creates a boolean and registers it with h.
func New(h *heap.Heap, v bool) *T {
	b := T(v)
	h.Track(&b)

	return &b
}

// Value returns the wrapped bool.
func (b *T) Value() bool {
	return bool(*b)
}

// The boolean type is a cell.

// Equal returns true if c is a boolean with the same value.
func (b *T) Equal(c cell.T) bool {
	return Is(c) && b.Value() == To(c).Value()
}

// Name returns the type name for the boolean b.
func (b *T) Name() string {
	return name
}

// The boolean type is a boolean.

// Bool returns the wrapped value. This is the one type the evaluator's
// truthiness check actually consults (spec §4.5: "only the Boolean #f is
// false").
func (b *T) Bool() bool {
	return b.Value()
}

// The boolean type has a literal representation.

// Literal returns "#t" or "#f".
func (b *T) Literal() string {
	if b.Value() {
		return "#t"
	}

	return "#f"
}

func (b *T) String() string {
	return b.Literal()
}

// Evaluate returns a fresh copy of b on h.
func (b *T) Evaluate(_ *context.T, h *heap.Heap) (cell.T, error) {
	return New(h, b.Value()), nil
}

// Clone returns a fresh copy of b on h.
func (b *T) Clone(h *heap.Heap) cell.T {
	return New(h, b.Value())
}

// Trace returns nil: booleans have no outgoing edges.
func (b *T) Trace() []heap.Traceable {
	return nil
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; otherwise it panics.
func To(c cell.T) *T {
	if b, ok := c.(*T); ok {
		return b
	}

	panic("not a " + name)
}
