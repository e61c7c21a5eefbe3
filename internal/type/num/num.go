// Released under an MIT license. See LICENSE.

// Package num provides the interpreter's number type: a 64-bit signed
// integer. Rationals, floats and bignums are non-goals (spec §1).
package num

import (
	"strconv"

	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
)

const name = "number"

// T (number) wraps a 64-bit signed integer. Overflow wraps per Go's
// int64 semantics, which spec §7 leaves implementation-defined.
type T int64

// New creates a number and registers it with h.
func New(h *heap.Heap, v int64) *T {
	n := T(v)
	h.Track(&n)

	return &n
}

// Value returns the wrapped int64.
func (n *T) Value() int64 {
	return int64(*n)
}

// The number type is a cell.

// Equal returns true if c is a number with the same value.
func (n *T) Equal(c cell.T) bool {
	return Is(c) && n.Value() == To(c).Value()
}

// Name returns the type name for the number n.
func (n *T) Name() string {
	return name
}

// The number type is a boolean.

// Bool returns true unless n is zero. Numbers are truthy per spec §4.5
// truthiness rule ("every other value... is true"); this method exists for
// completeness and is not consulted by the evaluator's truthiness check,
// which special-cases only the boolean atom.
func (n *T) Bool() bool {
	return n.Value() != 0
}

// The number type has a literal representation.

// Literal returns the decimal text of n.
func (n *T) Literal() string {
	return strconv.FormatInt(n.Value(), 10)
}

// The number type is a stringer.

func (n *T) String() string {
	return n.Literal()
}

// Evaluate returns a fresh copy of n on h. Every evaluation of a numeric
// literal allocates: this keeps the value returned to the caller separate
// from whatever AST node produced it, so the AST can be collected
// independently of a value still held by the caller.
func (n *T) Evaluate(_ *context.T, h *heap.Heap) (cell.T, error) {
	return New(h, n.Value()), nil
}

// Clone returns a fresh copy of n on h.
func (n *T) Clone(h *heap.Heap) cell.T {
	return New(h, n.Value())
}

// Trace returns nil: numbers have no outgoing edges.
func (n *T) Trace() []heap.Traceable {
	return nil
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; otherwise it panics.
func To(c cell.T) *T {
	if n, ok := c.(*T); ok {
		return n
	}

	panic("not a " + name)
}
