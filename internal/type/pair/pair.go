// Released under an MIT license. See LICENSE.

// Package pair provides the interpreter's cons cell and the distinguished
// empty list.
//
// The empty list is its own type, Null, rather than a self-referential
// pair (the teacher's own pair.go uses a sentinel whose car and cdr both
// point back at itself). original_source's Cell hierarchy makes null a
// real nullptr, never a Cell, and a self-referential pair here would send
// the evaluator into infinite recursion the moment it tried to evaluate a
// bare (): Cell application would evaluate Null's own car, which is Null,
// forever. A distinct type falls straight into the evaluator's "cannot
// apply" branch instead.
package pair

import (
	"strings"

	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cloner"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/literal"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
)

const name = "pair"

// T (pair) is a mutable cons cell.
type T struct {
	car cell.T
	cdr cell.T
}

// Cons creates a pair and registers it with h.
func Cons(h *heap.Heap, car, cdr cell.T) *T {
	p := &T{car: car, cdr: cdr}
	h.Track(p)

	return p
}

// Car returns the first element.
func (p *T) Car() cell.T {
	return p.car
}

// Cdr returns the second element.
func (p *T) Cdr() cell.T {
	return p.cdr
}

// SetCar replaces the first element.
func (p *T) SetCar(v cell.T) {
	p.car = v
}

// SetCdr replaces the second element.
func (p *T) SetCdr(v cell.T) {
	p.cdr = v
}

// The pair type is a cell.

// Equal returns true if c is a pair whose car and cdr are, recursively,
// equal.
func (p *T) Equal(c cell.T) bool {
	if !Is(c) {
		return false
	}

	o := To(c)

	return p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
}

// Name returns the type name for the pair p.
func (p *T) Name() string {
	return name
}

// The pair type has a literal representation.

// Literal renders p as "(a b c)" for a proper list, "(a . b)" for a
// dotted pair, and "(a b . c)" for an improper list with more than one
// leading element (spec §4.3, grounded on original_source's
// Cell::Serialize).
func (p *T) Literal() string {
	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(literal.String(p.car))

	rest := p.cdr

	for {
		if IsNull(rest) {
			break
		}

		if Is(rest) {
			next := To(rest)
			b.WriteByte(' ')
			b.WriteString(literal.String(next.car))
			rest = next.cdr

			continue
		}

		b.WriteString(" . ")
		b.WriteString(literal.String(rest))

		break
	}

	b.WriteByte(')')

	return b.String()
}

func (p *T) String() string {
	return p.Literal()
}

// SetContext is a no-op: pairs do not remember an evaluation environment
// (spec §4.3).
func (p *T) SetContext(_ *context.T) {}

// Clone duplicates p, recursively cloning car and cdr (spec §4.3: cloning
// is deep-recursive on cells).
func (p *T) Clone(h *heap.Heap) cell.T {
	return Cons(h, cloner.Clone(p.car, h), cloner.Clone(p.cdr, h))
}

// Trace reports car and cdr, for the collector.
func (p *T) Trace() []heap.Traceable {
	edges := make([]heap.Traceable, 0, 2)

	if t, ok := p.car.(heap.Traceable); ok {
		edges = append(edges, t)
	}

	if t, ok := p.cdr.(heap.Traceable); ok {
		edges = append(edges, t)
	}

	return edges
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; otherwise it panics.
func To(c cell.T) *T {
	if p, ok := c.(*T); ok {
		return p
	}

	panic("not a " + name)
}

// nullT is the empty list. It is a distinct type from T: the empty list
// is not a cons cell and carries no car or cdr.
type nullT struct{}

// Null is the single, shared instance of the empty list. It is not
// heap-tracked: it is immortal for the life of the process, the same way
// the teacher's own zero-value sentinels for atoms with no state need no
// collection.
var Null cell.T = &nullT{}

// Equal returns true if c is also the empty list.
func (n *nullT) Equal(c cell.T) bool {
	return IsNull(c)
}

// Name returns the type name for the empty list.
func (n *nullT) Name() string {
	return "null"
}

// Bool returns true: the empty list is truthy, like every other
// non-boolean cell (spec §4.5).
func (n *nullT) Bool() bool {
	return true
}

// Literal renders the empty list as "()".
func (n *nullT) Literal() string {
	return "()"
}

func (n *nullT) String() string {
	return n.Literal()
}

// SetContext is a no-op.
func (n *nullT) SetContext(_ *context.T) {}

// Clone returns the shared Null value: the empty list has no state to
// duplicate.
func (n *nullT) Clone(_ *heap.Heap) cell.T {
	return Null
}

// Trace returns nil: the empty list has no outgoing edges.
func (n *nullT) Trace() []heap.Traceable {
	return nil
}

// IsNull reports whether c is the empty list.
func IsNull(c cell.T) bool {
	_, ok := c.(*nullT)

	return ok
}
