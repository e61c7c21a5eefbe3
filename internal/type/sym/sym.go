// Released under an MIT license. See LICENSE.

// Package sym provides the interpreter's symbol type: a name together with
// a remembered environment.
package sym

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/object"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
)

const name = "symbol"

// T (symbol) is a name paired with a remembered evaluation environment.
// The environment is set by SetContext, which Evaluate calls on the value
// a lookup finds (so a symbol remembers the environment of a lookup that
// returned it, not of its own evaluation). It is a debugging artifact only
// (spec §9): the collector does not trace through it (Trace returns nil),
// so a symbol never keeps an environment alive.
type T struct {
	value string
	ctx   *context.T
}

// New creates a symbol named v and registers it with h.
func New(h *heap.Heap, v string) *T {
	s := &T{value: v}
	h.Track(s)

	return s
}

// Value returns the symbol's name.
func (s *T) Value() string {
	return s.value
}

// The symbol type is a cell.

// Equal returns true if c is a symbol with the same name.
func (s *T) Equal(c cell.T) bool {
	return Is(c) && s.Value() == To(c).Value()
}

// Name returns the type name for the symbol s.
func (s *T) Name() string {
	return name
}

// The symbol type has a literal representation.

// Literal returns the symbol's own name.
func (s *T) Literal() string {
	return s.value
}

func (s *T) String() string {
	return s.Literal()
}

// Evaluate looks name up in ctx. On success it remembers ctx on the bound
// value (so procedures know their call site) and returns that value; an
// unbound name fails with a name error (spec §4.5).
func (s *T) Evaluate(ctx *context.T, h *heap.Heap) (cell.T, error) {
	if !ctx.Contains(s.value) {
		return nil, errs.Name("unbound variable: " + s.value)
	}

	found := ctx.Get(s.value)

	object.SetContext(found, ctx)

	return found, nil
}

// SetContext records ctx as this symbol's remembered environment.
func (s *T) SetContext(ctx *context.T) {
	s.ctx = ctx
}

// Context returns the last environment SetContext recorded, or nil.
func (s *T) Context() *context.T {
	return s.ctx
}

// Clone duplicates the symbol's name but not its remembered environment
// (matching Number/Boolean: a shallow, allocate-fresh clone).
func (s *T) Clone(h *heap.Heap) cell.T {
	return New(h, s.value)
}

// Trace returns nil: a symbol does not own its remembered environment for
// tracing purposes (spec §4.6). If that environment is still reachable it
// will be found via the root regardless.
func (s *T) Trace() []heap.Traceable {
	return nil
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; otherwise it panics.
func To(c cell.T) *T {
	if s, ok := c.(*T); ok {
		return s
	}

	panic("not a " + name)
}
