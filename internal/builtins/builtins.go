// Released under an MIT license. See LICENSE.

// Package builtins seeds a context with every name spec §6 requires: the
// arithmetic, relational, predicate, pair, list and logical procedures,
// and the handful of forms — quote, if, and, or, define, set!, set-car!,
// set-cdr!, lambda — that look syntactic but are ordinary procedures
// here, distinguished only by choosing not to evaluate all of their
// arguments up front (spec §4.5's "critical distinction"; grounded on
// original_source's own class hierarchy, where QuoteFunction,
// IfFunction, DefineFunction and friends are Object subclasses exactly
// like PlusFunction, registered in the very same kValidFunctionsMap).
package builtins

import (
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
)

// fn adapts a plain Go function to object.Applier, mirroring the
// teacher's own map-of-plain-functions approach in
// internal/engine/commands/commands.go (there keyed by cell.I -> cell.I,
// here by the explicit args/caller/heap signature this evaluator uses).
type fn struct {
	name string
	call func(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error)
}

func (f *fn) Equal(c cell.T) bool {
	o, ok := c.(*fn)

	return ok && o == f
}

func (f *fn) Name() string {
	return f.name
}

func (f *fn) Apply(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	return f.call(args, caller, h)
}

// Trace returns nil: builtins hold no interpreter state.
func (f *fn) Trace() []heap.Traceable {
	return nil
}

// Clone returns f unchanged: builtins are immutable and shared, never
// copied on define.
func (f *fn) Clone(_ *heap.Heap) cell.T {
	return f
}

func register(h *heap.Heap, into *context.T, name string, call func(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error)) {
	into.Define(name, &fn{name: name, call: call}, h)
}

// Global creates a fresh top-level context, registers it with h, and
// binds every name spec §6 requires.
func Global(h *heap.Heap) *context.T {
	g := context.New(h)

	installArithmetic(h, g)
	installRelational(h, g)
	installPredicates(h, g)
	installPairs(h, g)
	installLists(h, g)
	installLogical(h, g)
	installSpecialForms(h, g)

	return g
}
