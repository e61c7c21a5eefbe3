// Released under an MIT license. See LICENSE.

// Package object defines the operation set every runtime value exposes
// (spec §4.3): evaluate, apply, clone, serialize, set-context. Cloning lives
// in its own package (internal/interface/cloner) because it is the one
// operation scopes need on every value, atoms included, without pulling in
// the context type; the rest live here because they all need *context.T.
//
// A value that does not support one of these operations simply does not
// implement the corresponding interface — callers type-assert and turn a
// failed assertion into a runtime error, which is this codebase's
// equivalent of the source's "fails with not implemented" default.
package object

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
)

// Evaluator is implemented by atoms that evaluate to something other than
// themselves as read: numbers and booleans re-allocate a copy of themselves,
// symbols look themselves up. Pairs are not Evaluators — the evaluator
// special-cases them directly as application (spec §4.5).
type Evaluator interface {
	Evaluate(ctx *context.T, h *heap.Heap) (cell.T, error)
}

// Applier is implemented by every callable: built-in procedures, special
// forms, and user lambdas. Args are unevaluated AST fragments; a regular
// procedure evaluates them itself as the first step of Apply, a special
// form chooses which (if any) to evaluate and in what environment (spec
// §4.5, "Critical distinction").
type Applier interface {
	Apply(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error)
}

// ContextSetter is implemented by symbols and user lambdas, the only two
// variants for which a remembered environment is observable (spec §4.3).
// Pairs and the empty list implement it as a no-op.
type ContextSetter interface {
	SetContext(ctx *context.T)
}

// Evaluate dispatches c through Evaluator if it implements it. A value that
// does not (a procedure, for instance) cannot be evaluated and yields a
// runtime error.
func Evaluate(c cell.T, ctx *context.T, h *heap.Heap) (cell.T, error) {
	if e, ok := c.(Evaluator); ok {
		return e.Evaluate(ctx, h)
	}

	return nil, errs.Runtime(c.Name() + " cannot be evaluated")
}

// SetContext calls SetContext on c if it implements ContextSetter,
// otherwise does nothing (spec §4.3: "no-op for atoms").
func SetContext(c cell.T, ctx *context.T) {
	if s, ok := c.(ContextSetter); ok {
		s.SetContext(ctx)
	}
}
