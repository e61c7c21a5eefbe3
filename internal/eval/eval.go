// Released under an MIT license. See LICENSE.

// Package eval provides the tree-walking evaluator and the user-defined
// procedure (lambda) type. The two live in one package because they are
// mutually recursive: evaluating a call to a lambda invokes Evaluate on
// its body, and Evaluate's pair-application branch calls back into
// whatever Applier it finds, lambdas included — the same shape as the
// teacher's own internal/engine/task package, which keeps its closure
// type and its command-evaluation loop together for the same reason.
package eval

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/object"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
	"github.com/Femistoclus/scheme-interpreter/internal/type/pair"
)

// Evaluate walks ast in ctx. Atoms dispatch through object.Evaluator
// (numbers and booleans re-allocate themselves, symbols look themselves
// up). A real pair is treated as application: its car is evaluated to
// find the procedure, its cdr — still unevaluated AST — is handed to that
// procedure's Apply as a slice, letting the procedure itself decide what
// to evaluate and when (spec §4.5, the "critical distinction" that makes
// quote/if/define/lambda ordinary Appliers instead of special-cased
// syntax). The empty list and every other non-pair, non-atom value fails
// to evaluate as an application.
func Evaluate(ast cell.T, ctx *context.T, h *heap.Heap) (cell.T, error) {
	if pair.IsNull(ast) {
		return nil, errs.Runtime("cannot evaluate the empty list")
	}

	if !pair.Is(ast) {
		return object.Evaluate(ast, ctx, h)
	}

	p := pair.To(ast)

	head, err := Evaluate(p.Car(), ctx, h)
	if err != nil {
		return nil, err
	}

	applier, ok := head.(object.Applier)
	if !ok {
		return nil, errs.Runtime(head.Name() + " is not applicable")
	}

	return applier.Apply(toSlice(p.Cdr()), ctx, h)
}

// EvaluateAll evaluates every element of args in ctx, in order, and
// returns the results. Regular (non-special-form) procedures call this
// as the first step of Apply (spec §4.5).
func EvaluateAll(args []cell.T, ctx *context.T, h *heap.Heap) ([]cell.T, error) {
	out := make([]cell.T, len(args))

	for i, a := range args {
		v, err := Evaluate(a, ctx, h)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// toSlice flattens an argument list into a Go slice, mirroring
// ListToVector from the original implementation: a proper list yields one
// element per cell, and a dotted tail's final non-pair, non-null element
// is appended as one more element rather than rejected. Applying this to
// a bare non-pair, non-null value yields a single-element slice holding
// that value.
func toSlice(list cell.T) []cell.T {
	if !pair.Is(list) && !pair.IsNull(list) {
		return []cell.T{list}
	}

	var out []cell.T

	for pair.Is(list) {
		p := pair.To(list)
		out = append(out, p.Car())
		list = p.Cdr()
	}

	if !pair.IsNull(list) {
		out = append(out, list)
	}

	return out
}
