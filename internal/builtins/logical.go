// Released under an MIT license. See LICENSE.

package builtins

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/eval"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/boolean"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/boolval"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
)

func installLogical(h *heap.Heap, into *context.T) {
	register(h, into, "not", notFn)
	register(h, into, "and", andFn)
	register(h, into, "or", orFn)
}

// not negates a boolean; every other value is truthy, so not of it is
// #f, matching NegFunction.
func notFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	evaluated, err := eval.EvaluateAll(args, caller, h)
	if err != nil {
		return nil, err
	}

	if len(evaluated) != 1 {
		return nil, errs.Runtime("not takes exactly one argument")
	}

	return boolval.New(h, !boolean.Value(evaluated[0])), nil
}

// and evaluates its arguments left to right, in the caller's
// environment, stopping and returning the first one that evaluates to
// #f. If none does, it returns the value of the last argument (or #t if
// there are none), matching AndFunction — and is a special form because
// it evaluates arguments one at a time instead of eagerly evaluating
// them all up front.
func andFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	var result cell.T = boolval.New(h, true)

	for i, a := range args {
		v, err := eval.Evaluate(a, caller, h)
		if err != nil {
			return nil, err
		}

		result = v

		if !boolean.Value(v) {
			return v, nil
		}

		if i == len(args)-1 {
			return v, nil
		}
	}

	return result, nil
}

// or evaluates its arguments left to right, stopping and returning the
// first one that is truthy. If none is, it returns #f, matching
// OrFunction.
func orFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	for i, a := range args {
		v, err := eval.Evaluate(a, caller, h)
		if err != nil {
			return nil, err
		}

		if boolean.Value(v) {
			return v, nil
		}

		if i == len(args)-1 {
			return v, nil
		}
	}

	return boolval.New(h, false), nil
}
