// Released under an MIT license. See LICENSE.

package builtins

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/eval"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
	"github.com/Femistoclus/scheme-interpreter/internal/type/num"
)

// numbers evaluates args and checks every result is a number, matching
// original_source's EvaluateListArguments followed by
// ThrowIfMismatchOperandsType<Number>.
func numbers(args []cell.T, caller *context.T, h *heap.Heap) ([]int64, error) {
	evaluated, err := eval.EvaluateAll(args, caller, h)
	if err != nil {
		return nil, err
	}

	out := make([]int64, len(evaluated))

	for i, v := range evaluated {
		if !num.Is(v) {
			return nil, errs.Runtime("operands must be numbers")
		}

		out[i] = num.To(v).Value()
	}

	return out, nil
}

// fold reduces vs left-to-right with op, matching BinaryFoldFunction.
// empty is the value the identity of the operation returns for an empty
// argument list; a nil empty means an empty list is a runtime error.
func fold(op func(a, b int64) int64, empty *int64) func([]cell.T, *context.T, *heap.Heap) (cell.T, error) {
	return func(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
		vs, err := numbers(args, caller, h)
		if err != nil {
			return nil, err
		}

		if len(vs) == 0 {
			if empty == nil {
				return nil, errs.Runtime("too few arguments")
			}

			return num.New(h, *empty), nil
		}

		result := vs[0]
		for _, v := range vs[1:] {
			result = op(result, v)
		}

		return num.New(h, result), nil
	}
}

func installArithmetic(h *heap.Heap, into *context.T) {
	zero, one := int64(0), int64(1)

	register(h, into, "+", fold(func(a, b int64) int64 { return a + b }, &zero))
	register(h, into, "*", fold(func(a, b int64) int64 { return a * b }, &one))
	register(h, into, "-", fold(func(a, b int64) int64 { return a - b }, nil))
	register(h, into, "min", fold(func(a, b int64) int64 {
		if a < b {
			return a
		}

		return b
	}, nil))
	register(h, into, "max", fold(func(a, b int64) int64 {
		if a > b {
			return a
		}

		return b
	}, nil))
	register(h, into, "/", divide)
	register(h, into, "abs", absolute)
}

func divide(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	vs, err := numbers(args, caller, h)
	if err != nil {
		return nil, err
	}

	if len(vs) == 0 {
		return nil, errs.Runtime("too few arguments")
	}

	result := vs[0]

	for _, v := range vs[1:] {
		if v == 0 {
			return nil, errs.Runtime("division by zero")
		}

		result /= v
	}

	return num.New(h, result), nil
}

func absolute(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	vs, err := numbers(args, caller, h)
	if err != nil {
		return nil, err
	}

	if len(vs) != 1 {
		return nil, errs.Runtime("abs takes exactly one argument")
	}

	v := vs[0]
	if v < 0 {
		v = -v
	}

	return num.New(h, v), nil
}
