// Released under an MIT license. See LICENSE.

package builtins

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/eval"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
	"github.com/Femistoclus/scheme-interpreter/internal/type/num"
	"github.com/Femistoclus/scheme-interpreter/internal/type/pair"
)

func installLists(h *heap.Heap, into *context.T) {
	register(h, into, "list", listFn)
	register(h, into, "list-ref", listRefFn)
	register(h, into, "list-tail", listTailFn)
}

// list builds a fresh proper list of its (evaluated) arguments, matching
// ToListFunction. Zero arguments builds the empty list.
func listFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	evaluated, err := eval.EvaluateAll(args, caller, h)
	if err != nil {
		return nil, err
	}

	result := pair.Null
	for i := len(evaluated) - 1; i >= 0; i-- {
		result = pair.Cons(h, evaluated[i], result)
	}

	return result, nil
}

// listAndIndex validates the two arguments common to list-ref and
// list-tail: the first must be a proper list, the second a non-negative
// number (matching ValidateArgumentsForListTailAndRef).
func listAndIndex(args []cell.T, caller *context.T, h *heap.Heap, funcName string) (cell.T, int64, error) {
	evaluated, err := eval.EvaluateAll(args, caller, h)
	if err != nil {
		return nil, 0, err
	}

	if len(evaluated) != 2 {
		return nil, 0, errs.Runtime(funcName + " takes exactly two arguments")
	}

	if !isList(evaluated[0]) {
		return nil, 0, errs.Runtime(funcName + " first operand must be a list")
	}

	if !num.Is(evaluated[1]) {
		return nil, 0, errs.Runtime(funcName + " second operand must be a number")
	}

	k := num.To(evaluated[1]).Value()
	if k < 0 {
		return nil, 0, errs.Runtime(funcName + " second operand must be non-negative")
	}

	return evaluated[0], k, nil
}

// listRefFn returns the k-th element (0-indexed) of a proper list,
// matching ListRefFunction::Apply exactly, including the walk that
// advances only while the next cdr is itself a pair.
func listRefFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	lst, k, err := listAndIndex(args, caller, h, "list-ref")
	if err != nil {
		return nil, err
	}

	if pair.IsNull(lst) {
		return nil, errs.Runtime("index for list-ref must be less than list length")
	}

	cur := lst

	var count int64

	for count != k && pair.Is(pair.To(cur).Cdr()) {
		cur = pair.To(cur).Cdr()
		count++
	}

	if count != k {
		return nil, errs.Runtime("index for list-ref must be less than list length")
	}

	return pair.To(cur).Car(), nil
}

// listTailFn returns the sublist starting at index k, matching
// ListTailFunction::Apply. k equal to the list's length yields the empty
// list; k greater than the length is a runtime error (see the boundary
// case worked out from original_source's loop shape).
func listTailFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	lst, k, err := listAndIndex(args, caller, h, "list-tail")
	if err != nil {
		return nil, err
	}

	cur := lst

	var count int64

	for count != k && !pair.IsNull(cur) && pair.Is(pair.To(cur).Cdr()) {
		cur = pair.To(cur).Cdr()
		count++
	}

	switch {
	case count == k-1 && !pair.IsNull(lst):
		return pair.Null, nil
	case count == k:
		return cur, nil
	default:
		return nil, errs.Runtime("index for list-tail must be less than or equal to list length")
	}
}
