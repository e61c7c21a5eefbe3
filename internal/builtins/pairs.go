// Released under an MIT license. See LICENSE.

package builtins

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/eval"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
	"github.com/Femistoclus/scheme-interpreter/internal/type/pair"
)

func installPairs(h *heap.Heap, into *context.T) {
	register(h, into, "cons", consFn)
	register(h, into, "car", carFn)
	register(h, into, "cdr", cdrFn)
	register(h, into, "set-car!", setCarFn)
	register(h, into, "set-cdr!", setCdrFn)
}

func consFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	evaluated, err := eval.EvaluateAll(args, caller, h)
	if err != nil {
		return nil, err
	}

	if len(evaluated) != 2 {
		return nil, errs.Runtime("cons takes exactly two arguments")
	}

	return pair.Cons(h, evaluated[0], evaluated[1]), nil
}

func carFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	evaluated, err := eval.EvaluateAll(args, caller, h)
	if err != nil {
		return nil, err
	}

	if len(evaluated) != 1 {
		return nil, errs.Runtime("car takes exactly one argument")
	}

	if !pair.Is(evaluated[0]) {
		return nil, errs.Runtime("car operand must be a pair")
	}

	return pair.To(evaluated[0]).Car(), nil
}

func cdrFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	evaluated, err := eval.EvaluateAll(args, caller, h)
	if err != nil {
		return nil, err
	}

	if len(evaluated) != 1 {
		return nil, errs.Runtime("cdr takes exactly one argument")
	}

	if !pair.Is(evaluated[0]) {
		return nil, errs.Runtime("cdr operand must be a pair")
	}

	return pair.To(evaluated[0]).Cdr(), nil
}

// set-car! and set-cdr! evaluate both arguments themselves rather than
// through EvaluateAll: the first must resolve to a pair before the
// second is even evaluated, matching original_source's SetCar/SetCdr,
// which evaluates its first operand, validates it, and only then
// evaluates the second.
func setCarFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	if len(args) != 2 {
		return nil, errs.Runtime("set-car! takes exactly two arguments")
	}

	target, err := eval.Evaluate(args[0], caller, h)
	if err != nil {
		return nil, err
	}

	if !pair.Is(target) {
		return nil, errs.Runtime("set-car! operand must be a pair")
	}

	value, err := eval.Evaluate(args[1], caller, h)
	if err != nil {
		return nil, err
	}

	pair.To(target).SetCar(value)

	return pair.Null, nil
}

func setCdrFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	if len(args) != 2 {
		return nil, errs.Runtime("set-cdr! takes exactly two arguments")
	}

	target, err := eval.Evaluate(args[0], caller, h)
	if err != nil {
		return nil, err
	}

	if !pair.Is(target) {
		return nil, errs.Runtime("set-cdr! operand must be a pair")
	}

	value, err := eval.Evaluate(args[1], caller, h)
	if err != nil {
		return nil, err
	}

	pair.To(target).SetCdr(value)

	return pair.Null, nil
}
