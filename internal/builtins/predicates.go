// Released under an MIT license. See LICENSE.

package builtins

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/eval"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/boolval"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
	"github.com/Femistoclus/scheme-interpreter/internal/type/num"
	"github.com/Femistoclus/scheme-interpreter/internal/type/pair"
	"github.com/Femistoclus/scheme-interpreter/internal/type/sym"
)

// predicate builds a one-argument type test, matching PredicateFunction.
func predicate(is func(cell.T) bool) func([]cell.T, *context.T, *heap.Heap) (cell.T, error) {
	return func(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
		evaluated, err := eval.EvaluateAll(args, caller, h)
		if err != nil {
			return nil, err
		}

		if len(evaluated) != 1 {
			return nil, errs.Runtime("predicate takes exactly one argument")
		}

		return boolval.New(h, is(evaluated[0])), nil
	}
}

func installPredicates(h *heap.Heap, into *context.T) {
	register(h, into, "number?", predicate(num.Is))
	register(h, into, "boolean?", predicate(boolval.Is))
	register(h, into, "pair?", predicate(pair.Is))
	register(h, into, "symbol?", predicate(sym.Is))
	register(h, into, "null?", predicate(pair.IsNull))
	register(h, into, "list?", predicate(isList))
}

// isList reports whether c is a proper list: the empty list, or a chain
// of pairs whose final cdr is the empty list (matching CheckIfList).
func isList(c cell.T) bool {
	for {
		if pair.IsNull(c) {
			return true
		}

		if !pair.Is(c) {
			return false
		}

		c = pair.To(c).Cdr()
	}
}
