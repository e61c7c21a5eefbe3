// Released under an MIT license. See LICENSE.

package builtins

import (
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/boolval"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
)

// monotonic checks cmp(vs[i-1], vs[i]) holds for every consecutive pair,
// matching MonotonicFunction. A list of fewer than two numbers is
// trivially true, same as the reference's empty loop body.
func monotonic(cmp func(a, b int64) bool) func([]cell.T, *context.T, *heap.Heap) (cell.T, error) {
	return func(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
		vs, err := numbers(args, caller, h)
		if err != nil {
			return nil, err
		}

		for i := 1; i < len(vs); i++ {
			if !cmp(vs[i-1], vs[i]) {
				return boolval.New(h, false), nil
			}
		}

		return boolval.New(h, true), nil
	}
}

func installRelational(h *heap.Heap, into *context.T) {
	register(h, into, "<", monotonic(func(a, b int64) bool { return a < b }))
	register(h, into, "<=", monotonic(func(a, b int64) bool { return a <= b }))
	register(h, into, "=", monotonic(func(a, b int64) bool { return a == b }))
	register(h, into, ">", monotonic(func(a, b int64) bool { return a > b }))
	register(h, into, ">=", monotonic(func(a, b int64) bool { return a >= b }))
}
