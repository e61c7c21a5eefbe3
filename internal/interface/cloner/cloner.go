// Released under an MIT license. See LICENSE.

// Package cloner defines the contract for cells that can be duplicated on
// binding. A scope clones a value when it is defined so a later mutation of
// the original does not alter the binding (spec §4.3, §9: cloning is shallow
// on procedures — same captured environment handle — and deep-recursive on
// cells).
package cloner

import (
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
)

// T (cloner) is any cell that knows how to duplicate itself onto a heap.
type T interface {
	Clone(h *heap.Heap) cell.T
}

// Clone duplicates c if c implements T, otherwise returns c unchanged. Every
// value type in this interpreter implements T, so the fallback only matters
// for internal placeholders that never reach a scope binding.
func Clone(c cell.T, h *heap.Heap) cell.T {
	if c == nil {
		return nil
	}

	if cl, ok := c.(T); ok {
		return cl.Clone(h)
	}

	return c
}
