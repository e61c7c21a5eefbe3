// Released under an MIT license. See LICENSE.

// Package literal defines the interface for cells that serialize back to
// source text.
package literal

import (
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
)

// T (literal) is any cell that can render itself as source text.
type T interface {
	Literal() string
}

// String returns the literal representation of c, panicking if c has none.
// Procedures are the only cells without one (spec: "not required to
// serialize meaningfully").
func String(c cell.T) string {
	l, ok := c.(T)
	if !ok {
		panic(c.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
