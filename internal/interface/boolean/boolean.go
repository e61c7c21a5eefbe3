// Released under an MIT license. See LICENSE.

// Package boolean defines the truthiness contract. Only the boolean atom
// #f is false; every other cell, including the empty list, is true.
package boolean

import (
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/boolval"
)

// T (boolean) is anything with a truth value.
type T interface {
	Bool() bool
}

// Value returns the truthiness of c. Only the boolean atom's Bool is
// consulted; every other cell is true, including numbers, whose own Bool
// method reports false for zero but plays no part here.
func Value(c cell.T) bool {
	if !boolval.Is(c) {
		return true
	}

	return boolval.To(c).Bool()
}
