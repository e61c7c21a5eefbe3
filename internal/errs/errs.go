// Released under an MIT license. See LICENSE.

// Package errs provides the interpreter's three error kinds (spec §7):
// syntax errors from the reader, name errors from unbound or undefined
// symbols, and runtime errors for everything else (type mismatches, arity,
// division by zero, out-of-range indexing, applying a non-callable).
package errs

// Syntax is raised by the token stream and reader.
type Syntax string

func (e Syntax) Error() string { return "syntax error: " + string(e) }

// Name is raised for an unbound symbol or a set! on an undefined name.
type Name string

func (e Name) Error() string { return "name error: " + string(e) }

// Runtime is raised for type mismatches, arity mismatches, division by
// zero, out-of-range list indexing, and applying a non-callable. Integer
// overflow is not an error: arithmetic wraps (see internal/type/num).
type Runtime string

func (e Runtime) Error() string { return "runtime error: " + string(e) }
