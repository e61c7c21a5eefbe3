// Released under an MIT license. See LICENSE.

// Package interp provides the interpreter's single external operation:
// Run(source string) (string, error) (spec §6).
package interp

import (
	"fmt"

	"github.com/Femistoclus/scheme-interpreter/internal/builtins"
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/eval"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/literal"
	"github.com/Femistoclus/scheme-interpreter/internal/reader/lexer"
	"github.com/Femistoclus/scheme-interpreter/internal/reader/parser"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
)

// T (Interpreter) owns the heap and the root context every run evaluates
// against. It is not safe for concurrent use — spec §5 requires
// single-threaded, synchronous evaluation, and Run itself is where the
// collector runs, right after every successful evaluation.
type T struct {
	heap *heap.Heap
	root *context.T
}

// New creates an interpreter with a fresh heap, seeded with every
// built-in name spec §6 requires, rooted at the resulting global
// context.
func New() *T {
	h := heap.New()
	root := builtins.Global(h)
	h.SetRoot(root)

	return &T{heap: h, root: root}
}

// Run parses source as a single S-expression, evaluates it in the
// interpreter's root context, and returns its serialized value. Trailing
// tokens after one complete datum are a syntax error. A run that
// produces no value renders as "()" (spec §6). Every panic raised during
// reading or evaluation is recovered here and converted to one of the
// three typed errors, mirroring the teacher's own single panic/recover
// boundary in internal/engine/task/task.go's Step.
func (t *T) Run(source string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = "", toError(r)
		}
	}()

	l := lexer.New(source)

	if l.AtEnd() {
		return "", errs.Syntax("empty input")
	}

	ast, perr := parser.ReadDatum(l, t.heap)
	if perr != nil {
		return "", perr
	}

	if !l.AtEnd() {
		return "", errs.Syntax("trailing tokens after datum")
	}

	value, eerr := eval.Evaluate(ast, t.root, t.heap)
	if eerr != nil {
		return "", eerr
	}

	serialized := literal.String(value)

	t.heap.Collect()

	return serialized, nil
}

// toError converts a recovered panic value into the interpreter's own
// error type. A panic with an errs.* value already carries the right
// kind; anything else (a stray Go panic from a bug elsewhere) becomes a
// runtime error rather than crashing the process.
func toError(r interface{}) error {
	switch e := r.(type) {
	case errs.Syntax, errs.Name, errs.Runtime:
		return e.(error)
	case error:
		return errs.Runtime(e.Error())
	default:
		return errs.Runtime(fmt.Sprintf("%v", e))
	}
}
