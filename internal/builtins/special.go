// Released under an MIT license. See LICENSE.

package builtins

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/eval"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/boolean"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
	"github.com/Femistoclus/scheme-interpreter/internal/type/pair"
	"github.com/Femistoclus/scheme-interpreter/internal/type/sym"
)

// installSpecialForms registers quote, if, define, set! and lambda: forms
// that, unlike the rest of internal/builtins, do not evaluate every
// argument before doing their work (spec §4.5's "critical distinction").
// The other such forms are registered elsewhere: and/or in logical.go,
// since they group naturally with not, and set-car!/set-cdr! in pairs.go.
func installSpecialForms(h *heap.Heap, into *context.T) {
	register(h, into, "quote", quoteFn)
	register(h, into, "if", ifFn)
	register(h, into, "define", defineFn)
	register(h, into, "set!", setFn)
	register(h, into, "lambda", lambdaFn)
}

// quote returns its single argument exactly as read, unevaluated,
// matching QuoteFunction.
func quoteFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	if len(args) != 1 {
		return nil, errs.Runtime("quote takes exactly one argument")
	}

	return args[0], nil
}

// if evaluates its condition; anything other than the boolean #f is
// truthy. With three arguments the third is the else branch; with two,
// a false condition yields no value (spec: renders as "()"). Any other
// arity is malformed syntax, matching IfFunction.
func ifFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, errs.Syntax("wrong number of arguments for if")
	}

	cond, err := eval.Evaluate(args[0], caller, h)
	if err != nil {
		return nil, err
	}

	if boolean.Value(cond) {
		return eval.Evaluate(args[1], caller, h)
	}

	if len(args) == 3 {
		return eval.Evaluate(args[2], caller, h)
	}

	return pair.Null, nil
}

// define binds a name to a value in the innermost scope of caller. The
// two-argument (define name expr) form evaluates expr and binds name
// directly. The (define (f p...) body...) form is sugar for
// (define f (lambda (p...) body...)), matching DefineFunction.
func defineFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	if len(args) < 2 {
		return nil, errs.Syntax("wrong syntax for define")
	}

	if sym.Is(args[0]) {
		if len(args) != 2 {
			return nil, errs.Syntax("wrong syntax for define")
		}

		value, err := eval.Evaluate(args[1], caller, h)
		if err != nil {
			return nil, err
		}

		caller.Define(sym.To(args[0]).Value(), value, h)

		return pair.Null, nil
	}

	if pair.Is(args[0]) {
		signature, err := toSymbolHeadedList(args[0])
		if err != nil {
			return nil, err
		}

		funcName := signature[0]
		params := signature[1:]

		lambda := eval.NewLambda(h, params, args[1:], caller)
		caller.Define(funcName.Value(), lambda, h)

		return pair.Null, nil
	}

	return nil, errs.Syntax("wrong syntax for define")
}

// set! requires name to already be bound somewhere in caller's context;
// an unbound name is a name error, not a syntax error, matching
// SetFunction.
func setFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	if len(args) != 2 {
		return nil, errs.Syntax("wrong syntax for set!")
	}

	if !sym.Is(args[0]) {
		return nil, errs.Runtime("first argument for set! must be a symbol")
	}

	name := sym.To(args[0]).Value()

	if !caller.Contains(name) {
		return nil, errs.Name("variable for set! must be defined before use: " + name)
	}

	value, err := eval.Evaluate(args[1], caller, h)
	if err != nil {
		return nil, err
	}

	caller.Change(name, value, h)

	return pair.Null, nil
}

// lambda builds a Lambda closing over caller. The parameter list must be
// a list of symbols (the empty list is allowed, for a zero-argument
// lambda; a dotted list is flattened by toSlice into ordinary positional
// parameters); there must be at least one body form, matching
// LambdaDeclaration::Apply.
func lambdaFn(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	if len(args) < 2 {
		return nil, errs.Syntax("wrong syntax for lambda")
	}

	if !pair.IsNull(args[0]) && !pair.Is(args[0]) {
		return nil, errs.Syntax("wrong format for lambda parameter list")
	}

	params, err := symbolsOnly(toSlice(args[0]))
	if err != nil {
		return nil, err
	}

	return eval.NewLambda(h, params, args[1:], caller), nil
}

// toSlice flattens a list into a Go slice, mirroring ListToVector from the
// original implementation: a dotted tail's final non-pair, non-null
// element is appended as one more element instead of rejected, so
// (lambda (x . y) ...) declares two ordinary positional parameters, x and
// y, exactly as (lambda (x y) ...) would.
func toSlice(list cell.T) []cell.T {
	if !pair.Is(list) && !pair.IsNull(list) {
		return []cell.T{list}
	}

	var out []cell.T

	for pair.Is(list) {
		p := pair.To(list)
		out = append(out, p.Car())
		list = p.Cdr()
	}

	if !pair.IsNull(list) {
		out = append(out, list)
	}

	return out
}

// toSymbolHeadedList converts a (define (f p...) ...) signature cell
// into a slice whose first element must be a symbol (the function name).
func toSymbolHeadedList(signature cell.T) ([]*sym.T, error) {
	raw := toSlice(signature)

	if len(raw) == 0 || !sym.Is(raw[0]) {
		return nil, errs.Syntax("wrong syntax for define")
	}

	return symbolsOnly(raw)
}

// symbolsOnly asserts every element of raw is a symbol.
func symbolsOnly(raw []cell.T) ([]*sym.T, error) {
	out := make([]*sym.T, len(raw))

	for i, c := range raw {
		if !sym.Is(c) {
			return nil, errs.Runtime("expected a symbol")
		}

		out[i] = sym.To(c)
	}

	return out, nil
}
