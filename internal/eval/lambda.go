// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
	"github.com/Femistoclus/scheme-interpreter/internal/type/sym"
)

const lambdaName = "procedure"

// Lambda is a user-defined procedure produced by evaluating a (lambda
// (params...) body...) form. Grounded on original_source's LambdaFunction:
// a lambda captures the context it was declared in (a fresh copy sharing
// its scope frames, so scopes pushed onto the declaring context later are
// not visible to it, while later definitions in a shared frame are), and
// every call pushes one new scope onto that captured context for the
// call's parameter bindings.
//
// The calling context is threaded in explicitly through the caller
// parameter of Apply rather than through a stateful SetContext call made
// right before every Apply, which is how original_source's Object base
// class does it (context_ is a field mutated by the interpreter loop just
// before each Apply). Go has no equivalent of that call-site convention
// without inviting stale-state bugs, so Apply takes the caller context as
// an ordinary argument instead; SetContext is still implemented, purely
// for parity with spec §4.3 and to remain inspectable, but Apply never
// relies on it.
type Lambda struct {
	params   []*sym.T
	body     []cell.T
	captured *context.T
	current  *context.T
}

// NewLambda creates a lambda closing over a snapshot of declared: a new
// context sharing declared's scope frames at this instant (context.Copy),
// so a scope declared later pushes onto declared is invisible to the
// lambda, but a binding changed in a frame both still share is visible.
// params must all be symbols and body must be non-empty; callers (the
// lambda special form) are expected to have already checked this.
func NewLambda(h *heap.Heap, params []*sym.T, body []cell.T, declared *context.T) *Lambda {
	captured := context.Copy(h, declared)

	l := &Lambda{
		params:   params,
		body:     body,
		captured: captured,
		current:  captured,
	}
	h.Track(l)

	return l
}

// The cell interface.

// Equal returns true only for the same lambda value: two lambdas are
// never equal by structure, only by identity.
func (l *Lambda) Equal(c cell.T) bool {
	o, ok := c.(*Lambda)

	return ok && o == l
}

// Name returns the type name for every lambda.
func (l *Lambda) Name() string {
	return lambdaName
}

// SetContext records ctx as the environment this lambda was last invoked
// from. Not consulted by Apply (see the type comment); kept for parity
// with symbols and spec §4.3.
func (l *Lambda) SetContext(ctx *context.T) {
	l.current = ctx
}

// Clone duplicates the lambda shallowly: same parameter list and body, and
// the same captured context handle.
func (l *Lambda) Clone(h *heap.Heap) cell.T {
	cloned := &Lambda{
		params:   l.params,
		body:     l.body,
		captured: l.captured,
		current:  l.current,
	}
	h.Track(cloned)

	return cloned
}

// Trace reports the captured context and every body form, for the
// collector. Parameters are plain symbols with no external references
// and are not separately traced.
func (l *Lambda) Trace() []heap.Traceable {
	edges := []heap.Traceable{l.captured}

	for _, b := range l.body {
		if t, ok := b.(heap.Traceable); ok {
			edges = append(edges, t)
		}
	}

	return edges
}

// Apply binds args, evaluated in caller, to this lambda's parameters in a
// fresh scope of its captured context, then evaluates the body forms in
// order, returning the value of the last one. The scope is always popped
// before returning, including on an error from evaluating an argument or
// a body form (spec §5: "no scope is left un-popped on an error path").
func (l *Lambda) Apply(args []cell.T, caller *context.T, h *heap.Heap) (cell.T, error) {
	if len(args) != len(l.params) {
		return nil, errs.Runtime("wrong number of arguments")
	}

	l.captured.PushEmptyScope(h)
	defer l.captured.PopScope()

	for i, param := range l.params {
		v, err := Evaluate(args[i], caller, h)
		if err != nil {
			return nil, err
		}

		l.captured.Define(param.Value(), v, h)
	}

	var result cell.T

	for _, form := range l.body {
		v, err := Evaluate(form, l.captured, h)
		if err != nil {
			return nil, err
		}

		result = v
	}

	return result, nil
}

