// Released under an MIT license. See LICENSE.

package builtins

import (
	"testing"

	"github.com/Femistoclus/scheme-interpreter/internal/eval"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/literal"
	"github.com/Femistoclus/scheme-interpreter/internal/reader/lexer"
	"github.com/Femistoclus/scheme-interpreter/internal/reader/parser"
	"github.com/Femistoclus/scheme-interpreter/internal/type/context"
)

// run parses and evaluates a single expression against a fresh global
// context, returning its literal representation. This mirrors the
// teacher's own reparse-and-compare check helpers in
// internal/reader/parser/parser_test.go, scaled to exercise the whole
// evaluator instead of just the reader.
func run(t *testing.T, h *heap.Heap, g *context.T, source string) string {
	t.Helper()

	l := lexer.New(source)

	ast, err := parser.ReadDatum(l, h)
	if err != nil {
		t.Fatalf("ReadDatum(%q) returned an error: %v", source, err)
	}

	v, err := eval.Evaluate(ast, g, h)
	if err != nil {
		t.Fatalf("Evaluate(%q) returned an error: %v", source, err)
	}

	return literal.String(v)
}

// runErr is like run but expects Evaluate or ReadDatum to fail.
func runErr(t *testing.T, h *heap.Heap, g *context.T, source string) {
	t.Helper()

	l := lexer.New(source)

	ast, err := parser.ReadDatum(l, h)
	if err != nil {
		return
	}

	if _, err := eval.Evaluate(ast, g, h); err == nil {
		t.Fatalf("Evaluate(%q) succeeded, want an error", source)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"(+ 1 2 3)", "6"},
		{"(+)", "0"},
		{"(*)", "1"},
		{"(* 2 3 4)", "24"},
		{"(- 10 3 2)", "5"},
		{"(- 5)", "-5"},
		{"(/ 20 2 2)", "5"},
		{"(min 3 1 2)", "1"},
		{"(max 3 1 2)", "3"},
		{"(abs -7)", "7"},
		{"(abs 7)", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			h := heap.New()
			g := Global(h)

			if got := run(t, h, g, tt.source); got != tt.want {
				t.Fatalf("run(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	tests := []string{
		"(- )",
		"(/ 5 0)",
		"(abs 1 2)",
		"(+ 1 #t)",
	}

	for _, source := range tests {
		t.Run(source, func(t *testing.T) {
			h := heap.New()
			g := Global(h)

			runErr(t, h, g, source)
		})
	}
}

func TestRelational(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(<= 1 1 2)", "#t"},
		{"(= 1 1 1)", "#t"},
		{"(= 1 2)", "#f"},
		{"(> 3 2 1)", "#t"},
		{"(>= 3 3 2)", "#t"},
		{"(< 1)", "#t"},
		{"(<)", "#t"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			h := heap.New()
			g := Global(h)

			if got := run(t, h, g, tt.source); got != tt.want {
				t.Fatalf("run(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"(number? 1)", "#t"},
		{"(number? #t)", "#f"},
		{"(boolean? #f)", "#t"},
		{"(pair? (cons 1 2))", "#t"},
		{"(pair? 1)", "#f"},
		{"(symbol? (quote x))", "#t"},
		{"(null? (quote ()))", "#t"},
		{"(null? 1)", "#f"},
		{"(list? (quote (1 2 3)))", "#t"},
		{"(list? (cons 1 2))", "#f"},
		{"(list? (quote ()))", "#t"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			h := heap.New()
			g := Global(h)

			if got := run(t, h, g, tt.source); got != tt.want {
				t.Fatalf("run(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestPairs(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"(cons 1 2)", "(1 . 2)"},
		{"(car (cons 1 2))", "1"},
		{"(cdr (cons 1 2))", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			h := heap.New()
			g := Global(h)

			if got := run(t, h, g, tt.source); got != tt.want {
				t.Fatalf("run(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestPairErrors(t *testing.T) {
	tests := []string{
		"(car 1)",
		"(cdr 1)",
		"(cons 1)",
	}

	for _, source := range tests {
		t.Run(source, func(t *testing.T) {
			h := heap.New()
			g := Global(h)

			runErr(t, h, g, source)
		})
	}
}

func TestSetCarSetCdr(t *testing.T) {
	h := heap.New()
	g := Global(h)

	run(t, h, g, "(define p (cons 1 2))")
	run(t, h, g, "(set-car! p 9)")

	if got := run(t, h, g, "(car p)"); got != "9" {
		t.Fatalf("(car p) = %q, want %q", got, "9")
	}

	run(t, h, g, "(set-cdr! p 8)")

	if got := run(t, h, g, "(cdr p)"); got != "8" {
		t.Fatalf("(cdr p) = %q, want %q", got, "8")
	}
}

func TestLists(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"(list)", "()"},
		{"(list 1 2 3)", "(1 2 3)"},
		{"(list-ref (list 1 2 3) 0)", "1"},
		{"(list-ref (list 1 2 3) 2)", "3"},
		{"(list-tail (list 1 2 3) 0)", "(1 2 3)"},
		{"(list-tail (list 1 2 3) 2)", "(3)"},
		{"(list-tail (list 1 2 3) 3)", "()"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			h := heap.New()
			g := Global(h)

			if got := run(t, h, g, tt.source); got != tt.want {
				t.Fatalf("run(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

// TestListBoundaries exercises the exact traversal-loop boundary cases
// ported from the reference implementation: list-tail at k == length
// returns (), at k == length+1 is an error; list-ref has no "one past
// the end" case at all.
func TestListBoundaries(t *testing.T) {
	tests := []struct {
		source  string
		want    string
		wantErr bool
	}{
		{source: "(list-tail (list 1 2 3) 3)", want: "()"},
		{source: "(list-tail (list 1 2 3) 4)", wantErr: true},
		{source: "(list-ref (list 1 2 3) 3)", wantErr: true},
		{source: "(list-ref (quote ()) 0)", wantErr: true},
		{source: "(list-tail (quote ()) 0)", want: "()"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			h := heap.New()
			g := Global(h)

			if tt.wantErr {
				runErr(t, h, g, tt.source)

				return
			}

			if got := run(t, h, g, tt.source); got != tt.want {
				t.Fatalf("run(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestLogical(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"(not #f)", "#t"},
		{"(not #t)", "#f"},
		{"(not 0)", "#f"},
		{"(and)", "#t"},
		{"(and 1 2 3)", "3"},
		{"(and 1 #f 3)", "#f"},
		{"(or)", "#f"},
		{"(or #f #f 3)", "3"},
		{"(or #f #f)", "#f"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			h := heap.New()
			g := Global(h)

			if got := run(t, h, g, tt.source); got != tt.want {
				t.Fatalf("run(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	h := heap.New()
	g := Global(h)

	// If `and` evaluated every argument regardless, this would try to
	// apply the number 1, which is not callable, and fail.
	if got := run(t, h, g, "(and #f (1 2 3))"); got != "#f" {
		t.Fatalf("(and #f (1 2 3)) = %q, want %q (short-circuit before the second argument)", got, "#f")
	}

	if got := run(t, h, g, "(or 1 (1 2 3))"); got != "1" {
		t.Fatalf("(or 1 (1 2 3)) = %q, want %q (short-circuit before the second argument)", got, "1")
	}
}

func TestQuoteDoesNotEvaluate(t *testing.T) {
	h := heap.New()
	g := Global(h)

	if got := run(t, h, g, "(quote (1 2 3))"); got != "(1 2 3)" {
		t.Fatalf("(quote (1 2 3)) = %q, want %q", got, "(1 2 3)")
	}

	if got := run(t, h, g, "'(a b)"); got != "(a b)" {
		t.Fatalf("'(a b) = %q, want %q", got, "(a b)")
	}
}

func TestIf(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"(if #t 1 2)", "1"},
		{"(if #f 1 2)", "2"},
		{"(if (< 3 2) 1 2)", "2"},
		{"(if #f 1)", "()"},
		{"(if 0 1 2)", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			h := heap.New()
			g := Global(h)

			if got := run(t, h, g, tt.source); got != tt.want {
				t.Fatalf("run(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestDefineAndLookup(t *testing.T) {
	h := heap.New()
	g := Global(h)

	if got := run(t, h, g, "(define x 5)"); got != "()" {
		t.Fatalf("(define x 5) = %q, want %q", got, "()")
	}

	if got := run(t, h, g, "x"); got != "5" {
		t.Fatalf("x = %q, want %q", got, "5")
	}
}

func TestDefineFunctionShorthand(t *testing.T) {
	h := heap.New()
	g := Global(h)

	run(t, h, g, "(define (square x) (* x x))")

	if got := run(t, h, g, "(square 5)"); got != "25" {
		t.Fatalf("(square 5) = %q, want %q", got, "25")
	}
}

func TestSetBang(t *testing.T) {
	h := heap.New()
	g := Global(h)

	run(t, h, g, "(define x 1)")
	run(t, h, g, "(set! x (+ x 1))")

	if got := run(t, h, g, "x"); got != "2" {
		t.Fatalf("x = %q, want %q", got, "2")
	}
}

func TestSetBangOnUnboundNameIsNameError(t *testing.T) {
	h := heap.New()
	g := Global(h)

	runErr(t, h, g, "(set! never-defined 1)")
}

func TestLambdaClosureCounter(t *testing.T) {
	h := heap.New()
	g := Global(h)

	run(t, h, g, "(define (make) (define c 0) (lambda () (set! c (+ c 1)) c))")
	run(t, h, g, "(define g (make))")

	if got := run(t, h, g, "(g)"); got != "1" {
		t.Fatalf("first (g) call = %q, want %q", got, "1")
	}

	if got := run(t, h, g, "(g)"); got != "2" {
		t.Fatalf("second (g) call = %q, want %q", got, "2")
	}
}

func TestLambdaWrongArity(t *testing.T) {
	h := heap.New()
	g := Global(h)

	run(t, h, g, "(define (f x) x)")

	runErr(t, h, g, "(f 1 2)")
}

func TestDottedParameterListFlattensTrailingSymbol(t *testing.T) {
	h := heap.New()
	g := Global(h)

	// (lambda (x . y) ...) does not give y "rest args" semantics: the
	// dotted tail flattens into one more ordinary positional parameter,
	// matching the original ListToVector helper.
	run(t, h, g, "(define f (lambda (x . y) (+ x y)))")

	if got := run(t, h, g, "(f 1 2)"); got != "3" {
		t.Fatalf("(f 1 2) = %q, want %q", got, "3")
	}
}

func TestDottedDefineSignatureFlattensTrailingSymbol(t *testing.T) {
	h := heap.New()
	g := Global(h)

	run(t, h, g, "(define (f x . y) (+ x y))")

	if got := run(t, h, g, "(f 1 2)"); got != "3" {
		t.Fatalf("(f 1 2) = %q, want %q", got, "3")
	}
}

func TestDottedApplicationFormFlattensTrailingArgument(t *testing.T) {
	h := heap.New()
	g := Global(h)

	run(t, h, g, "(define (f x y) (+ x y))")

	// (f 1 . 2): the trailing dotted element flattens into an ordinary
	// positional argument, so this behaves exactly like (f 1 2).
	if got := run(t, h, g, "(f 1 . 2)"); got != "3" {
		t.Fatalf("(f 1 . 2) = %q, want %q", got, "3")
	}
}
