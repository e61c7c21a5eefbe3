// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/Femistoclus/scheme-interpreter/internal/reader/token"
)

// scanAll drains l into a slice of tokens, failing the test on the first
// lexical error.
func scanAll(t *testing.T, l *T) []*token.T {
	t.Helper()

	var out []*token.T

	for !l.AtEnd() {
		tok, err := l.Peek()
		if err != nil {
			t.Fatalf("Peek() returned an error: %v", err)
		}

		out = append(out, tok)

		if err := l.Advance(); err != nil {
			t.Fatalf("Advance() returned an error: %v", err)
		}
	}

	return out
}

func TestScanClasses(t *testing.T) {
	tests := []struct {
		source string
		want   []token.Class
	}{
		{"(", []token.Class{token.OpenParen}},
		{")", []token.Class{token.CloseParen}},
		{"'", []token.Class{token.Quote}},
		{".", []token.Class{token.Dot}},
		{"42", []token.Class{token.Integer}},
		{"-7", []token.Class{token.Integer}},
		{"+3", []token.Class{token.Integer}},
		{"x", []token.Class{token.Symbol}},
		{"+", []token.Class{token.Symbol}},
		{"-", []token.Class{token.Symbol}},
		{"<=", []token.Class{token.Symbol}},
		{"list?", []token.Class{token.Symbol}},
		{"set!", []token.Class{token.Symbol}},
		{
			"(+ 1 2)",
			[]token.Class{
				token.OpenParen, token.Symbol, token.Integer, token.Integer, token.CloseParen,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			toks := scanAll(t, New(tt.source))

			if len(toks) != len(tt.want) {
				t.Fatalf("scanned %d tokens, want %d", len(toks), len(tt.want))
			}

			for i, want := range tt.want {
				if toks[i].Class != want {
					t.Fatalf("token %d class = %v, want %v", i, toks[i].Class, want)
				}
			}
		})
	}
}

func TestIntegerValue(t *testing.T) {
	tests := []struct {
		source string
		want   int64
	}{
		{"0", 0},
		{"42", 42},
		{"-7", -7},
		{"+7", 7},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			l := New(tt.source)

			tok, err := l.Peek()
			if err != nil {
				t.Fatalf("Peek() returned an error: %v", err)
			}

			if tok.Value != tt.want {
				t.Fatalf("Value = %d, want %d", tok.Value, tt.want)
			}
		})
	}
}

func TestSignedPrefixFollowedByLetterIsTwoSymbols(t *testing.T) {
	// A bare '+' or '-' immediately followed by a letter does not glom
	// into one Symbol token: only a following digit joins the sign into
	// an Integer. "+foo" is Symbol("+") then Symbol("foo").
	toks := scanAll(t, New("+foo"))

	if len(toks) != 2 {
		t.Fatalf("scanned %d tokens, want 2", len(toks))
	}

	if toks[0].Class != token.Symbol || toks[0].Text != "+" {
		t.Fatalf("token 0 = %+v, want Symbol %q", toks[0], "+")
	}

	if toks[1].Class != token.Symbol || toks[1].Text != "foo" {
		t.Fatalf("token 1 = %+v, want Symbol %q", toks[1], "foo")
	}
}

func TestSymbolText(t *testing.T) {
	l := New("list-ref")

	tok, err := l.Peek()
	if err != nil {
		t.Fatalf("Peek() returned an error: %v", err)
	}

	if tok.Class != token.Symbol || tok.Text != "list-ref" {
		t.Fatalf("token = %+v, want Symbol %q", tok, "list-ref")
	}
}

func TestWhitespaceIsSkipped(t *testing.T) {
	toks := scanAll(t, New("  1   2\n\t3  "))

	if len(toks) != 3 {
		t.Fatalf("scanned %d tokens, want 3", len(toks))
	}
}

func TestEmptyInputIsAtEnd(t *testing.T) {
	l := New("")

	if !l.AtEnd() {
		t.Fatalf("AtEnd() = false for empty input")
	}

	if _, err := l.Peek(); err == nil {
		t.Fatalf("Peek() on empty input succeeded, want an error")
	}
}

func TestAdvancePastEndIsError(t *testing.T) {
	l := New("1")

	if err := l.Advance(); err != nil {
		t.Fatalf("first Advance() returned an error: %v", err)
	}

	if !l.AtEnd() {
		t.Fatalf("AtEnd() = false after consuming the only token")
	}

	if err := l.Advance(); err == nil {
		t.Fatalf("Advance() past end of input succeeded, want an error")
	}
}

func TestUnclassifiableCharacterIsSyntaxError(t *testing.T) {
	l := New("@")

	if _, err := l.Peek(); err == nil {
		t.Fatalf("Peek() on an unclassifiable character succeeded, want a syntax error")
	}
}
