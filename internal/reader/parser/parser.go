// Released under an MIT license. See LICENSE.

// Package parser implements the recursive-descent reader (spec §4.2): it
// consumes a lexer.T and builds an AST of pair/num/boolval/sym values.
package parser

import (
	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/heap"
	"github.com/Femistoclus/scheme-interpreter/internal/interface/cell"
	"github.com/Femistoclus/scheme-interpreter/internal/reader/lexer"
	"github.com/Femistoclus/scheme-interpreter/internal/reader/token"
	"github.com/Femistoclus/scheme-interpreter/internal/type/boolval"
	"github.com/Femistoclus/scheme-interpreter/internal/type/num"
	"github.com/Femistoclus/scheme-interpreter/internal/type/pair"
	"github.com/Femistoclus/scheme-interpreter/internal/type/sym"
)

// ReadDatum reads exactly one datum from l, allocating every value on h.
// This is the reader's ReadDatum operation from spec §4.2.
func ReadDatum(l *lexer.T, h *heap.Heap) (cell.T, error) {
	if l.AtEnd() {
		return nil, errs.Syntax("unexpected end of input")
	}

	t, err := l.Peek()
	if err != nil {
		return nil, err
	}

	switch t.Class {
	case token.Integer:
		if err := l.Advance(); err != nil {
			return nil, err
		}

		return num.New(h, t.Value), nil

	case token.Symbol:
		if err := l.Advance(); err != nil {
			return nil, err
		}

		switch t.Text {
		case "#t":
			return boolval.New(h, true), nil
		case "#f":
			return boolval.New(h, false), nil
		default:
			return sym.New(h, t.Text), nil
		}

	case token.Quote:
		if err := l.Advance(); err != nil {
			return nil, err
		}

		if l.AtEnd() {
			return nil, errs.Syntax("quote requires a datum")
		}

		datum, err := ReadDatum(l, h)
		if err != nil {
			return nil, err
		}

		return pair.Cons(h, sym.New(h, "quote"), pair.Cons(h, datum, pair.Null)), nil

	case token.OpenParen:
		if err := l.Advance(); err != nil {
			return nil, err
		}

		list, err := readList(l, h)
		if err != nil {
			return nil, err
		}

		closing, err := l.Peek()
		if err != nil {
			return nil, err
		}

		if closing.Class != token.CloseParen {
			return nil, errs.Syntax("expected )")
		}

		if err := l.Advance(); err != nil {
			return nil, err
		}

		return list, nil

	case token.CloseParen, token.Dot:
		return nil, errs.Syntax("unexpected token in leading position")

	default:
		return nil, errs.Syntax("unrecognized token")
	}
}

// readList reads data until a CloseParen (not consumed), returning the
// chain built right-associatively. It recognizes "(a b . c)": a Dot
// between elements is consumed, one more datum is read, and becomes the
// second of the last cell. A Dot with no preceding element, or followed
// by more than one datum before CloseParen, is a syntax error (spec
// §4.2), cross-checked against original_source/parser.cpp's ReadList.
func readList(l *lexer.T, h *heap.Heap) (cell.T, error) {
	var elems []cell.T

	tail := cell.T(pair.Null)

	for {
		if l.AtEnd() {
			return nil, errs.Syntax("unexpected end of input in list")
		}

		t, err := l.Peek()
		if err != nil {
			return nil, err
		}

		if t.Class == token.CloseParen {
			break
		}

		if t.Class == token.Dot {
			if len(elems) == 0 {
				return nil, errs.Syntax("dot with no preceding element")
			}

			if err := l.Advance(); err != nil {
				return nil, err
			}

			tail, err = ReadDatum(l, h)
			if err != nil {
				return nil, err
			}

			closing, err := l.Peek()
			if err != nil {
				return nil, err
			}

			if closing.Class != token.CloseParen {
				return nil, errs.Syntax("more than one datum after dot")
			}

			break
		}

		datum, err := ReadDatum(l, h)
		if err != nil {
			return nil, err
		}

		elems = append(elems, datum)
	}

	list := tail
	for i := len(elems) - 1; i >= 0; i-- {
		list = pair.Cons(h, elems[i], list)
	}

	return list, nil
}

