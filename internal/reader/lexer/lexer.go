// Released under an MIT license. See LICENSE.

// Package lexer scans source text into the token stream spec §4.1
// describes: three operations, Peek, Advance, and AtEnd, over a
// classified token sequence.
//
// The teacher's own lexer (internal/reader/lexer) adapts Rob Pike's
// state-function scanner running on its own goroutine, feeding a channel
// of tokens for oh's much larger shell grammar (words, redirections,
// here-documents, pipelines). This grammar has six token classes and no
// need for streaming partial input across command-line edits, so this
// scanner keeps Pike's idea of one function per lexical state but runs
// it synchronously, scanning one token ahead on each call to Advance,
// with no channel and no goroutine.
package lexer

import (
	"unicode"

	"github.com/Femistoclus/scheme-interpreter/internal/errs"
	"github.com/Femistoclus/scheme-interpreter/internal/reader/token"
)

// T holds the state of the scanner: the source runes, a cursor, and the
// next token, scanned eagerly so Peek never has to scan.
type T struct {
	src []rune
	pos int

	current *token.T
	atEnd   bool
	err     error
}

// New creates a scanner over src and scans its first token.
func New(src string) *T {
	l := &T{src: []rune(src)}
	l.advance()

	return l
}

// AtEnd reports whether there is no more input to scan. It is always
// safe to call.
func (l *T) AtEnd() bool {
	return l.atEnd && l.err == nil
}

// Peek returns the next token without consuming it, or the lexical error
// found while scanning it.
func (l *T) Peek() (*token.T, error) {
	if l.err != nil {
		return nil, l.err
	}

	if l.atEnd {
		return nil, errs.Syntax("unexpected end of input")
	}

	return l.current, nil
}

// Advance consumes the current token and scans the next one. Advancing
// past end-of-input is a lexical error; callers must check AtEnd first
// (spec §4.1).
func (l *T) Advance() error {
	if l.err != nil {
		return l.err
	}

	if l.atEnd {
		return errs.Syntax("advance past end of input")
	}

	l.advance()

	return l.err
}

// advance scans the next token into l.current, or sets l.atEnd / l.err.
func (l *T) advance() {
	l.skipWhitespace()

	if l.pos >= len(l.src) {
		l.atEnd = true

		return
	}

	c := l.src[l.pos]

	switch {
	case c == '(':
		l.pos++
		l.current = &token.T{Class: token.OpenParen, Text: "("}
	case c == ')':
		l.pos++
		l.current = &token.T{Class: token.CloseParen, Text: ")"}
	case c == '\'':
		l.pos++
		l.current = &token.T{Class: token.Quote, Text: "'"}
	case c == '.':
		l.pos++
		l.current = &token.T{Class: token.Dot, Text: "."}
	case isSignedDigitStart(l.src, l.pos):
		l.current = l.scanInteger()
	case c == '+' || c == '-':
		l.current = l.scanSign()
	case isSymbolStart(c):
		l.current = l.scanSymbol()
	default:
		l.err = errs.Syntax("unclassifiable character")
	}
}

func (l *T) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.src[l.pos]) {
		l.pos++
	}
}

// isSignedDigitStart reports whether src[pos:] begins an Integer token:
// an optional leading '+'/'-' followed by at least one digit. A bare
// '+' or '-' is a symbol, not a number (spec §4.1).
func isSignedDigitStart(src []rune, pos int) bool {
	if pos >= len(src) {
		return false
	}

	c := src[pos]

	if c >= '0' && c <= '9' {
		return true
	}

	if c != '+' && c != '-' {
		return false
	}

	return pos+1 < len(src) && src[pos+1] >= '0' && src[pos+1] <= '9'
}

func (l *T) scanInteger() *token.T {
	start := l.pos

	if l.src[l.pos] == '+' || l.src[l.pos] == '-' {
		l.pos++
	}

	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
	}

	text := string(l.src[start:l.pos])

	var value int64

	neg := text[0] == '-'

	digits := text
	if text[0] == '+' || text[0] == '-' {
		digits = text[1:]
	}

	for _, d := range digits {
		value = value*10 + int64(d-'0')
	}

	if neg {
		value = -value
	}

	return &token.T{Class: token.Integer, Text: text, Value: value}
}

// isSymbolStart reports whether c can begin a Symbol token: a letter, or
// one of "< = > * / #" (spec §4.1). '+' and '-' are handled separately by
// scanSign, not here: a leading sign only ever starts an Integer (when
// followed by a digit) or its own one-character Symbol, and never absorbs
// the letters that follow it the way scanSymbol would (so "+foo" lexes as
// two tokens, Symbol("+") then Symbol("foo"), matching
// tokenizer.cpp's ProcessPlusMinusToken).
func isSymbolStart(c rune) bool {
	if unicode.IsLetter(c) {
		return true
	}

	switch c {
	case '<', '=', '>', '*', '/', '#':
		return true
	}

	return false
}

// isSymbolContinue reports whether c can continue a Symbol token after
// its first character: letters, digits, '-', '?', '!' (spec §4.1). '='
// is also accepted so two-character relational names like "<=" and ">="
// scan as one token.
func isSymbolContinue(c rune) bool {
	if unicode.IsLetter(c) || unicode.IsDigit(c) {
		return true
	}

	switch c {
	case '-', '?', '!', '=':
		return true
	}

	return false
}

// scanSign consumes a single unsigned '+' or '-' as its own Symbol token.
// isSignedDigitStart already claimed the case where a digit follows, so by
// the time this runs the sign is not the start of an Integer; unlike
// scanSymbol it never looks past its one character, so a following letter
// starts a fresh token on the next call.
func (l *T) scanSign() *token.T {
	text := string(l.src[l.pos])
	l.pos++

	return &token.T{Class: token.Symbol, Text: text}
}

func (l *T) scanSymbol() *token.T {
	start := l.pos

	l.pos++

	for l.pos < len(l.src) && isSymbolContinue(l.src[l.pos]) {
		l.pos++
	}

	text := string(l.src[start:l.pos])

	return &token.T{Class: token.Symbol, Text: text}
}
