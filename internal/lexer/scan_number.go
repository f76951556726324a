package lexer

import (
	"scadc/internal/token"
)

// scanNumber accepts integers, decimals with or without a leading digit
// (".5"), and scientific notation with an optional exponent sign.
//
// A malformed exponent ("1e", "1e+" with no digits) is not an error: the
// scan backtracks to the end of the mantissa and emits the number, leaving
// "e"/"e+" to re-lex as identifier and operator tokens.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '.' {
		// ".digits" form; the caller guaranteed a digit follows.
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
			lx.cursor.Bump() // '.'
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mantissaEnd := lx.cursor.Mark()
		lx.cursor.Bump() // e/E
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			// no exponent digits: the 'e' belongs to the next token
			lx.cursor.Reset(mantissaEnd)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
