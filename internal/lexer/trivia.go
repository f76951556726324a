package lexer

import (
	"scadc/internal/diag"
)

// skipTrivia consumes whitespace and comments before the next significant
// token. Block comments nest; an unterminated one is a lexical error at its
// opening position.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}

		if b == '/' {
			if lx.skipComment() {
				continue
			}
			return // a lone '/' is an operator, not trivia
		}

		return
	}
}

// skipComment handles "//... \n" and "/* ... */" (with nesting).
// Returns false when the '/' does not start a comment.
func (lx *Lexer) skipComment() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	switch lx.cursor.Peek() {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true

	case '*':
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		if depth > 0 {
			lx.errLex(diag.LexUnterminatedBlockComment, uint32(start),
				"end of input", "closing */")
		}
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}
