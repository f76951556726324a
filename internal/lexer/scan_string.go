package lexer

import (
	"scadc/internal/diag"
	"scadc/internal/token"
)

// scanString scans a double-quoted literal. Escape sequences are consumed
// here and decoded by the parser; a newline inside a string is legal in
// OpenSCAD. Missing the closing quote at EOF is a lexical error at the
// opening quote.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.String, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
		}
		lx.cursor.Bump()
	}

	lx.errLex(diag.LexUnterminatedString, uint32(start), "end of input", "closing double quote")
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
