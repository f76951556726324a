package lexer

import (
	"scadc/internal/diag"
	"scadc/internal/token"
)

// scanSpecialVar scans a '$'-prefixed special variable such as $fn.
// Token.Text keeps the sigil. A bare '$' is an invalid character.
func (lx *Lexer) scanSpecialVar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'

	if !isIdentStartByte(lx.cursor.Peek()) {
		lx.errLex(diag.LexInvalidChar, uint32(start), "$", "a special variable name after '$'")
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: "$"}
	}

	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.SpecialVar, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
