package lexer

import (
	"fmt"
	"unicode/utf8"

	"scadc/internal/diag"
	"scadc/internal/token"
)

var punctKinds = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	';': token.Semicolon,
	',': token.Comma,
	'=': token.Assign,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'#': token.Hash,
	'!': token.Bang,
	':': token.Colon,
	'<': token.Lt,
	'>': token.Gt,
}

// scanPunct scans single-byte punctuation and operators. Anything outside
// the table is an invalid character.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	if kind, ok := punctKinds[b]; ok {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(b)}
	}

	r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	lx.cursor.Off += uint32(size)
	lx.errLex(diag.LexInvalidChar, uint32(start),
		fmt.Sprintf("%c", r), "a valid OpenSCAD token")
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
