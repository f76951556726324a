package lexer

import (
	"scadc/internal/diag"
	"scadc/internal/source"
	"scadc/internal/token"
)

// Lexer turns one source file into an ordered token stream. It is a single
// forward scan with constant lookahead; no token is ever retracted or merged
// after emission. The first lexical error stops the scan: Next keeps
// returning EOF and Err reports the failure.
type Lexer struct {
	file   *source.File
	cursor Cursor
	err    *diag.SyntaxError
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Err returns the lexical error encountered so far, if any.
func (lx *Lexer) Err() *diag.SyntaxError {
	return lx.err
}

// Next returns the next significant token. After EOF or an error it always
// returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.err != nil {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	lx.skipTrivia()
	if lx.err != nil {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '$':
		return lx.scanSpecialVar()
	default:
		return lx.scanPunct()
	}
}

// Tokenize scans the whole file into a token slice terminated by EOF.
// The returned error, if any, is a *diag.SyntaxError.
func Tokenize(file *source.File) ([]token.Token, error) {
	lx := New(file)
	var tokens []token.Token
	for {
		tok := lx.Next()
		if err := lx.Err(); err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// errLex records the first lexical failure with a resolved position.
func (lx *Lexer) errLex(code diag.Code, off uint32, found string, expected ...string) {
	if lx.err != nil {
		return
	}
	pos := lx.file.Position(off)
	lx.err = &diag.SyntaxError{
		Code:     code,
		Line:     pos.Line,
		Col:      pos.Col,
		Found:    found,
		Expected: expected,
	}
}
