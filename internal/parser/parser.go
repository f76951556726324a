package parser

import (
	"scadc/internal/ast"
	"scadc/internal/diag"
	"scadc/internal/lexer"
	"scadc/internal/source"
	"scadc/internal/token"
)

// Parser holds the per-file state of one recursive-descent parse. The
// grammar is unambiguous with bounded lookahead, so the only carried state
// is the token index. The first error aborts the parse; there is no
// resynchronization and no partial AST.
type Parser struct {
	file   *source.File
	tokens []token.Token
	pos    int
}

// Parse tokenizes and parses one file into a Program.
// The returned error, if any, is a *diag.SyntaxError.
func Parse(file *source.File) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(file)
	if err != nil {
		return nil, err
	}
	return ParseTokens(file, tokens)
}

// ParseTokens parses an already-tokenized file.
func ParseTokens(file *source.File, tokens []token.Token) (*ast.Program, error) {
	p := &Parser{file: file, tokens: tokens}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	start := p.peek().Span
	var stmts []ast.Node
	for !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Program{
		Pos:        start.Cover(p.peek().Span),
		Statements: stmts,
	}, nil
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		// Tokenize always terminates the stream with EOF; this is a guard
		// for hand-built token slices.
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// expect consumes a token of kind k or fails with the given human-readable
// expectation.
func (p *Parser) expect(k token.Kind, expected string) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.errHere(diag.SynUnexpectedToken, expected)
}

// errHere builds a SyntaxError at the current token.
func (p *Parser) errHere(code diag.Code, expected ...string) *diag.SyntaxError {
	return p.errAt(code, p.peek(), expected...)
}

func (p *Parser) errAt(code diag.Code, tok token.Token, expected ...string) *diag.SyntaxError {
	found := tok.Text
	if tok.Kind == token.EOF {
		found = "end of input"
	}
	pos := p.file.Position(tok.Span.Start)
	return &diag.SyntaxError{
		Code:     code,
		Line:     pos.Line,
		Col:      pos.Col,
		Found:    found,
		Expected: expected,
	}
}
