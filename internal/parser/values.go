package parser

import (
	"strconv"
	"strings"

	"scadc/internal/ast"
	"scadc/internal/diag"
	"scadc/internal/token"
)

// parseValue parses one ArgValue: a number (optionally negated), boolean,
// string, array, or (when allowRef is set) a bare identifier as a VarRef.
// Inside arrays references are always allowed; that is what lets a
// polygon's point list mix literals and parameters.
func (p *Parser) parseValue(allowRef bool) (ast.ArgValue, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.Number:
		p.advance()
		return p.numberValue(tok, false)

	case token.Minus:
		p.advance()
		num, err := p.expect(token.Number, "a number after the minus sign")
		if err != nil {
			return nil, err
		}
		return p.numberValue(num, true)

	case token.KwTrue:
		p.advance()
		return &ast.Bool{Pos: tok.Span, Value: true}, nil

	case token.KwFalse:
		p.advance()
		return &ast.Bool{Pos: tok.Span, Value: false}, nil

	case token.String:
		p.advance()
		return &ast.String{Pos: tok.Span, Value: unquote(tok.Text)}, nil

	case token.LBracket:
		return p.parseArray()

	case token.Ident:
		if allowRef {
			p.advance()
			return &ast.VarRef{Pos: tok.Span, Name: tok.Text}, nil
		}
		return nil, p.errHere(diag.SynBadAssignValue,
			"a literal value (number, boolean, string, or array); expressions and variable references are not supported here")

	default:
		return nil, p.errHere(diag.SynUnexpectedToken,
			"a number, boolean, string, array, or variable name")
	}
}

func (p *Parser) parseArray() (ast.ArgValue, error) {
	open := p.advance() // '['
	arr := &ast.Array{Pos: open.Span}

	if p.at(token.RBracket) {
		close := p.advance()
		arr.Pos = arr.Pos.Cover(close.Span)
		return arr, nil
	}

	for {
		elem, err := p.parseValue(true)
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, elem)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		close, err := p.expect(token.RBracket, "a comma or closing bracket")
		if err != nil {
			return nil, err
		}
		arr.Pos = arr.Pos.Cover(close.Span)
		return arr, nil
	}
}

func (p *Parser) numberValue(tok token.Token, negate bool) (ast.ArgValue, error) {
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		// the lexer only emits well-formed numeric text; treat failure as
		// a malformed literal anyway
		return nil, p.errAt(diag.SynBadArgumentValue, tok, "a valid numeric literal")
	}
	if negate {
		v = -v
	}
	return &ast.Number{Pos: tok.Span, Value: v}, nil
}

// unquote strips the surrounding quotes and resolves the simple escape set
// OpenSCAD supports.
func unquote(text string) string {
	body := text
	if len(body) >= 2 && body[0] == '"' && body[len(body)-1] == '"' {
		body = body[1 : len(body)-1]
	}
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(body[i])
		}
	}
	return sb.String()
}
