package parser

import (
	"scadc/internal/ast"
	"scadc/internal/diag"
	"scadc/internal/token"
)

// parseStatement recognizes one production:
//
//	statement := primitiveCall ';'
//	           | transformBlock
//	           | booleanBlock
//	           | extrudeBlock
//	           | specialVarAssign ';'
//	           | varAssign ';'
//
// Control-flow and definition keywords are rejected here by name so the
// error can state exactly which unsupported construct was used.
func (p *Parser) parseStatement() (ast.Node, error) {
	tok := p.peek()

	switch {
	case tok.IsPrimitive():
		return p.parsePrimitiveCall()
	case tok.IsTransform():
		return p.parseTransformBlock()
	case tok.IsBoolean():
		return p.parseBooleanBlock()
	case tok.IsExtrude():
		return p.parseExtrudeBlock()
	case tok.Kind == token.SpecialVar:
		return p.parseSpecialVarAssign()
	case tok.Kind == token.Ident:
		return p.parseVarAssign()
	case tok.IsUnsupportedConstruct():
		return nil, p.errHere(diag.SynUnsupportedConstruct,
			"a supported statement; '"+tok.Text+"' is not part of the accepted OpenSCAD subset")
	default:
		return nil, p.errHere(diag.SynUnexpectedToken,
			"a primitive, transform, boolean operation, extrusion, or assignment")
	}
}

func (p *Parser) parsePrimitiveCall() (ast.Node, error) {
	kw := p.advance()
	call, err := p.parsePrimitiveArgs(kw)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "a semicolon after '"+kw.Text+"(...)'"); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *Parser) parseTransformBlock() (ast.Node, error) {
	kw := p.advance()

	var kind ast.TransformKind
	switch kw.Kind {
	case token.KwTranslate:
		kind = ast.TransformTranslate
	case token.KwRotate:
		kind = ast.TransformRotate
	case token.KwScale:
		kind = ast.TransformScale
	case token.KwMirror:
		kind = ast.TransformMirror
	case token.KwColor:
		kind = ast.TransformColor
	case token.KwHull:
		kind = ast.TransformHull
	case token.KwMinkowski:
		kind = ast.TransformMinkowski
	}

	args, err := p.parseTransformArgs(kw)
	if err != nil {
		return nil, err
	}
	children, err := p.parseChildBlock(kw.Text)
	if err != nil {
		return nil, err
	}
	return &ast.Transform{
		Pos:      kw.Span,
		Kind:     kind,
		Args:     args,
		Children: children,
	}, nil
}

func (p *Parser) parseBooleanBlock() (ast.Node, error) {
	kw := p.advance()

	var kind ast.BooleanKind
	switch kw.Kind {
	case token.KwUnion:
		kind = ast.BoolUnion
	case token.KwDifference:
		kind = ast.BoolDifference
	case token.KwIntersection:
		kind = ast.BoolIntersection
	}

	// Boolean operations take no arguments: require bare parentheses.
	if _, err := p.expect(token.LParen, "an opening parenthesis after '"+kw.Text+"'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, "a closing parenthesis; '"+kw.Text+"' takes no arguments"); err != nil {
		return nil, err
	}

	children, err := p.parseChildBlock(kw.Text)
	if err != nil {
		return nil, err
	}
	return &ast.BooleanOp{
		Pos:      kw.Span,
		Kind:     kind,
		Children: children,
	}, nil
}

func (p *Parser) parseExtrudeBlock() (ast.Node, error) {
	kw := p.advance()

	var kind ast.ExtrudeKind
	if kw.Kind == token.KwLinearExtrude {
		kind = ast.ExtrudeLinear
	} else {
		kind = ast.ExtrudeRotate
	}

	args, err := p.parseExtrudeArgs(kw, kind)
	if err != nil {
		return nil, err
	}
	children, err := p.parseChildBlock(kw.Text)
	if err != nil {
		return nil, err
	}
	return &ast.Extrude{
		Pos:      kw.Span,
		Kind:     kind,
		Args:     args,
		Children: children,
	}, nil
}

// parseChildBlock parses either a brace-delimited child list or exactly one
// unbraced child statement. The single-child form still requires the leaf
// statement's own terminating semicolon, which parseStatement handles.
func (p *Parser) parseChildBlock(construct string) ([]ast.Node, error) {
	if p.at(token.LBrace) {
		p.advance()
		var children []ast.Node
		for !p.at(token.RBrace) {
			if p.at(token.EOF) {
				return nil, p.errHere(diag.SynUnexpectedToken,
					"a closing brace for the '"+construct+"' block")
			}
			child, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		p.advance() // '}'
		return children, nil
	}

	child, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return []ast.Node{child}, nil
}

func (p *Parser) parseSpecialVarAssign() (ast.Node, error) {
	name := p.advance()
	if _, err := p.expect(token.Assign, "'=' after '"+name.Text+"'"); err != nil {
		return nil, err
	}

	value, err := p.parseValue(false)
	if err != nil {
		return nil, err
	}

	// Only $fn has lowering effect, but every special variable takes a
	// literal; $fn specifically must be numeric.
	if name.Text == "$fn" {
		if _, ok := value.(*ast.Number); !ok {
			return nil, p.errAt(diag.SynBadSpecialValue, name,
				"a literal number as the value of $fn")
		}
	}

	if _, err := p.expect(token.Semicolon, "a semicolon after the '"+name.Text+"' assignment"); err != nil {
		return nil, err
	}
	return &ast.SpecialVarAssign{
		Pos:   name.Span,
		Name:  name.Text,
		Value: value,
	}, nil
}

// parseVarAssign parses `name = value ;`. The right-hand side accepts only
// literals, arrays, and negated numbers; the general OpenSCAD expression
// grammar (arithmetic, ternary, calls) is deliberately not evaluated.
func (p *Parser) parseVarAssign() (ast.Node, error) {
	name := p.advance()
	if _, err := p.expect(token.Assign, "'=' after the variable name '"+name.Text+"'"); err != nil {
		return nil, err
	}

	value, err := p.parseValue(false)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.Semicolon, "a semicolon after the '"+name.Text+"' assignment"); err != nil {
		return nil, err
	}
	return &ast.VarAssign{
		Pos:   name.Span,
		Name:  name.Text,
		Value: value,
	}, nil
}
