package parser

import (
	"strconv"
	"strings"

	"scadc/internal/ast"
	"scadc/internal/diag"
	"scadc/internal/token"
)

// argEntry is one parsed argument, positional (name == "") or named.
type argEntry struct {
	name  string
	value ast.ArgValue
	tok   token.Token // name token, or the first token of the value
}

// parseArgList parses "( [arg {',' arg}] )" where arg := [name '='] value.
// Positional arguments must precede named ones.
func (p *Parser) parseArgList(construct string) ([]argEntry, error) {
	if _, err := p.expect(token.LParen, "an opening parenthesis after '"+construct+"'"); err != nil {
		return nil, err
	}

	var entries []argEntry
	sawNamed := false

	if p.at(token.RParen) {
		p.advance()
		return entries, nil
	}

	for {
		tok := p.peek()
		var entry argEntry

		if (tok.Kind == token.Ident || tok.Kind == token.SpecialVar) && p.peekAt(1).Kind == token.Assign {
			p.advance() // name
			p.advance() // '='
			value, err := p.parseValue(true)
			if err != nil {
				return nil, err
			}
			entry = argEntry{name: tok.Text, value: value, tok: tok}
			sawNamed = true
		} else {
			if sawNamed {
				return nil, p.errAt(diag.SynPositionalAfterNamed, tok,
					"a named argument; positional arguments must come before named ones")
			}
			value, err := p.parseValue(true)
			if err != nil {
				return nil, err
			}
			entry = argEntry{value: value, tok: tok}
		}
		entries = append(entries, entry)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if _, err := p.expect(token.RParen, "a comma or closing parenthesis"); err != nil {
			return nil, err
		}
		return entries, nil
	}
}

func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos+n]
}

// argSet maps parsed entries onto a per-construct schema: positionals fill
// schema slots in order, named arguments must belong to the allowed set,
// and no slot may be filled twice.
type argSet struct {
	construct string
	values    map[string]ast.ArgValue
	toks      map[string]token.Token
}

func (p *Parser) bindArgs(construct string, entries []argEntry, schema []string, allowed []string) (*argSet, error) {
	a := &argSet{
		construct: construct,
		values:    make(map[string]ast.ArgValue, len(entries)),
		toks:      make(map[string]token.Token, len(entries)),
	}

	isAllowed := func(name string) bool {
		for _, n := range allowed {
			if n == name {
				return true
			}
		}
		return false
	}

	positional := 0
	for _, entry := range entries {
		name := entry.name
		if name == "" {
			if positional >= len(schema) {
				return nil, p.errAt(diag.SynTooManyArguments, entry.tok,
					"at most "+strconv.Itoa(len(schema))+" positional arguments to '"+construct+"'")
			}
			name = schema[positional]
			positional++
		} else if !isAllowed(name) {
			return nil, p.errAt(diag.SynUnknownArgument, entry.tok,
				"one of "+quoteList(allowed)+" as an argument to '"+construct+"'")
		}

		if _, dup := a.values[name]; dup {
			return nil, p.errAt(diag.SynConflictingArgument, entry.tok,
				"each argument of '"+construct+"' to be given at most once")
		}
		a.values[name] = entry.value
		a.toks[name] = entry.tok
	}
	return a, nil
}

func (a *argSet) get(name string) ast.ArgValue { return a.values[name] }
func (a *argSet) has(name string) bool         { _, ok := a.values[name]; return ok }

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}

// halveDiameter converts a diameter argument to radius form. Diameter
// spellings require a literal number: with a VarRef the halving could not
// happen until execution time, and later stages must only ever see radii.
func (p *Parser) halveDiameter(a *argSet, name string) (ast.ArgValue, error) {
	num, ok := a.get(name).(*ast.Number)
	if !ok {
		return nil, p.errAt(diag.SynBadArgumentValue, a.toks[name],
			"a literal number for the diameter argument '"+name+"'")
	}
	return &ast.Number{Pos: num.Pos, Value: num.Value / 2}, nil
}

// resolveRadius picks between an r-style and d-style spelling of the same
// dimension, normalizing diameters immediately. Returns nil when neither
// was supplied.
func (p *Parser) resolveRadius(a *argSet, rName, dName string) (ast.ArgValue, error) {
	switch {
	case a.has(rName) && a.has(dName):
		return nil, p.errAt(diag.SynConflictingArgument, a.toks[dName],
			"either '"+rName+"' or '"+dName+"', not both")
	case a.has(dName):
		return p.halveDiameter(a, dName)
	default:
		return a.get(rName), nil
	}
}

func (p *Parser) parsePrimitiveArgs(kw token.Token) (*ast.PrimitiveCall, error) {
	entries, err := p.parseArgList(kw.Text)
	if err != nil {
		return nil, err
	}

	call := &ast.PrimitiveCall{Pos: kw.Span}

	switch kw.Kind {
	case token.KwCube:
		a, err := p.bindArgs("cube", entries, []string{"size", "center"}, []string{"size", "center"})
		if err != nil {
			return nil, err
		}
		call.Kind = ast.PrimCube
		call.Args = &ast.CubeArgs{Size: a.get("size"), Center: a.get("center")}

	case token.KwSphere:
		a, err := p.bindArgs("sphere", entries, []string{"r"}, []string{"r", "d", "$fn"})
		if err != nil {
			return nil, err
		}
		radius, err := p.resolveRadius(a, "r", "d")
		if err != nil {
			return nil, err
		}
		call.Kind = ast.PrimSphere
		call.Args = &ast.SphereArgs{Radius: radius, Fn: a.get("$fn")}

	case token.KwCylinder:
		a, err := p.bindArgs("cylinder", entries,
			[]string{"h", "r1", "r2"},
			[]string{"h", "r", "r1", "r2", "d", "d1", "d2", "center", "$fn"})
		if err != nil {
			return nil, err
		}
		args, err := p.cylinderRadii(a)
		if err != nil {
			return nil, err
		}
		args.Height = a.get("h")
		args.Center = a.get("center")
		args.Fn = a.get("$fn")
		call.Kind = ast.PrimCylinder
		call.Args = args

	case token.KwCircle:
		a, err := p.bindArgs("circle", entries, []string{"r"}, []string{"r", "d", "$fn"})
		if err != nil {
			return nil, err
		}
		radius, err := p.resolveRadius(a, "r", "d")
		if err != nil {
			return nil, err
		}
		call.Kind = ast.PrimCircle
		call.Args = &ast.CircleArgs{Radius: radius, Fn: a.get("$fn")}

	case token.KwSquare:
		a, err := p.bindArgs("square", entries, []string{"size", "center"}, []string{"size", "center"})
		if err != nil {
			return nil, err
		}
		call.Kind = ast.PrimSquare
		call.Args = &ast.SquareArgs{Size: a.get("size"), Center: a.get("center")}

	case token.KwPolygon:
		a, err := p.bindArgs("polygon", entries, []string{"points", "paths"}, []string{"points", "paths"})
		if err != nil {
			return nil, err
		}
		call.Kind = ast.PrimPolygon
		call.Args = &ast.PolygonArgs{Points: a.get("points"), Paths: a.get("paths")}
	}

	return call, nil
}

// cylinderRadii resolves the r | r1/r2 | d/d1/d2 spellings into the two
// radii the record carries. Plain r (or d) sets both ends.
func (p *Parser) cylinderRadii(a *argSet) (*ast.CylinderArgs, error) {
	args := &ast.CylinderArgs{}

	perEnd := a.has("r1") || a.has("r2") || a.has("d1") || a.has("d2")
	for _, whole := range []string{"r", "d"} {
		if a.has(whole) && perEnd {
			return nil, p.errAt(diag.SynConflictingArgument, a.toks[whole],
				"either '"+whole+"' for both ends or per-end radii, not both")
		}
	}

	switch {
	case a.has("r") && a.has("d"):
		return nil, p.errAt(diag.SynConflictingArgument, a.toks["d"],
			"either 'r' or 'd', not both")
	case a.has("r"):
		args.R1, args.R2 = a.get("r"), a.get("r")
	case a.has("d"):
		half, err := p.halveDiameter(a, "d")
		if err != nil {
			return nil, err
		}
		args.R1, args.R2 = half, half
	default:
		r1, err := p.resolveRadius(a, "r1", "d1")
		if err != nil {
			return nil, err
		}
		r2, err := p.resolveRadius(a, "r2", "d2")
		if err != nil {
			return nil, err
		}
		args.R1, args.R2 = r1, r2
	}
	return args, nil
}

func (p *Parser) parseTransformArgs(kw token.Token) (ast.TransformArgs, error) {
	entries, err := p.parseArgList(kw.Text)
	if err != nil {
		return nil, err
	}

	switch kw.Kind {
	case token.KwHull, token.KwMinkowski:
		if len(entries) != 0 {
			return nil, p.errAt(diag.SynTooManyArguments, entries[0].tok,
				"no arguments; '"+kw.Text+"' takes none")
		}
		return &ast.EmptyArgs{}, nil

	case token.KwColor:
		a, err := p.bindArgs("color", entries, []string{"c", "alpha"}, []string{"c", "alpha"})
		if err != nil {
			return nil, err
		}
		return &ast.ColorArgs{Value: a.get("c"), Alpha: a.get("alpha")}, nil
	}

	// translate/rotate/scale/mirror: one vector (or scalar, for rotate and
	// scale) argument.
	paramName := "v"
	if kw.Kind == token.KwRotate {
		paramName = "a"
	}
	a, err := p.bindArgs(kw.Text, entries, []string{paramName}, []string{paramName})
	if err != nil {
		return nil, err
	}
	value := a.get(paramName)
	if value == nil {
		return nil, p.errAt(diag.SynBadArgumentValue, kw,
			"an argument for '"+kw.Text+"'")
	}

	switch kw.Kind {
	case token.KwTranslate:
		return &ast.TranslateArgs{Vector: value}, nil
	case token.KwRotate:
		return &ast.RotateArgs{Angles: value}, nil
	case token.KwScale:
		return &ast.ScaleArgs{Factor: value}, nil
	default:
		return &ast.MirrorArgs{Normal: value}, nil
	}
}

func (p *Parser) parseExtrudeArgs(kw token.Token, kind ast.ExtrudeKind) (ast.ExtrudeArgs, error) {
	entries, err := p.parseArgList(kw.Text)
	if err != nil {
		return nil, err
	}

	if kind == ast.ExtrudeLinear {
		a, err := p.bindArgs("linear_extrude", entries,
			[]string{"height"},
			[]string{"height", "twist", "scale", "$fn"})
		if err != nil {
			return nil, err
		}
		if a.get("height") == nil {
			return nil, p.errAt(diag.SynBadArgumentValue, kw,
				"a 'height' argument for 'linear_extrude'")
		}
		return &ast.LinearExtrudeArgs{
			Height: a.get("height"),
			Twist:  a.get("twist"),
			Scale:  a.get("scale"),
			Fn:     a.get("$fn"),
		}, nil
	}

	a, err := p.bindArgs("rotate_extrude", entries,
		[]string{"angle"},
		[]string{"angle", "$fn"})
	if err != nil {
		return nil, err
	}
	return &ast.RotateExtrudeArgs{
		Angle: a.get("angle"),
		Fn:    a.get("$fn"),
	}, nil
}
