package transpile

import (
	"fmt"
	"strconv"
	"strings"

	"scadc/internal/ast"
	"scadc/internal/diag"
)

// jsNumber renders a float the shortest way that round-trips. The output
// is a valid JavaScript numeric literal for every finite float64.
func jsNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func jsString(s string) string {
	return strconv.Quote(s)
}

func jsBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// valueExpr lowers an ArgValue to a JavaScript expression. VarRefs become
// parameter-table lookups; arrays recurse, so a reference nested inside a
// polygon point list resolves like any other.
func (c *Context) valueExpr(v ast.ArgValue, owner ast.Node) (string, error) {
	switch v := v.(type) {
	case *ast.Number:
		return jsNumber(v.Value), nil
	case *ast.Bool:
		return jsBool(v.Value), nil
	case *ast.String:
		return jsString(v.Value), nil
	case *ast.VarRef:
		return c.lookup(v, owner)
	case *ast.Array:
		elems := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			expr, err := c.valueExpr(e, owner)
			if err != nil {
				return "", err
			}
			elems[i] = expr
		}
		return "[" + strings.Join(elems, ", ") + "]", nil
	default:
		return "", &diag.TranspileError{
			Code:    diag.TrInternal,
			Node:    owner,
			Message: fmt.Sprintf("unhandled argument value %T", v),
		}
	}
}

// vectorExpr lowers a value that the runtime expects as a dims-component
// vector. A literal scalar expands to a symmetric vector at compile time;
// a reference expands with a runtime conditional because its shape is
// unknown until the override table is supplied.
func (c *Context) vectorExpr(v ast.ArgValue, dims int, owner ast.Node) (string, error) {
	switch v := v.(type) {
	case *ast.Number:
		lit := jsNumber(v.Value)
		parts := make([]string, dims)
		for i := range parts {
			parts[i] = lit
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case *ast.Array:
		return c.valueExpr(v, owner)
	case *ast.VarRef:
		ref, err := c.lookup(v, owner)
		if err != nil {
			return "", err
		}
		parts := make([]string, dims)
		for i := range parts {
			parts[i] = ref
		}
		return fmt.Sprintf("(Array.isArray(%s) ? %s : [%s])",
			ref, ref, strings.Join(parts, ", ")), nil
	default:
		return "", &diag.TranspileError{
			Code:    diag.TrBadValue,
			Node:    owner,
			Message: "expected a number or vector",
		}
	}
}

// rotationExpr handles rotate's scalar shorthand: a bare angle rotates
// about the Z axis.
func (c *Context) rotationExpr(v ast.ArgValue, owner ast.Node) (string, error) {
	switch v := v.(type) {
	case *ast.Number:
		return fmt.Sprintf("[0, 0, %s]", jsNumber(v.Value)), nil
	case *ast.Array:
		return c.valueExpr(v, owner)
	case *ast.VarRef:
		ref, err := c.lookup(v, owner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(Array.isArray(%s) ? %s : [0, 0, %s])", ref, ref, ref), nil
	default:
		return "", &diag.TranspileError{
			Code:    diag.TrBadValue,
			Node:    owner,
			Message: "expected an angle or a vector of Euler angles",
		}
	}
}

// numberExpr lowers a value the runtime expects as a plain number.
func (c *Context) numberExpr(v ast.ArgValue, def float64, owner ast.Node) (string, error) {
	switch v := v.(type) {
	case nil:
		return jsNumber(def), nil
	case *ast.Number:
		return jsNumber(v.Value), nil
	case *ast.VarRef:
		return c.lookup(v, owner)
	default:
		return "", &diag.TranspileError{
			Code:    diag.TrBadValue,
			Node:    owner,
			Message: "expected a number",
		}
	}
}

// boolExpr lowers a value the runtime expects as a flag.
func (c *Context) boolExpr(v ast.ArgValue, def bool, owner ast.Node) (string, error) {
	switch v := v.(type) {
	case nil:
		return jsBool(def), nil
	case *ast.Bool:
		return jsBool(v.Value), nil
	case *ast.VarRef:
		return c.lookup(v, owner)
	default:
		return "", &diag.TranspileError{
			Code:    diag.TrBadValue,
			Node:    owner,
			Message: "expected true or false",
		}
	}
}

func clampSegments(v float64) float64 {
	if v < minSegments {
		return minSegments
	}
	if v > maxSegments {
		return maxSegments
	}
	return v
}

// segmentExpr resolves the effective segment count for one call: the
// per-call $fn argument if given, else the ambient value. Literals clamp at
// compile time, references clamp at execution time.
func (c *Context) segmentExpr(fn ast.ArgValue, owner ast.Node) (string, error) {
	switch fn := fn.(type) {
	case nil:
		return jsNumber(clampSegments(c.fn)), nil
	case *ast.Number:
		return jsNumber(clampSegments(fn.Value)), nil
	case *ast.VarRef:
		ref, err := c.lookup(fn, owner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Math.max(%d, Math.min(%d, %s))", minSegments, maxSegments, ref), nil
	default:
		return "", &diag.TranspileError{
			Code:    diag.TrBadValue,
			Node:    owner,
			Message: "expected a number for $fn",
		}
	}
}
