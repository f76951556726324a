package transpile

import (
	"fmt"
	"math"
	"strings"

	"scadc/internal/ast"
	"scadc/internal/diag"
)

// lowerPrimitive lowers a 3D primitive call to a freshly bound temporary.
// 2D primitives never reach here: outside an extrusion they are rejected,
// inside one they lower through profileExpr instead.
func (c *Context) lowerPrimitive(call *ast.PrimitiveCall) (string, error) {
	if call.Kind.Is2D() {
		return "", &diag.TranspileError{
			Code: diag.TrUnsupported,
			Node: call,
			Message: fmt.Sprintf(
				"2D shape '%s' can only be used inside an extrusion", call.Kind),
		}
	}

	switch args := call.Args.(type) {
	case *ast.CubeArgs:
		size, err := c.sizeVector(args.Size, 3, call)
		if err != nil {
			return "", err
		}
		center, err := c.boolExpr(args.Center, false, call)
		if err != nil {
			return "", err
		}
		return c.bindTemp(fmt.Sprintf("csg.box(%s, %s)", size, center)), nil

	case *ast.SphereArgs:
		radius, err := c.numberExpr(args.Radius, 1, call)
		if err != nil {
			return "", err
		}
		segments, err := c.segmentExpr(args.Fn, call)
		if err != nil {
			return "", err
		}
		return c.bindTemp(fmt.Sprintf("csg.sphere(%s, %s)", radius, segments)), nil

	case *ast.CylinderArgs:
		height, err := c.numberExpr(args.Height, 1, call)
		if err != nil {
			return "", err
		}
		r1, err := c.numberExpr(args.R1, 1, call)
		if err != nil {
			return "", err
		}
		r2, err := c.numberExpr(args.R2, 1, call)
		if err != nil {
			return "", err
		}
		center, err := c.boolExpr(args.Center, false, call)
		if err != nil {
			return "", err
		}
		segments, err := c.segmentExpr(args.Fn, call)
		if err != nil {
			return "", err
		}
		return c.bindTemp(fmt.Sprintf("csg.cylinder(%s, %s, %s, %s, %s)",
			height, r1, r2, center, segments)), nil

	default:
		return "", &diag.TranspileError{
			Code:    diag.TrInternal,
			Node:    call,
			Message: fmt.Sprintf("unhandled primitive arguments %T", call.Args),
		}
	}
}

// sizeVector is vectorExpr with a nil default of the unit vector.
func (c *Context) sizeVector(v ast.ArgValue, dims int, owner ast.Node) (string, error) {
	if v == nil {
		parts := make([]string, dims)
		for i := range parts {
			parts[i] = "1"
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	}
	return c.vectorExpr(v, dims, owner)
}

// profileExpr lowers a 2D primitive to a point-list expression consumed by
// extrusion lowering. Fully literal arguments produce a literal point
// array; anything parameter-dependent produces a self-invoking function
// computed at execution time.
func (c *Context) profileExpr(call *ast.PrimitiveCall) (string, error) {
	switch args := call.Args.(type) {
	case *ast.CircleArgs:
		return c.circleProfile(args, call)
	case *ast.SquareArgs:
		return c.squareProfile(args, call)
	case *ast.PolygonArgs:
		return c.polygonProfile(args, call)
	default:
		return "", &diag.TranspileError{
			Code:    diag.TrInternal,
			Node:    call,
			Message: fmt.Sprintf("unhandled profile arguments %T", call.Args),
		}
	}
}

func (c *Context) circleProfile(args *ast.CircleArgs, call *ast.PrimitiveCall) (string, error) {
	radius, radiusLit := literalNumber(args.Radius, 1)
	segments, segmentsLit := literalNumber(args.Fn, c.fn)

	if radiusLit && segmentsLit {
		n := int(clampSegments(segments))
		points := make([]string, n)
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			points[i] = fmt.Sprintf("[%s, %s]",
				jsNumber(radius*math.Cos(angle)), jsNumber(radius*math.Sin(angle)))
		}
		return "[" + strings.Join(points, ", ") + "]", nil
	}

	radiusExpr, err := c.numberExpr(args.Radius, 1, call)
	if err != nil {
		return "", err
	}
	segmentsExpr, err := c.segmentExpr(args.Fn, call)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(function () { "+
		"var r = %s; var n = %s; var pts = []; "+
		"for (var i = 0; i < n; i++) { var a = 2 * Math.PI * i / n; "+
		"pts.push([r * Math.cos(a), r * Math.sin(a)]); } "+
		"return pts; })()", radiusExpr, segmentsExpr), nil
}

func (c *Context) squareProfile(args *ast.SquareArgs, call *ast.PrimitiveCall) (string, error) {
	if w, h, center, ok := literalSquare(args); ok {
		ox, oy := 0.0, 0.0
		if center {
			ox, oy = -w/2, -h/2
		}
		return fmt.Sprintf("[[%s, %s], [%s, %s], [%s, %s], [%s, %s]]",
			jsNumber(ox), jsNumber(oy),
			jsNumber(ox+w), jsNumber(oy),
			jsNumber(ox+w), jsNumber(oy+h),
			jsNumber(ox), jsNumber(oy+h)), nil
	}

	size, err := c.sizeVector(args.Size, 2, call)
	if err != nil {
		return "", err
	}
	center, err := c.boolExpr(args.Center, false, call)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(function () { "+
		"var v = %s; "+
		"var ox = %s ? -v[0] / 2 : 0; var oy = %s ? -v[1] / 2 : 0; "+
		"return [[ox, oy], [ox + v[0], oy], [ox + v[0], oy + v[1]], [ox, oy + v[1]]]; })()",
		size, center, center), nil
}

func (c *Context) polygonProfile(args *ast.PolygonArgs, call *ast.PrimitiveCall) (string, error) {
	if args.Points == nil {
		return "", &diag.TranspileError{
			Code:    diag.TrBadValue,
			Node:    call,
			Message: "polygon requires a points list",
		}
	}
	if args.Paths != nil {
		c.rep.Report(diag.TrUnsupported, diag.SevWarning, call.Pos,
			"polygon paths are not supported and are ignored; the points list is used as a single outline")
	}
	return c.valueExpr(args.Points, call)
}

// literalNumber unwraps a literal numeric argument, falling back to def
// when absent. The second result is false when the value is
// parameter-dependent.
func literalNumber(v ast.ArgValue, def float64) (float64, bool) {
	switch v := v.(type) {
	case nil:
		return def, true
	case *ast.Number:
		return v.Value, true
	default:
		return 0, false
	}
}

// literalSquare unwraps square arguments when all of them are literal.
func literalSquare(args *ast.SquareArgs) (w, h float64, center, ok bool) {
	switch size := args.Size.(type) {
	case nil:
		w, h = 1, 1
	case *ast.Number:
		w, h = size.Value, size.Value
	case *ast.Array:
		if len(size.Elems) != 2 {
			return 0, 0, false, false
		}
		wn, wok := size.Elems[0].(*ast.Number)
		hn, hok := size.Elems[1].(*ast.Number)
		if !wok || !hok {
			return 0, 0, false, false
		}
		w, h = wn.Value, hn.Value
	default:
		return 0, 0, false, false
	}

	switch ctr := args.Center.(type) {
	case nil:
	case *ast.Bool:
		center = ctr.Value
	default:
		return 0, 0, false, false
	}
	return w, h, center, true
}
