package transpile

import (
	"fmt"

	"scadc/internal/ast"
	"scadc/internal/diag"
)

// lowerExtrude lifts a 2D profile into a solid. Children lower in a 2D
// context: only 2D primitives (and assignments) are legal there, and only
// the first profile is used. Combining several 2D shapes inside one
// extrusion is an intentional limitation of the accepted subset.
func (c *Context) lowerExtrude(ex *ast.Extrude) (string, error) {
	profile, err := c.extractProfile(ex)
	if err != nil {
		return "", err
	}

	switch args := ex.Args.(type) {
	case *ast.LinearExtrudeArgs:
		height, err := c.numberExpr(args.Height, 1, ex)
		if err != nil {
			return "", err
		}
		twist, err := c.numberExpr(args.Twist, 0, ex)
		if err != nil {
			return "", err
		}
		scale, err := c.numberExpr(args.Scale, 1, ex)
		if err != nil {
			return "", err
		}
		segments, err := c.segmentExpr(args.Fn, ex)
		if err != nil {
			return "", err
		}
		return c.bindTemp(fmt.Sprintf("csg.extrude(%s, %s, %s, %s, %s)",
			profile, height, twist, scale, segments)), nil

	case *ast.RotateExtrudeArgs:
		angle, err := c.numberExpr(args.Angle, 360, ex)
		if err != nil {
			return "", err
		}
		segments, err := c.segmentExpr(args.Fn, ex)
		if err != nil {
			return "", err
		}
		return c.bindTemp(fmt.Sprintf("csg.revolve(%s, %s, %s)",
			profile, angle, segments)), nil

	default:
		return "", &diag.TranspileError{
			Code:    diag.TrInternal,
			Node:    ex,
			Message: fmt.Sprintf("unhandled extrusion arguments %T", ex.Args),
		}
	}
}

// extractProfile walks the extrusion's children for the first 2D primitive
// and lowers it to a point-list expression. Children after the profile are
// ignored; a solid or nested block before one is an error.
func (c *Context) extractProfile(ex *ast.Extrude) (string, error) {
	for _, child := range ex.Children {
		switch child := child.(type) {
		case *ast.VarAssign:
			if err := c.declare(child); err != nil {
				return "", err
			}
		case *ast.SpecialVarAssign:
			c.assignSpecial(child)
		case *ast.PrimitiveCall:
			if !child.Kind.Is2D() {
				return "", &diag.TranspileError{
					Code: diag.TrUnsupported,
					Node: child,
					Message: fmt.Sprintf(
						"solid '%s' cannot be extruded; '%s' takes a 2D profile",
						child.Kind, ex.Kind),
				}
			}
			return c.profileExpr(child)
		default:
			return "", &diag.TranspileError{
				Code: diag.TrUnsupported,
				Node: child,
				Message: fmt.Sprintf(
					"only a single 2D shape may appear inside '%s'", ex.Kind),
			}
		}
	}
	return "", &diag.TranspileError{
		Code:    diag.TrEmptyBlock,
		Node:    ex,
		Message: fmt.Sprintf("'%s' has no 2D profile to extrude", ex.Kind),
	}
}
