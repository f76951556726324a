package transpile

import (
	"fmt"

	"scadc/internal/ast"
	"scadc/internal/diag"
)

// lowerTransform lowers the children first (combining several through a
// union), then wraps the combined operand. The operand temporary is
// consumed by the wrapping call and released right after it.
func (c *Context) lowerTransform(tr *ast.Transform) (string, error) {
	switch tr.Kind {
	case ast.TransformHull, ast.TransformMinkowski:
		return "", &diag.TranspileError{
			Code: diag.TrUnsupported,
			Node: tr,
			Message: fmt.Sprintf(
				"'%s' is not supported by the target runtime", tr.Kind),
		}
	}

	operand, err := c.foldChildren("union", tr.Children, tr)
	if err != nil {
		return "", err
	}

	// color carries no geometry: the operand passes through untouched, so
	// no new temporary is bound and nothing is released.
	if tr.Kind == ast.TransformColor {
		return operand, nil
	}

	var vector string
	switch args := tr.Args.(type) {
	case *ast.TranslateArgs:
		vector, err = c.vectorExpr(args.Vector, 3, tr)
	case *ast.RotateArgs:
		vector, err = c.rotationExpr(args.Angles, tr)
	case *ast.ScaleArgs:
		vector, err = c.vectorExpr(args.Factor, 3, tr)
	case *ast.MirrorArgs:
		vector, err = c.vectorExpr(args.Normal, 3, tr)
	default:
		err = &diag.TranspileError{
			Code:    diag.TrInternal,
			Node:    tr,
			Message: fmt.Sprintf("unhandled transform arguments %T", tr.Args),
		}
	}
	if err != nil {
		return "", err
	}

	result := c.bindTemp(fmt.Sprintf("csg.%s(%s, %s)", tr.Kind, operand, vector))
	c.release(operand)
	return result, nil
}
