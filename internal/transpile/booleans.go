package transpile

import (
	"fmt"

	"scadc/internal/ast"
	"scadc/internal/diag"
)

// runtime boolean vocabulary; union doubles as the implicit combiner for
// multi-child transforms and multi-solid programs.
func booleanOp(kind ast.BooleanKind) string {
	switch kind {
	case ast.BoolDifference:
		return "difference"
	case ast.BoolIntersection:
		return "intersect"
	default:
		return "union"
	}
}

func (c *Context) lowerBoolean(op *ast.BooleanOp) (string, error) {
	return c.foldChildren(booleanOp(op.Kind), op.Children, op)
}

// foldChildren lowers a child list and folds the resulting solids
// left-to-right through the strictly binary runtime operation: the first
// child is the base, every subsequent child is applied to the running
// result one at a time. Each child is lowered immediately before its fold
// step so both consumed temporaries release right after the combining call.
// Assignments among the children take effect but produce no solid; a list
// producing no solid at all is an error.
func (c *Context) foldChildren(op string, children []ast.Node, owner ast.Node) (string, error) {
	acc := ""
	for _, child := range children {
		tmp, err := c.lowerStatement(child)
		if err != nil {
			return "", err
		}
		if tmp == "" {
			continue
		}
		if acc == "" {
			acc = tmp
			continue
		}
		next := c.bindTemp(fmt.Sprintf("csg.%s(%s, %s)", op, acc, tmp))
		c.release(acc)
		c.release(tmp)
		acc = next
	}
	if acc == "" {
		return "", &diag.TranspileError{
			Code:    diag.TrEmptyBlock,
			Node:    owner,
			Message: "child block produces no solid",
		}
	}
	return acc, nil
}
