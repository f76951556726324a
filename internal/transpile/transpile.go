// Package transpile lowers a parsed program into an executable JavaScript
// function body targeting an injected CSG runtime handle (csg) and an
// injected parameter-override table (params). Lowering is a single pass:
// symbol tracking, segment-count clamping, and release insertion happen as
// the tree is walked, and either a complete validated result or exactly
// one structured error comes back.
package transpile

import (
	"fmt"
	"strings"

	"scadc/internal/ast"
	"scadc/internal/diag"
	"scadc/internal/parser"
	"scadc/internal/source"
)

// Options tune one compile call.
type Options struct {
	// DefaultSegments is the ambient $fn before any assignment.
	// Zero means 32. The effective value is always clamped to [16, 128]
	// at the point of use.
	DefaultSegments float64
}

// Result is the emitted program plus the non-fatal diagnostics gathered
// while lowering it.
type Result struct {
	// Body is the statement sequence forming the function body, one
	// statement per line, ending in the terminal return.
	Body string

	// Bag holds warnings (redeclarations, ignored arguments). It never
	// contains errors: a fatal problem aborts the compile instead.
	Bag *diag.Bag

	// Constructions and Releases count the emitted runtime-object
	// constructions and explicit releases. The returned solid is never
	// released, so Releases < Constructions always holds.
	Constructions int
	Releases      int
}

// Function wraps the body into the function literal the execution sandbox
// evaluates.
func (r *Result) Function() string {
	var sb strings.Builder
	sb.WriteString("function (csg, params) {\n")
	for _, line := range strings.Split(r.Body, "\n") {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString("}")
	return sb.String()
}

// Transpile lowers a program. The error, if any, is a *diag.TranspileError;
// on error no partial output is returned.
func Transpile(prog *ast.Program, opts Options) (*Result, error) {
	c := newContext(opts)

	// Multiple top-level solids combine through an implicit union, folded
	// as they appear so each operand releases right after its fold.
	acc := ""
	for _, stmt := range prog.Statements {
		tmp, err := c.lowerStatement(stmt)
		if err != nil {
			return nil, err
		}
		if tmp == "" {
			continue
		}
		if acc == "" {
			acc = tmp
			continue
		}
		next := c.bindTemp(fmt.Sprintf("csg.union(%s, %s)", acc, tmp))
		c.release(acc)
		c.release(tmp)
		acc = next
	}
	if acc == "" {
		return nil, &diag.TranspileError{
			Code:    diag.TrEmptyProgram,
			Node:    prog,
			Message: "program produces no solid",
		}
	}
	c.emitf("return %s;", acc)

	result := &Result{
		Body:          strings.Join(c.stmts, "\n"),
		Bag:           c.bag,
		Constructions: c.constructions,
		Releases:      c.releases,
	}
	if err := validateFunction(result.Function()); err != nil {
		return nil, &diag.TranspileError{
			Code:    diag.TrInternal,
			Node:    prog,
			Message: fmt.Sprintf("generated output failed to validate: %v", err),
		}
	}
	return result, nil
}

// Source parses and lowers raw source in one call.
func Source(file *source.File, opts Options) (*Result, error) {
	prog, err := parser.Parse(file)
	if err != nil {
		return nil, err
	}
	return Transpile(prog, opts)
}

// lowerStatement lowers one statement. Assignments return an empty name:
// they affect the context but produce no solid.
func (c *Context) lowerStatement(n ast.Node) (string, error) {
	switch n := n.(type) {
	case *ast.VarAssign:
		return "", c.declare(n)
	case *ast.SpecialVarAssign:
		c.assignSpecial(n)
		return "", nil
	case *ast.PrimitiveCall:
		return c.lowerPrimitive(n)
	case *ast.Transform:
		return c.lowerTransform(n)
	case *ast.BooleanOp:
		return c.lowerBoolean(n)
	case *ast.Extrude:
		return c.lowerExtrude(n)
	default:
		return "", &diag.TranspileError{
			Code:    diag.TrInternal,
			Node:    n,
			Message: fmt.Sprintf("unhandled statement %T", n),
		}
	}
}

// assignSpecial applies a special-variable assignment. Only $fn has
// lowering effect, globally from this point forward; others are recognized
// and ignored. The parser guarantees the $fn value is a literal number.
func (c *Context) assignSpecial(n *ast.SpecialVarAssign) {
	if n.Name != "$fn" {
		return
	}
	if num, ok := n.Value.(*ast.Number); ok {
		c.fn = num.Value
	}
}
