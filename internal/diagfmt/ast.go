package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"scadc/internal/ast"
)

// FormatASTPretty writes an indented tree view of the program.
func FormatASTPretty(w io.Writer, prog *ast.Program) error {
	fmt.Fprintln(w, "Program")
	for _, stmt := range prog.Statements {
		writeNodePretty(w, stmt, 1)
	}
	return nil
}

func writeNodePretty(w io.Writer, n ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := n.(type) {
	case *ast.PrimitiveCall:
		fmt.Fprintf(w, "%s%s %s\n", indent, n.Kind, argsString(n.Args))
	case *ast.Transform:
		fmt.Fprintf(w, "%s%s %s\n", indent, n.Kind, argsString(n.Args))
		for _, child := range n.Children {
			writeNodePretty(w, child, depth+1)
		}
	case *ast.BooleanOp:
		fmt.Fprintf(w, "%s%s\n", indent, n.Kind)
		for _, child := range n.Children {
			writeNodePretty(w, child, depth+1)
		}
	case *ast.Extrude:
		fmt.Fprintf(w, "%s%s %s\n", indent, n.Kind, argsString(n.Args))
		for _, child := range n.Children {
			writeNodePretty(w, child, depth+1)
		}
	case *ast.SpecialVarAssign:
		fmt.Fprintf(w, "%s%s = %s\n", indent, n.Name, ValueString(n.Value))
	case *ast.VarAssign:
		fmt.Fprintf(w, "%s%s = %s\n", indent, n.Name, ValueString(n.Value))
	default:
		fmt.Fprintf(w, "%s%T\n", indent, n)
	}
}

// ValueString renders an argument value in source-like notation.
func ValueString(v ast.ArgValue) string {
	switch v := v.(type) {
	case nil:
		return "_"
	case *ast.Number:
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	case *ast.Bool:
		return strconv.FormatBool(v.Value)
	case *ast.String:
		return strconv.Quote(v.Value)
	case *ast.VarRef:
		return v.Name
	case *ast.Array:
		elems := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = ValueString(e)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func argsString(args any) string {
	pairs := argPairs(args)
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.value == nil {
			continue
		}
		parts = append(parts, p.name+"="+ValueString(p.value))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

type argPair struct {
	name  string
	value ast.ArgValue
}

// argPairs flattens an argument record into named fields, skipping nothing:
// nil values are filtered by the callers that want source-like output and
// kept by the JSON encoder for stable shapes.
func argPairs(args any) []argPair {
	switch args := args.(type) {
	case *ast.CubeArgs:
		return []argPair{{"size", args.Size}, {"center", args.Center}}
	case *ast.SphereArgs:
		return []argPair{{"r", args.Radius}, {"$fn", args.Fn}}
	case *ast.CylinderArgs:
		return []argPair{{"h", args.Height}, {"r1", args.R1}, {"r2", args.R2},
			{"center", args.Center}, {"$fn", args.Fn}}
	case *ast.CircleArgs:
		return []argPair{{"r", args.Radius}, {"$fn", args.Fn}}
	case *ast.SquareArgs:
		return []argPair{{"size", args.Size}, {"center", args.Center}}
	case *ast.PolygonArgs:
		return []argPair{{"points", args.Points}, {"paths", args.Paths}}
	case *ast.TranslateArgs:
		return []argPair{{"v", args.Vector}}
	case *ast.RotateArgs:
		return []argPair{{"a", args.Angles}}
	case *ast.ScaleArgs:
		return []argPair{{"v", args.Factor}}
	case *ast.MirrorArgs:
		return []argPair{{"v", args.Normal}}
	case *ast.ColorArgs:
		return []argPair{{"c", args.Value}, {"alpha", args.Alpha}}
	case *ast.LinearExtrudeArgs:
		return []argPair{{"height", args.Height}, {"twist", args.Twist},
			{"scale", args.Scale}, {"$fn", args.Fn}}
	case *ast.RotateExtrudeArgs:
		return []argPair{{"angle", args.Angle}, {"$fn", args.Fn}}
	default:
		return nil
	}
}

// FormatASTJSON writes the program as a JSON tree.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	stmts := make([]map[string]any, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		stmts = append(stmts, nodeJSON(stmt))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{
		"node":       "program",
		"statements": stmts,
	})
}

func nodeJSON(n ast.Node) map[string]any {
	switch n := n.(type) {
	case *ast.PrimitiveCall:
		return map[string]any{
			"node": "primitive",
			"kind": n.Kind.String(),
			"args": argsJSON(n.Args),
		}
	case *ast.Transform:
		return map[string]any{
			"node":     "transform",
			"kind":     n.Kind.String(),
			"args":     argsJSON(n.Args),
			"children": childrenJSON(n.Children),
		}
	case *ast.BooleanOp:
		return map[string]any{
			"node":     "boolean",
			"kind":     n.Kind.String(),
			"children": childrenJSON(n.Children),
		}
	case *ast.Extrude:
		return map[string]any{
			"node":     "extrude",
			"kind":     n.Kind.String(),
			"args":     argsJSON(n.Args),
			"children": childrenJSON(n.Children),
		}
	case *ast.SpecialVarAssign:
		return map[string]any{
			"node":  "special_assign",
			"name":  n.Name,
			"value": valueJSON(n.Value),
		}
	case *ast.VarAssign:
		return map[string]any{
			"node":  "assign",
			"name":  n.Name,
			"value": valueJSON(n.Value),
		}
	default:
		return map[string]any{"node": fmt.Sprintf("%T", n)}
	}
}

func childrenJSON(children []ast.Node) []map[string]any {
	out := make([]map[string]any, 0, len(children))
	for _, child := range children {
		out = append(out, nodeJSON(child))
	}
	return out
}

func argsJSON(args any) map[string]any {
	out := make(map[string]any)
	for _, p := range argPairs(args) {
		if p.value == nil {
			continue
		}
		out[p.name] = valueJSON(p.value)
	}
	return out
}

func valueJSON(v ast.ArgValue) any {
	switch v := v.(type) {
	case nil:
		return nil
	case *ast.Number:
		return v.Value
	case *ast.Bool:
		return v.Value
	case *ast.String:
		return v.Value
	case *ast.VarRef:
		return map[string]any{"ref": v.Name}
	case *ast.Array:
		elems := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = valueJSON(e)
		}
		return elems
	default:
		return fmt.Sprintf("%T", v)
	}
}
