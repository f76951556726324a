package parser_test

import (
	"testing"

	"scadc/internal/ast"
	"scadc/internal/diag"
	"scadc/internal/parser"
	"scadc/internal/source"
)

func makeFile(t *testing.T, input string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.scad", []byte(input))
	return fs.Get(id)
}

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(makeFile(t, input))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return prog
}

func parseErr(t *testing.T, input string) *diag.SyntaxError {
	t.Helper()
	_, err := parser.Parse(makeFile(t, input))
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, expected error", input)
	}
	synErr, ok := err.(*diag.SyntaxError)
	if !ok {
		t.Fatalf("Parse(%q) returned %T, expected *diag.SyntaxError", input, err)
	}
	return synErr
}

func onlyStatement(t *testing.T, prog *ast.Program) ast.Node {
	t.Helper()
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	return prog.Statements[0]
}

func asNumber(t *testing.T, v ast.ArgValue) float64 {
	t.Helper()
	num, ok := v.(*ast.Number)
	if !ok {
		t.Fatalf("value is %T, want *ast.Number", v)
	}
	return num.Value
}

func TestCubeVectorSize(t *testing.T) {
	prog := parse(t, "cube([4, 2, 1]);")
	call, ok := onlyStatement(t, prog).(*ast.PrimitiveCall)
	if !ok || call.Kind != ast.PrimCube {
		t.Fatalf("got %#v, want cube call", prog.Statements[0])
	}
	args := call.Args.(*ast.CubeArgs)
	arr, ok := args.Size.(*ast.Array)
	if !ok || len(arr.Elems) != 3 {
		t.Fatalf("size = %#v, want 3-element array", args.Size)
	}
	if got := asNumber(t, arr.Elems[1]); got != 2 {
		t.Errorf("size[1] = %v, want 2", got)
	}
	if args.Center != nil {
		t.Errorf("center = %#v, want nil", args.Center)
	}
}

func TestCubeNamedCenter(t *testing.T) {
	prog := parse(t, "cube(10, center = true);")
	args := onlyStatement(t, prog).(*ast.PrimitiveCall).Args.(*ast.CubeArgs)
	if asNumber(t, args.Size) != 10 {
		t.Errorf("size = %#v, want 10", args.Size)
	}
	b, ok := args.Center.(*ast.Bool)
	if !ok || !b.Value {
		t.Errorf("center = %#v, want true", args.Center)
	}
}

func TestSphereDiameterHalved(t *testing.T) {
	prog := parse(t, "sphere(d = 10);")
	args := onlyStatement(t, prog).(*ast.PrimitiveCall).Args.(*ast.SphereArgs)
	if got := asNumber(t, args.Radius); got != 5 {
		t.Errorf("radius = %v, want 5 (half the diameter)", got)
	}
}

func TestSpherePerCallSegments(t *testing.T) {
	prog := parse(t, "sphere(r = 2, $fn = 64);")
	args := onlyStatement(t, prog).(*ast.PrimitiveCall).Args.(*ast.SphereArgs)
	if got := asNumber(t, args.Fn); got != 64 {
		t.Errorf("$fn = %v, want 64", got)
	}
}

func TestCylinderSharedRadius(t *testing.T) {
	prog := parse(t, "cylinder(h = 4, r = 1.5);")
	args := onlyStatement(t, prog).(*ast.PrimitiveCall).Args.(*ast.CylinderArgs)
	if asNumber(t, args.R1) != 1.5 || asNumber(t, args.R2) != 1.5 {
		t.Errorf("r1 = %#v, r2 = %#v, want both 1.5", args.R1, args.R2)
	}
}

func TestCylinderPerEndDiameters(t *testing.T) {
	prog := parse(t, "cylinder(h = 4, d1 = 6, d2 = 2);")
	args := onlyStatement(t, prog).(*ast.PrimitiveCall).Args.(*ast.CylinderArgs)
	if asNumber(t, args.R1) != 3 || asNumber(t, args.R2) != 1 {
		t.Errorf("r1 = %#v, r2 = %#v, want 3 and 1", args.R1, args.R2)
	}
}

func TestCylinderConflictingSpellings(t *testing.T) {
	for _, input := range []string{
		"cylinder(h = 4, r = 1, r1 = 2);",
		"cylinder(h = 4, r = 1, d = 2);",
		"cylinder(h = 4, d = 2, d2 = 1);",
		"cylinder(h = 4, r1 = 1, d1 = 2);",
	} {
		if err := parseErr(t, input); err.Code != diag.SynConflictingArgument {
			t.Errorf("input %q: code = %v, want SynConflictingArgument", input, err.Code)
		}
	}
}

func TestDiameterRequiresLiteral(t *testing.T) {
	err := parseErr(t, "sphere(d = width);")
	if err.Code != diag.SynBadArgumentValue {
		t.Errorf("code = %v, want SynBadArgumentValue", err.Code)
	}
}

func TestUnknownArgument(t *testing.T) {
	err := parseErr(t, "cube(sides = 3);")
	if err.Code != diag.SynUnknownArgument {
		t.Errorf("code = %v, want SynUnknownArgument", err.Code)
	}
	if err.Found != "sides" {
		t.Errorf("found = %q, want %q", err.Found, "sides")
	}
}

func TestPositionalAfterNamed(t *testing.T) {
	err := parseErr(t, "cylinder(h = 4, 2);")
	if err.Code != diag.SynPositionalAfterNamed {
		t.Errorf("code = %v, want SynPositionalAfterNamed", err.Code)
	}
}

func TestTooManyPositionals(t *testing.T) {
	err := parseErr(t, "sphere(1, 2);")
	if err.Code != diag.SynTooManyArguments {
		t.Errorf("code = %v, want SynTooManyArguments", err.Code)
	}
}

func TestDuplicateArgument(t *testing.T) {
	err := parseErr(t, "cube(3, size = 4);")
	if err.Code != diag.SynConflictingArgument {
		t.Errorf("code = %v, want SynConflictingArgument", err.Code)
	}
}

func TestPolygonNestedPoints(t *testing.T) {
	prog := parse(t, "polygon(points = [[0, 0], [w, 0], [1, 1]]);")
	args := onlyStatement(t, prog).(*ast.PrimitiveCall).Args.(*ast.PolygonArgs)
	points := args.Points.(*ast.Array)
	if len(points.Elems) != 3 {
		t.Fatalf("got %d points, want 3", len(points.Elems))
	}
	second := points.Elems[1].(*ast.Array)
	if ref, ok := second.Elems[0].(*ast.VarRef); !ok || ref.Name != "w" {
		t.Errorf("points[1][0] = %#v, want VarRef w", second.Elems[0])
	}
}

func TestTransformSingleChild(t *testing.T) {
	prog := parse(t, "translate([1, 0, 0]) cube(2);")
	tr, ok := onlyStatement(t, prog).(*ast.Transform)
	if !ok || tr.Kind != ast.TransformTranslate {
		t.Fatalf("got %#v, want translate", prog.Statements[0])
	}
	if len(tr.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(tr.Children))
	}
	if _, ok := tr.Children[0].(*ast.PrimitiveCall); !ok {
		t.Errorf("child = %#v, want primitive call", tr.Children[0])
	}
}

func TestTransformBracedChildren(t *testing.T) {
	prog := parse(t, "rotate([0, 0, 45]) { cube(1); sphere(r = 1); }")
	tr := onlyStatement(t, prog).(*ast.Transform)
	if len(tr.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(tr.Children))
	}
}

func TestNestedTransforms(t *testing.T) {
	prog := parse(t, "translate([0, 0, 5]) rotate([90, 0, 0]) cylinder(h = 3, r = 1);")
	outer := onlyStatement(t, prog).(*ast.Transform)
	inner, ok := outer.Children[0].(*ast.Transform)
	if !ok || inner.Kind != ast.TransformRotate {
		t.Fatalf("inner = %#v, want rotate", outer.Children[0])
	}
}

func TestTransformRequiresArgument(t *testing.T) {
	err := parseErr(t, "translate() cube(1);")
	if err.Code != diag.SynBadArgumentValue {
		t.Errorf("code = %v, want SynBadArgumentValue", err.Code)
	}
}

func TestColorArgs(t *testing.T) {
	prog := parse(t, `color("red", 0.5) cube(1);`)
	args := onlyStatement(t, prog).(*ast.Transform).Args.(*ast.ColorArgs)
	if s, ok := args.Value.(*ast.String); !ok || s.Value != "red" {
		t.Errorf("color value = %#v, want \"red\"", args.Value)
	}
	if asNumber(t, args.Alpha) != 0.5 {
		t.Errorf("alpha = %#v, want 0.5", args.Alpha)
	}
}

func TestHullTakesNoArguments(t *testing.T) {
	err := parseErr(t, "hull(1) { cube(1); }")
	if err.Code != diag.SynTooManyArguments {
		t.Errorf("code = %v, want SynTooManyArguments", err.Code)
	}
}

func TestBooleanBlock(t *testing.T) {
	prog := parse(t, "difference() { cube(10); sphere(r = 4); }")
	op, ok := onlyStatement(t, prog).(*ast.BooleanOp)
	if !ok || op.Kind != ast.BoolDifference {
		t.Fatalf("got %#v, want difference", prog.Statements[0])
	}
	if len(op.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(op.Children))
	}
}

func TestBooleanRejectsArguments(t *testing.T) {
	err := parseErr(t, "union(true) { cube(1); }")
	if err.Code != diag.SynUnexpectedToken {
		t.Errorf("code = %v, want SynUnexpectedToken", err.Code)
	}
}

func TestLinearExtrude(t *testing.T) {
	prog := parse(t, "linear_extrude(height = 5, twist = 90) circle(r = 2);")
	ex, ok := onlyStatement(t, prog).(*ast.Extrude)
	if !ok || ex.Kind != ast.ExtrudeLinear {
		t.Fatalf("got %#v, want linear_extrude", prog.Statements[0])
	}
	args := ex.Args.(*ast.LinearExtrudeArgs)
	if asNumber(t, args.Height) != 5 || asNumber(t, args.Twist) != 90 {
		t.Errorf("height = %#v, twist = %#v", args.Height, args.Twist)
	}
}

func TestLinearExtrudeRequiresHeight(t *testing.T) {
	err := parseErr(t, "linear_extrude(twist = 90) circle(r = 2);")
	if err.Code != diag.SynBadArgumentValue {
		t.Errorf("code = %v, want SynBadArgumentValue", err.Code)
	}
}

func TestRotateExtrudeDefaults(t *testing.T) {
	prog := parse(t, "rotate_extrude() circle(r = 1);")
	args := onlyStatement(t, prog).(*ast.Extrude).Args.(*ast.RotateExtrudeArgs)
	if args.Angle != nil {
		t.Errorf("angle = %#v, want nil (full revolution)", args.Angle)
	}
}

func TestSpecialVarAssign(t *testing.T) {
	prog := parse(t, "$fn = 48;")
	assign, ok := onlyStatement(t, prog).(*ast.SpecialVarAssign)
	if !ok || assign.Name != "$fn" {
		t.Fatalf("got %#v, want $fn assignment", prog.Statements[0])
	}
	if asNumber(t, assign.Value) != 48 {
		t.Errorf("value = %#v, want 48", assign.Value)
	}
}

func TestSpecialVarRequiresNumber(t *testing.T) {
	err := parseErr(t, "$fn = true;")
	if err.Code != diag.SynBadSpecialValue {
		t.Errorf("code = %v, want SynBadSpecialValue", err.Code)
	}
}

func TestVarAssignLiterals(t *testing.T) {
	prog := parse(t, "size = [10, -2.5, 3];")
	assign := onlyStatement(t, prog).(*ast.VarAssign)
	arr := assign.Value.(*ast.Array)
	if got := asNumber(t, arr.Elems[1]); got != -2.5 {
		t.Errorf("size[1] = %v, want -2.5", got)
	}
}

func TestVarAssignRejectsReferences(t *testing.T) {
	err := parseErr(t, "a = b;")
	if err.Code != diag.SynBadAssignValue {
		t.Errorf("code = %v, want SynBadAssignValue", err.Code)
	}
}

func TestUnsupportedConstruct(t *testing.T) {
	err := parseErr(t, "cube(1);\nfor (i = [0:3]) cube(i);")
	if err.Code != diag.SynUnsupportedConstruct {
		t.Errorf("code = %v, want SynUnsupportedConstruct", err.Code)
	}
	if err.Line != 2 || err.Col != 1 {
		t.Errorf("position = %d:%d, want 2:1", err.Line, err.Col)
	}
	if err.Found != "for" {
		t.Errorf("found = %q, want %q", err.Found, "for")
	}
}

func TestMissingSemicolon(t *testing.T) {
	err := parseErr(t, "cube(1)\nsphere(r = 2);")
	if err.Code != diag.SynUnexpectedToken {
		t.Errorf("code = %v, want SynUnexpectedToken", err.Code)
	}
	if err.Line != 2 || err.Col != 1 {
		t.Errorf("position = %d:%d, want 2:1", err.Line, err.Col)
	}
}

func TestUnclosedBlockReportsEOF(t *testing.T) {
	err := parseErr(t, "union() { cube(1);")
	if err.Found != "end of input" {
		t.Errorf("found = %q, want %q", err.Found, "end of input")
	}
}

func TestFirstErrorAborts(t *testing.T) {
	// Both statements are broken; only the first is reported.
	err := parseErr(t, "cube(;\nsphere(;")
	if err.Line != 1 {
		t.Errorf("line = %d, want 1", err.Line)
	}
}
