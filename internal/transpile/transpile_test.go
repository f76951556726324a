package transpile_test

import (
	"strings"
	"testing"

	"scadc/internal/diag"
	"scadc/internal/source"
	"scadc/internal/transpile"
)

func compile(t *testing.T, input string) *transpile.Result {
	t.Helper()
	res, err := compileOpts(t, input, transpile.Options{})
	if err != nil {
		t.Fatalf("compile(%q) failed: %v", input, err)
	}
	return res
}

func compileOpts(t *testing.T, input string, opts transpile.Options) (*transpile.Result, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.scad", []byte(input))
	return transpile.Source(fs.Get(id), opts)
}

func lowerErr(t *testing.T, input string) *diag.TranspileError {
	t.Helper()
	_, err := compileOpts(t, input, transpile.Options{})
	if err == nil {
		t.Fatalf("compile(%q) succeeded, expected error", input)
	}
	trErr, ok := err.(*diag.TranspileError)
	if !ok {
		t.Fatalf("compile(%q) returned %T, expected *diag.TranspileError", input, err)
	}
	return trErr
}

func TestCubeLowering(t *testing.T) {
	res := compile(t, "cube(10);")
	if !strings.Contains(res.Body, "csg.box([10, 10, 10], false)") {
		t.Errorf("body missing non-centered symmetric box:\n%s", res.Body)
	}
	if strings.Contains(res.Body, "csg.release") {
		t.Errorf("single-solid program must not release anything:\n%s", res.Body)
	}
	if !strings.HasSuffix(res.Body, "return tmp0;") {
		t.Errorf("body must end with the terminal return:\n%s", res.Body)
	}
}

func TestSphereDiameterAndDefaultSegments(t *testing.T) {
	res := compile(t, "sphere(d = 10);")
	if !strings.Contains(res.Body, "csg.sphere(5, 32)") {
		t.Errorf("body = %q, want sphere of radius 5 at 32 segments", res.Body)
	}
}

func TestTransformOrder(t *testing.T) {
	res := compile(t, "translate([1, 2, 3]) rotate([0, 0, 45]) cube(10);")
	rotateAt := strings.Index(res.Body, "csg.rotate")
	translateAt := strings.Index(res.Body, "csg.translate")
	if rotateAt < 0 || translateAt < 0 {
		t.Fatalf("body missing transform calls:\n%s", res.Body)
	}
	if rotateAt > translateAt {
		t.Errorf("inner rotate must be emitted before outer translate:\n%s", res.Body)
	}
}

func TestParameterLookup(t *testing.T) {
	res := compile(t, "width = 50;\ncube(width);")
	if !strings.Contains(res.Body, `"width" in params ? params["width"] : 50`) {
		t.Errorf("body missing parameter lookup with literal fallback:\n%s", res.Body)
	}
}

func TestDifferenceFoldsLeft(t *testing.T) {
	res := compile(t, "difference() { cube(20); sphere(10); cylinder(h = 30, r = 5); }")
	if !strings.Contains(res.Body, "csg.difference(tmp0, tmp1)") {
		t.Errorf("first subtraction missing:\n%s", res.Body)
	}
	if !strings.Contains(res.Body, "csg.difference(tmp2, tmp3)") {
		t.Errorf("second subtraction must apply to the running result:\n%s", res.Body)
	}
	if res.Constructions != 5 || res.Releases != 4 {
		t.Errorf("constructions = %d, releases = %d, want 5 and 4",
			res.Constructions, res.Releases)
	}
}

func TestReservedNameRejected(t *testing.T) {
	for _, name := range []string{"csg", "params", "result"} {
		err := lowerErr(t, name+" = 50;\ncube(10);")
		if err.Code != diag.TrReservedName {
			t.Errorf("name %q: code = %v, want TrReservedName", name, err.Code)
		}
	}
}

func TestSegmentClamping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"$fn = 4;\nsphere(1);", "csg.sphere(1, 16)"},
		{"$fn = 1000;\nsphere(1);", "csg.sphere(1, 128)"},
		{"$fn = 64;\nsphere(1);", "csg.sphere(1, 64)"},
		{"sphere(1, $fn = 200);", "csg.sphere(1, 128)"},
	}
	for _, tt := range tests {
		res := compile(t, tt.input)
		if !strings.Contains(res.Body, tt.want) {
			t.Errorf("input %q: body = %q, want %q", tt.input, res.Body, tt.want)
		}
	}
}

func TestPerCallSegmentsDoNotLeak(t *testing.T) {
	res := compile(t, "$fn = 64;\nsphere(1, $fn = 24);\nsphere(2);")
	if !strings.Contains(res.Body, "csg.sphere(1, 24)") {
		t.Errorf("per-call override missing:\n%s", res.Body)
	}
	if !strings.Contains(res.Body, "csg.sphere(2, 64)") {
		t.Errorf("ambient value must survive a per-call override:\n%s", res.Body)
	}
}

func TestSegmentReferenceClampsAtRuntime(t *testing.T) {
	res := compile(t, "segs = 99;\nsphere(1, $fn = segs);")
	if !strings.Contains(res.Body, "Math.max(16, Math.min(128,") {
		t.Errorf("reference-valued $fn must clamp at execution time:\n%s", res.Body)
	}
}

func TestUnknownVariable(t *testing.T) {
	err := lowerErr(t, "cube(width);")
	if err.Code != diag.TrUnknownVariable {
		t.Errorf("code = %v, want TrUnknownVariable", err.Code)
	}
}

func TestRedeclarationWarns(t *testing.T) {
	res := compile(t, "a = 1;\na = 2;\ncube(a);")
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.TrRedeclaredName {
		t.Fatalf("diagnostics = %#v, want one redeclaration warning", items)
	}
	if items[0].Severity != diag.SevWarning {
		t.Errorf("severity = %v, want warning", items[0].Severity)
	}
	if !strings.Contains(res.Body, ": 2)") {
		t.Errorf("latest default must win:\n%s", res.Body)
	}
}

func TestHullRejected(t *testing.T) {
	err := lowerErr(t, "hull() { cube(1); sphere(1); }")
	if err.Code != diag.TrUnsupported {
		t.Errorf("code = %v, want TrUnsupported", err.Code)
	}
}

func TestFlatShapeOutsideExtrusion(t *testing.T) {
	err := lowerErr(t, "circle(5);")
	if err.Code != diag.TrUnsupported {
		t.Errorf("code = %v, want TrUnsupported", err.Code)
	}
}

func TestEmptyBlock(t *testing.T) {
	err := lowerErr(t, "union() { }")
	if err.Code != diag.TrEmptyBlock {
		t.Errorf("code = %v, want TrEmptyBlock", err.Code)
	}
}

func TestEmptyProgram(t *testing.T) {
	err := lowerErr(t, "a = 1;")
	if err.Code != diag.TrEmptyProgram {
		t.Errorf("code = %v, want TrEmptyProgram", err.Code)
	}
}

func TestColorPassesThrough(t *testing.T) {
	res := compile(t, `color("red", 0.5) cube(1);`)
	if strings.Contains(res.Body, "csg.color") {
		t.Errorf("color must not reach the runtime:\n%s", res.Body)
	}
	if res.Constructions != 1 || res.Releases != 0 {
		t.Errorf("constructions = %d, releases = %d, want 1 and 0",
			res.Constructions, res.Releases)
	}
}

func TestMultiChildTransformUnionsFirst(t *testing.T) {
	res := compile(t, "translate([1, 0, 0]) { cube(1); sphere(1); }")
	unionAt := strings.Index(res.Body, "csg.union")
	translateAt := strings.Index(res.Body, "csg.translate")
	if unionAt < 0 || translateAt < 0 || unionAt > translateAt {
		t.Errorf("children must combine before the transform applies:\n%s", res.Body)
	}
}

func TestImplicitTopLevelUnion(t *testing.T) {
	res := compile(t, "cube(1);\nsphere(2);")
	if !strings.Contains(res.Body, "csg.union(tmp0, tmp1)") {
		t.Errorf("top-level solids must union implicitly:\n%s", res.Body)
	}
	if !strings.HasSuffix(res.Body, "return tmp2;") {
		t.Errorf("combined solid must be returned:\n%s", res.Body)
	}
}

func TestLinearExtrudeLiteralCircle(t *testing.T) {
	res := compile(t, "linear_extrude(height = 5, twist = 90) circle(r = 1, $fn = 16);")
	if !strings.Contains(res.Body, "csg.extrude([[1, 0],") {
		t.Errorf("profile must start at [1, 0]:\n%s", res.Body)
	}
	if got := strings.Count(res.Body, "["); got < 16 {
		t.Errorf("profile has too few points:\n%s", res.Body)
	}
	if !strings.Contains(res.Body, ", 5, 90, 1, 32)") {
		t.Errorf("height/twist/scale/segments missing:\n%s", res.Body)
	}
}

func TestLinearExtrudeCenteredSquare(t *testing.T) {
	res := compile(t, "linear_extrude(height = 2) square([2, 3], center = true);")
	if !strings.Contains(res.Body, "[[-1, -1.5], [1, -1.5], [1, 1.5], [-1, 1.5]]") {
		t.Errorf("centered square profile wrong:\n%s", res.Body)
	}
}

func TestRotateExtrudeDefaultsToFullRevolution(t *testing.T) {
	res := compile(t, "rotate_extrude() circle(r = 1);")
	if !strings.Contains(res.Body, "csg.revolve(") {
		t.Errorf("revolve call missing:\n%s", res.Body)
	}
	if !strings.Contains(res.Body, ", 360, 32)") {
		t.Errorf("default angle and segments missing:\n%s", res.Body)
	}
}

func TestExtrudeOnlyFirstProfile(t *testing.T) {
	res := compile(t, "linear_extrude(height = 1) { square(1); square(2); }")
	if got := strings.Count(res.Body, "csg.extrude"); got != 1 {
		t.Errorf("got %d extrude calls, want 1:\n%s", got, res.Body)
	}
	if strings.Contains(res.Body, "[0, 2]") {
		t.Errorf("second profile must be ignored:\n%s", res.Body)
	}
}

func TestExtrudeRejectsSolidChild(t *testing.T) {
	err := lowerErr(t, "linear_extrude(height = 1) cube(1);")
	if err.Code != diag.TrUnsupported {
		t.Errorf("code = %v, want TrUnsupported", err.Code)
	}
}

func TestPolygonPathsWarn(t *testing.T) {
	res := compile(t, "linear_extrude(height = 1) polygon(points = [[0, 0], [1, 0], [0, 1]], paths = [[0, 1, 2]]);")
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Severity != diag.SevWarning {
		t.Fatalf("want exactly one warning, got %#v", res.Bag.Items())
	}
}

func TestVariableProfileComputedAtRuntime(t *testing.T) {
	res := compile(t, "r = 3;\nlinear_extrude(height = 1) circle(r);")
	if !strings.Contains(res.Body, "Math.cos(a)") {
		t.Errorf("parameter-dependent circle must compute points at runtime:\n%s", res.Body)
	}
}

func TestConfigurableDefaultSegments(t *testing.T) {
	res, err := compileOpts(t, "sphere(1);", transpile.Options{DefaultSegments: 48})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if !strings.Contains(res.Body, "csg.sphere(1, 48)") {
		t.Errorf("configured default ignored:\n%s", res.Body)
	}
}

func TestFunctionShape(t *testing.T) {
	res := compile(t, "cube(1);")
	fn := res.Function()
	if !strings.HasPrefix(fn, "function (csg, params) {\n") || !strings.HasSuffix(fn, "}") {
		t.Errorf("function literal malformed:\n%s", fn)
	}
}

func TestReleasesStrictlyBelowConstructions(t *testing.T) {
	programs := []string{
		"cube(1);",
		"cube(1);\nsphere(2);\ncylinder(h = 1, r = 1);",
		"difference() { cube(20); sphere(10); }",
		"translate([1, 0, 0]) { rotate(45) cube(1); sphere(1); }",
		"union() { intersection() { cube(2); sphere(2); } cylinder(h = 3, r = 1); }",
		"linear_extrude(height = 2, twist = 180) square(1);",
	}
	for _, input := range programs {
		res := compile(t, input)
		if res.Releases >= res.Constructions {
			t.Errorf("input %q: releases = %d, constructions = %d; returned value must never be released",
				input, res.Releases, res.Constructions)
		}
	}
}
