package diagfmt_test

import (
	"strings"
	"testing"

	"scadc/internal/diag"
	"scadc/internal/diagfmt"
	"scadc/internal/lexer"
	"scadc/internal/parser"
	"scadc/internal/source"
)

func makeFile(t *testing.T, input string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.scad", []byte(input))
	return fs, fs.Get(id)
}

func TestFormatTokensPretty(t *testing.T) {
	fs, file := makeFile(t, "cube(10);")
	tokens, err := lexer.Tokenize(file)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := diagfmt.FormatTokensPretty(&sb, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{"KwCube", "at 1:1-1:5", "Number", `"10"`, "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs, file := makeFile(t, "sphere(r = 2);")
	tokens, err := lexer.Tokenize(file)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := diagfmt.FormatTokensJSON(&sb, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, `"kind": "KwSphere"`) || !strings.Contains(out, `"line": 1`) {
		t.Errorf("json output malformed:\n%s", out)
	}
}

func TestFormatASTPretty(t *testing.T) {
	_, file := makeFile(t, "translate([1, 0, 0]) cube(10, center = true);")
	prog, err := parser.Parse(file)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := diagfmt.FormatASTPretty(&sb, prog); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{"Program", "translate (v=[1, 0, 0])", "cube (size=10, center=true)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "  translate") || !strings.Contains(out, "    cube") {
		t.Errorf("tree indentation wrong:\n%s", out)
	}
}

func TestFormatASTJSON(t *testing.T) {
	_, file := makeFile(t, "w = 2;\ncube(w);")
	prog, err := parser.Parse(file)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := diagfmt.FormatASTJSON(&sb, prog); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{`"node": "assign"`, `"ref": "w"`, `"kind": "cube"`} {
		if !strings.Contains(out, want) {
			t.Errorf("json output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyCompileErrorSyntax(t *testing.T) {
	_, file := makeFile(t, "cube(10)\nsphere(1);")
	_, err := parser.Parse(file)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	var sb strings.Builder
	diagfmt.PrettyCompileError(&sb, err, file, diagfmt.PrettyOpts{})
	out := sb.String()
	if !strings.Contains(out, "test.scad:2:1: ERROR SYN2001") {
		t.Errorf("header wrong:\n%s", out)
	}
	if !strings.Contains(out, "sphere(1);") || !strings.Contains(out, "^") {
		t.Errorf("preview or caret missing:\n%s", out)
	}
}

func TestPrettyWarnings(t *testing.T) {
	fs, file := makeFile(t, "a = 1;\na = 2;\ncube(a);")
	bag := diag.NewBag(4)
	bag.Add(diag.NewWarning(diag.TrRedeclaredName,
		source.Span{File: file.ID, Start: 7, End: 8}, "variable 'a' is declared again"))
	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()
	if !strings.Contains(out, "test.scad:2:1: WARNING TRN3003") {
		t.Errorf("header wrong:\n%s", out)
	}
	if !strings.Contains(out, "a = 2;") {
		t.Errorf("preview missing:\n%s", out)
	}
}
