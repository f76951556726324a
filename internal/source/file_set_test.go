package source

import (
	"testing"
)

func TestResolveMultiline(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.scad", []byte("cube(1);\nsphere(2);\n"))

	// "sphere" starts at offset 9, line 2 column 1
	start, _ := fs.Resolve(Span{File: id, Start: 9, End: 15})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("expected 2:1, got %d:%d", start.Line, start.Col)
	}

	// offset 14 is the 'e' of sphere, column 6
	pos := fs.Get(id).Position(14)
	if pos.Line != 2 || pos.Col != 6 {
		t.Fatalf("expected 2:6, got %d:%d", pos.Line, pos.Col)
	}
}

func TestResolveNewlineBelongsToItsLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.scad", []byte("ab\ncd"))
	f := fs.Get(id)

	if pos := f.Position(2); pos.Line != 1 || pos.Col != 3 {
		t.Fatalf("newline: expected 1:3, got %d:%d", pos.Line, pos.Col)
	}
	if pos := f.Position(3); pos.Line != 2 || pos.Col != 1 {
		t.Fatalf("after newline: expected 2:1, got %d:%d", pos.Line, pos.Col)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed {
		t.Fatal("expected change")
	}
	if string(out) != "a\nb\rc" {
		t.Fatalf("got %q", string(out))
	}
}

func TestAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.scad", []byte{0xEF, 0xBB, 0xBF, 'x', '\r', '\n'})
	f := fs.Get(id)
	if string(f.Content) != "x\n" {
		t.Fatalf("got %q", string(f.Content))
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.scad", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.line); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()
	id1 := fs.Add("t.scad", []byte("v1"), 0)
	id2 := fs.Add("t.scad", []byte("v2"), 0)
	if id1 == id2 {
		t.Fatal("expected distinct IDs")
	}
	latest, ok := fs.GetLatest("t.scad")
	if !ok || latest != id2 {
		t.Fatalf("expected latest %d, got %d (ok=%v)", id2, latest, ok)
	}
}
