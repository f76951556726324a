package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFunctionKeepsRelativePath(t *testing.T) {
	out := t.TempDir()

	path, err := writeFunction(out, filepath.Join("sub", "part.scad"), "function (csg, params) {\n}")
	if err != nil {
		t.Fatalf("writeFunction failed: %v", err)
	}
	want := filepath.Join(out, "sub", "part.js")
	if path != want {
		t.Errorf("got %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "function (csg, params) {\n}\n" {
		t.Errorf("unexpected output contents: %q", data)
	}
}

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		value   string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"auto", uiModeAuto, false},
		{"ON", uiModeOn, false},
		{" off ", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.value)
		if tc.wantErr {
			if err == nil {
				t.Errorf("readUIMode(%q) expected an error", tc.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("readUIMode(%q) failed: %v", tc.value, err)
			continue
		}
		if got != tc.want {
			t.Errorf("readUIMode(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
