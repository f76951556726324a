package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"scadc/internal/diag"
	"scadc/internal/driver"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCompileSource(t *testing.T) {
	res, err := driver.CompileSource("inline.scad", []byte("cube(10);"), driver.Options{})
	if err != nil {
		t.Fatalf("CompileSource failed: %v", err)
	}
	if !strings.Contains(res.Result.Body, "csg.box") {
		t.Errorf("body missing box call:\n%s", res.Result.Body)
	}
	if res.Cached {
		t.Error("uncached compile reported as cached")
	}
}

func TestCompileReturnsSyntaxError(t *testing.T) {
	_, err := driver.CompileSource("bad.scad", []byte("cube(10)"), driver.Options{})
	if _, ok := err.(*diag.SyntaxError); !ok {
		t.Fatalf("err = %T (%v), want *diag.SyntaxError", err, err)
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.scad", "cube(1);")
	writeFile(t, dir, "a.scad", "cube(1);")
	writeFile(t, dir, "sub/c.scad", "cube(1);")
	writeFile(t, dir, "notes.txt", "not source")

	files, err := driver.ListFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.scad", "b.scad", filepath.Join("sub", "c.scad")}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

// sliceSink collects events for assertions.
type sliceSink struct {
	mu     sync.Mutex
	events []driver.Event
}

func (s *sliceSink) Send(ev driver.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func TestCompileDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.scad", "cube(10);")
	writeFile(t, dir, "broken.scad", "cube(10")
	writeFile(t, dir, "sub/deep.scad", "sphere(r = 2);")

	sink := &sliceSink{}
	fileSet, results, err := driver.CompileDir(context.Background(), dir, driver.DirOptions{
		Progress: sink,
	})
	if err != nil {
		t.Fatalf("CompileDir failed: %v", err)
	}
	if fileSet == nil {
		t.Fatal("expected a FileSet for a non-empty directory")
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	// Sorted order: broken.scad, good.scad, sub/deep.scad.
	if results[0].Err == nil {
		t.Error("broken.scad compiled without error")
	} else if _, ok := results[0].Err.(*diag.SyntaxError); !ok {
		t.Errorf("broken.scad err = %T, want *diag.SyntaxError", results[0].Err)
	}
	if results[1].Err != nil {
		t.Errorf("good.scad failed: %v", results[1].Err)
	}
	if results[2].Err != nil {
		t.Errorf("sub/deep.scad failed: %v", results[2].Err)
	}

	var errorEvents, doneEvents int
	for _, ev := range sink.events {
		switch ev.Status {
		case driver.StatusError:
			errorEvents++
		case driver.StatusDone:
			doneEvents++
		}
	}
	if errorEvents != 1 || doneEvents != 2 {
		t.Errorf("events: %d errors, %d done, want 1 and 2", errorEvents, doneEvents)
	}
}

func TestCompileDirEmpty(t *testing.T) {
	_, results, err := driver.CompileDir(context.Background(), t.TempDir(), driver.DirOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil for an empty directory", results)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.Options{Cache: cache}
	input := []byte("a = 1;\na = 2;\ncube(a);")

	first, err := driver.CompileSource("cached.scad", input, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first compile must miss the cache")
	}

	second, err := driver.CompileSource("cached.scad", input, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatal("second compile must hit the cache")
	}
	if second.Result.Body != first.Result.Body {
		t.Error("cached body differs from the original")
	}
	if second.Result.Releases != first.Result.Releases ||
		second.Result.Constructions != first.Result.Constructions {
		t.Error("cached counters differ from the original")
	}

	// The redeclaration warning must survive the round trip.
	if second.Result.Bag.Len() != 1 {
		t.Fatalf("cached warnings = %d, want 1", second.Result.Bag.Len())
	}
	got := second.Result.Bag.Items()[0]
	if got.Code != diag.TrRedeclaredName || got.Severity != diag.SevWarning {
		t.Errorf("cached warning = %#v, want redeclaration warning", got)
	}
}

func TestDiskCacheKeyedByOptions(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	input := []byte("sphere(1);")

	if _, err := driver.CompileSource("s.scad", input, driver.Options{Cache: cache}); err != nil {
		t.Fatal(err)
	}
	res, err := driver.CompileSource("s.scad", input, driver.Options{Cache: cache, DefaultSegments: 48})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached {
		t.Fatal("different options must not share a cache entry")
	}
	if !strings.Contains(res.Result.Body, "csg.sphere(1, 48)") {
		t.Errorf("body = %q, want 48 segments", res.Result.Body)
	}
}
