// Package driver ties the compiler stages together behind file-level entry
// points: tokenize, parse, and compile for single files, plus a concurrent
// directory compile with progress events and a disk cache.
package driver

import (
	"scadc/internal/source"
	"scadc/internal/transpile"
)

// Options tune a compile call.
type Options struct {
	// DefaultSegments is the ambient $fn before any assignment;
	// zero means the built-in default.
	DefaultSegments float64

	// Cache, when non-nil, short-circuits compiles whose source and
	// options were seen before.
	Cache *DiskCache
}

type CompileResult struct {
	FileSet *source.FileSet
	File    *source.File
	Result  *transpile.Result

	// Cached reports that the result was served from the disk cache.
	Cached bool
}

// Compile loads and compiles one file to its JavaScript function body.
// On a compile error the returned result still carries the loaded file
// so callers can render the error against its source.
func Compile(path string, opts Options) (*CompileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return compileFile(fs, fs.Get(fileID), opts)
}

// CompileSource compiles in-memory source under a display name.
func CompileSource(name string, src []byte, opts Options) (*CompileResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return compileFile(fs, fs.Get(fileID), opts)
}

func compileFile(fs *source.FileSet, file *source.File, opts Options) (*CompileResult, error) {
	result := &CompileResult{FileSet: fs, File: file}
	if res, ok := opts.Cache.lookup(file, opts); ok {
		result.Result = res
		result.Cached = true
		return result, nil
	}

	res, err := transpile.Source(file, transpile.Options{
		DefaultSegments: opts.DefaultSegments,
	})
	if err != nil {
		return result, err
	}
	opts.Cache.store(file, opts, res)
	result.Result = res
	return result, nil
}
