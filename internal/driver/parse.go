package driver

import (
	"scadc/internal/ast"
	"scadc/internal/parser"
	"scadc/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
}

// Parse loads, tokenizes, and parses one file. The error is either an I/O
// failure or a *diag.SyntaxError; on a syntax error the returned result
// still carries the loaded file.
func Parse(path string) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	result := &ParseResult{
		FileSet: fs,
		File:    fs.Get(fileID),
	}

	prog, err := parser.Parse(result.File)
	if err != nil {
		return result, err
	}
	result.Program = prog
	return result, nil
}
