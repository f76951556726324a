package driver

import (
	"scadc/internal/lexer"
	"scadc/internal/source"
	"scadc/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize loads and tokenizes one file. The error is either an I/O failure
// or a *diag.SyntaxError from the lexer; in the latter case the returned
// result still carries the loaded file so callers can render the error
// against its source.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	result := &TokenizeResult{
		FileSet: fs,
		File:    fs.Get(fileID),
	}

	tokens, err := lexer.Tokenize(result.File)
	if err != nil {
		return result, err
	}
	result.Tokens = tokens
	return result, nil
}
