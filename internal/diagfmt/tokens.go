// Package diagfmt renders tokens, syntax trees, and diagnostics for the
// CLI: pretty output for humans, JSON for tools.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"scadc/internal/source"
	"scadc/internal/token"
)

type TokenOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// FormatTokensPretty writes one token per line with its resolved position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		pos, _ := fs.Resolve(tok.Span)
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: pos.Line,
			Col:  pos.Col,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
