// Package token defines lexical token kinds for the accepted OpenSCAD subset.
// Invariants:
//   - Token.Text is the exact source spelling (keywords, sigiled specials
//     like "$fn", raw literal text).
//   - Token.Span matches Text exactly (Begin..End, byte offsets).
//   - Keywords match complete identifiers only; "cubes" is an Ident.
//   - A token stream always terminates with exactly one EOF sentinel.
package token
