// Package diag defines the diagnostic model for the compiler.
//
// A compile call fails fast: the first error aborts the call and is returned
// as exactly one structured value, either *SyntaxError (lex/parse time, with
// position and a human-readable expectation list) or *TranspileError
// (lowering time, with the offending AST node). Both expose RetryPrompt for
// automated repair loops.
//
// Non-fatal diagnostics (redeclaration warnings and the like) accumulate in
// a Bag and never abort compilation.
package diag
