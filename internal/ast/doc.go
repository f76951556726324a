// Package ast defines the typed syntax tree for the accepted OpenSCAD
// subset: a closed set of tagged node variants with per-construct argument
// records and a recursive ArgValue union. Nodes carry no behavior; they are
// constructed once per parse call, consumed by one lowering pass, and
// discarded. Control-flow and definition forms never become nodes; the
// parser rejects them before construction.
package ast
