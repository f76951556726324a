package ast

import (
	"scadc/internal/source"
)

// ArgValue is the closed union of values an argument or assignment can
// carry: number, boolean, string, variable reference, or array of ArgValue.
// The recursive array case lets a VarRef appear anywhere a literal could,
// including nested inside a polygon's point list.
type ArgValue interface {
	Span() source.Span
	argValue()
}

// Number is a numeric literal. The parser already folded sign and
// diameter→radius normalization into Value.
type Number struct {
	Pos   source.Span
	Value float64
}

// Bool is a true/false literal.
type Bool struct {
	Pos   source.Span
	Value bool
}

// String is a quoted string literal with escapes resolved.
type String struct {
	Pos   source.Span
	Value string
}

// VarRef is a symbolic back-reference to a previously declared variable.
// It is resolved at generated-program execution time against the
// parameter-override table, falling back to the compiled-in default.
type VarRef struct {
	Pos  source.Span
	Name string
}

// Array is an ordered list of ArgValues.
type Array struct {
	Pos   source.Span
	Elems []ArgValue
}

func (v *Number) Span() source.Span { return v.Pos }
func (v *Bool) Span() source.Span   { return v.Pos }
func (v *String) Span() source.Span { return v.Pos }
func (v *VarRef) Span() source.Span { return v.Pos }
func (v *Array) Span() source.Span  { return v.Pos }

func (*Number) argValue() {}
func (*Bool) argValue()   {}
func (*String) argValue() {}
func (*VarRef) argValue() {}
func (*Array) argValue()  {}
