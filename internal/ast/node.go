package ast

import (
	"scadc/internal/source"
)

// Node is the closed set of AST variants. Every consuming stage switches
// exhaustively over these; there is no open-ended dispatch. Nodes are
// immutable once the parser returns them.
type Node interface {
	Span() source.Span
	node()
}

// Program is the root node: an ordered statement list.
type Program struct {
	Pos        source.Span
	Statements []Node
}

// PrimitiveCall is a call to one of the six primitive shapes, with its
// construct-specific argument record.
type PrimitiveCall struct {
	Pos  source.Span
	Kind PrimitiveKind
	Args PrimitiveArgs
}

// Transform applies translate/rotate/scale/mirror/color (and the parsed but
// unsupported hull/minkowski) to an ordered child list.
type Transform struct {
	Pos      source.Span
	Kind     TransformKind
	Args     TransformArgs
	Children []Node
}

// BooleanOp combines children through union/difference/intersection.
type BooleanOp struct {
	Pos      source.Span
	Kind     BooleanKind
	Children []Node
}

// Extrude lifts 2D children into a solid.
type Extrude struct {
	Pos      source.Span
	Kind     ExtrudeKind
	Args     ExtrudeArgs
	Children []Node
}

// SpecialVarAssign binds a sigil-prefixed name ("$fn") to a literal value.
// Only $fn has lowering effect; other special variables are recognized and
// ignored.
type SpecialVarAssign struct {
	Pos   source.Span
	Name  string // includes the '$' sigil
	Value ArgValue
}

// VarAssign binds a plain name to a literal default value.
type VarAssign struct {
	Pos   source.Span
	Name  string
	Value ArgValue
}

func (n *Program) Span() source.Span          { return n.Pos }
func (n *PrimitiveCall) Span() source.Span    { return n.Pos }
func (n *Transform) Span() source.Span        { return n.Pos }
func (n *BooleanOp) Span() source.Span        { return n.Pos }
func (n *Extrude) Span() source.Span          { return n.Pos }
func (n *SpecialVarAssign) Span() source.Span { return n.Pos }
func (n *VarAssign) Span() source.Span        { return n.Pos }

func (*Program) node()          {}
func (*PrimitiveCall) node()    {}
func (*Transform) node()        {}
func (*BooleanOp) node()        {}
func (*Extrude) node()          {}
func (*SpecialVarAssign) node() {}
func (*VarAssign) node()        {}
