package token

import (
	"scadc/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwCube, KwSphere, KwCylinder, KwCircle, KwSquare, KwPolygon,
		KwTranslate, KwRotate, KwScale, KwMirror, KwColor, KwHull, KwMinkowski,
		KwUnion, KwDifference, KwIntersection,
		KwLinearExtrude, KwRotateExtrude,
		KwTrue, KwFalse,
		KwFor, KwIf, KwElse, KwModule, KwFunction:
		return true
	default:
		return false
	}
}

// IsPrimitive reports whether the token names a primitive shape.
func (t Token) IsPrimitive() bool {
	switch t.Kind {
	case KwCube, KwSphere, KwCylinder, KwCircle, KwSquare, KwPolygon:
		return true
	default:
		return false
	}
}

// IsTransform reports whether the token names a transform construct.
func (t Token) IsTransform() bool {
	switch t.Kind {
	case KwTranslate, KwRotate, KwScale, KwMirror, KwColor, KwHull, KwMinkowski:
		return true
	default:
		return false
	}
}

// IsBoolean reports whether the token names a boolean operation.
func (t Token) IsBoolean() bool {
	switch t.Kind {
	case KwUnion, KwDifference, KwIntersection:
		return true
	default:
		return false
	}
}

// IsExtrude reports whether the token names an extrusion construct.
func (t Token) IsExtrude() bool {
	return t.Kind == KwLinearExtrude || t.Kind == KwRotateExtrude
}

// IsUnsupportedConstruct reports whether the token starts a construct the
// accepted subset deliberately rejects.
func (t Token) IsUnsupportedConstruct() bool {
	switch t.Kind {
	case KwFor, KwIf, KwElse, KwModule, KwFunction:
		return true
	default:
		return false
	}
}
