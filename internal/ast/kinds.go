package ast

// PrimitiveKind tags a PrimitiveCall node.
type PrimitiveKind uint8

const (
	PrimCube PrimitiveKind = iota
	PrimSphere
	PrimCylinder
	PrimCircle
	PrimSquare
	PrimPolygon
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimCube:
		return "cube"
	case PrimSphere:
		return "sphere"
	case PrimCylinder:
		return "cylinder"
	case PrimCircle:
		return "circle"
	case PrimSquare:
		return "square"
	case PrimPolygon:
		return "polygon"
	}
	return "unknown"
}

// Is2D reports whether the primitive produces a flat profile rather than a
// solid. 2D primitives only ever lower to point lists consumed by extrusion.
func (k PrimitiveKind) Is2D() bool {
	switch k {
	case PrimCircle, PrimSquare, PrimPolygon:
		return true
	default:
		return false
	}
}

// TransformKind tags a Transform node.
type TransformKind uint8

const (
	TransformTranslate TransformKind = iota
	TransformRotate
	TransformScale
	TransformMirror
	TransformColor
	TransformHull
	TransformMinkowski
)

func (k TransformKind) String() string {
	switch k {
	case TransformTranslate:
		return "translate"
	case TransformRotate:
		return "rotate"
	case TransformScale:
		return "scale"
	case TransformMirror:
		return "mirror"
	case TransformColor:
		return "color"
	case TransformHull:
		return "hull"
	case TransformMinkowski:
		return "minkowski"
	}
	return "unknown"
}

// BooleanKind tags a BooleanOp node.
type BooleanKind uint8

const (
	BoolUnion BooleanKind = iota
	BoolDifference
	BoolIntersection
)

func (k BooleanKind) String() string {
	switch k {
	case BoolUnion:
		return "union"
	case BoolDifference:
		return "difference"
	case BoolIntersection:
		return "intersection"
	}
	return "unknown"
}

// ExtrudeKind tags an Extrude node.
type ExtrudeKind uint8

const (
	ExtrudeLinear ExtrudeKind = iota
	ExtrudeRotate
)

func (k ExtrudeKind) String() string {
	switch k {
	case ExtrudeLinear:
		return "linear_extrude"
	case ExtrudeRotate:
		return "rotate_extrude"
	}
	return "unknown"
}
