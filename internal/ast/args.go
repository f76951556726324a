package ast

// Argument records are one-to-one with the primitive/transform/extrude
// vocabulary. A nil field means the argument was not supplied; defaults are
// applied at lowering time. Diameter spellings (d, d1, d2) never survive
// parsing: the records below only ever hold radii.

// PrimitiveArgs is the closed set of primitive argument records.
type PrimitiveArgs interface{ primitiveArgs() }

// CubeArgs: cube(size, center). Size may be a scalar (expanded to a
// symmetric vector at lowering) or a 3-vector.
type CubeArgs struct {
	Size   ArgValue
	Center ArgValue
}

// SphereArgs: sphere(r|d, $fn).
type SphereArgs struct {
	Radius ArgValue
	Fn     ArgValue
}

// CylinderArgs: cylinder(h, r|r1/r2|d/d1/d2, center, $fn).
// Plain r (or d) sets both radii.
type CylinderArgs struct {
	Height ArgValue
	R1     ArgValue
	R2     ArgValue
	Center ArgValue
	Fn     ArgValue
}

// CircleArgs: circle(r|d, $fn).
type CircleArgs struct {
	Radius ArgValue
	Fn     ArgValue
}

// SquareArgs: square(size, center).
type SquareArgs struct {
	Size   ArgValue
	Center ArgValue
}

// PolygonArgs: polygon(points, paths).
type PolygonArgs struct {
	Points ArgValue
	Paths  ArgValue
}

func (*CubeArgs) primitiveArgs()     {}
func (*SphereArgs) primitiveArgs()   {}
func (*CylinderArgs) primitiveArgs() {}
func (*CircleArgs) primitiveArgs()   {}
func (*SquareArgs) primitiveArgs()   {}
func (*PolygonArgs) primitiveArgs()  {}

// TransformArgs is the closed set of transform argument records.
type TransformArgs interface{ transformArgs() }

// TranslateArgs: translate(v).
type TranslateArgs struct {
	Vector ArgValue
}

// RotateArgs: rotate(a). A scalar rotates about Z; a vector gives Euler
// angles in degrees.
type RotateArgs struct {
	Angles ArgValue
}

// ScaleArgs: scale(v). Scalar or vector.
type ScaleArgs struct {
	Factor ArgValue
}

// MirrorArgs: mirror(v), the normal of the mirror plane.
type MirrorArgs struct {
	Normal ArgValue
}

// ColorArgs: color(c, alpha). Accepted syntactically; lowering passes the
// operand through untouched.
type ColorArgs struct {
	Value ArgValue
	Alpha ArgValue
}

// EmptyArgs covers constructs that take no arguments (hull, minkowski).
type EmptyArgs struct{}

func (*TranslateArgs) transformArgs() {}
func (*RotateArgs) transformArgs()    {}
func (*ScaleArgs) transformArgs()     {}
func (*MirrorArgs) transformArgs()    {}
func (*ColorArgs) transformArgs()     {}
func (*EmptyArgs) transformArgs()     {}

// ExtrudeArgs is the closed set of extrusion argument records.
type ExtrudeArgs interface{ extrudeArgs() }

// LinearExtrudeArgs: linear_extrude(height, twist, scale, $fn).
type LinearExtrudeArgs struct {
	Height ArgValue
	Twist  ArgValue
	Scale  ArgValue
	Fn     ArgValue
}

// RotateExtrudeArgs: rotate_extrude(angle, $fn).
type RotateExtrudeArgs struct {
	Angle ArgValue
	Fn    ArgValue
}

func (*LinearExtrudeArgs) extrudeArgs() {}
func (*RotateExtrudeArgs) extrudeArgs() {}
