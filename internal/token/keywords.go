package token

var keywords = map[string]Kind{
	"cube":           KwCube,
	"sphere":         KwSphere,
	"cylinder":       KwCylinder,
	"circle":         KwCircle,
	"square":         KwSquare,
	"polygon":        KwPolygon,
	"translate":      KwTranslate,
	"rotate":         KwRotate,
	"scale":          KwScale,
	"mirror":         KwMirror,
	"color":          KwColor,
	"hull":           KwHull,
	"minkowski":      KwMinkowski,
	"union":          KwUnion,
	"difference":     KwDifference,
	"intersection":   KwIntersection,
	"linear_extrude": KwLinearExtrude,
	"rotate_extrude": KwRotateExtrude,
	"true":           KwTrue,
	"false":          KwFalse,
	"for":            KwFor,
	"if":             KwIf,
	"else":           KwElse,
	"module":         KwModule,
	"function":       KwFunction,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only the lowercase spellings are recognized.
// The lexer applies this to complete identifiers only, so "cubes" or
// "cube_size" never match.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
