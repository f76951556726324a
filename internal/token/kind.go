package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// SpecialVar represents a '$'-prefixed special variable such as $fn.
	// Token.Text includes the sigil.
	SpecialVar
	// Number represents an integer, decimal, or scientific-notation literal.
	Number
	// String represents a double-quoted string literal with escapes.
	String

	// Primitive keywords.
	KwCube     // cube
	KwSphere   // sphere
	KwCylinder // cylinder
	KwCircle   // circle
	KwSquare   // square
	KwPolygon  // polygon

	// Transform keywords.
	KwTranslate // translate
	KwRotate    // rotate
	KwScale     // scale
	KwMirror    // mirror
	KwColor     // color
	KwHull      // hull
	KwMinkowski // minkowski

	// Boolean keywords.
	KwUnion        // union
	KwDifference   // difference
	KwIntersection // intersection

	// Extrusion keywords.
	KwLinearExtrude // linear_extrude
	KwRotateExtrude // rotate_extrude

	// Boolean literals.
	KwTrue  // true
	KwFalse // false

	// Control-flow and definition keywords. Recognized so the parser can
	// reject them with a precise message.
	KwFor      // for
	KwIf       // if
	KwElse     // else
	KwModule   // module
	KwFunction // function

	// Punctuation and operators.
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Semicolon // ;
	Comma     // ,
	Assign    // =
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Hash      // #
	Bang      // !
	Colon     // :
	Lt        // <
	Gt        // >
)

var kindNames = map[Kind]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	Ident:           "Ident",
	SpecialVar:      "SpecialVar",
	Number:          "Number",
	String:          "String",
	KwCube:          "KwCube",
	KwSphere:        "KwSphere",
	KwCylinder:      "KwCylinder",
	KwCircle:        "KwCircle",
	KwSquare:        "KwSquare",
	KwPolygon:       "KwPolygon",
	KwTranslate:     "KwTranslate",
	KwRotate:        "KwRotate",
	KwScale:         "KwScale",
	KwMirror:        "KwMirror",
	KwColor:         "KwColor",
	KwHull:          "KwHull",
	KwMinkowski:     "KwMinkowski",
	KwUnion:         "KwUnion",
	KwDifference:    "KwDifference",
	KwIntersection:  "KwIntersection",
	KwLinearExtrude: "KwLinearExtrude",
	KwRotateExtrude: "KwRotateExtrude",
	KwTrue:          "KwTrue",
	KwFalse:         "KwFalse",
	KwFor:           "KwFor",
	KwIf:            "KwIf",
	KwElse:          "KwElse",
	KwModule:        "KwModule",
	KwFunction:      "KwFunction",
	LParen:          "LParen",
	RParen:          "RParen",
	LBrace:          "LBrace",
	RBrace:          "RBrace",
	LBracket:        "LBracket",
	RBracket:        "RBracket",
	Semicolon:       "Semicolon",
	Comma:           "Comma",
	Assign:          "Assign",
	Plus:            "Plus",
	Minus:           "Minus",
	Star:            "Star",
	Slash:           "Slash",
	Percent:         "Percent",
	Hash:            "Hash",
	Bang:            "Bang",
	Colon:           "Colon",
	Lt:              "Lt",
	Gt:              "Gt",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
