package diag

import (
	"fmt"
	"strings"
)

// SyntaxError is the structured failure produced at lex or parse time.
// It always carries a 1-based position, the offending text, and a non-empty
// list of human-readable expectations so an automated caller can attempt a
// repair round-trip.
type SyntaxError struct {
	Code     Code
	Line     uint32
	Col      uint32
	Found    string
	Expected []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: found %q, expected %s", e.Line, e.Col, e.Found, joinExpected(e.Expected))
}

// RetryPrompt renders a plain-text instruction for automated code-fixing
// callers.
func (e *SyntaxError) RetryPrompt() string {
	var sb strings.Builder
	sb.WriteString("The OpenSCAD source failed to compile.\n")
	fmt.Fprintf(&sb, "At line %d, column %d the compiler found %q but expected %s.\n",
		e.Line, e.Col, e.Found, joinExpected(e.Expected))
	sb.WriteString("Fix the problem and return the complete corrected OpenSCAD source, with no commentary.")
	return sb.String()
}

func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "valid input"
	case 1:
		return expected[0]
	case 2:
		return expected[0] + " or " + expected[1]
	default:
		return strings.Join(expected[:len(expected)-1], ", ") + ", or " + expected[len(expected)-1]
	}
}
