package diag

import (
	"fmt"
	"strings"

	"scadc/internal/ast"
)

// TranspileError is the structured failure produced during lowering:
// unknown variable, reserved-name collision, unsupported construct, empty
// required block, or internal self-validation failure. It carries the
// offending AST node for automated repair callers.
type TranspileError struct {
	Code    Code
	Node    ast.Node
	Message string
}

func (e *TranspileError) Error() string {
	if e.Node != nil && !e.Node.Span().Empty() {
		return fmt.Sprintf("offset %d: %s", e.Node.Span().Start, e.Message)
	}
	return e.Message
}

// RetryPrompt renders a plain-text instruction for automated code-fixing
// callers.
func (e *TranspileError) RetryPrompt() string {
	var sb strings.Builder
	sb.WriteString("The OpenSCAD source compiled syntactically but could not be lowered.\n")
	fmt.Fprintf(&sb, "Problem: %s.\n", e.Message)
	sb.WriteString("Fix the problem and return the complete corrected OpenSCAD source, with no commentary.")
	return sb.String()
}
