package lexer

// ASCII classifiers. OpenSCAD identifiers are ASCII.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// isNumberAfterDot checks the ".5" case: current byte is a dot followed by
// a digit.
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

func (lx *Lexer) tokenText(start Mark) string {
	sp := lx.cursor.SpanFrom(start)
	return string(lx.file.Content[sp.Start:sp.End])
}
