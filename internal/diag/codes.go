package diag

import (
	"fmt"
)

// Code identifies a diagnostic. Ranges are split by phase:
// 1000s lexical, 2000s syntactic, 3000s transpile-time.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexInvalidChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Syntactic
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynUnsupportedConstruct Code = 2002
	SynExpectSemicolon      Code = 2003
	SynUnknownArgument      Code = 2004
	SynPositionalAfterNamed Code = 2005
	SynTooManyArguments     Code = 2006
	SynConflictingArgument  Code = 2007
	SynBadArgumentValue     Code = 2008
	SynBadAssignValue       Code = 2009
	SynBadSpecialValue      Code = 2010

	// Transpile-time
	TrInfo            Code = 3000
	TrUnknownVariable Code = 3001
	TrReservedName    Code = 3002
	TrRedeclaredName  Code = 3003
	TrUnsupported     Code = 3004
	TrEmptyBlock      Code = 3005
	TrEmptyProgram    Code = 3006
	TrBadValue        Code = 3007
	TrInternal        Code = 3008
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown diagnostic",
	LexInfo:                     "Lexical information",
	LexInvalidChar:              "Invalid character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	SynInfo:                     "Syntactic information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnsupportedConstruct:     "Unsupported construct",
	SynExpectSemicolon:          "Missing semicolon",
	SynUnknownArgument:          "Unknown argument name",
	SynPositionalAfterNamed:     "Positional argument after named argument",
	SynTooManyArguments:         "Too many positional arguments",
	SynConflictingArgument:      "Conflicting arguments",
	SynBadArgumentValue:         "Invalid argument value",
	SynBadAssignValue:           "Invalid assignment value",
	SynBadSpecialValue:          "Invalid special variable value",
	TrInfo:                      "Transpile information",
	TrUnknownVariable:           "Unknown variable",
	TrReservedName:              "Reserved name",
	TrRedeclaredName:            "Variable redeclared",
	TrUnsupported:               "Unsupported operation",
	TrEmptyBlock:                "Empty child block",
	TrEmptyProgram:              "Program produces no solid",
	TrBadValue:                  "Invalid value",
	TrInternal:                  "Internal transpiler error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TRN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
