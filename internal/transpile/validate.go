package transpile

import (
	jsparser "github.com/dop251/goja/parser"
)

// validateFunction checks that the assembled output parses as a JavaScript
// function literal. This guards the code generator, not the user: by the
// time lowering finishes, every user-input problem has already been
// reported, so a failure here is an internal error.
func validateFunction(src string) error {
	_, err := jsparser.ParseFile(nil, "generated.js", "("+src+");", 0)
	return err
}
