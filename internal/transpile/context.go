package transpile

import (
	"fmt"
	"strconv"

	"scadc/internal/ast"
	"scadc/internal/diag"
)

// Segment-count bounds. Values outside are clamped at use, never rejected.
const (
	minSegments     = 16
	maxSegments     = 128
	defaultSegments = 32
)

// reservedNames are bound inside the execution sandbox. Source may not
// declare variables under them.
var reservedNames = map[string]bool{
	"csg":    true,
	"params": true,
	"result": true,
}

// Context is the per-call lowering state. One fresh instance per Transpile
// call; never shared, never reused.
type Context struct {
	fn      float64           // ambient segment count, clamped at use
	nextTmp int               // monotonically increasing temporary counter
	stmts   []string          // accumulated output statements
	syms    map[string]string // declared name -> lowered default JS expression

	bag           *diag.Bag
	rep           diag.Reporter // warnings funnel into bag
	constructions int
	releases      int
}

func newContext(opts Options) *Context {
	fn := opts.DefaultSegments
	if fn == 0 {
		fn = defaultSegments
	}
	bag := diag.NewBag(64)
	return &Context{
		fn:   fn,
		syms: make(map[string]string),
		bag:  bag,
		rep:  diag.BagReporter{Bag: bag},
	}
}

func (c *Context) emitf(format string, args ...any) {
	c.stmts = append(c.stmts, fmt.Sprintf(format, args...))
}

// bindTemp emits `const tmpN = <expr>;` and returns the temporary's name.
// Every runtime-object construction goes through here so the construction
// count stays exact.
func (c *Context) bindTemp(expr string) string {
	name := "tmp" + strconv.Itoa(c.nextTmp)
	c.nextTmp++
	c.emitf("const %s = %s;", name, expr)
	c.constructions++
	return name
}

// release emits the explicit release of a consumed temporary. The final
// result is never passed here.
func (c *Context) release(name string) {
	c.emitf("csg.release(%s);", name)
	c.releases++
}

// declare records a variable default. Reserved names are a hard error;
// redeclaration is allowed with a warning, the latest value winning for
// subsequent lookups. The default expression is resolved against the
// symbols visible at the point of declaration, so a redeclared name may
// refer to its own previous value inside an array.
func (c *Context) declare(node *ast.VarAssign) error {
	if reservedNames[node.Name] {
		return &diag.TranspileError{
			Code: diag.TrReservedName,
			Node: node,
			Message: fmt.Sprintf(
				"'%s' is reserved by the execution sandbox and cannot be declared", node.Name),
		}
	}
	expr, err := c.valueExpr(node.Value, node)
	if err != nil {
		return err
	}
	if _, redeclared := c.syms[node.Name]; redeclared {
		c.rep.Report(diag.TrRedeclaredName, diag.SevWarning, node.Pos,
			fmt.Sprintf("variable '%s' is declared again; the latest value becomes the default", node.Name))
	}
	c.syms[node.Name] = expr
	return nil
}

// lookup resolves a VarRef into the parameter-table lookup expression.
// This is the sole mechanism by which caller-supplied overrides reach an
// otherwise fully compiled program.
func (c *Context) lookup(ref *ast.VarRef, owner ast.Node) (string, error) {
	def, ok := c.syms[ref.Name]
	if !ok {
		return "", &diag.TranspileError{
			Code:    diag.TrUnknownVariable,
			Node:    owner,
			Message: fmt.Sprintf("variable '%s' is used before it is declared", ref.Name),
		}
	}
	return fmt.Sprintf("(%q in params ? params[%q] : %s)", ref.Name, ref.Name, def), nil
}
