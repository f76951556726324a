package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"scadc/internal/diag"
	"scadc/internal/source"
)

// Pretty renders every diagnostic in the bag as
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//
// followed by a source preview with a caret under the offending span.
// Callers should bag.Sort() first for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)

		width := uint32(1)
		if end.Line == start.Line && end.Col > start.Col {
			width = end.Col - start.Col
		}
		header(w, filePath(file), start, d.Severity, d.Code, d.Message, opts)
		if file != nil {
			preview(w, file, start.Line, start.Col, width, opts)
		}
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  note: %d:%d: %s\n", noteStart.Line, noteStart.Col, note.Msg)
		}
	}
}

// PrettyCompileError renders a fatal compile error against the file it came
// from. It understands both structured kinds; anything else prints plainly.
func PrettyCompileError(w io.Writer, err error, file *source.File, opts PrettyOpts) {
	switch err := err.(type) {
	case *diag.SyntaxError:
		pos := source.LineCol{Line: err.Line, Col: err.Col}
		header(w, filePath(file), pos, diag.SevError, err.Code, syntaxMessage(err), opts)
		if file != nil {
			preview(w, file, err.Line, err.Col, 1, opts)
		}
	case *diag.TranspileError:
		if err.Node == nil || err.Node.Span().Empty() || file == nil {
			fmt.Fprintf(w, "%s: %s %s: %s\n",
				filePath(file), severityLabel(diag.SevError, opts), err.Code.ID(), err.Message)
			return
		}
		span := err.Node.Span()
		start := file.Position(span.Start)
		width := uint32(1)
		if end := file.Position(span.End); end.Line == start.Line && end.Col > start.Col {
			width = end.Col - start.Col
		}
		header(w, filePath(file), start, diag.SevError, err.Code, err.Message, opts)
		preview(w, file, start.Line, start.Col, width, opts)
	default:
		fmt.Fprintf(w, "%s: %s\n", severityLabel(diag.SevError, opts), err)
	}
}

func syntaxMessage(err *diag.SyntaxError) string {
	msg := fmt.Sprintf("found %q", err.Found)
	if len(err.Expected) > 0 {
		msg += ", expected " + strings.Join(err.Expected, " or ")
	}
	return msg
}

func filePath(file *source.File) string {
	if file == nil {
		return "<unknown>"
	}
	return file.Path
}

func header(w io.Writer, path string, pos source.LineCol, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, pos.Line, pos.Col, severityLabel(sev, opts), code.ID(), msg)
}

func severityLabel(sev diag.Severity, opts PrettyOpts) string {
	var c *color.Color
	label := sev.String()
	switch sev {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	if !opts.Color {
		c.DisableColor()
	}
	return c.Sprint(label)
}

// preview prints the offending line (with optional surrounding context) and
// a caret sized in display cells, so tabs and wide runes line up.
func preview(w io.Writer, file *source.File, line, col, width uint32, opts PrettyOpts) {
	first := line
	if uint32(opts.Context) < line-1 {
		first = line - uint32(opts.Context)
	} else {
		first = 1
	}
	last := line + uint32(opts.Context)

	for n := first; n <= last; n++ {
		text := file.GetLine(n)
		if text == "" && n != line {
			continue
		}
		fmt.Fprintf(w, "%5d | %s\n", n, expandTabs(text))
		if n != line {
			continue
		}

		prefix := text
		if int(col)-1 <= len(text) {
			prefix = text[:col-1]
		}
		pad := runewidth.StringWidth(expandTabs(prefix))
		spanned := ""
		if int(col)-1 < len(text) {
			endIdx := int(col) - 1 + int(width)
			if endIdx > len(text) {
				endIdx = len(text)
			}
			spanned = text[col-1 : endIdx]
		}
		underline := runewidth.StringWidth(spanned)
		if underline < 1 {
			underline = 1
		}
		marker := "^" + strings.Repeat("~", underline-1)
		c := color.New(color.FgRed, color.Bold)
		if !opts.Color {
			c.DisableColor()
		}
		fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", pad), c.Sprint(marker))
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
