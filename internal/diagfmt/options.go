package diagfmt

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	// Color enables ANSI styling.
	Color bool

	// Context is the number of source lines shown around a diagnostic.
	// Zero shows just the offending line.
	Context int
}
