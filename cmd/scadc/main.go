// Package main implements the scadc CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"scadc/internal/diagfmt"
	"scadc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "scadc",
	Short:        "OpenSCAD-subset compiler targeting a CSG runtime",
	Long:         `scadc compiles a subset of the OpenSCAD language into JavaScript function bodies for a CSG runtime`,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// prettyOpts resolves the persistent --color flag against the stream the
// diagnostics go to.
func prettyOpts(cmd *cobra.Command) diagfmt.PrettyOpts {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	return diagfmt.PrettyOpts{
		Color:   useColor,
		Context: 2,
	}
}
