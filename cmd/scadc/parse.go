package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scadc/internal/diagfmt"
	"scadc/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.scad",
	Short: "Parse a source file and output its syntax tree",
	Long:  `Parse analyzes a source file and dumps the resulting syntax tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Parse(args[0])
	if err != nil {
		if result == nil {
			return err
		}
		diagfmt.PrettyCompileError(os.Stderr, err, result.File, prettyOpts(cmd))
		return fmt.Errorf("parsing failed")
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Program)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Program)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
