package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scadc/internal/diagfmt"
	"scadc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.scad",
	Short: "Tokenize a source file",
	Long:  `Tokenize breaks a source file down into its token stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0])
	if err != nil {
		if result == nil {
			return err
		}
		diagfmt.PrettyCompileError(os.Stderr, err, result.File, prettyOpts(cmd))
		return fmt.Errorf("tokenization failed")
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
