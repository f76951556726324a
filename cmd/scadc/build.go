package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"scadc/internal/diagfmt"
	"scadc/internal/driver"
	"scadc/internal/project"
	"scadc/internal/source"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] <file.scad|directory>",
	Short: "Compile source files to CSG runtime functions",
	Long: `Build compiles a source file, or every *.scad file under a directory,
into JavaScript functions for the CSG runtime. Settings come from scadc.toml
when present; flags override it.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Float64("fn", 0, "ambient segment count before any $fn assignment")
	buildCmd.Flags().String("out", "", "output directory, relative to the project root")
	buildCmd.Flags().Bool("no-cache", false, "skip the compile cache")
	buildCmd.Flags().String("ui", "auto", "progress interface for directory builds (auto|on|off)")
	buildCmd.Flags().Int("jobs", 0, "max parallel compiles for directory builds (0=auto)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	target := args[0]
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	baseDir := target
	if !st.IsDir() {
		baseDir = filepath.Dir(target)
	}
	cfg, _, err := project.LoadFromDir(baseDir)
	if err != nil {
		return err
	}

	fn := cfg.Build.DefaultFn
	if cmd.Flags().Changed("fn") {
		fn, _ = cmd.Flags().GetFloat64("fn")
	}
	outDir := cfg.Build.Out
	if cmd.Flags().Changed("out") {
		outDir, _ = cmd.Flags().GetString("out")
	}
	jobs := cfg.Build.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs, _ = cmd.Flags().GetInt("jobs")
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(baseDir, outDir)
	}

	opts := driver.Options{DefaultSegments: fn}
	noCache, _ := cmd.Flags().GetBool("no-cache")
	if !noCache {
		// Cache failures downgrade to cold compiles.
		opts.Cache, _ = driver.OpenDiskCache("scadc")
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	if !st.IsDir() {
		return buildFile(cmd, target, outDir, opts, quiet)
	}

	uiValue, _ := cmd.Flags().GetString("ui")
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	return buildDir(cmd, target, outDir, driver.DirOptions{
		Options: opts,
		Jobs:    jobs,
	}, shouldUseTUI(uiModeValue) && !quiet, quiet)
}

func buildFile(cmd *cobra.Command, path, outDir string, opts driver.Options, quiet bool) error {
	res, err := driver.Compile(path, opts)
	if err != nil {
		if res == nil {
			return err
		}
		diagfmt.PrettyCompileError(os.Stderr, err, res.File, prettyOpts(cmd))
		return fmt.Errorf("build failed")
	}

	if res.Result.Bag.HasWarnings() {
		res.Result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Result.Bag, res.FileSet, prettyOpts(cmd))
	}

	outPath, err := writeFunction(outDir, filepath.Base(path), res.Result.Function())
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "built %s\n", outPath)
	}
	return nil
}

func buildDir(cmd *cobra.Command, dir, outDir string, opts driver.DirOptions, useTUI, quiet bool) error {
	files, err := driver.ListFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintf(os.Stdout, "no .scad files under %s\n", dir)
		}
		return nil
	}

	var (
		fileSet *source.FileSet
		results []driver.FileResult
	)
	if useTUI {
		fileSet, results, err = runCompileWithUI(cmd.Context(), "scadc build", files, dir, opts)
	} else {
		fileSet, results, err = driver.CompileDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return err
	}

	popts := prettyOpts(cmd)
	var compiled, cached, failed int
	for _, fr := range results {
		if fr.Err != nil {
			failed++
			diagfmt.PrettyCompileError(os.Stderr, fr.Err, fr.File, popts)
			continue
		}
		if fr.Result.Bag.HasWarnings() {
			fr.Result.Bag.Sort()
			diagfmt.Pretty(os.Stderr, fr.Result.Bag, fileSet, popts)
		}
		if _, err := writeFunction(outDir, fr.Path, fr.Result.Function()); err != nil {
			return err
		}
		compiled++
		if fr.Cached {
			cached++
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "compiled %d file(s) (%d cached)\n", compiled, cached)
	}
	if failed > 0 {
		return fmt.Errorf("build failed for %d file(s)", failed)
	}
	return nil
}

// writeFunction writes one compiled function under outDir, keeping the
// source file's relative path with a .js extension.
func writeFunction(outDir, relPath, function string) (string, error) {
	name := strings.TrimSuffix(relPath, ".scad") + ".js"
	outPath := filepath.Join(outDir, name)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, []byte(function+"\n"), 0o644); err != nil {
		return "", err
	}
	return outPath, nil
}
