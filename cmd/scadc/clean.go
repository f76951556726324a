package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"scadc/internal/driver"
	"scadc/internal/project"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove build outputs and the compile cache",
	Long:  "Remove the configured output directory and drop the disk compile cache.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().Bool("cache-only", false, "drop the compile cache but keep build outputs")
}

func runClean(cmd *cobra.Command, args []string) error {
	baseDir := "."
	if len(args) > 0 && args[0] != "" {
		baseDir = args[0]
	}
	if info, err := os.Stat(baseDir); err != nil {
		return fmt.Errorf("failed to stat %q: %w", baseDir, err)
	} else if !info.IsDir() {
		baseDir = filepath.Dir(baseDir)
	}

	cache, err := driver.OpenDiskCache("scadc")
	if err == nil {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop compile cache: %w", err)
		}
	}

	cacheOnly, _ := cmd.Flags().GetBool("cache-only")
	if cacheOnly {
		fmt.Fprintln(os.Stdout, "dropped compile cache")
		return nil
	}

	cfg, _, err := project.LoadFromDir(baseDir)
	if err != nil {
		return err
	}
	outDir := cfg.Build.Out
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(baseDir, outDir)
	}

	info, err := os.Stat(outDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stdout, "dropped compile cache; no output directory to remove")
			return nil
		}
		return fmt.Errorf("failed to stat %q: %w", outDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", outDir)
	}
	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("failed to remove %q: %w", outDir, err)
	}
	fmt.Fprintf(os.Stdout, "dropped compile cache and removed %s\n", outDir)
	return nil
}
