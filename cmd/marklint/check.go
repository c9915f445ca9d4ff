package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"marklint/internal/config"
	"marklint/internal/diag"
	"marklint/internal/diagfmt"
	"marklint/internal/driver"
	"marklint/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.mx|directory>",
	Short: "Check element nesting in a source file or directory",
	Long:  `Check parses the given .mx file (or every .mx file under a directory) and reports element nestings the content model rejects`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	startDir := target
	if !st.IsDir() {
		startDir = filepath.Dir(target)
	}
	cfg, cfgPath, err := config.Discover(startDir)
	if err != nil {
		return err
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = cfg.Check.MaxDiagnostics
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Creators:       cfg.Check.CreateFunctions,
		MapMethods:     cfg.Check.MapMethods,
	}
	if !noCache && !cfg.Cache.Disabled {
		opts.Cache = openCache(cfg, cfgPath)
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	var (
		fileSet *source.FileSet
		results []driver.Result
	)
	if st.IsDir() {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return err
		}
		opts.Jobs = jobs
		fileSet, results, err = driver.CheckDir(cmd.Context(), target, opts)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
	} else {
		fs, res, err := driver.CheckPath(target, opts)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		fileSet, results = fs, []driver.Result{res}
	}

	hasErrors := false
	for _, r := range results {
		if r.Bag.HasErrors() {
			hasErrors = true
			break
		}
	}

	switch format {
	case "pretty":
		prettyOpts := diagfmt.PrettyOpts{
			Color:     useColor,
			Context:   2,
			PathMode:  pathMode,
			ShowNotes: withNotes,
		}
		printed := false
		for _, r := range results {
			if r.Bag.Len() == 0 {
				continue
			}
			if printed {
				fmt.Fprintln(os.Stdout)
			}
			if err := diagfmt.Pretty(os.Stdout, r.Bag, fileSet, prettyOpts); err != nil {
				return err
			}
			printed = true
		}

	case "short":
		all := make([]diag.Diagnostic, 0)
		for _, r := range results {
			all = append(all, r.Bag.Items()...)
		}
		if output := diag.FormatShortDiagnostics(all, fileSet, withNotes); output != "" {
			fmt.Fprintln(os.Stdout, output)
		}

	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[displayPath(fileSet, r, fullPath)] = diagfmt.BuildDiagnosticsOutput(r.Bag, fileSet, jsonOpts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
	}

	if hasErrors {
		// Diagnostics already printed; keep the failure exit silent.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func displayPath(fileSet *source.FileSet, r driver.Result, fullPath bool) string {
	// Files that failed to load never made it into the FileSet.
	id, ok := fileSet.GetLatest(r.Path)
	if !ok {
		return r.Path
	}
	mode := "auto"
	if fullPath {
		mode = "absolute"
	}
	return fileSet.Get(id).FormatPath(mode, fileSet.BaseDir())
}

// openCache resolves the cache location: an explicit [cache].dir wins,
// otherwise the standard per-user location. Cache setup failures disable
// the cache instead of failing the run.
func openCache(cfg config.Config, cfgPath string) *driver.DiskCache {
	if cfg.Cache.Dir != "" {
		dir := cfg.Cache.Dir
		if !filepath.IsAbs(dir) && cfgPath != "" {
			dir = filepath.Join(filepath.Dir(cfgPath), dir)
		}
		cache, err := driver.OpenDiskCacheAt(dir)
		if err != nil {
			return nil
		}
		return cache
	}
	cache, err := driver.OpenDiskCache("marklint")
	if err != nil {
		return nil
	}
	return cache
}
