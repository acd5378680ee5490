package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"ferret/internal/diag"
	"ferret/internal/diagfmt"
	"ferret/internal/driver"
	"ferret/internal/project"
	"ferret/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [directory]",
	Short: "Check a ferret project for syntax errors",
	Long: `Check locates the nearest ferret.toml manifest, parses every *.fer file
under the package source root and reports diagnostics. Results for unchanged
files are replayed from the on-disk cache.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|sarif)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "re-parse every file even if unchanged")
}

func runCheck(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "sarif" {
		return fmt.Errorf("unknown format: %s", format)
	}

	// Директория проверки: корень пакета из манифеста, иначе сам startDir
	checkDir := startDir
	manifest, found, err := project.FindRoot(startDir)
	if err != nil {
		return fmt.Errorf("failed to locate manifest: %w", err)
	}
	if found {
		checkDir = manifest.SourceRoot()
	}

	var cache *driver.CheckCache
	if !noCache {
		// без кеша check остаётся корректным, только медленнее
		cache, _ = driver.OpenCheckCache("ferret")
	}

	fs, results, err := driver.CheckDir(cmd.Context(), checkDir, maxDiagnostics, jobs, cache)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:     stderrColor(cmd),
		ShowNotes: true,
	}

	errorCount := 0
	cachedCount := 0
	merged := diag.NewBag(0)
	for _, r := range results {
		if r.FromCache {
			cachedCount++
		}
		errorCount += r.Bag.ErrorCount()
		switch format {
		case "sarif":
			merged.Merge(r.Bag)
		default:
			if r.Bag.HasErrors() || r.Bag.HasWarnings() {
				diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
			}
		}
	}

	if format == "sarif" {
		meta := diagfmt.SarifRunMeta{ToolName: "ferret", ToolVersion: version.Version}
		if err := diagfmt.Sarif(os.Stdout, merged, fs, meta); err != nil {
			return err
		}
	}

	if !quiet && format != "sarif" {
		fmt.Fprintf(os.Stdout, "checked %d files (%d cached)\n", len(results), cachedCount)
	}
	if errorCount > 0 {
		return fmt.Errorf("found %d errors", errorCount)
	}
	return nil
}
