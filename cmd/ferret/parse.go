package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"ferret/internal/diagfmt"
	"ferret/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.fer|directory>",
	Short: "Parse a ferret source file or directory and output the syntax tree",
	Long:  `Parse analyzes a ferret source file or all *.fer files in a directory and outputs their syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:     stderrColor(cmd),
		ShowNotes: true,
	}

	if !st.IsDir() {
		result, err := driver.Parse(filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}

		if result.Bag.HasErrors() || result.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts)
		}

		switch format {
		case "pretty":
			return diagfmt.FormatASTPretty(os.Stdout, result.Program, result.FileSet)
		case "json":
			return diagfmt.FormatASTJSON(os.Stdout, result.Program, result.FileSet)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fs, results, err := driver.ParseDir(cmd.Context(), filePath, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	// результаты уже отсортированы по пути
	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
		}
	}

	for idx, r := range results {
		if !quiet {
			fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
		}

		if r.Program != nil {
			switch format {
			case "pretty":
				if err := diagfmt.FormatASTPretty(os.Stdout, r.Program, fs); err != nil {
					return err
				}
			case "json":
				if err := diagfmt.FormatASTJSON(os.Stdout, r.Program, fs); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		}

		if !quiet && idx < len(results)-1 {
			fmt.Fprintln(os.Stdout)
		}
	}

	return nil
}
