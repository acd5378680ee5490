package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ferret/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ferret",
	Short: "Ferret language front-end",
	Long:  `Ferret tokenizes and parses ferret source files and reports diagnostics`,
}

func main() {
	// версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func stderrColor(cmd *cobra.Command) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
}
