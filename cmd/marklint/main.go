package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"marklint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "marklint",
	Short: "Static nesting checker for markup element trees",
	Long:  `marklint parses .mx files and flags element nestings the content model rejects, before the tree is ever rendered`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum diagnostics per file (0=config default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
