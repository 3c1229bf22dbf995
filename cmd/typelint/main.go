package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"typelint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "typelint",
	Short: "Type-aware linter for .tl sources",
	Long:  `typelint analyzes .tl sources and flags ignored return values, void-callback contract mismatches and redundant instanceof checks`,
}

func main() {
	rootCmd.Version = version.Number

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color mode against the terminal, keeping
// the fatih/color global in sync for packages that consult it.
func colorEnabled(mode string) bool {
	var on bool
	switch mode {
	case "on":
		on = true
	case "off":
		on = false
	default:
		on = isTerminal(os.Stdout)
	}
	color.NoColor = !on
	return on
}
