package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"typelint/internal/lint"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available lint rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range lint.Names() {
			rule, ok := lint.Lookup(name)
			if !ok {
				continue
			}
			suffix := ""
			if lint.IsDeprecated(name) {
				suffix = fmt.Sprintf(" (deprecated alias of %s)", rule.Name())
			}
			fmt.Fprintf(out, "%-28s %s%s\n", name, rule.Doc(), suffix)
		}
		return nil
	},
}
