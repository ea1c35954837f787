package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/a11y-cli/internal/output"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the accessibility tests and suites",
	Long:  "List every test in the rule catalog with its severity, and the predefined suites accepted by --tests.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Print(output.NewRulesResult())
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
