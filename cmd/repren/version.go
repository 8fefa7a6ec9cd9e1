// Package repren registers the small standalone commands (version)
// that don't run a rule set, kept separate from cmd/commands so that
// package doesn't have to special-case the no-rule-set case.
package repren

import (
	"github.com/spf13/cobra"

	"github.com/kcansari/repren/cmd"
	"github.com/kcansari/repren/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the repren version",
	RunE: func(*cobra.Command, []string) error {
		version.Print()
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
