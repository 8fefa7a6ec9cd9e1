package commands

import (
	"github.com/spf13/cobra"

	"github.com/kcansari/repren/cmd"
)

// parseCmd compiles and prints a rule set without walking or touching
// any file, useful for checking case-variant expansion before a real run.
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse and print a rule set without running it",

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags(cmd, nil)
		if err != nil {
			return err
		}
		cfg.ParseOnly = true
		return runEngine(cfg)
	},
}

func init() {
	cmd.RootCmd.AddCommand(parseCmd)
	bindCommonFlags(parseCmd)
}
