package commands

import (
	"github.com/spf13/cobra"

	"github.com/kcansari/repren/cmd"
)

// cleanCmd deletes every backup file found under the given roots.
var cleanCmd = &cobra.Command{
	Use:   "clean-backups [roots...]",
	Short: "Delete backup files left by prior runs",
	Args:  cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags(cmd, args)
		if err != nil {
			return err
		}
		cfg.CleanBackups = true
		return runEngine(cfg)
	},
}

func init() {
	cmd.RootCmd.AddCommand(cleanCmd)
	bindCommonFlags(cleanCmd)
}
