package commands

import (
	"github.com/spf13/cobra"

	"github.com/kcansari/repren/cmd"
)

// undoCmd reverses a prior rewrite+rename run by restoring backup files.
var undoCmd = &cobra.Command{
	Use:   "undo [roots...]",
	Short: "Restore files from their backups, reversing a prior run",
	Args:  cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags(cmd, args)
		if err != nil {
			return err
		}
		cfg.Undo = true
		return runEngine(cfg)
	},
}

func init() {
	cmd.RootCmd.AddCommand(undoCmd)
	bindCommonFlags(undoCmd)
}
