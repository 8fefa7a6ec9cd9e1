package commands

import (
	"github.com/spf13/cobra"

	"github.com/kcansari/repren/cmd"
)

// walkCmd enumerates the files a run would touch without changing anything.
var walkCmd = &cobra.Command{
	Use:   "walk [roots...]",
	Short: "List files a run would process, without touching any of them",
	Args:  cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags(cmd, args)
		if err != nil {
			return err
		}
		cfg.WalkOnly = true
		return runEngine(cfg)
	},
}

func init() {
	cmd.RootCmd.AddCommand(walkCmd)
	bindCommonFlags(walkCmd)
}
