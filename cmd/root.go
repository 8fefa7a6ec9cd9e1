// Package cmd holds the repren CLI's root command and exit-code mapping.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kcansari/repren/internal/engine"
)

var RootCmd = &cobra.Command{
	Use:   "repren",
	Short: "Simultaneous multi-pattern batch renaming and text substitution",
	Long: `repren rewrites file contents and renames files and directories along a
recursive directory walk, applying every rule in a rule set simultaneously so
replacements never cascade into one another.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and translates a returned error into
// an exit code: 2 for a usage error, 1 for everything else the engine
// reports.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		var engErr *engine.Error
		if errors.As(err, &engErr) && engErr.Kind == engine.KindUsage {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
