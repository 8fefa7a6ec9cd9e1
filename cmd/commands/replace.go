// Package commands implements the repren CLI's subcommands, one file
// per command.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/kcansari/repren/cmd"
	"github.com/kcansari/repren/internal/engine"
	"github.com/kcansari/repren/internal/reporter"
	"github.com/kcansari/repren/internal/types"
)

// replaceCmd is the main command: rewrite file contents and, with
// --full or --renames, rename files and directories too.
var replaceCmd = &cobra.Command{
	Use:   "replace [roots...]",
	Short: "Rewrite file contents and/or rename files using a rule set",
	Long: `replace applies every rule in a rule set simultaneously across each file
under the given roots (or, with no roots, stdin), so replacements never
cascade into one another.

Examples:
  repren replace --patterns=rules.tsv ./src
  repren replace --from=OldClass --to=NewClass --full ./src
  repren replace --from=foo --to=bar --preserve-case ./src`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags(cmd, args)
		if err != nil {
			return err
		}
		return runEngine(cfg)
	},
}

func init() {
	cmd.RootCmd.AddCommand(replaceCmd)
	bindCommonFlags(replaceCmd)

	replaceCmd.Flags().Bool("full", false, "rewrite contents and rename files/directories")
	replaceCmd.Flags().Bool("renames", false, "rename files/directories only, no content rewrite")
}

// configFromFlags builds a types.Config from the flags bindCommonFlags
// registers, shared by every subcommand that runs a rule set.
func configFromFlags(cmd *cobra.Command, roots []string) (types.Config, error) {
	patternsFile, _ := cmd.Flags().GetString("patterns")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	literal, _ := cmd.Flags().GetBool("literal")
	wordBreaks, _ := cmd.Flags().GetBool("word-breaks")
	insensitive, _ := cmd.Flags().GetBool("insensitive")
	dotAll, _ := cmd.Flags().GetBool("dotall")
	preserveCase, _ := cmd.Flags().GetBool("preserve-case")
	include, _ := cmd.Flags().GetString("include")
	exclude, _ := cmd.Flags().GetString("exclude")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	atOnce, _ := cmd.Flags().GetBool("at-once")
	quiet, _ := cmd.Flags().GetBool("quiet")
	backupSuffix, _ := cmd.Flags().GetString("backup-suffix")
	jsonOut, _ := cmd.Flags().GetBool("json")

	cfg := types.Config{
		PatternsFile: patternsFile,
		From:         from,
		To:           to,
		Roots:        roots,
		Literal:      literal,
		WordBreaks:   wordBreaks,
		Insensitive:  insensitive,
		DotAll:       dotAll,
		PreserveCase: preserveCase,
		Include:      include,
		Exclude:      exclude,
		DryRun:       dryRun,
		AtOnce:       atOnce,
		Quiet:        quiet,
		BackupSuffix: backupSuffix,
		JSON:         jsonOut,
	}

	if full, _ := cmd.Flags().GetBool("full"); full {
		cfg.Scope = types.ScopeFull
	} else if renames, _ := cmd.Flags().GetBool("renames"); renames {
		cfg.Scope = types.ScopeRenames
	}

	return cfg, nil
}

// bindCommonFlags registers the flags every rule-set-running subcommand
// shares: rule source, matching mode, walking filters, and execution.
func bindCommonFlags(c *cobra.Command) {
	c.Flags().String("patterns", "", "pattern file (TSV rules), mutually exclusive with --from/--to")
	c.Flags().String("from", "", "single-rule shortcut: pattern to match")
	c.Flags().String("to", "", "single-rule shortcut: replacement")
	c.Flags().Bool("literal", false, "treat --from/each pattern line as literal text, not regex")
	c.Flags().Bool("word-breaks", false, "wrap each pattern in \\b...\\b")
	c.Flags().Bool("insensitive", false, "case-insensitive matching")
	c.Flags().Bool("dotall", false, "let '.' match newlines")
	c.Flags().Bool("preserve-case", false, "expand each rule into all four case variants")
	c.Flags().String("include", "", "only process files whose name matches this regex")
	c.Flags().String("exclude", "", "never process files/directories whose name matches this regex")
	c.Flags().Bool("dry-run", false, "report what would change without touching any file")
	c.Flags().Bool("at-once", false, "match across the whole file instead of line by line")
	c.Flags().Bool("quiet", false, "suppress progress logging")
	c.Flags().String("backup-suffix", types.DefaultBackupSuffix, "backup file suffix, must start with '.'")
	c.Flags().Bool("json", false, "report the run summary as JSON instead of text")
}

// runEngine runs cfg through a fresh engine and writes the summary.
func runEngine(cfg types.Config) error {
	e := engine.New()
	if cfg.Quiet {
		e.Logger = reporter.DiscardLogger{}
	}

	tally, err := e.Run(cfg)
	if err != nil {
		return err
	}

	if len(cfg.Roots) == 0 {
		return nil // stdin mode: output already went to stdout, no summary
	}

	summary := reporter.NewSummary(tally, cfg.DryRun)
	if cfg.JSON {
		return summary.WriteJSON(cmdStderr())
	}
	summary.WriteText(cmdStderr())
	return nil
}
