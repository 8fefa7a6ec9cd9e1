package validator

import (
	"fmt"
	"strings"

	"github.com/kcansari/repren/internal/types"
)

// ConfigValidator checks a run's Config for usage errors: contradictory
// flags, missing rule source, an invalid backup suffix, or disallowed
// options in stdin mode.
type ConfigValidator struct{}

// Validate returns a non-nil error (always a usage error) describing
// the first problem found.
func (ConfigValidator) Validate(cfg types.Config) error {
	suffix := cfg.BackupSuffix
	if suffix == "" {
		suffix = types.DefaultBackupSuffix
	}
	if !strings.HasPrefix(suffix, ".") {
		return fmt.Errorf("usage: --backup-suffix must begin with '.', got %q", suffix)
	}

	if cfg.CleanBackups {
		if len(cfg.Roots) == 0 {
			return fmt.Errorf("usage: --clean-backups requires at least one root path")
		}
		if cfg.PatternsFile != "" || cfg.From != "" || cfg.To != "" {
			return fmt.Errorf("usage: --clean-backups does not take a rule source")
		}
		return nil
	}

	if cfg.WalkOnly {
		if len(cfg.Roots) == 0 {
			return fmt.Errorf("usage: --walk-only requires at least one root path")
		}
		return nil
	}

	if cfg.Undo && len(cfg.Roots) == 0 {
		return fmt.Errorf("usage: --undo requires at least one root path")
	}

	if err := validateRuleSource(cfg); err != nil {
		return err
	}

	if cfg.Undo {
		return nil
	}

	if len(cfg.Roots) == 0 {
		if cfg.Scope != types.ScopeRewrite {
			return fmt.Errorf("usage: stdin mode only supports content rewriting, not --full or --renames")
		}
		if cfg.DryRun {
			return fmt.Errorf("usage: --dry-run is incompatible with stdin mode")
		}
		if cfg.JSON {
			return fmt.Errorf("usage: JSON reporting is incompatible with stdin mode")
		}
	}

	return nil
}

// validateRuleSource checks the fields every rule-set-running mode
// (a normal run or --undo) shares: exactly one rule source, given in
// full, and no conflicting matching flags.
func validateRuleSource(cfg types.Config) error {
	hasPatternsFile := cfg.PatternsFile != ""
	hasFromTo := cfg.From != "" || cfg.To != ""
	switch {
	case hasPatternsFile && hasFromTo:
		return fmt.Errorf("usage: --patterns and --from/--to are mutually exclusive")
	case !hasPatternsFile && !hasFromTo:
		return fmt.Errorf("usage: a rule source is required (--patterns=FILE or --from=STR --to=STR)")
	case hasFromTo && (cfg.From == "" || cfg.To == ""):
		return fmt.Errorf("usage: --from and --to must both be given")
	}

	if cfg.Insensitive && cfg.PreserveCase {
		return fmt.Errorf("usage: --insensitive and --preserve-case are mutually exclusive")
	}

	return nil
}
