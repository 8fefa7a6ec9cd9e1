// Package backup implements the find/undo/clean operations for backup
// files left behind by a prior rewrite+rename run.
package backup

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/kcansari/repren/internal/fsutil"
	"github.com/kcansari/repren/internal/match"
	"github.com/kcansari/repren/internal/pattern"
	"github.com/kcansari/repren/internal/walker"
)

// Find enumerates backup files under roots honoring include/exclude,
// the same walk as internal/walker but filtering FOR the backup suffix.
func Find(roots []string, include, exclude, backupSuffix, tempSuffix string) ([]string, error) {
	opts := walker.Options{BackupSuffix: backupSuffix, TempSuffix: tempSuffix, ForBackups: true}
	if include != "" {
		re, err := regexp.Compile(include)
		if err != nil {
			return nil, fmt.Errorf("backup: invalid include pattern: %w", err)
		}
		opts.Include = re
	}
	if exclude != "" {
		re, err := regexp.Compile(exclude)
		if err != nil {
			return nil, fmt.Errorf("backup: invalid exclude pattern: %w", err)
		}
		opts.Exclude = re
	}

	res, err := walker.Walk(roots, opts)
	if err != nil {
		return nil, err
	}
	return res.Files, nil
}

// Outcome reports what Undo or Clean did with one backup file.
type Outcome struct {
	BackupPath string
	Action     string // "restored", "deleted", "skipped"
	Reason     string // set when Action == "skipped"
}

// Undo reverses backups found under roots. For each backup at
// X+backupSuffix, it recomputes the expected renamed path Y by running
// rs over X in path mode; if Y doesn't exist, or the backup is newer
// than Y, the backup is skipped with a warning rather than guessed at.
// Otherwise the backup is moved back over X and, if Y != X, Y is removed.
func Undo(backups []string, rs *pattern.RuleSet, backupSuffix string, dryRun bool) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(backups))

	for _, backupPath := range backups {
		x := strings.TrimSuffix(backupPath, backupSuffix)

		y := x
		if rs != nil {
			res, _ := match.Run(rs, []byte(x))
			y = string(res.Output)
		}

		yInfo, err := os.Stat(y)
		if err != nil {
			outcomes = append(outcomes, Outcome{BackupPath: backupPath, Action: "skipped", Reason: fmt.Sprintf("expected renamed path %s does not exist", y)})
			continue
		}

		backupInfo, err := os.Stat(backupPath)
		if err != nil {
			outcomes = append(outcomes, Outcome{BackupPath: backupPath, Action: "skipped", Reason: err.Error()})
			continue
		}

		if backupInfo.ModTime().After(yInfo.ModTime()) {
			outcomes = append(outcomes, Outcome{BackupPath: backupPath, Action: "skipped", Reason: fmt.Sprintf("backup is newer than %s; state looks inconsistent", y)})
			continue
		}

		if dryRun {
			outcomes = append(outcomes, Outcome{BackupPath: backupPath, Action: "restored"})
			continue
		}

		if err := fsutil.MoveClobber(backupPath, x); err != nil {
			return nil, fmt.Errorf("backup: restore %s: %w", backupPath, err)
		}
		if y != x {
			if err := os.Remove(y); err != nil && !os.IsNotExist(err) {
				return nil, fmt.Errorf("backup: remove renamed file %s: %w", y, err)
			}
		}
		outcomes = append(outcomes, Outcome{BackupPath: backupPath, Action: "restored"})
	}

	return outcomes, nil
}

// Clean deletes every backup file found.
func Clean(backups []string, dryRun bool) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(backups))
	for _, backupPath := range backups {
		if dryRun {
			outcomes = append(outcomes, Outcome{BackupPath: backupPath, Action: "deleted"})
			continue
		}
		if err := os.Remove(backupPath); err != nil {
			return nil, fmt.Errorf("backup: delete %s: %w", backupPath, err)
		}
		outcomes = append(outcomes, Outcome{BackupPath: backupPath, Action: "deleted"})
	}
	return outcomes, nil
}
