// Package transform implements the atomic per-file transformer: read,
// transform, write-to-temp, back up the original, move the temp into
// place — never leaving a file half-written.
package transform

import (
	"fmt"
	"os"

	"github.com/kcansari/repren/internal/fsutil"
	"github.com/kcansari/repren/internal/match"
	"github.com/kcansari/repren/internal/pattern"
	"github.com/kcansari/repren/internal/transform/strategies"
)

// Job names a single file's source and destination path. Source and
// Dest are equal for a pure content rewrite; they differ when the
// dispatcher has also computed a renamed destination.
type Job struct {
	SourcePath string
	DestPath   string
	DryRun     bool
}

// Result reports what a single file transform did, for the dispatcher
// to fold into the run's Tally.
type Result struct {
	Found, Applied int
	Warnings       []match.Warning
	ContentChanged bool
	Renamed        bool
	FinalDestPath  string
	BytesScanned   int64
}

// RewriteFile runs rs (via strat) over job.SourcePath's content and
// atomically writes the result to job.DestPath. backupSuffix names the
// clobbering backup target; tempSuffix names the internal,
// never-user-visible temp file.
func RewriteFile(job Job, rs *pattern.RuleSet, strat strategies.TransformStrategy, backupSuffix, tempSuffix string) (Result, error) {
	info, err := os.Stat(job.SourcePath)
	if err != nil {
		return Result{}, fmt.Errorf("transform: stat %s: %w", job.SourcePath, err)
	}

	input, err := os.ReadFile(job.SourcePath)
	if err != nil {
		return Result{}, fmt.Errorf("transform: read %s: %w", job.SourcePath, err)
	}

	res, warnings := strat.Transform(rs, input)

	tempPath := job.DestPath + tempSuffix
	if err := fsutil.EnsureParentDir(tempPath); err != nil {
		return Result{}, fmt.Errorf("transform: create parent dir for %s: %w", tempPath, err)
	}
	if err := os.WriteFile(tempPath, res.Output, info.Mode().Perm()); err != nil {
		return Result{}, fmt.Errorf("transform: write temp %s: %w", tempPath, err)
	}

	renamed := job.DestPath != job.SourcePath
	changed := res.Found > 0

	result := Result{
		Found:          res.Found,
		Applied:        res.Applied,
		Warnings:       warnings,
		ContentChanged: changed,
		Renamed:        renamed,
		FinalDestPath:  job.DestPath,
		BytesScanned:   int64(len(input)),
	}

	if job.DryRun || (!renamed && !changed) {
		os.Remove(tempPath)
		return result, nil
	}

	backupPath := job.SourcePath + backupSuffix
	if err := fsutil.MoveClobber(job.SourcePath, backupPath); err != nil {
		os.Remove(tempPath)
		return Result{}, fmt.Errorf("transform: back up %s: %w", job.SourcePath, err)
	}

	finalDest, err := fsutil.MoveNoClobber(tempPath, job.DestPath)
	if err != nil {
		return Result{}, fmt.Errorf("transform: move temp into place at %s: %w", job.DestPath, err)
	}
	result.FinalDestPath = finalDest

	return result, nil
}

// RenameFile moves job.SourcePath to job.DestPath without touching
// content. No backup is created — the original survives under its new
// name, so there is no content loss to guard against.
func RenameFile(job Job) (Result, error) {
	if job.DestPath == job.SourcePath {
		return Result{FinalDestPath: job.SourcePath}, nil
	}
	if job.DryRun {
		return Result{Renamed: true, FinalDestPath: job.DestPath}, nil
	}

	if err := fsutil.EnsureParentDir(job.DestPath); err != nil {
		return Result{}, fmt.Errorf("transform: create parent dir for %s: %w", job.DestPath, err)
	}
	finalDest, err := fsutil.MoveNoClobber(job.SourcePath, job.DestPath)
	if err != nil {
		return Result{}, fmt.Errorf("transform: rename %s to %s: %w", job.SourcePath, job.DestPath, err)
	}
	return Result{Renamed: true, FinalDestPath: finalDest}, nil
}
