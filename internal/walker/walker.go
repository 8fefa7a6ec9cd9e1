// Package walker enumerates candidate files under a set of roots,
// honoring include/exclude filters and excluding backup and temp
// artifacts found while descending directories.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// defaultExclude matches dot-prefixed names, the filter default.
var defaultExclude = regexp.MustCompile(`^\.`)

// Options controls one walk.
type Options struct {
	Include *regexp.Regexp // nil means "everything"
	Exclude *regexp.Regexp // nil means defaultExclude

	BackupSuffix string
	TempSuffix   string

	// ForBackups filters FOR BackupSuffix instead of against it and
	// against TempSuffix — the backup manager's Find uses the same
	// walk with this flipped.
	ForBackups bool
}

func (o Options) exclude() *regexp.Regexp {
	if o.Exclude != nil {
		return o.Exclude
	}
	return defaultExclude
}

// Result is a completed walk: the sorted file list and a count of
// files skipped because they carried the backup or temp suffix.
type Result struct {
	Files        []string
	SkippedCount int
}

// Walk enumerates every candidate file under roots. A root that is
// itself a file is included directly, bypassing include/exclude and the
// backup/temp suffix checks (the caller named it explicitly); a root that is a directory is descended
// recursively, pruning excluded subdirectories before descent.
func Walk(roots []string, opts Options) (Result, error) {
	var result Result

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return Result{}, fmt.Errorf("walker: stat %s: %w", root, err)
		}

		if !info.IsDir() {
			result.Files = append(result.Files, root)
			continue
		}

		if err := walkDir(root, opts, &result); err != nil {
			return Result{}, err
		}
	}

	sort.Strings(result.Files)
	return result, nil
}

func walkDir(dir string, opts Options, result *Result) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("walker: read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		if entry.IsDir() {
			if opts.exclude().MatchString(name) {
				continue
			}
			if err := walkDir(full, opts, result); err != nil {
				return err
			}
			continue
		}

		if isArtifact(name, opts) {
			result.SkippedCount++
			continue
		}

		if opts.ForBackups && !strings.HasSuffix(name, opts.BackupSuffix) {
			continue
		}
		if opts.exclude().MatchString(name) {
			continue
		}
		if opts.Include != nil && !opts.Include.MatchString(name) {
			continue
		}

		result.Files = append(result.Files, full)
	}

	return nil
}

// isArtifact reports whether name carries the backup or temp suffix
// (only the temp suffix when ForBackups is set) — such files are never
// processable, regardless of include/exclude.
func isArtifact(name string, opts Options) bool {
	if opts.ForBackups {
		return strings.HasSuffix(name, opts.TempSuffix)
	}
	return strings.HasSuffix(name, opts.BackupSuffix) || strings.HasSuffix(name, opts.TempSuffix)
}
