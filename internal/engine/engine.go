// Package engine ties the pattern loader, match collector, atomic
// transformer, tree walker, and backup manager into the single
// top-level entry point a CLI or library host calls: an explicit
// Tally object, typed errors, and an injectable logger instead of
// globals.
package engine

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/kcansari/repren/internal/backup"
	"github.com/kcansari/repren/internal/match"
	"github.com/kcansari/repren/internal/pattern"
	"github.com/kcansari/repren/internal/reporter"
	"github.com/kcansari/repren/internal/transform"
	"github.com/kcansari/repren/internal/transform/strategies"
	"github.com/kcansari/repren/internal/types"
	"github.com/kcansari/repren/internal/validator"
	"github.com/kcansari/repren/internal/walker"
)

// Kind tags an Error with its category.
type Kind int

const (
	KindUsage Kind = iota
	KindPatternParse
	KindIO
	KindWalkSkip
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindPatternParse:
		return "pattern parse"
	case KindIO:
		return "io"
	case KindWalkSkip:
		return "walk skip"
	default:
		return "unknown"
	}
}

// Error is the tagged error result every fallible engine operation
// returns, so a host can branch on Kind instead of parsing messages.
type Error struct {
	Kind    Kind
	Path    string
	Cause   error
	Message string
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error: %s: %s", e.Kind, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func usageErr(format string, args ...any) *Error {
	return &Error{Kind: KindUsage, Message: fmt.Sprintf(format, args...)}
}

func parseErr(cause error) *Error {
	return &Error{Kind: KindPatternParse, Cause: cause, Message: cause.Error()}
}

func ioErr(path string, cause error) *Error {
	return &Error{Kind: KindIO, Path: path, Cause: cause, Message: cause.Error()}
}

// FailMode selects whether Run returns on the first per-file I/O error
// (FailFast) or logs and continues (FailSoft, the zero value and what
// New sets).
type FailMode int

const (
	FailSoft FailMode = iota
	FailFast
)

// Engine runs a Config end to end and reports through Logger.
type Engine struct {
	Logger reporter.Logger
	Fail   FailMode
	Stdin  io.Reader
	Stdout io.Writer
}

// New returns an Engine wired with stderr logging, fail-soft (CLI)
// behavior, and the process's stdin/stdout.
func New() *Engine {
	return &Engine{Logger: reporter.NewStderrLogger(), Fail: FailSoft, Stdin: os.Stdin, Stdout: os.Stdout}
}

// Run executes cfg and returns the accumulated tally.
func (e *Engine) Run(cfg types.Config) (types.Tally, error) {
	if cfg.Quiet {
		e.Logger = reporter.DiscardLogger{}
	}
	if err := (validator.ConfigValidator{}).Validate(cfg); err != nil {
		return types.Tally{}, usageErr("%s", err)
	}

	if cfg.BackupSuffix == "" {
		cfg.BackupSuffix = types.DefaultBackupSuffix
	}

	if cfg.Undo {
		return e.runUndo(cfg)
	}
	if cfg.CleanBackups {
		return e.runClean(cfg)
	}
	if cfg.WalkOnly {
		return e.runWalkOnly(cfg)
	}

	opts := pattern.Options{
		Literal:      cfg.Literal,
		WordBreaks:   cfg.WordBreaks,
		Insensitive:  cfg.Insensitive,
		DotAll:       cfg.DotAll,
		PreserveCase: cfg.PreserveCase,
	}

	rs, err := e.loadRuleSet(cfg, opts)
	if err != nil {
		return types.Tally{}, err
	}

	if cfg.ParseOnly {
		for _, r := range rs.Rules {
			e.Logger.Log(fmt.Sprintf("rule: %q -> %q", r.SourcePattern, r.SourceReplacement))
		}
		return types.Tally{}, nil
	}

	if len(cfg.Roots) == 0 {
		return e.runStdin(cfg, rs)
	}
	return e.runTree(cfg, rs)
}

func (e *Engine) runWalkOnly(cfg types.Config) (types.Tally, error) {
	walkOpts, err := buildWalkOptions(cfg)
	if err != nil {
		return types.Tally{}, err
	}

	walked, err := walker.Walk(cfg.Roots, walkOpts)
	if err != nil {
		return types.Tally{}, ioErr("", err)
	}

	for _, f := range walked.Files {
		e.Logger.Log(f)
	}

	return types.Tally{FilesScanned: len(walked.Files), FilesSkipped: walked.SkippedCount}, nil
}

func buildWalkOptions(cfg types.Config) (walker.Options, error) {
	walkOpts := walker.Options{BackupSuffix: cfg.BackupSuffix, TempSuffix: types.TempSuffix}
	if cfg.Include != "" {
		re, err := regexp.Compile(cfg.Include)
		if err != nil {
			return walker.Options{}, parseErr(fmt.Errorf("invalid --include pattern: %w", err))
		}
		walkOpts.Include = re
	}
	if cfg.Exclude != "" {
		re, err := regexp.Compile(cfg.Exclude)
		if err != nil {
			return walker.Options{}, parseErr(fmt.Errorf("invalid --exclude pattern: %w", err))
		}
		walkOpts.Exclude = re
	}
	return walkOpts, nil
}

func (e *Engine) loadRuleSet(cfg types.Config, opts pattern.Options) (*pattern.RuleSet, error) {
	if cfg.PatternsFile != "" {
		blob, err := os.ReadFile(cfg.PatternsFile)
		if err != nil {
			return nil, ioErr(cfg.PatternsFile, err)
		}
		rs, err := pattern.Load(string(blob), opts)
		if err != nil {
			return nil, parseErr(err)
		}
		return rs, nil
	}

	rs, err := pattern.LoadPair(cfg.From, cfg.To, opts)
	if err != nil {
		return nil, parseErr(err)
	}
	return rs, nil
}

func (e *Engine) runStdin(cfg types.Config, rs *pattern.RuleSet) (types.Tally, error) {
	input, err := io.ReadAll(e.Stdin)
	if err != nil {
		return types.Tally{}, ioErr("stdin", err)
	}

	strat := strategies.NewDefaultTransformStrategy(cfg.AtOnce)
	res, _ := strat.Transform(rs, input)

	if _, err := e.Stdout.Write(res.Output); err != nil {
		return types.Tally{}, ioErr("stdout", err)
	}

	tally := types.Tally{
		FilesScanned:   1,
		BytesScanned:   int64(len(input)),
		MatchesFound:   res.Found,
		MatchesApplied: res.Applied,
	}
	if res.Found > 0 {
		tally.FilesChanged = 1
		tally.FilesRewritten = 1
	}
	return tally, nil
}

func (e *Engine) runTree(cfg types.Config, rs *pattern.RuleSet) (types.Tally, error) {
	walkOpts, err := buildWalkOptions(cfg)
	if err != nil {
		return types.Tally{}, err
	}

	walked, err := walker.Walk(cfg.Roots, walkOpts)
	if err != nil {
		return types.Tally{}, ioErr("", err)
	}

	var tally types.Tally
	tally.FilesSkipped = walked.SkippedCount

	strat := strategies.NewDefaultTransformStrategy(cfg.AtOnce)
	fileValidator := validator.NewBasicFileValidator()

	for _, src := range walked.Files {
		tally.FilesScanned++

		if err := fileValidator.Validate(src); err != nil {
			reporter.LogError(e.Logger, src, err)
			tally.FilesSkipped++
			if e.Fail == FailFast {
				return tally, ioErr(src, err)
			}
			continue
		}

		dest := src
		if cfg.Scope == types.ScopeRenames || cfg.Scope == types.ScopeFull {
			res, _ := match.Run(rs, []byte(src))
			dest = string(res.Output)
		}

		job := transform.Job{SourcePath: src, DestPath: dest, DryRun: cfg.DryRun}

		var result transform.Result
		if cfg.Scope == types.ScopeRenames {
			result, err = transform.RenameFile(job)
		} else {
			result, err = transform.RewriteFile(job, rs, strat, cfg.BackupSuffix, types.TempSuffix)
		}

		if err != nil {
			reporter.LogError(e.Logger, src, err)
			if e.Fail == FailFast {
				return tally, ioErr(src, err)
			}
			continue
		}

		tally.BytesScanned += result.BytesScanned
		tally.MatchesFound += result.Found
		tally.MatchesApplied += result.Applied
		tally.OverlapsDropped += len(result.Warnings)
		for _, w := range result.Warnings {
			reporter.LogWarning(e.Logger, src, w.String())
		}

		if result.ContentChanged {
			reporter.LogModify(e.Logger, src, result.Found)
			tally.FilesRewritten++
		}
		if result.Renamed {
			reporter.LogRename(e.Logger, src, result.FinalDestPath)
			tally.FilesRenamed++
		}
		if result.ContentChanged || result.Renamed {
			tally.FilesChanged++
		}
	}

	return tally, nil
}

func (e *Engine) runUndo(cfg types.Config) (types.Tally, error) {
	opts := pattern.Options{
		Literal: cfg.Literal, WordBreaks: cfg.WordBreaks,
		Insensitive: cfg.Insensitive, DotAll: cfg.DotAll, PreserveCase: cfg.PreserveCase,
	}
	rs, err := e.loadRuleSet(cfg, opts)
	if err != nil {
		return types.Tally{}, err
	}

	backups, err := backup.Find(cfg.Roots, cfg.Include, cfg.Exclude, cfg.BackupSuffix, types.TempSuffix)
	if err != nil {
		return types.Tally{}, ioErr("", err)
	}

	outcomes, err := backup.Undo(backups, rs, cfg.BackupSuffix, cfg.DryRun)
	if err != nil {
		return types.Tally{}, ioErr("", err)
	}

	var tally types.Tally
	for _, o := range outcomes {
		if o.Action == "restored" {
			e.Logger.Log(fmt.Sprintf("restore: %s", o.BackupPath))
			tally.FilesChanged++
		} else {
			e.Logger.Log(fmt.Sprintf("skip: %s (%s)", o.BackupPath, o.Reason))
			tally.FilesSkipped++
		}
	}
	return tally, nil
}

func (e *Engine) runClean(cfg types.Config) (types.Tally, error) {
	backups, err := backup.Find(cfg.Roots, cfg.Include, cfg.Exclude, cfg.BackupSuffix, types.TempSuffix)
	if err != nil {
		return types.Tally{}, ioErr("", err)
	}

	outcomes, err := backup.Clean(backups, cfg.DryRun)
	if err != nil {
		return types.Tally{}, ioErr("", err)
	}

	var tally types.Tally
	for _, o := range outcomes {
		e.Logger.Log(fmt.Sprintf("delete: %s", o.BackupPath))
		tally.FilesChanged++
	}
	return tally, nil
}
