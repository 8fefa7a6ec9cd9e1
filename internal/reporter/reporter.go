// Package reporter turns a run's Tally and per-file events into
// text or JSON summary output.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/kcansari/repren/internal/types"
)

// Logger is the injectable, one-method logging callback: the engine
// takes one of these instead of printing directly, so it stays usable
// as a library.
type Logger interface {
	Log(msg string)
}

// WriterLogger writes each message, newline-terminated, to an
// underlying writer. NewStderrLogger (a WriterLogger on stderr) and
// DiscardLogger are the two stock loggers the CLI wires.
type WriterLogger struct {
	W io.Writer
}

func (l WriterLogger) Log(msg string) {
	fmt.Fprintln(l.W, msg)
}

// DiscardLogger drops every message; wired under --quiet.
type DiscardLogger struct{}

func (DiscardLogger) Log(string) {}

// NewStderrLogger returns the CLI's default logger.
func NewStderrLogger() Logger {
	return WriterLogger{W: os.Stderr}
}

// Status colors, adopted for the CLI's text reporter. The core engine
// never imports color itself — only this package, which sits outside it.
var (
	modifyColor = color.New(color.FgYellow)
	renameColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed, color.Bold)
	okColor     = color.New(color.FgGreen)
)

// LogModify reports that a file had at least one candidate match.
func LogModify(l Logger, path string, found int) {
	l.Log(modifyColor.Sprintf("modify: %s (%d match%s)", path, found, plural(found)))
}

// LogRename reports that a file's destination differs from its source.
func LogRename(l Logger, src, dest string) {
	l.Log(renameColor.Sprintf("rename: %s -> %s", src, dest))
}

// LogError reports a per-file error the engine continued past.
func LogError(l Logger, path string, err error) {
	l.Log(errorColor.Sprintf("error: %s: %v", path, err))
}

// LogWarning reports a dropped overlapping match. Not an error: the
// rule set still applied, just with one fewer substitution than it
// found candidates for.
func LogWarning(l Logger, path, detail string) {
	l.Log(modifyColor.Sprintf("warning: %s: %s", path, detail))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "es"
}

// Summary is the end-of-run report, text or JSON, built from a Tally.
type Summary struct {
	DryRun          bool  `json:"dry_run"`
	FilesScanned    int   `json:"files_scanned"`
	BytesScanned    int64 `json:"bytes_scanned"`
	MatchesFound    int   `json:"matches_found"`
	MatchesApplied  int   `json:"matches_applied"`
	OverlapsDropped int   `json:"overlaps_dropped"`
	FilesChanged    int   `json:"files_changed"`
	FilesRewritten  int   `json:"files_rewritten"`
	FilesRenamed    int   `json:"files_renamed"`
	FilesSkipped    int   `json:"files_skipped"`
}

// NewSummary builds a Summary from a tally snapshot.
func NewSummary(t types.Tally, dryRun bool) Summary {
	return Summary{
		DryRun:          dryRun,
		FilesScanned:    t.FilesScanned,
		BytesScanned:    t.BytesScanned,
		MatchesFound:    t.MatchesFound,
		MatchesApplied:  t.MatchesApplied,
		OverlapsDropped: t.OverlapsDropped,
		FilesChanged:    t.FilesChanged,
		FilesRewritten:  t.FilesRewritten,
		FilesRenamed:    t.FilesRenamed,
		FilesSkipped:    t.FilesSkipped,
	}
}

// WriteText writes the stderr summary line: files scanned, bytes
// scanned, matches applied, matches skipped due to overlap, files
// changed, files rewritten, files renamed.
func (s Summary) WriteText(w io.Writer) {
	label := okColor.Sprint("summary:")
	fmt.Fprintf(w, "%s files scanned=%d bytes scanned=%d matches applied=%d matches skipped(overlap)=%d files changed=%d files rewritten=%d files renamed=%d\n",
		label, s.FilesScanned, s.BytesScanned, s.MatchesApplied, s.OverlapsDropped, s.FilesChanged, s.FilesRewritten, s.FilesRenamed)
}

// WriteJSON writes the summary as a single JSON object.
func (s Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
