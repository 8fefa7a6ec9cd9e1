package types

// Scope selects what a run touches: file contents, file paths, or both.
type Scope int

const (
	// ScopeRewrite rewrites file contents only (the default).
	ScopeRewrite Scope = iota
	// ScopeRenames renames files and directories only.
	ScopeRenames
	// ScopeFull does both: rewrite contents and rename paths.
	ScopeFull
)

// Config is the full set of options a run is parameterized by, gathered
// in one place and passed by value into the dispatcher.
type Config struct {
	// Rule source: exactly one of PatternsFile or From/To is set.
	PatternsFile string
	From, To     string

	Roots []string // if empty, stdin/stdout mode

	Scope Scope

	Literal       bool
	WordBreaks    bool
	Insensitive   bool
	DotAll        bool
	PreserveCase  bool

	Include string
	Exclude string

	WalkOnly  bool
	ParseOnly bool
	DryRun    bool
	AtOnce    bool // whole-file mode; default is line mode
	Quiet     bool

	BackupSuffix string
	Undo         bool
	CleanBackups bool

	JSON bool
}

// DefaultBackupSuffix is used when Config.BackupSuffix is empty.
const DefaultBackupSuffix = ".orig"

// TempSuffix names the internal, never-user-visible temp file used
// during an atomic rewrite.
const TempSuffix = ".repren.tmp"
