// Package types holds the data shared across the engine's packages:
// the run configuration and the process-wide tally of counters.
package types

// Tally holds the process-wide counters a run accumulates. It is owned
// by a single top-level invocation (the dispatcher in internal/engine)
// and passed around and returned by value; the engine is single-threaded,
// so there's nothing here to guard with a mutex.
type Tally struct {
	FilesScanned    int
	BytesScanned    int64
	MatchesFound    int
	MatchesApplied  int
	FilesChanged    int
	FilesRewritten  int
	FilesRenamed    int
	FilesSkipped    int
	OverlapsDropped int
}
