// Package version holds the build-time version stamp reported by
// `repren version`.
package version

import "fmt"

var (
	Version   = "0.1.0"
	BuildDate = "dev"
	Commit    = "dev"
)

// Print writes the version banner to stdout.
func Print() {
	fmt.Printf("repren %s (build %s, commit %s)\n", Version, BuildDate, Commit)
}
