package commands

import "os"

// cmdStderr centralizes where the summary report writes to, so tests
// could substitute a buffer without touching every subcommand.
func cmdStderr() *os.File {
	return os.Stderr
}
