// Command repren is the CLI entry point; see cmd.Execute.
package main

import (
	"github.com/kcansari/repren/cmd"
	_ "github.com/kcansari/repren/cmd/commands"
	_ "github.com/kcansari/repren/cmd/repren"
)

func main() {
	cmd.Execute()
}
