// Package strategies implements the line and whole-file transform modes
// as interchangeable implementations of one interface, the same
// interface + NewDefault... constructor shape used elsewhere in this
// codebase.
package strategies

import (
	"bytes"

	"github.com/kcansari/repren/internal/match"
	"github.com/kcansari/repren/internal/pattern"
)

// TransformStrategy rewrites input by running a rule set over it,
// either as one buffer or one line at a time.
type TransformStrategy interface {
	Transform(rs *pattern.RuleSet, input []byte) (match.Result, []match.Warning)
	Name() string
}

// WholeFileStrategy matches across the entire input in one pass,
// required when a pattern must match across line boundaries.
type WholeFileStrategy struct{}

func (WholeFileStrategy) Name() string { return "whole-file" }

func (WholeFileStrategy) Transform(rs *pattern.RuleSet, input []byte) (match.Result, []match.Warning) {
	return match.Run(rs, input)
}

// LineStrategy is the default: it matches one line at a time, so no
// pattern can span a line terminator. A "line" is any run of bytes
// up to and including its trailing "\n", so the exact terminator
// bytes (and the presence or absence of a final, unterminated line)
// are preserved byte for byte in the output.
type LineStrategy struct{}

func (LineStrategy) Name() string { return "line" }

func (LineStrategy) Transform(rs *pattern.RuleSet, input []byte) (match.Result, []match.Warning) {
	lines := bytes.SplitAfter(input, []byte("\n"))

	var out bytes.Buffer
	var total match.Result
	var warnings []match.Warning

	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		res, w := match.Run(rs, line)
		out.Write(res.Output)
		total.Found += res.Found
		total.Applied += res.Applied
		warnings = append(warnings, w...)
	}

	total.Output = out.Bytes()
	return total, warnings
}
