package match

import "github.com/kcansari/repren/internal/pattern"

// Result is the output of applying a selection to an input: the
// rebuilt bytes plus found/applied match counters.
type Result struct {
	Output  []byte
	Found   int
	Applied int
}

// Apply splices input with the expanded replacement for each match in
// selection (which must already be sorted and disjoint — the output of
// Resolve), advancing through input left to right and copying the
// unmatched spans verbatim.
func Apply(rs *pattern.RuleSet, input []byte, selection []Match, found int) Result {
	out := make([]byte, 0, len(input))
	pos := 0

	for _, m := range selection {
		out = append(out, input[pos:m.Start]...)
		rule := rs.Rules[m.RuleIndex]
		out = append(out, expandTemplate(rule.Replacement, input, m.Indices)...)
		pos = m.End
	}
	out = append(out, input[pos:]...)

	return Result{Output: out, Found: found, Applied: len(selection)}
}

// Run is the convenience entry point: collect, resolve, apply in one
// call, returning the result and any overlap warnings.
func Run(rs *pattern.RuleSet, input []byte) (Result, []Warning) {
	candidates := Collect(rs, input)
	selection, warnings := Resolve(candidates)
	return Apply(rs, input, selection, len(candidates)), warnings
}
