// Package match collects every candidate match of a rule set against a
// byte input, resolves overlaps into a disjoint left-to-right
// selection, and applies the selection to produce output bytes.
package match

import (
	"fmt"
	"sort"

	"github.com/kcansari/repren/internal/pattern"
)

// Match is a single candidate or selected match: which rule produced
// it, its byte range, and the submatch indices needed to expand that
// rule's replacement template against the original input.
type Match struct {
	RuleIndex int
	Start, End int
	Indices    []int // as returned by regexp.FindSubmatchIndex
}

func (m Match) overlaps(o Match) bool {
	return m.Start < o.End && o.Start < m.End
}

// Collect runs every rule in rs against input and returns every
// non-overlapping match each rule finds on its own, concatenated in
// rule order (and, within a rule, in left-to-right match order). This
// is the raw candidate list before overlap resolution.
func Collect(rs *pattern.RuleSet, input []byte) []Match {
	var all []Match
	for ruleIdx, rule := range rs.Rules {
		indices := rule.Regexp.FindAllSubmatchIndex(input, -1)
		for _, idx := range indices {
			all = append(all, Match{
				RuleIndex: ruleIdx,
				Start:     idx[0],
				End:       idx[1],
				Indices:   idx,
			})
		}
	}
	return all
}

// Warning describes a candidate match dropped because it overlapped an
// already-selected neighbor.
type Warning struct {
	Dropped, Kept Match
	Side          string // "left" or "right"
}

func (w Warning) String() string {
	return fmt.Sprintf("overlap: rule %d match [%d,%d) dropped, overlaps rule %d match [%d,%d) to the %s",
		w.Dropped.RuleIndex, w.Dropped.Start, w.Dropped.End,
		w.Kept.RuleIndex, w.Kept.Start, w.Kept.End, w.Side)
}

// Resolve prunes candidates into a disjoint, start-ordered selection.
// Candidates are inserted in the order Collect produced them (rule
// order, then left-to-right within a rule); a candidate overlapping
// its would-be left or right neighbor in the selection built so far is
// discarded. Because insertion order is rule order, the rule listed
// first in the rule set wins any conflict.
func Resolve(candidates []Match) (selection []Match, warnings []Warning) {
	selection = make([]Match, 0, len(candidates))

	for _, cand := range candidates {
		idx := sort.Search(len(selection), func(i int) bool {
			return selection[i].Start >= cand.Start
		})

		if idx > 0 && selection[idx-1].overlaps(cand) {
			warnings = append(warnings, Warning{Dropped: cand, Kept: selection[idx-1], Side: "left"})
			continue
		}
		if idx < len(selection) && selection[idx].overlaps(cand) {
			warnings = append(warnings, Warning{Dropped: cand, Kept: selection[idx], Side: "right"})
			continue
		}

		selection = append(selection, Match{})
		copy(selection[idx+1:], selection[idx:])
		selection[idx] = cand
	}

	return selection, warnings
}
