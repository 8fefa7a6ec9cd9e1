package pattern

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/kcansari/repren/internal/casing"
)

// Options controls how Load expands and compiles a rule set.
type Options struct {
	Literal      bool
	WordBreaks   bool
	Insensitive  bool
	DotAll       bool
	PreserveCase bool
}

// validate enforces the one conflict rule: insensitive and
// preserve-case cannot be requested together.
func (o Options) validate() error {
	if o.Insensitive && o.PreserveCase {
		return fmt.Errorf("pattern: --insensitive and --preserve-case are mutually exclusive")
	}
	return nil
}

// Load parses blob as a pattern file (one <pattern>\t<replacement> rule
// per non-blank, non-comment line), expands each line per Options, and
// compiles the result into a RuleSet.
func Load(blob string, opts Options) (*RuleSet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var pairs []sourcePair
	for lineNo, line := range strings.Split(blob, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("pattern: line %d: expected exactly one tab-separated pattern/replacement pair, got %d fields", lineNo+1, len(fields))
		}

		expanded, err := expandLine(fields[0], fields[1], opts)
		if err != nil {
			return nil, fmt.Errorf("pattern: line %d: %w", lineNo+1, err)
		}
		pairs = append(pairs, expanded...)
	}

	pairs = dedupe(pairs)
	if len(pairs) == 0 {
		return nil, fmt.Errorf("pattern: expanded rule set is empty")
	}

	return compile(pairs, opts)
}

// LoadPair builds a one-line rule set from a single (from, to) shortcut,
// the equivalent of --from/--to on the CLI.
func LoadPair(from, to string, opts Options) (*RuleSet, error) {
	return Load(from+"\t"+to, opts)
}

func expandLine(pat, rep string, opts Options) ([]sourcePair, error) {
	if opts.Literal {
		pat = regexp.QuoteMeta(pat)
	}

	pairs := []sourcePair{{pattern: pat, replacement: rep}}
	if opts.PreserveCase {
		pairs = caseVariantPairs(pat, rep)
	}

	if opts.WordBreaks {
		for i := range pairs {
			pairs[i].pattern = `\b` + pairs[i].pattern + `\b`
		}
	}

	return pairs, nil
}

// caseVariantPairs zips the four case variants of pat with the four
// case variants of rep into four additional pairs, adds the original
// (pat, rep) pair, deduplicates (two variants can collide when a word
// has no case-sensitive spelling), and sorts the result deterministically.
// Expansion always runs against the source (string) form, never the
// compiled form.
func caseVariantPairs(pat, rep string) []sourcePair {
	patVariants := casing.Variants(pat)
	repVariants := casing.Variants(rep)

	pairs := make([]sourcePair, 0, 5)
	pairs = append(pairs, sourcePair{pattern: pat, replacement: rep})
	for i := range patVariants {
		pairs = append(pairs, sourcePair{pattern: patVariants[i], replacement: repVariants[i]})
	}

	pairs = dedupeStable(pairs)
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].pattern != pairs[j].pattern {
			return pairs[i].pattern < pairs[j].pattern
		}
		return pairs[i].replacement < pairs[j].replacement
	})
	return pairs
}

// dedupe removes duplicate (pattern, replacement) pairs across the
// whole rule set, keeping the first occurrence's position — rule set
// invariant (a): duplicates are dropped before compilation, but order
// is otherwise preserved since it is the overlap resolver's tie-break.
func dedupe(pairs []sourcePair) []sourcePair {
	return dedupeStable(pairs)
}

func dedupeStable(pairs []sourcePair) []sourcePair {
	seen := make(map[sourcePair]bool, len(pairs))
	out := make([]sourcePair, 0, len(pairs))
	for _, p := range pairs {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func compile(pairs []sourcePair, opts Options) (*RuleSet, error) {
	var flags string
	if opts.Insensitive {
		flags += "i"
	}
	if opts.DotAll {
		flags += "s"
	}

	rules := make([]Rule, 0, len(pairs))
	for _, p := range pairs {
		expr := p.pattern
		if flags != "" {
			expr = "(?" + flags + ")" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("pattern: cannot compile %q: %w", p.pattern, err)
		}
		rules = append(rules, Rule{
			SourcePattern:     p.pattern,
			SourceReplacement: p.replacement,
			Regexp:            re,
			Replacement:       []byte(p.replacement),
		})
	}

	return &RuleSet{Rules: rules}, nil
}
