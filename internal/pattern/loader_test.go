package pattern

import "testing"

func TestLoadSimple(t *testing.T) {
	rs, err := Load("foo\tX\nbar\tY\n", Options{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(rs.Rules) != 2 {
		t.Fatalf("len(rs.Rules) = %d, want 2", len(rs.Rules))
	}
	if rs.Rules[0].SourcePattern != "foo" || rs.Rules[1].SourcePattern != "bar" {
		t.Errorf("rule order not preserved: %q, %q", rs.Rules[0].SourcePattern, rs.Rules[1].SourcePattern)
	}
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	rs, err := Load("# a comment\n\nfoo\tX\n   # indented comment\n", Options{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(rs.Rules) != 1 {
		t.Fatalf("len(rs.Rules) = %d, want 1", len(rs.Rules))
	}
}

func TestLoadRejectsBadFieldCount(t *testing.T) {
	_, err := Load("foo\tbar\tbaz\n", Options{})
	if err == nil {
		t.Fatal("expected error for a 3-field line")
	}
}

func TestLoadRejectsInsensitiveAndPreserveCaseTogether(t *testing.T) {
	_, err := Load("foo\tX\n", Options{Insensitive: true, PreserveCase: true})
	if err == nil {
		t.Fatal("expected error when --insensitive and --preserve-case are both set")
	}
}

func TestLoadLiteralEscapesMetacharacters(t *testing.T) {
	rs, err := Load("a.b\tX\n", Options{Literal: true})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if rs.Rules[0].Regexp.MatchString("aXb") {
		t.Error("literal pattern should not match 'aXb' as if '.' were a wildcard")
	}
	if !rs.Rules[0].Regexp.MatchString("a.b") {
		t.Error("literal pattern should match the literal text 'a.b'")
	}
}

func TestLoadWordBreaks(t *testing.T) {
	rs, err := Load("foo\tX\n", Options{WordBreaks: true})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if rs.Rules[0].Regexp.MatchString("foobar") {
		t.Error("word-break pattern should not match inside a larger word")
	}
	if !rs.Rules[0].Regexp.MatchString("foo bar") {
		t.Error("word-break pattern should match a standalone word")
	}
}

func TestLoadPreserveCaseExpandsFourVariants(t *testing.T) {
	rs, err := Load("foo_bar\txxx_yyy\n", Options{PreserveCase: true})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(rs.Rules) != 4 {
		t.Fatalf("len(rs.Rules) = %d, want 4 (original + 4 variants, original deduplicated against foo_bar)", len(rs.Rules))
	}
}

func TestLoadPair(t *testing.T) {
	rs, err := LoadPair("foo", "bar", Options{})
	if err != nil {
		t.Fatalf("LoadPair returned error: %v", err)
	}
	if len(rs.Rules) != 1 || rs.Rules[0].SourcePattern != "foo" {
		t.Fatalf("unexpected rule set: %+v", rs.Rules)
	}
}

func TestLoadEmptyRuleSetIsError(t *testing.T) {
	_, err := Load("# only a comment\n", Options{})
	if err == nil {
		t.Fatal("expected error for an empty expanded rule set")
	}
}
