package casing

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantSep  string
		wantWord []string
	}{
		{"underscore simple", "foo_bar", "_", []string{"foo", "bar"}},
		{"underscore leading empty", "_foo", "_", []string{"", "foo"}},
		{"underscore all caps", "FOO_BAR", "_", []string{"FOO", "BAR"}},
		{"camel simple", "fooBar", "", []string{"foo", "Bar"}},
		{"camel upper first", "FooBar", "", []string{"Foo", "Bar"}},
		{"camel acronym run", "HTTPResponse", "", []string{"HTTP", "Response"}},
		{"camel acronym at end", "ParseHTTP", "", []string{"Parse", "HTTP"}},
		{"single word", "foo", "", []string{"foo"}},
		{"empty", "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, words := Split(tt.input)
			if sep != tt.wantSep {
				t.Errorf("Split(%q) sep = %q, want %q", tt.input, sep, tt.wantSep)
			}
			if !reflect.DeepEqual(words, tt.wantWord) {
				t.Errorf("Split(%q) words = %v, want %v", tt.input, words, tt.wantWord)
			}
		})
	}
}
