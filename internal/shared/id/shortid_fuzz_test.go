package id

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzParsePrefixedID(f *testing.F) {
	seeds := []string{
		"sum_xK9mP2vL3nQa",
		"",
		"nounderscore",
		"_leadingunderscore",
		"trailing_",
		"multiple_under_scores_here",
		"中文_测试",
		strings.Repeat("a", 1000) + "_" + strings.Repeat("b", 1000),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			return
		}

		prefix, shortID, err := ParsePrefixedID(input)
		if !strings.Contains(input, "_") {
			if err == nil {
				t.Errorf("ParsePrefixedID(%q) should fail without underscore", input)
			}
			return
		}
		if err != nil {
			t.Fatalf("ParsePrefixedID(%q) unexpected error: %v", input, err)
		}
		if prefix+"_"+shortID != input {
			t.Errorf("ParsePrefixedID(%q) = (%q, %q), does not rebuild input", input, prefix, shortID)
		}
	})
}

func TestNewSummaryID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		got, err := NewSummaryID()
		if err != nil {
			t.Fatalf("NewSummaryID() error: %v", err)
		}
		if !IsSummaryID(got) {
			t.Fatalf("NewSummaryID() = %q, not a summary id", got)
		}
		if _, dup := seen[got]; dup {
			t.Fatalf("NewSummaryID() repeated %q", got)
		}
		seen[got] = struct{}{}
	}
}

func TestIsSummaryID(t *testing.T) {
	cases := map[string]bool{
		"sum_abcdefABCDEF": true,
		"sum_abc":          false,
		"fa_abcdefABCDEF":  false,
		"sum_abcdef-BCDEF": false,
		"":                 false,
	}
	for in, want := range cases {
		if got := IsSummaryID(in); got != want {
			t.Errorf("IsSummaryID(%q) = %v, want %v", in, got, want)
		}
	}
}
