package query

import (
	"reflect"
	"testing"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PARSER TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestParseBoolean_QuotedIsAndTerm(t *testing.T) {
	got, err := ParseBoolean(`"red" car`, identityLemmatizer{})
	if err != nil {
		t.Fatalf("ParseBoolean: %v", err)
	}
	want := []SubToken{
		{Term: "red", Required: true},
		{Term: "car", Required: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseBoolean = %+v, want %+v", got, want)
	}
}

func TestParseBoolean_WildcardNeverLemmatized(t *testing.T) {
	got, err := ParseBoolean("run* cars", upperSuffixLemmatizer{})
	if err != nil {
		t.Fatalf("ParseBoolean: %v", err)
	}
	if got[0].Term != "run*" || !got[0].IsWildcard {
		t.Errorf("wildcard sub-token altered: %+v", got[0])
	}
	if got[1].Term != "cars-lemma" {
		t.Errorf("plain sub-token not lemmatized: %+v", got[1])
	}
}

func TestParsePhrase_StripsQuotes(t *testing.T) {
	got := ParsePhrase(`"red" "car"`)
	want := []string{"red", "car"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParsePhrase = %v, want %v", got, want)
	}
}

type upperSuffixLemmatizer struct{}

func (upperSuffixLemmatizer) Lemma(token string) string { return token + "-lemma" }
