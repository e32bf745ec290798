package query

import (
	"reflect"
	"testing"

	"github.com/wizenheimer/paragraphsearch/corpus"
	"github.com/wizenheimer/paragraphsearch/internal/lemma"
)

type identityLemmatizer struct{}

func (identityLemmatizer) Lemma(token string) string { return token }

// ═══════════════════════════════════════════════════════════════════════════════
// BOOLEAN RESOLUTION TESTS (scenarios 1-3 of §8)
// ═══════════════════════════════════════════════════════════════════════════════

func TestResolveBoolean_OrOnly(t *testing.T) {
	snap := buildSnapshot(t,
		corpus.ParagraphRecord{Tokenized: "red car fast"},
		corpus.ParagraphRecord{Tokenized: "blue car slow"},
		corpus.ParagraphRecord{Tokenized: "red bike"},
	)

	subTokens, err := ParseBoolean("red", identityLemmatizer{})
	if err != nil {
		t.Fatalf("ParseBoolean: %v", err)
	}
	bm, err := ResolveBoolean(snap, subTokens)
	if err != nil {
		t.Fatalf("ResolveBoolean: %v", err)
	}

	got := SortedIDs(bm)
	want := []int{0, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("boolean OR(red) = %v, want %v", got, want)
	}
}

func TestResolveBoolean_AndOnly(t *testing.T) {
	snap := buildSnapshot(t,
		corpus.ParagraphRecord{Tokenized: "red car fast"},
		corpus.ParagraphRecord{Tokenized: "blue car slow"},
		corpus.ParagraphRecord{Tokenized: "red bike"},
	)

	subTokens, err := ParseBoolean(`"red" "car"`, identityLemmatizer{})
	if err != nil {
		t.Fatalf("ParseBoolean: %v", err)
	}
	bm, err := ResolveBoolean(snap, subTokens)
	if err != nil {
		t.Fatalf("ResolveBoolean: %v", err)
	}

	got := SortedIDs(bm)
	want := []int{0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("boolean AND(red,car) = %v, want %v", got, want)
	}
}

func TestResolveBoolean_MixedAndOr(t *testing.T) {
	snap := buildSnapshot(t,
		corpus.ParagraphRecord{Tokenized: "red car fast"},
		corpus.ParagraphRecord{Tokenized: "blue car slow"},
		corpus.ParagraphRecord{Tokenized: "red bike"},
	)

	// "car" (AND) combined with slow/bike (OR) should intersect the
	// AND postings with the union of the OR postings.
	subTokens, err := ParseBoolean(`"car" slow bike`, identityLemmatizer{})
	if err != nil {
		t.Fatalf("ParseBoolean: %v", err)
	}
	bm, err := ResolveBoolean(snap, subTokens)
	if err != nil {
		t.Fatalf("ResolveBoolean: %v", err)
	}

	got := SortedIDs(bm)
	want := []int{1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("boolean mixed = %v, want %v", got, want)
	}
}

func TestParseBoolean_RejectsMalformedWildcard(t *testing.T) {
	if _, err := ParseBoolean("a*b*c", identityLemmatizer{}); err != ErrMalformedWildcard {
		t.Errorf("ParseBoolean error = %v, want ErrMalformedWildcard", err)
	}
}
