package query

import (
	"reflect"
	"testing"

	"github.com/wizenheimer/paragraphsearch/corpus"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PHRASE RESOLUTION TESTS (scenarios 4-6 of §8)
// ═══════════════════════════════════════════════════════════════════════════════

func TestResolvePhrase_NoWildcard(t *testing.T) {
	snap := buildSnapshot(t,
		corpus.ParagraphRecord{Tokenized: "red car fast"},
		corpus.ParagraphRecord{Tokenized: "blue car slow"},
		corpus.ParagraphRecord{Tokenized: "red bike"},
	)

	bm, err := ResolvePhrase(snap, ParsePhrase("red car"))
	if err != nil {
		t.Fatalf("ResolvePhrase: %v", err)
	}

	got := SortedIDs(bm)
	want := []int{0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phrase \"red car\" = %v, want %v", got, want)
	}
}

func TestResolvePhrase_WithWildcardUnionsAcrossExpansions(t *testing.T) {
	snap := buildSnapshot(t,
		corpus.ParagraphRecord{Tokenized: "bat ball"},
		corpus.ParagraphRecord{Tokenized: "cat call"},
		corpus.ParagraphRecord{Tokenized: "bat call"},
	)

	bm, err := ResolvePhrase(snap, []string{"*at", "call"})
	if err != nil {
		t.Fatalf("ResolvePhrase: %v", err)
	}

	got := SortedIDs(bm)
	want := []int{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phrase \"*at call\" = %v, want %v", got, want)
	}
}

func TestResolvePhrase_SingleToken(t *testing.T) {
	snap := buildSnapshot(t,
		corpus.ParagraphRecord{Tokenized: "red car fast"},
		corpus.ParagraphRecord{Tokenized: "blue car slow"},
	)

	bm, err := ResolvePhrase(snap, []string{"car"})
	if err != nil {
		t.Fatalf("ResolvePhrase: %v", err)
	}

	got := SortedIDs(bm)
	want := []int{0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("phrase \"car\" = %v, want %v", got, want)
	}
}
