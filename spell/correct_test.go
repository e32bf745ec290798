package spell

import (
	"testing"

	"github.com/wizenheimer/paragraphsearch/corpus"
	"github.com/wizenheimer/paragraphsearch/index"
)

// ═══════════════════════════════════════════════════════════════════════════════
// SPELL CORRECTION TESTS (scenario 7 of §8)
// ═══════════════════════════════════════════════════════════════════════════════

func TestCorrect_ClosestVocabularyTerm(t *testing.T) {
	snap, err := index.Build(corpus.NewTable([]corpus.ParagraphRecord{
		{Tokenized: "colour"},
		{Tokenized: "vehicle aircraft"},
	}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	correction, distance, ok := Correct(snap, "colur")
	if !ok {
		t.Fatal("Correct: expected a match")
	}
	if correction != "colour" {
		t.Errorf("Correct(colur) = %q, want %q", correction, "colour")
	}
	if distance != 1 {
		t.Errorf("Correct(colur) distance = %d, want 1", distance)
	}
}

func TestCorrect_EmptyVocabulary(t *testing.T) {
	snap, _ := index.Build(corpus.NewTable(nil))
	if _, _, ok := Correct(snap, "anything"); ok {
		t.Error("Correct over an empty vocabulary should report not-found")
	}
}
