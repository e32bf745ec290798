package index

import (
	"testing"

	"github.com/wizenheimer/paragraphsearch/corpus"
)

// ═══════════════════════════════════════════════════════════════════════════════
// BUILD TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func sampleTable() *corpus.Table {
	return corpus.NewTable([]corpus.ParagraphRecord{
		{DocumentName: "d", PageNumber: 0, ParagraphNumber: 0, Tokenized: "red car fast"},
		{DocumentName: "d", PageNumber: 0, ParagraphNumber: 1, Tokenized: "blue car slow"},
		{DocumentName: "d", PageNumber: 0, ParagraphNumber: 2, Tokenized: "red bike"},
	})
}

func TestBuild_InvertedIndex(t *testing.T) {
	snap, err := Build(sampleTable())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	ids := snap.Inverted.IDs("red")
	if len(ids) != 2 || ids[0] != 0 || ids[1] != 2 {
		t.Errorf("IDs(red) = %v, want [0 2]", ids)
	}

	ids = snap.Inverted.IDs("car")
	if len(ids) != 2 || ids[0] != 0 || ids[1] != 1 {
		t.Errorf("IDs(car) = %v, want [0 1]", ids)
	}
}

func TestBuild_VocabularySorted(t *testing.T) {
	snap, _ := Build(sampleTable())
	for i := 1; i < len(snap.Vocabulary); i++ {
		if snap.Vocabulary[i-1] >= snap.Vocabulary[i] {
			t.Fatalf("vocabulary not strictly sorted at %d: %v", i, snap.Vocabulary)
		}
	}
}

func TestBuild_PostingsStrictlyIncreasing(t *testing.T) {
	snap, _ := Build(sampleTable())
	for _, term := range snap.Vocabulary {
		ids := snap.Inverted.IDs(term)
		for i := 1; i < len(ids); i++ {
			if ids[i-1] >= ids[i] {
				t.Errorf("postings for %q not strictly increasing: %v", term, ids)
			}
		}
	}
}

func TestBuild_Biwords(t *testing.T) {
	snap, _ := Build(sampleTable())

	bm, ok := snap.Biwords.Lookup("red car")
	if !ok {
		t.Fatal("expected biword \"red car\" to be indexed")
	}
	if !bm.Contains(0) {
		t.Errorf("biword \"red car\" should contain paragraph 0")
	}
	if bm.Contains(2) {
		t.Errorf("biword \"red car\" should not contain paragraph 2")
	}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	snap, err := Build(corpus.NewTable(nil))
	if err != ErrEmptyCorpus {
		t.Fatalf("Build(empty) error = %v, want ErrEmptyCorpus", err)
	}
	if snap.TotalParagraphs != 0 {
		t.Errorf("TotalParagraphs = %d, want 0", snap.TotalParagraphs)
	}
}

func TestBuild_UnknownTermLookup(t *testing.T) {
	snap, _ := Build(sampleTable())
	if _, ok := snap.Inverted.Lookup("nonexistent"); ok {
		t.Error("Lookup(nonexistent) should report not-found")
	}
	if df := snap.Inverted.DocFreq("nonexistent"); df != 0 {
		t.Errorf("DocFreq(nonexistent) = %d, want 0", df)
	}
}
