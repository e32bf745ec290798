package snapshot

import (
	"testing"

	"github.com/wizenheimer/paragraphsearch/corpus"
	"github.com/wizenheimer/paragraphsearch/index"
)

func TestHolder_LoadReflectsLatestStore(t *testing.T) {
	first, _ := index.Build(corpus.NewTable([]corpus.ParagraphRecord{{Tokenized: "one"}}))
	h := NewHolder(first)

	if got := h.Load(); got != first {
		t.Fatalf("Load() = %v, want the initial snapshot", got)
	}

	second, _ := index.Build(corpus.NewTable([]corpus.ParagraphRecord{{Tokenized: "two"}}))
	h.Store(second)

	if got := h.Load(); got != second {
		t.Fatalf("Load() after Store = %v, want the new snapshot", got)
	}
}
