package index

import "github.com/wizenheimer/paragraphsearch/corpus"

// Snapshot is the complete, immutable output of Build: the inverted
// index, both permuterm indexes, the biword index, and the sorted
// vocabulary they all share. Once Build returns, nothing in a Snapshot
// is ever mutated again — a new corpus produces a brand new Snapshot,
// swapped in atomically by the caller (see internal/snapshot and
// search.Engine.Reload) rather than patched in place.
type Snapshot struct {
	Table            *corpus.Table
	Vocabulary       []string
	Inverted         *Postings
	Permuterm        *TermIndex
	ReversePermuterm *TermIndex
	Biwords          *Postings
	TotalParagraphs  int
}

// Build constructs a complete Snapshot over table: the inverted index
// (one posting per distinct term per paragraph), the biword index (one
// posting per adjacent token pair per paragraph), and both permuterm
// indexes derived from the resulting vocabulary. Returns ErrEmptyCorpus
// if table has no paragraphs — the caller may still use the (empty)
// Snapshot returned alongside it, since every lookup against an empty
// index simply reports no matches rather than panicking.
func Build(table *corpus.Table) (*Snapshot, error) {
	inverted := NewPostings()
	for _, row := range table.All() {
		for _, term := range corpus.Tokens(row.Tokenized) {
			inverted.Add(term, row.ID)
		}
	}

	vocab := inverted.Vocabulary()
	snap := &Snapshot{
		Table:            table,
		Vocabulary:       vocab,
		Inverted:         inverted,
		Permuterm:        BuildPermuterm(vocab),
		ReversePermuterm: BuildReversePermuterm(vocab),
		Biwords:          BuildBiwords(table.All()),
		TotalParagraphs:  table.Len(),
	}

	if table.Len() == 0 {
		return snap, ErrEmptyCorpus
	}
	return snap, nil
}
