package index

import "github.com/wizenheimer/paragraphsearch/corpus"

// BuildBiwords constructs the biword index: for every adjacent pair of
// tokens (t[i], t[i+1]) in a paragraph's token sequence, record that the
// biword "t[i] t[i+1]" occurs in that paragraph. Storage is identical in
// shape to the inverted index's postings — term string to bitmap of
// paragraph IDs — because a biword is, from the index's point of view,
// just another vocabulary entry whose "term" happens to contain a space.
func BuildBiwords(rows []corpus.ParagraphRecord) *Postings {
	biwords := NewPostings()
	for _, row := range rows {
		seq := corpus.TokenSequence(row.Tokenized)
		for i := 0; i+1 < len(seq); i++ {
			biwords.Add(seq[i]+" "+seq[i+1], row.ID)
		}
	}
	return biwords
}
