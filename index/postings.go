// Package index builds and stores the four in-memory indexes the query
// resolver consults: the inverted index, the permuterm and reverse
// permuterm indexes, and the biword index. All four are immutable once
// Build returns — see Snapshot.
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHY ROARING BITMAPS FOR POSTINGS?
// ═══════════════════════════════════════════════════════════════════════════════
// A postings list is, by definition, a sorted set of small non-negative
// integers (paragraph IDs). A Roaring bitmap stores exactly that: a
// compressed, chunked sorted-array representation with O(1) cardinality,
// and fast set union/intersection/difference — precisely the boolean
// algebra §4.3's query resolver needs, without the pointer-chasing and
// cache misses of a linked posting structure.
//
//	Inverted["brown"] → Bitmap{1, 3, 7}   (paragraphs 1, 3, 7 contain "brown")
//	Inverted["fox"]   → Bitmap{3, 7, 9}
//
// Intersection ("brown" AND "fox") and union ("brown" OR "fox") are single
// Roaring calls, not a manual two-pointer sweep — but the result is the
// same flat, sorted, deduplicated form §5 calls for.
// ═══════════════════════════════════════════════════════════════════════════════
package index

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// Postings maps vocabulary terms to the sorted, deduplicated set of
// paragraph IDs containing that term at least once.
type Postings struct {
	byTerm map[string]*roaring.Bitmap
}

// NewPostings returns an empty postings store.
func NewPostings() *Postings {
	return &Postings{byTerm: make(map[string]*roaring.Bitmap)}
}

// Add records that paragraphID contains term at least once.
func (p *Postings) Add(term string, paragraphID int) {
	bm, ok := p.byTerm[term]
	if !ok {
		bm = roaring.NewBitmap()
		p.byTerm[term] = bm
	}
	bm.Add(uint32(paragraphID))
}

// Lookup returns the posting bitmap for term, and whether term is in
// the vocabulary at all.
func (p *Postings) Lookup(term string) (*roaring.Bitmap, bool) {
	bm, ok := p.byTerm[term]
	return bm, ok
}

// IDs returns the sorted paragraph IDs for term, or nil if term is not
// in the vocabulary. This is invariant 1 of §8 made concrete: the
// returned slice is always strictly increasing.
func (p *Postings) IDs(term string) []int {
	bm, ok := p.byTerm[term]
	if !ok {
		return nil
	}
	ids := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		ids = append(ids, int(it.Next()))
	}
	return ids
}

// DocFreq returns the document frequency (df) of term: the number of
// distinct paragraphs containing it. Zero if term is unknown.
func (p *Postings) DocFreq(term string) int {
	bm, ok := p.byTerm[term]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// Vocabulary returns every indexed term in ascending sorted order,
// deterministic across runs on identical input (§4.1's output contract).
func (p *Postings) Vocabulary() []string {
	terms := make([]string, 0, len(p.byTerm))
	for t := range p.byTerm {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// Len reports the number of distinct terms (or biwords) stored.
func (p *Postings) Len() int {
	return len(p.byTerm)
}
