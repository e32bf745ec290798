package query

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/wizenheimer/paragraphsearch/index"
)

// postingsFor returns the union of postings for every vocabulary term a
// sub-token resolves to. A plain term resolves to at most one vocabulary
// term; a wildcard term may resolve to many, and §4.2 directs the
// resolver to return "the union of their postings" in that case — an
// empty result (unknown term, or a wildcard matching nothing) yields an
// empty bitmap rather than an error.
func postingsFor(snap *index.Snapshot, sub SubToken) (*roaring.Bitmap, error) {
	var terms []string
	if sub.IsWildcard {
		matched, err := ResolveWildcard(snap, sub.Term)
		if err != nil {
			return nil, err
		}
		terms = matched
	} else if _, ok := snap.Inverted.Lookup(sub.Term); ok {
		terms = []string{sub.Term}
	}

	bitmaps := make([]*roaring.Bitmap, 0, len(terms))
	for _, t := range terms {
		if bm, ok := snap.Inverted.Lookup(t); ok {
			bitmaps = append(bitmaps, bm)
		}
	}
	return roaring.FastOr(bitmaps...), nil
}

// ResolveBoolean combines a parsed query's AND-terms and OR-terms into a
// single candidate set, per §4.3:
//
//	AND-terms ∅, OR-terms non-empty  → union of OR postings
//	OR-terms ∅, AND-terms non-empty  → intersection of AND postings
//	both non-empty                   → intersection(AND) ∩ union(OR)
//	both ∅                            → empty set
//
// This is the "first (documented) behavior" the spec adopts for the
// boolean-filter open question — intersecting AND-results with OR-results
// rather than discarding OR-terms whenever an AND-term is present.
func ResolveBoolean(snap *index.Snapshot, subTokens []SubToken) (*roaring.Bitmap, error) {
	var andSets, orSets []*roaring.Bitmap
	for _, sub := range subTokens {
		bm, err := postingsFor(snap, sub)
		if err != nil {
			return nil, err
		}
		if sub.Required {
			andSets = append(andSets, bm)
		} else {
			orSets = append(orSets, bm)
		}
	}

	switch {
	case len(andSets) == 0 && len(orSets) == 0:
		return roaring.NewBitmap(), nil
	case len(andSets) == 0:
		return roaring.FastOr(orSets...), nil
	case len(orSets) == 0:
		return roaring.FastAnd(andSets...), nil
	default:
		and := roaring.FastAnd(andSets...)
		or := roaring.FastOr(orSets...)
		return roaring.FastAnd(and, or), nil
	}
}
