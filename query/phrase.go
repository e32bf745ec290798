package query

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/wizenheimer/paragraphsearch/index"
)

// expandToken returns the set of concrete vocabulary terms a phrase
// token stands for: a single-element set {token} for a plain token (no
// lemmatization — §9's open question 4 preserves surface-form
// adjacency), or its wildcard expansion for a token containing '*'.
func expandToken(snap *index.Snapshot, token string) ([]string, error) {
	if !containsStar(token) {
		return []string{token}, nil
	}
	return ResolveWildcard(snap, token)
}

func containsStar(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '*' {
			return true
		}
	}
	return false
}

// ResolvePhrase resolves a sequence of phrase tokens (any of which may
// contain a single wildcard) against the biword index, per §4.5.
//
// A solitary token (N=1) has no adjacent pair to form a biword from; it
// is resolved directly against the inverted index instead, the natural
// degenerate case the phrase resolver's biword construction doesn't
// cover.
func ResolvePhrase(snap *index.Snapshot, tokens []string) (*roaring.Bitmap, error) {
	if len(tokens) == 0 {
		return roaring.NewBitmap(), nil
	}
	if len(tokens) == 1 {
		return postingsFor(snap, SubToken{Term: tokens[0], IsWildcard: containsStar(tokens[0])})
	}

	originalBiwords := len(tokens) - 1
	expandedCount := 0
	var postings []*roaring.Bitmap

	for i := 0; i+1 < len(tokens); i++ {
		left, err := expandToken(snap, tokens[i])
		if err != nil {
			return nil, err
		}
		right, err := expandToken(snap, tokens[i+1])
		if err != nil {
			return nil, err
		}

		for _, l := range left {
			for _, r := range right {
				expandedCount++
				bw := l + " " + r
				if bm, ok := snap.Biwords.Lookup(bw); ok {
					postings = append(postings, bm)
				} else {
					postings = append(postings, roaring.NewBitmap())
				}
			}
		}
	}

	if expandedCount > originalBiwords {
		return roaring.FastOr(postings...), nil
	}
	return roaring.FastAnd(postings...), nil
}
