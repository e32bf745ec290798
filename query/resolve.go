// Package query parses a raw query string and resolves it against an
// index.Snapshot: boolean term queries via ParseBoolean/ResolveBoolean,
// phrase queries via ParsePhrase/ResolvePhrase, with wildcard expansion
// (ResolveWildcard) shared by both paths.
package query

import (
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/wizenheimer/paragraphsearch/index"
	"github.com/wizenheimer/paragraphsearch/internal/lemma"
)

// Resolve runs the full query pipeline: lowercase, parse (boolean or
// phrase mode per isPhrase), and resolve against snap. Returns the
// candidate paragraph IDs as a Roaring bitmap; callers needing a plain
// sorted slice should call SortedIDs on the result.
func Resolve(snap *index.Snapshot, rawQuery string, isPhrase bool, lem lemma.Lemmatizer) (*roaring.Bitmap, error) {
	lowered := strings.ToLower(rawQuery)

	if isPhrase {
		tokens := ParsePhrase(lowered)
		return ResolvePhrase(snap, tokens)
	}

	subTokens, err := ParseBoolean(lowered, lem)
	if err != nil {
		return nil, err
	}
	return ResolveBoolean(snap, subTokens)
}

// SortedIDs converts a Roaring bitmap into its sorted ascending paragraph
// ID slice — the output contract §4.3 and §4.5 both specify.
func SortedIDs(bm *roaring.Bitmap) []int {
	if bm == nil {
		return nil
	}
	ids := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		ids = append(ids, int(it.Next()))
	}
	return ids
}
