package spell

import "github.com/wizenheimer/paragraphsearch/index"

// Correct finds the vocabulary term closest to token by Damerau-Levenshtein
// distance, for use after a zero-result query on a non-wildcard
// sub-token (§4.7: "Spell correction runs only after a zero-result
// query, only on non-wildcard tokens"). Ties are broken by first
// encountered in vocabulary iteration order, which snap.Vocabulary
// guarantees is sorted ascending — making the tiebreak deterministic.
//
// Returns ok=false if the vocabulary is empty.
func Correct(snap *index.Snapshot, token string) (correction string, distance int, ok bool) {
	best := -1
	for _, w := range snap.Vocabulary {
		d := Distance(token, w, true)
		if best == -1 || d < best {
			best = d
			correction = w
		}
	}
	if best == -1 {
		return "", 0, false
	}
	return correction, best, true
}
