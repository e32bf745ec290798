package search

import (
	"strings"

	"github.com/wizenheimer/paragraphsearch/index"
	"github.com/wizenheimer/paragraphsearch/internal/lemma"
	"github.com/wizenheimer/paragraphsearch/spell"
)

// correctQuery rewrites every plain (non-wildcard) sub-token of query
// that is absent from the vocabulary with its closest Damerau-Levenshtein
// match, per §4.7. Quote wrapping is preserved on AND-terms. Returns the
// rewritten query and whether anything actually changed — callers should
// only re-run resolution when changed is true, since the spec's retry is
// a single shot, not a loop to a fixed point.
func correctQuery(snap *index.Snapshot, query string, lem lemma.Lemmatizer) (corrected string, changed bool) {
	fields := strings.Fields(query)
	out := make([]string, len(fields))

	for i, field := range fields {
		quoted := strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) && len(field) >= 2
		term := field
		if quoted {
			term = field[1 : len(field)-1]
		}

		if strings.Contains(term, "*") {
			out[i] = field
			continue
		}

		base := lem.Lemma(term)
		if _, ok := snap.Inverted.Lookup(base); ok {
			out[i] = field
			continue
		}

		correction, _, ok := spell.Correct(snap, base)
		if !ok || correction == base {
			out[i] = field
			continue
		}

		changed = true
		if quoted {
			out[i] = `"` + correction + `"`
		} else {
			out[i] = correction
		}
	}

	return strings.Join(out, " "), changed
}
