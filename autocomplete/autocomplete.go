// Package autocomplete resolves prefix completions for the last
// whitespace-delimited token of a query string, per §4.8.
package autocomplete

import (
	"sort"
	"strings"

	"github.com/wizenheimer/paragraphsearch/index"
	"github.com/wizenheimer/paragraphsearch/internal/inflect"
	"github.com/wizenheimer/paragraphsearch/spell"
)

// candidate pairs a matched vocabulary term with the ranking keys §4.8
// orders candidates by: edit distance to the typed prefix (ascending),
// then postings-list length (descending, as a frequency proxy).
type candidate struct {
	term     string
	distance int
	freq     int
}

// Complete returns up to k full query strings, each formed by
// reattaching the query's preceding tokens ("including_previous") ahead
// of one inflected completion of its last token.
//
// Resolution: the last token is matched against the vocabulary via the
// permuterm index's prefix lookup (equivalent to resolving it as a
// `prefix*` wildcard, §4.2); matches are ranked by edit distance then
// frequency; each ranked term is expanded to its full inflection set via
// inflector, results deduplicated in rank order and truncated to k.
func Complete(snap *index.Snapshot, rawQuery string, inflector inflect.Inflector, k int) []string {
	fields := strings.Fields(rawQuery)
	if len(fields) == 0 || k <= 0 {
		return nil
	}

	prefixTerms := fields[:len(fields)-1]
	last := fields[len(fields)-1]

	matches := snap.Permuterm.Lookup(last)
	candidates := make([]candidate, 0, len(matches))
	for _, term := range matches {
		candidates = append(candidates, candidate{
			term:     term,
			distance: spell.Distance(last, term, true),
			freq:     snap.Inverted.DocFreq(term),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		if candidates[i].freq != candidates[j].freq {
			return candidates[i].freq > candidates[j].freq
		}
		return candidates[i].term < candidates[j].term
	})

	seen := make(map[string]struct{})
	completions := make([]string, 0, k)
	for _, c := range candidates {
		for _, form := range inflector.InflectAll(c.term) {
			if _, ok := seen[form]; ok {
				continue
			}
			seen[form] = struct{}{}
			completions = append(completions, joinCompletion(prefixTerms, form))
			if len(completions) >= k {
				return completions
			}
		}
	}
	return completions
}

func joinCompletion(prefixTerms []string, completedTerm string) string {
	if len(prefixTerms) == 0 {
		return completedTerm
	}
	return strings.Join(prefixTerms, " ") + " " + completedTerm
}
