package search

import (
	"strings"

	"github.com/wizenheimer/paragraphsearch/autocomplete"
	"github.com/wizenheimer/paragraphsearch/index"
	"github.com/wizenheimer/paragraphsearch/internal/inflect"
	"github.com/wizenheimer/paragraphsearch/query"
)

// queryTokens returns the raw sub-tokens the scorer should preprocess
// (§4.6), for either query mode. Phrase mode's tokens already have their
// quotes stripped by ParsePhrase; boolean mode's still carry quotes,
// which rank.Score strips itself.
func queryTokens(rawQuery string, isPhrase bool) []string {
	lowered := strings.ToLower(rawQuery)
	if isPhrase {
		return query.ParsePhrase(lowered)
	}
	return strings.Fields(lowered)
}

func autocompleteFor(snap *index.Snapshot, rawQuery string, inflector inflect.Inflector, n int) []string {
	return autocomplete.Complete(snap, strings.ToLower(rawQuery), inflector, n)
}
