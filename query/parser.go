package query

import (
	"strings"

	"github.com/wizenheimer/paragraphsearch/internal/lemma"
)

// SubToken is one whitespace-delimited piece of a parsed non-phrase
// query: either a required (AND) term or an optional (OR) term, and
// either a wildcard term (resolved against the permuterm stores, never
// lemmatized) or a plain term (lemmatized once, up front).
type SubToken struct {
	Term       string // lemmatized surface form, or the verbatim wildcard pattern
	Required   bool   // true if quoted ("AND-term")
	IsWildcard bool
}

// ParseBoolean splits a lowercased, non-phrase query string into its
// AND-terms and OR-terms. A sub-token wrapped in double quotes is an
// AND-term; any other sub-token is an OR-term. Wildcard sub-tokens
// (containing exactly one '*') are tagged and left un-lemmatized, since
// the '*' must reach the wildcard resolver verbatim (§4.4: "Wildcard
// terms are NEVER lemmatized"). Returns ErrMalformedWildcard if any
// sub-token contains more than one '*'.
func ParseBoolean(query string, lem lemma.Lemmatizer) ([]SubToken, error) {
	fields := strings.Fields(query)
	out := make([]SubToken, 0, len(fields))
	for _, raw := range fields {
		required := false
		term := raw
		if strings.HasPrefix(term, `"`) && strings.HasSuffix(term, `"`) && len(term) >= 2 {
			required = true
			term = term[1 : len(term)-1]
		}

		if strings.Count(term, "*") > 1 {
			return nil, ErrMalformedWildcard
		}

		wildcard := strings.Contains(term, "*")
		if !wildcard {
			term = lem.Lemma(term)
		}

		out = append(out, SubToken{Term: term, Required: required, IsWildcard: wildcard})
	}
	return out, nil
}

// ParsePhrase strips every '"' from query and splits the remainder on
// whitespace, yielding the raw token sequence the phrase resolver
// consumes. Per §4.3's phrase mode: "strip all `"` characters, then pass
// the remaining whitespace-separated tokens to the phrase resolver."
func ParsePhrase(query string) []string {
	stripped := strings.ReplaceAll(query, `"`, "")
	return strings.Fields(stripped)
}
