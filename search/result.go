package search

import "github.com/wizenheimer/paragraphsearch/rank"

// Result is the outcome of one Engine.Search call. Exactly one of
// ParagraphIDs or Hits is populated, depending on whether ranking was
// requested.
type Result struct {
	// ParagraphIDs holds the unranked, sorted-ascending candidate set
	// (populated when SearchOptions.Ranked is false).
	ParagraphIDs []int

	// Hits holds the descending-ranked candidate set (populated when
	// SearchOptions.Ranked is true).
	Hits []rank.Hit

	// SpellCorrected reports whether the zero-result retry fired.
	SpellCorrected bool

	// CorrectedQuery holds the query actually executed, if
	// SpellCorrected is true.
	CorrectedQuery string

	// AutocompleteSuggestions holds up to NAutoResults completions of
	// the query's last token, if autocomplete was requested.
	AutocompleteSuggestions []string
}

// Empty reports whether the result carries no matches at all.
func (r *Result) Empty() bool {
	return len(r.ParagraphIDs) == 0 && len(r.Hits) == 0
}
