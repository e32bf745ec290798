// Package config holds the small, functional-options-driven
// configuration surface for running a search (index building takes no
// options) — deliberately not backed by a YAML/TOML file format, since
// nothing else in this repository needs one for a handful of fields.
package config

// SearchOptions mirrors §6's reference search surface:
// search(query, is_phrase, ranked, retrieve_n, spell_check, autocomplete,
// n_auto_results).
type SearchOptions struct {
	IsPhrase     bool
	Ranked       bool
	RetrieveN    int
	SpellCheck   bool
	Autocomplete bool
	NAutoResults int
}

// Option configures a SearchOptions value.
type Option func(*SearchOptions)

// WithPhrase enables phrase mode (§4.3's out-of-band phrase flag).
func WithPhrase() Option {
	return func(o *SearchOptions) { o.IsPhrase = true }
}

// WithRanked enables TF-IDF ranking of the candidate set (§4.6).
func WithRanked() Option {
	return func(o *SearchOptions) { o.Ranked = true }
}

// WithRetrieveN caps the number of ranked hits returned.
func WithRetrieveN(n int) Option {
	return func(o *SearchOptions) { o.RetrieveN = n }
}

// WithSpellCheck enables the one-shot spell-correction retry on a
// zero-result query (§4.7).
func WithSpellCheck() Option {
	return func(o *SearchOptions) { o.SpellCheck = true }
}

// WithAutocomplete enables prefix autocomplete of the query's last token
// (§4.8).
func WithAutocomplete() Option {
	return func(o *SearchOptions) { o.Autocomplete = true }
}

// WithNAutoResults caps the number of autocomplete suggestions returned.
func WithNAutoResults(n int) Option {
	return func(o *SearchOptions) { o.NAutoResults = n }
}

// NewSearchOptions builds a SearchOptions with sane defaults
// (unranked, no retrieval cap, spell-check and autocomplete off), then
// applies opts in order.
func NewSearchOptions(opts ...Option) SearchOptions {
	o := SearchOptions{RetrieveN: 0, NAutoResults: 5}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
