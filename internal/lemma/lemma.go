// Package lemma models the lemmatizer as a dependency-injected capability
// rather than a process-wide singleton or module-level handle — the
// re-architecture §9 calls for ("the spacy and summarizer handles should
// be passed in as dependency arguments, not module-level state. Model the
// lemmatizer as a capability trait/interface").
package lemma

import snowballeng "github.com/kljensen/snowball/english"

// Lemmatizer reduces a single lowercase token to its canonical base form.
// Implementations must be pure and deterministic: same input, same
// output, no hidden state.
type Lemmatizer interface {
	Lemma(token string) string
}

// Snowball is the default Lemmatizer, backed by the Snowball English
// stemmer. It is the same stemming step the analysis pipeline this
// engine descends from used at index time; here it is called by the
// query resolver at lookup time instead, reduced to a single-token
// capability rather than a whole-text pipeline stage.
type Snowball struct{}

// NewSnowball returns the default Snowball-backed Lemmatizer.
func NewSnowball() Snowball {
	return Snowball{}
}

// Lemma stems token without the aggressive "ignore stop words" mode, the
// same call the analyzer made for every non-stopword token.
func (Snowball) Lemma(token string) string {
	return snowballeng.Stem(token, false)
}
