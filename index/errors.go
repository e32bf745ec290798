package index

import "errors"

// Sentinel errors, declared as package-level variables so callers can
// compare with errors.Is — the same convention the posting-list code
// this package descends from used for its own sentinels.
var (
	// ErrUnknownTerm names the case of a term absent from the
	// vocabulary. The lookups in this package do not return it: they
	// report absence through their boolean result (or a zero/nil value),
	// and callers treat an absent term as an empty posting list and a
	// zero score contribution, per §7.
	ErrUnknownTerm = errors.New("index: term not in vocabulary")

	// ErrEmptyCorpus is returned by Build when given zero paragraphs.
	// Per §7 this is not an error condition for queries (they simply
	// return empty), but Build surfaces it so callers can distinguish
	// "built over nothing" from "built over a real corpus" if they care to.
	ErrEmptyCorpus = errors.New("index: corpus has no paragraphs")
)
