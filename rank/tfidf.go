// Package rank scores a candidate paragraph set against the original
// query tokens and returns a descending-ranked hit list, per §4.6's
// scorer.
package rank

import (
	"math"
	"sort"

	"github.com/wizenheimer/paragraphsearch/corpus"
	"github.com/wizenheimer/paragraphsearch/index"
	"github.com/wizenheimer/paragraphsearch/internal/lemma"
	"github.com/wizenheimer/paragraphsearch/query"
)

// Hit is one scored paragraph.
type Hit struct {
	ParagraphID int
	Score       float64
}

// TFIDF is the smoothed scikit-style weighting the core adopts:
//
//	log(1+tf) * (log((1+N)/(1+df)) + 1)
//
// Earlier source variants used log(1+tf)*log(N/df) and
// log(1+tf)*log(N/(df+1)); this is the smoothed variant the spec
// settles on, chosen to avoid the division-by-zero and log(0) edge
// cases the unsmoothed variants hit on a term with df==N or df==0.
func TFIDF(tf, df, n int) float64 {
	return math.Log(1+float64(tf)) * (math.Log((1+float64(n))/(1+float64(df))) + 1)
}

// Score computes a TF-IDF score for every paragraph in candidateIDs,
// against rawQueryTokens (the original query's sub-tokens, still
// carrying quotes and wildcards). Tokens are preprocessed per §4.6:
// quotes stripped, non-wildcard tokens lemmatized, wildcard tokens kept
// verbatim and expanded to their matching vocabulary terms.
//
// Returns hits sorted by score descending, ties broken by ascending
// paragraph ID (§4.6's output contract, and invariant 7: swapping two
// query tokens does not change the score, since the score is a sum over
// tokens independent of order).
func Score(snap *index.Snapshot, candidateIDs []int, rawQueryTokens []string, lem lemma.Lemmatizer) []Hit {
	terms := preprocessQueryTokens(rawQueryTokens, lem)

	hits := make([]Hit, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		row, ok := snap.Table.At(id)
		if !ok {
			continue
		}
		hits = append(hits, Hit{ParagraphID: id, Score: scoreParagraph(snap, row, terms)})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ParagraphID < hits[j].ParagraphID
	})
	return hits
}

// TopK truncates a sorted hit list to its first k entries. k<=0 returns
// hits unmodified, since truncation is optional per §4.6.
func TopK(hits []Hit, k int) []Hit {
	if k <= 0 || k >= len(hits) {
		return hits
	}
	return hits[:k]
}

type queryTerm struct {
	text       string
	isWildcard bool
}

func preprocessQueryTokens(raw []string, lem lemma.Lemmatizer) []queryTerm {
	terms := make([]queryTerm, 0, len(raw))
	for _, tok := range raw {
		stripped := stripQuotes(tok)
		if containsStar(stripped) {
			terms = append(terms, queryTerm{text: stripped, isWildcard: true})
			continue
		}
		terms = append(terms, queryTerm{text: lem.Lemma(stripped), isWildcard: false})
	}
	return terms
}

func stripQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '"' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func containsStar(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '*' {
			return true
		}
	}
	return false
}

func scoreParagraph(snap *index.Snapshot, row corpus.ParagraphRecord, terms []queryTerm) float64 {
	tokens := corpus.TokenSequence(row.Tokenized)
	n := snap.TotalParagraphs

	var total float64
	for _, t := range terms {
		if t.isWildcard {
			matches, err := query.ResolveWildcard(snap, t.text)
			if err != nil {
				continue
			}
			for _, w := range matches {
				total += contributionFor(snap, w, tokens, n)
			}
			continue
		}
		if _, ok := snap.Inverted.Lookup(t.text); !ok {
			continue
		}
		total += contributionFor(snap, t.text, tokens, n)
	}
	return total
}

func contributionFor(snap *index.Snapshot, term string, tokens []string, n int) float64 {
	tf := countOccurrences(tokens, term)
	df := snap.Inverted.DocFreq(term)
	return TFIDF(tf, df, n)
}

func countOccurrences(tokens []string, term string) int {
	count := 0
	for _, tok := range tokens {
		if tok == term {
			count++
		}
	}
	return count
}
