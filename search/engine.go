// Package search ties the index, query, rank, spell, and autocomplete
// packages together into the single entry point described by §6's
// reference surface: search(query, is_phrase, ranked, retrieve_n,
// spell_check, autocomplete, n_auto_results).
package search

import (
	"log/slog"

	"github.com/wizenheimer/paragraphsearch/corpus"
	"github.com/wizenheimer/paragraphsearch/index"
	"github.com/wizenheimer/paragraphsearch/internal/config"
	"github.com/wizenheimer/paragraphsearch/internal/inflect"
	"github.com/wizenheimer/paragraphsearch/internal/lemma"
	"github.com/wizenheimer/paragraphsearch/internal/snapshot"
	"github.com/wizenheimer/paragraphsearch/query"
	"github.com/wizenheimer/paragraphsearch/rank"
)

// Engine is the long-lived search facade: one snapshot.Holder guarding
// the current index.Snapshot, plus the lemmatizer and inflector
// capabilities the query and autocomplete paths call into.
type Engine struct {
	snap      *snapshot.Holder
	lemma     lemma.Lemmatizer
	inflector inflect.Inflector
}

// New builds an initial Snapshot over table and returns a ready Engine.
// index.ErrEmptyCorpus is not treated as fatal and is not returned: New
// yields a usable (empty) Engine and a nil error — per §7, an empty
// corpus means every query returns empty, not an error.
func New(table *corpus.Table, lem lemma.Lemmatizer, inflector inflect.Inflector) (*Engine, error) {
	slog.Info("building index", slog.Int("paragraphs", table.Len()))

	snap, err := index.Build(table)
	if err != nil && err != index.ErrEmptyCorpus {
		return nil, err
	}

	slog.Info("index built", slog.Int("vocabulary", len(snap.Vocabulary)))

	return &Engine{
		snap:      snapshot.NewHolder(snap),
		lemma:     lem,
		inflector: inflector,
	}, nil
}

// Reload rebuilds the index over table and atomically swaps it in.
// In-flight Search calls keep using the snapshot they already loaded;
// there is no in-place mutation to race with.
func (e *Engine) Reload(table *corpus.Table) error {
	slog.Info("rebuilding index", slog.Int("paragraphs", table.Len()))

	snap, err := index.Build(table)
	if err != nil && err != index.ErrEmptyCorpus {
		return err
	}
	e.snap.Store(snap)
	return nil
}

// Search runs one query against the current snapshot, applying ranking,
// the zero-result spell-check retry, and autocomplete as opts direct.
func (e *Engine) Search(rawQuery string, opts config.SearchOptions) (*Result, error) {
	slog.Info("search", slog.String("query", rawQuery), slog.Bool("phrase", opts.IsPhrase), slog.Bool("ranked", opts.Ranked))

	snap := e.snap.Load()

	result, err := e.runOnce(snap, rawQuery, opts)
	if err != nil {
		return nil, err
	}

	if opts.SpellCheck && result.Empty() {
		corrected, changed := correctQuery(snap, rawQuery, e.lemma)
		if changed {
			retried, err := e.runOnce(snap, corrected, opts)
			if err != nil {
				return nil, err
			}
			retried.SpellCorrected = true
			retried.CorrectedQuery = corrected
			result = retried
		}
	}

	if opts.Autocomplete {
		result.AutocompleteSuggestions = autocompleteFor(snap, rawQuery, e.inflector, opts.NAutoResults)
	}

	return result, nil
}

func (e *Engine) runOnce(snap *index.Snapshot, rawQuery string, opts config.SearchOptions) (*Result, error) {
	candidates, err := query.Resolve(snap, rawQuery, opts.IsPhrase, e.lemma)
	if err != nil {
		return nil, err
	}
	ids := query.SortedIDs(candidates)

	result := &Result{}
	if !opts.Ranked {
		result.ParagraphIDs = ids
		return result, nil
	}

	tokens := queryTokens(rawQuery, opts.IsPhrase)
	hits := rank.Score(snap, ids, tokens, e.lemma)
	result.Hits = rank.TopK(hits, opts.RetrieveN)
	return result, nil
}
