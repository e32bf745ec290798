// Package corpus holds the data model shared by every other package:
// the paragraph table the engine is built over, and the handful of
// pure helpers (tokenization, punctuation filtering) that turn a
// paragraph's already-lemmatized text into the per-paragraph term set
// the index builders consume.
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS A PARAGRAPH RECORD?
// ═══════════════════════════════════════════════════════════════════════════════
// A ParagraphRecord is the atomic indexed unit: one paragraph from one page
// of one document, along with both its raw text and its tokenized form.
// The tokenized form is produced upstream (segmentation, lemmatization,
// stopword removal all happen before the record reaches this package) — the
// core only ever sees already-normalized, space-joined tokens.
//
//	ParagraphRecord{
//	    ID:              3,
//	    DocumentName:    "handbook.pdf",
//	    PageNumber:      1,
//	    ParagraphNumber: 0,
//	    Text:            "The Quick Brown Fox.",
//	    Tokenized:       "quick brown fox",
//	}
// ═══════════════════════════════════════════════════════════════════════════════
package corpus

import (
	"sort"
	"strings"
)

// ParagraphRecord is the atomic indexed unit. ParagraphID is a dense,
// 0-based index into the owning Table — it is never reassigned once a
// Table is built, matching the read-only ownership model the index
// builders rely on (indexes store IDs only, never text pointers).
type ParagraphRecord struct {
	ID              int
	DocumentName    string
	PageNumber      int
	ParagraphNumber int
	Text            string
	Tokenized       string
}

// Table is the immutable paragraph store the whole engine is built and
// queried against. It is produced once by an ingester (see
// internal/ingest) and never mutated afterward.
type Table struct {
	rows []ParagraphRecord
}

// NewTable wraps rows into a Table, assigning paragraph IDs by position
// exactly as §6 requires: paragraph_id is the row's 0-based position.
func NewTable(rows []ParagraphRecord) *Table {
	t := &Table{rows: make([]ParagraphRecord, len(rows))}
	for i, r := range rows {
		r.ID = i
		t.rows[i] = r
	}
	return t
}

// Len returns the number of paragraphs in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// At returns the paragraph at the given ID, and whether it exists.
func (t *Table) At(id int) (ParagraphRecord, bool) {
	if id < 0 || id >= len(t.rows) {
		return ParagraphRecord{}, false
	}
	return t.rows[id], true
}

// All returns every paragraph in ID order. Callers must not mutate the
// returned slice's backing array.
func (t *Table) All() []ParagraphRecord {
	return t.rows
}

// punctuation is the set of ASCII punctuation characters that, as a
// standalone token, carry no search value. Lifted verbatim from the
// corpus this engine was distilled from: a token equal to exactly one of
// these characters is dropped from the per-paragraph posting set.
const punctuation = `!()-[]{};:'"\,<>./?@#$%^&*_~=+`

// Tokens splits a paragraph's already-tokenized text on whitespace and
// returns the sorted, deduplicated set of terms it contributes to the
// vocabulary — the "per-paragraph posting set" of §4.1. Single-character
// punctuation tokens are dropped; everything else (the tokenizer
// upstream has already lowercased and lemmatized) passes through as-is.
func Tokens(tokenized string) []string {
	fields := strings.Fields(tokenized)
	set := make(map[string]struct{}, len(fields))
	for _, tok := range fields {
		if len(tok) == 1 && strings.ContainsRune(punctuation, rune(tok[0])) {
			continue
		}
		set[tok] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for tok := range set {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// TokenSequence splits a paragraph's tokenized text on whitespace,
// preserving order and duplicates. This is what the biword builder and
// the scorer need — positions and repetition matter there, unlike the
// deduplicated set Tokens returns.
func TokenSequence(tokenized string) []string {
	return strings.Fields(tokenized)
}
