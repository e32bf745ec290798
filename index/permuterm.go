package index

import (
	"sort"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PERMUTERM INDEXES: Resolving a Single Wildcard
// ═══════════════════════════════════════════════════════════════════════════════
// A permuterm index answers "which vocabulary terms start with this prefix"
// (and its mirror, the reverse permuterm index, answers "which terms end
// with this suffix") without scanning the whole vocabulary.
//
// THE TRICK: ROTATE AROUND A SENTINEL
// ------------------------------------
// Append a sentinel "$" to a term, then record every left-rotation of the
// result under the key that follows the "$" in that rotation:
//
//	term "cat" → "cat$" → rotations: "cat$", "at$c", "t$ca", "$cat"
//	keys (substring after the single "$"):
//	  "cat$" → ""      (the term itself, no rotation needed)
//	  "at$c" → "c"
//	  "t$ca" → "ca"
//	  "$cat" → "cat"
//
//	PermutermIndex["c"]  → {..., "cat", ...}
//	PermutermIndex["ca"] → {..., "cat", ...}
//	PermutermIndex["cat"] → {..., "cat", ...}
//
// A prefix query "ca*" always rotates to exactly one key equal to the
// literal prefix — "ca" — because the sentinel and the wildcard can only
// line up at a single rotation offset. So resolving "ca*" is just
// PermutermIndex["ca"].
//
// The reverse permuterm index runs the identical construction on the
// *reversed* term (sentinel prepended, then the whole thing reversed before
// rotating), which is what makes suffix queries ("*at") resolvable the
// same way.
// ═══════════════════════════════════════════════════════════════════════════════

const sentinel = '$'

// TermIndex maps a rotation key to the sorted, deduplicated set of
// vocabulary terms that key resolves to. Values are terms (strings), not
// paragraph IDs, so this is a plain sorted slice rather than a Roaring
// bitmap — see DESIGN.md for why the postings-shaped storage used
// elsewhere in this package doesn't apply here.
type TermIndex struct {
	byKey map[string][]string
}

func newTermIndex() *TermIndex {
	return &TermIndex{byKey: make(map[string][]string)}
}

func (ti *TermIndex) add(key, term string) {
	ti.byKey[key] = append(ti.byKey[key], term)
}

// finalize sorts and deduplicates every posting list. Must run once,
// after all terms have been added.
func (ti *TermIndex) finalize() {
	for key, terms := range ti.byKey {
		sort.Strings(terms)
		ti.byKey[key] = dedupSorted(terms)
	}
}

// Lookup returns the sorted, deduplicated terms stored under key.
func (ti *TermIndex) Lookup(key string) []string {
	return ti.byKey[key]
}

func dedupSorted(s []string) []string {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// rotations returns every left-rotation of s, starting from offset 0:
// s[0:]+s[:0], s[1:]+s[:1], ..., s[n-1:]+s[:n-1]. Left-to-right from
// offset 0, matching the deterministic ordering §5 requires.
func rotations(s string) []string {
	n := len(s)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = s[i:] + s[:i]
	}
	return out
}

// permutermKey returns the substring of a rotation following its single
// sentinel character, computed as a direct index lookup rather than a
// string split (§9's re-architecture note: "compute it as
// r[pos($)+1:] without string splitting").
func permutermKey(rotation string) (string, bool) {
	idx := strings.IndexByte(rotation, sentinel)
	if idx < 0 {
		return "", false
	}
	return rotation[idx+1:], true
}

// BuildPermuterm constructs the forward permuterm index over vocab: for
// each term w, form w+"$", enumerate its rotations, and append w to the
// posting for the key that follows the sentinel in each rotation.
func BuildPermuterm(vocab []string) *TermIndex {
	ti := newTermIndex()
	for _, w := range vocab {
		for _, rot := range rotations(w + string(sentinel)) {
			if key, ok := permutermKey(rot); ok {
				ti.add(key, w)
			}
		}
	}
	ti.finalize()
	return ti
}

// BuildReversePermuterm constructs the reverse permuterm index: identical
// construction to BuildPermuterm, but run over "$"+w reversed, storing
// the original (non-reversed) term as the value. Used to resolve
// wildcards that begin with "*".
func BuildReversePermuterm(vocab []string) *TermIndex {
	ti := newTermIndex()
	for _, w := range vocab {
		reversed := reverseString(string(sentinel) + w)
		for _, rot := range rotations(reversed) {
			if key, ok := permutermKey(rot); ok {
				ti.add(key, w)
			}
		}
	}
	ti.finalize()
	return ti
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
