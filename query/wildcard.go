package query

import (
	"errors"
	"strings"

	"github.com/wizenheimer/paragraphsearch/index"
)

// ErrMalformedWildcard is returned when a sub-token contains more than
// one '*'. The core leaves this undefined; we reject it outright at
// parse time rather than guessing which asterisk the caller meant.
var ErrMalformedWildcard = errors.New("query: sub-token contains more than one '*'")

// ResolveWildcard expands a single query sub-token containing at most
// one '*' into the sorted, deduplicated set of vocabulary terms it
// matches.
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHY A DIRECT LOOKUP INSTEAD OF ROTATING THE QUERY?
// ═══════════════════════════════════════════════════════════════════════════════
// The textbook algorithm rotates "prefix*$" looking for the one rotation
// that begins with '*', then reads the key from rotation[2:]. Because the
// sentinel and the wildcard each appear exactly once in that string, only
// one rotation offset ever places '*' first — and at that offset,
// rotation[2:] is always just the literal prefix back again. So:
//
//	resolvePrefix("ca") == Permuterm.Lookup("ca")
//
// The same derivation for "*suffix" (form "$suffix", reverse it, rotate,
// find the rotation beginning with '*') reduces to a lookup keyed by the
// reversed suffix, because BuildReversePermuterm keys every term by the
// same reversed-rotation construction. Both shortcuts are exact, not
// approximations — they just skip rebuilding the rotation table that
// BuildPermuterm/BuildReversePermuterm already built once at index time.
// ═══════════════════════════════════════════════════════════════════════════════
func ResolveWildcard(snap *index.Snapshot, token string) ([]string, error) {
	if strings.Count(token, "*") > 1 {
		return nil, ErrMalformedWildcard
	}

	star := strings.IndexByte(token, '*')
	if star < 0 {
		if _, ok := snap.Inverted.Lookup(token); ok {
			return []string{token}, nil
		}
		return nil, nil
	}

	prefix, suffix := token[:star], token[star+1:]

	switch {
	case prefix != "" && suffix == "":
		return resolvePrefix(snap, prefix), nil
	case prefix == "" && suffix != "":
		return resolveSuffix(snap, suffix), nil
	case prefix != "" && suffix != "":
		left := resolvePrefix(snap, prefix)
		right := resolveSuffix(snap, suffix)
		return intersectStrings(left, right), nil
	default: // bare "*": matches the whole vocabulary
		return resolvePrefix(snap, ""), nil
	}
}

func resolvePrefix(snap *index.Snapshot, prefix string) []string {
	return snap.Permuterm.Lookup(prefix)
}

func resolveSuffix(snap *index.Snapshot, suffix string) []string {
	return snap.ReversePermuterm.Lookup(reverseString(suffix))
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// intersectStrings intersects two sorted, deduplicated string slices via
// a two-pointer sweep, the flat-array replacement for linked-structure
// merging that §9's re-architecture note calls for.
func intersectStrings(a, b []string) []string {
	out := make([]string, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
