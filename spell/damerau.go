// Package spell implements Damerau-Levenshtein distance and the
// vocabulary-correction lookup it drives, per §4.7.
package spell

import "github.com/agnivade/levenshtein"

// Distance computes the edit distance between s1 and s2. With
// transpositions enabled, adjacent character swaps cost 1 (Damerau's
// extension to plain Levenshtein); with them disabled, Distance defers
// to the plain Levenshtein implementation, matching the "flag disables
// the transposition arm" behavior §4.7 specifies.
func Distance(s1, s2 string, transpositions bool) int {
	if !transpositions {
		return levenshtein.ComputeDistance(s1, s2)
	}
	return damerauLevenshtein(s1, s2)
}

// damerauLevenshtein is the standard dynamic-programming recurrence with
// the adjacent-transposition case: if s1[i-1]==s2[j-2] &&
// s1[i-2]==s2[j-1], d[i][j] = min(d[i][j], d[i-2][j-2]+1).
func damerauLevenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	m, n := len(r1), len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)

			if i > 1 && j > 1 && r1[i-1] == r2[j-2] && r1[i-2] == r2[j-1] {
				if t := d[i-2][j-2] + 1; t < d[i][j] {
					d[i][j] = t
				}
			}
		}
	}
	return d[m][n]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
