// Package suggest proposes the closest known name for a misspelled
// identifier. Diagnostics use it to attach "did you mean" hints to unknown
// types and unknown condition fields.
package suggest

import "strings"

// minSimilarity is the normalized score below which no suggestion is made:
// a hint pointing at a barely related name is worse than no hint.
const minSimilarity = 0.5

// Closest returns the candidate most similar to name, or false when nothing
// is similar enough to suggest. Names are compared case-insensitively with
// separators ignored; ties break alphabetically so hints are deterministic.
func Closest(name string, candidates []string) (string, bool) {
	target := normalizeName(name)

	best := ""
	bestScore := 0.0

	for _, candidate := range candidates {
		score := Normalized(target, normalizeName(candidate))
		if score > bestScore || (score == bestScore && best != "" && candidate < best) {
			best = candidate
			bestScore = score
		}
	}

	if bestScore < minSimilarity {
		return "", false
	}

	return best, true
}

// Normalized computes a similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// The score is: 1 - (distance / max(len(a), len(b))).
func Normalized(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	maxLen := max(len(b), len(a))

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions or substitutions needed
// to transform one into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string for space optimization
	if len(a) > len(b) {
		a, b = b, a
	}

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// normalizeName case-folds and strips the separators schema names use, so
// USE_OTL, use-otl and UseOtl all compare equal.
func normalizeName(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r != '_' && r != '-' && r != ' ' {
			result.WriteRune(r)
		}
	}

	return result.String()
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}
