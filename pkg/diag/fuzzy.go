package diag

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// DefaultFuzzyCutoff is the minimum similarity ratio for a "did you mean"
// suggestion.
const DefaultFuzzyCutoff = 0.6

// Similarity returns a 0..1 ratio between two strings based on edit distance.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// Suggest finds the known keyword most similar to word, if any candidate
// clears the cutoff.
func Suggest(word string, candidates []string, cutoff float64) (string, bool) {
	if cutoff <= 0 {
		cutoff = DefaultFuzzyCutoff
	}
	best := ""
	bestScore := cutoff
	for _, c := range candidates {
		if score := Similarity(word, c); score >= bestScore && c != word {
			best = c
			bestScore = score
		}
	}
	return best, best != ""
}

// DidYouMean formats a typo suggestion for an unknown reserved key.
func DidYouMean(got, suggestion string) string {
	return fmt.Sprintf("unknown key %q, did you mean %q?", got, suggestion)
}
