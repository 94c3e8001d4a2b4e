package utils

import "unicode/utf8"

// Levenshtein returns the minimum number of single rune insertions, deletions
// or substitutions needed to turn a into b.
func Levenshtein(a, b string) int {
	s1, s2 := []rune(a), []rune(b)

	// matrix[i][j] is the distance between s2[:i] and s1[:j]
	matrix := make([][]int, len(s2)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s1)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s2); i++ {
		for j := 1; j <= len(s1); j++ {
			if s2[i-1] == s1[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}
			matrix[i][j] = min(
				matrix[i-1][j-1]+1, // substitution
				matrix[i][j-1]+1,   // insertion
				matrix[i-1][j]+1,   // deletion
			)
		}
	}
	return matrix[len(s2)][len(s1)]
}

// Similarity scores a and b in [0, 1] as (len(longer) - distance) / len(longer).
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	longer, shorter := a, b
	if utf8.RuneCountInString(a) < utf8.RuneCountInString(b) {
		longer, shorter = b, a
	}

	n := utf8.RuneCountInString(longer)
	if n == 0 {
		return 1.0
	}
	return float64(n-Levenshtein(longer, shorter)) / float64(n)
}
