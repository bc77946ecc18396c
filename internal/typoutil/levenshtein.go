// Package typoutil provides fuzzy query correction: Levenshtein distance
// plus a closest-vocabulary-term search used when a query produces no hits.
package typoutil

// Distance computes the Levenshtein distance between two strings: the
// minimum number of single-character insertions, deletions, or
// substitutions required to change one into the other. Runes are compared,
// so multi-byte characters count as single edits.
//
// When either input is empty the result is 0. Callers treat an empty
// candidate as "nothing to correct against" rather than measuring the
// distance to the empty string, and the closest-term search relies on
// that short-circuit.
func Distance(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	runesA := []rune(a)
	runesB := []rune(b)

	lenA := len(runesA)
	lenB := len(runesB)

	// matrix[i][j] is the distance between the first i characters of a
	// and the first j characters of b.
	matrix := make([][]int, lenA+1)
	for i := range matrix {
		matrix[i] = make([]int, lenB+1)
	}

	for i := 0; i <= lenA; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= lenB; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			if runesA[i-1] == runesB[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}

			deletion := matrix[i-1][j] + 1
			insertion := matrix[i][j-1] + 1
			substitution := matrix[i-1][j-1] + 1

			matrix[i][j] = min3(deletion, insertion, substitution)
		}
	}

	return matrix[lenA][lenB]
}

// min3 is a helper function to find the minimum of three integers
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
