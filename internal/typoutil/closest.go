package typoutil

// maxCorrectionDistance is the largest edit distance still considered a
// reasonable correction.
const maxCorrectionDistance = 3

// ClosestTerm finds the vocabulary term nearest to query by edit distance.
// docFreq supplies each term's document frequency, used to break distance
// ties in favor of the more popular term.
//
// Candidates are restricted to terms sharing the query's first character.
// This is a pruning heuristic, not a correctness guarantee: a true closest
// match starting with a different character is missed. The second return
// value is false when no candidate is within maxCorrectionDistance.
func ClosestTerm(query string, vocabulary []string, docFreq func(term string) int) (string, bool) {
	if query == "" || len(vocabulary) == 0 {
		return "", false
	}

	first := query[0]
	best := ""
	bestDistance := maxCorrectionDistance + 1
	bestFreq := -1

	for _, term := range vocabulary {
		if term == "" || term[0] != first {
			continue
		}

		dist := Distance(query, term)
		if dist > maxCorrectionDistance {
			continue
		}

		freq := docFreq(term)
		if dist < bestDistance || (dist == bestDistance && freq > bestFreq) {
			best = term
			bestDistance = dist
			bestFreq = freq
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}
