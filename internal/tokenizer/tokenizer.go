// Package tokenizer normalizes raw text into index terms. It lowercases,
// strips apostrophes, and extracts runs of allowlisted characters so that
// tokens like "c++", "c#" and "node.js" survive normalization.
package tokenizer

import (
	"regexp"
	"strings"
)

// termRegex matches maximal runs of allowlisted characters. The symbols
// '+', '#' and '.' are kept to preserve programming-language tokens.
var termRegex = regexp.MustCompile(`[a-z0-9+#.]+`)

// stripRegex removes everything outside the allowlist from a single word.
var stripRegex = regexp.MustCompile(`[^a-z0-9+#.]+`)

// apostropheReplacer collapses contractions ("don't" -> "dont") before
// tokenization instead of splitting them into two tokens.
var apostropheReplacer = strings.NewReplacer("'", "", "’", "")

// Tokenize converts a string into a slice of normalized terms.
// It removes apostrophes without replacement, lowercases the text, extracts
// maximal runs of [a-z0-9+#.], and discards tokens of length <= 1.
func Tokenize(text string) []string {
	lowered := strings.ToLower(apostropheReplacer.Replace(text))

	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for _, match := range termRegex.FindAllString(lowered, -1) {
		if len(match) > 1 {
			tokens = append(tokens, match)
		}
	}
	return tokens
}

// ExtractPhrases emits adjacent word pairs ("word1 word2") from the text.
// Words are split on whitespace and individually stripped of characters
// outside the allowlist; a pair is emitted only when both stripped words
// are longer than two characters.
//
// Note that this is a coarser tokenization than Tokenize: a whitespace
// word like "state-of-the-art" stays one unit here ("stateoftheart")
// instead of splitting on the hyphens.
func ExtractPhrases(text string) []string {
	words := strings.Fields(strings.ToLower(text))

	phrases := make([]string, 0)
	for i := 0; i+1 < len(words); i++ {
		first := stripRegex.ReplaceAllString(words[i], "")
		second := stripRegex.ReplaceAllString(words[i+1], "")
		if len(first) > 2 && len(second) > 2 {
			phrases = append(phrases, first+" "+second)
		}
	}
	return phrases
}

// FilterStopWords removes common English function words from tokens.
// The same filter is applied when indexing documents and when parsing
// queries; the two must never diverge or recall silently breaks.
func FilterStopWords(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !IsStopWord(token) {
			filtered = append(filtered, token)
		}
	}
	return filtered
}

// IsStopWord reports whether the given term is in the stop-word set.
func IsStopWord(term string) bool {
	_, ok := stopWords[term]
	return ok
}
