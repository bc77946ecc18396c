package typoutil

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 0},
		{"a empty short-circuits", "", "hello", 0},
		{"b empty short-circuits", "hello", "", 0},
		{"identical", "hello", "hello", 0},
		{"classic kitten sitting", "kitten", "sitting", 3},
		{"single substitution", "kitten", "sitten", 1},
		{"single insertion", "pythn", "python", 1},
		{"single deletion", "banana", "banna", 1},
		{"multiple edits", "saturday", "sunday", 3},
		{"completely different", "abc", "xyz", 3},
		{"unicode runes", "cliché", "cliche", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"search", "serch"},
		{"python", "pythn"},
		{"algorithm", "altruistic"},
		{"aa", "aaaa"},
	}
	for _, pair := range pairs {
		forward := Distance(pair[0], pair[1])
		backward := Distance(pair[1], pair[0])
		if forward != backward {
			t.Errorf("Distance(%q, %q) = %d but Distance(%q, %q) = %d",
				pair[0], pair[1], forward, pair[1], pair[0], backward)
		}
	}
}

func TestDistanceIdentity(t *testing.T) {
	for _, s := range []string{"a", "ab", "python", "node.js", "c++"} {
		if got := Distance(s, s); got != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestClosestTerm(t *testing.T) {
	vocabulary := []string{"python", "pythonic", "java", "javascript", "golang", "search"}
	frequencies := map[string]int{
		"python": 12, "pythonic": 2, "java": 8, "javascript": 5, "golang": 3, "search": 7,
	}
	docFreq := func(term string) int { return frequencies[term] }

	tests := []struct {
		name      string
		query     string
		wantTerm  string
		wantFound bool
	}{
		{"one edit away", "pythn", "python", true},
		{"exact term returns itself", "java", "java", true},
		{"too far from everything", "zzzzzzzzzz", "", false},
		{"different first letter is not considered", "zython", "", false},
		{"empty query", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, found := ClosestTerm(tt.query, vocabulary, docFreq)
			if found != tt.wantFound || term != tt.wantTerm {
				t.Errorf("ClosestTerm(%q) = (%q, %v), want (%q, %v)",
					tt.query, term, found, tt.wantTerm, tt.wantFound)
			}
		})
	}
}

// TestClosestTermPopularityTieBreak checks that equal distances resolve to
// the term present in more documents.
func TestClosestTermPopularityTieBreak(t *testing.T) {
	vocabulary := []string{"cart", "card"}
	docFreq := func(term string) int {
		if term == "card" {
			return 9
		}
		return 2
	}

	// "carp" is distance 1 from both candidates.
	term, found := ClosestTerm("carp", vocabulary, docFreq)
	if !found || term != "card" {
		t.Errorf("ClosestTerm(\"carp\") = (%q, %v), want (\"card\", true)", term, found)
	}
}

func TestClosestTermEmptyVocabulary(t *testing.T) {
	if term, found := ClosestTerm("python", nil, func(string) int { return 0 }); found {
		t.Errorf("ClosestTerm with empty vocabulary = (%q, true), want not found", term)
	}
}
