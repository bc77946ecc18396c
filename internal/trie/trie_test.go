package trie

import (
	"sort"
	"strings"
	"testing"

	"github.com/searchlite/searchlite/internal/tokenizer"
	"github.com/searchlite/searchlite/model"
)

func TestInsertAndContains(t *testing.T) {
	tr := New()
	words := []string{"cat", "category", "car", "dog", "machine learning"}
	for _, word := range words {
		tr.Insert(word)
	}

	for _, word := range words {
		if !tr.Contains(word) {
			t.Errorf("Contains(%q) = false after Insert", word)
		}
	}
	for _, word := range []string{"ca", "cats", "do", ""} {
		if tr.Contains(word) {
			t.Errorf("Contains(%q) = true, want false", word)
		}
	}
	if tr.Len() != len(words) {
		t.Errorf("Len() = %d, want %d", tr.Len(), len(words))
	}
}

func TestInsertIdempotent(t *testing.T) {
	tr := New()
	tr.Insert("cat")
	tr.Insert("cat")
	if tr.Len() != 1 {
		t.Errorf("Len() = %d after duplicate insert, want 1", tr.Len())
	}
}

// TestTerminalNodeWithChildren pins the invariant that a node can mark a
// complete word and still extend to longer words through its children.
func TestTerminalNodeWithChildren(t *testing.T) {
	tr := New()
	tr.Insert("cat")
	tr.Insert("category")

	got := tr.Suggest("cat", 10)
	sort.Strings(got)
	if len(got) != 2 || got[0] != "cat" || got[1] != "category" {
		t.Errorf("Suggest(\"cat\", 10) = %v, want [cat category]", got)
	}
}

func TestSuggestFailedWalkReturnsEmpty(t *testing.T) {
	tr := New()
	tr.Insert("python")

	if got := tr.Suggest("java", 10); len(got) != 0 {
		t.Errorf("Suggest(\"java\", 10) = %v, want empty (no fuzzy fallback)", got)
	}
}

func TestSuggestRespectsLimit(t *testing.T) {
	tr := New()
	for _, word := range []string{"car", "cart", "card", "care", "carbon"} {
		tr.Insert(word)
	}

	got := tr.Suggest("car", 3)
	if len(got) != 3 {
		t.Fatalf("Suggest(\"car\", 3) returned %d words, want 3", len(got))
	}
	for _, word := range got {
		if !strings.HasPrefix(word, "car") {
			t.Errorf("suggestion %q does not start with prefix", word)
		}
	}
}

func TestSuggestZeroLimit(t *testing.T) {
	tr := New()
	tr.Insert("python")
	if got := tr.Suggest("py", 0); len(got) != 0 {
		t.Errorf("Suggest with limit 0 = %v, want empty", got)
	}
}

// TestSuggestRoundTrip checks that every prefix of every inserted word
// surfaces that word when the limit is large enough.
func TestSuggestRoundTrip(t *testing.T) {
	words := []string{"go", "golang", "gopher", "google", "grep", "machine learning"}
	tr := New()
	for _, word := range words {
		tr.Insert(word)
	}

	for _, word := range words {
		for i := 1; i <= len(word); i++ {
			prefix := word[:i]
			got := tr.Suggest(prefix, len(words))
			found := false
			for _, suggestion := range got {
				if suggestion == word {
					found = true
				}
				if !strings.HasPrefix(suggestion, prefix) {
					t.Errorf("Suggest(%q) returned %q without the prefix", prefix, suggestion)
				}
			}
			if !found {
				t.Errorf("Suggest(%q, %d) = %v, missing inserted word %q", prefix, len(words), got, word)
			}
		}
	}
}

func TestBuildFromDocuments(t *testing.T) {
	docs := []model.Document{
		{ID: "1", Title: "Machine Learning", Content: "machine learning with python"},
		{ID: "2", Content: "the cat sat"},
	}

	tr := BuildFromDocuments(docs, tokenizer.Tokenize, tokenizer.ExtractPhrases)

	for _, word := range []string{"machine", "learning", "python", "cat", "sat", "machine learning", "learning with", "with python"} {
		if !tr.Contains(word) {
			t.Errorf("trie missing %q after BuildFromDocuments", word)
		}
	}

	// Terms and phrases from both title and content are inserted once;
	// rebuilding from the same corpus yields the same size.
	again := BuildFromDocuments(docs, tokenizer.Tokenize, tokenizer.ExtractPhrases)
	if tr.Len() != again.Len() {
		t.Errorf("rebuild size %d != original %d", again.Len(), tr.Len())
	}
}
