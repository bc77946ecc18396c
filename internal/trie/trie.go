// Package trie implements the prefix trie backing autocomplete. A trie is
// bulk-built from the document corpus and swapped in atomically; it is
// never mutated after publication, so lookups need no locking.
package trie

import (
	"github.com/searchlite/searchlite/model"
)

type node struct {
	children map[byte]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie maps character sequences to terminal markers and answers
// prefix-bounded suggestion queries.
type Trie struct {
	root *node
	size int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds a word to the trie, creating one node per character.
// Inserting an already-present word is a no-op.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	current := t.root
	for i := 0; i < len(word); i++ {
		ch := word[i]
		child, ok := current.children[ch]
		if !ok {
			child = newNode()
			current.children[ch] = child
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
}

// Contains reports whether the exact word was inserted.
func (t *Trie) Contains(word string) bool {
	current := t.root
	for i := 0; i < len(word); i++ {
		child, ok := current.children[word[i]]
		if !ok {
			return false
		}
		current = child
	}
	return current.terminal
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.size
}

// frame is one unit of pending traversal work in Suggest.
type frame struct {
	n    *node
	word string
}

// Suggest walks down the trie along prefix and collects up to limit
// complete words below that node. A failed prefix walk returns an empty
// slice; fuzzy fallback is a separate concern handled elsewhere.
//
// Collection order follows map iteration over children, so the returned
// words are not sorted; callers needing ranked output score and sort the
// result themselves.
func (t *Trie) Suggest(prefix string, limit int) []string {
	results := make([]string, 0)
	if limit <= 0 {
		return results
	}

	current := t.root
	for i := 0; i < len(prefix); i++ {
		child, ok := current.children[prefix[i]]
		if !ok {
			return results
		}
		current = child
	}

	// Depth-first traversal with an explicit stack; suggestion tries get
	// deep enough (long phrases) that recursion depth is worth avoiding.
	stack := []frame{{n: current, word: prefix}}
	for len(stack) > 0 && len(results) < limit {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.n.terminal {
			results = append(results, top.word)
		}
		for ch, child := range top.n.children {
			stack = append(stack, frame{n: child, word: top.word + string(ch)})
		}
	}
	return results
}

// BuildFromDocuments builds a fresh trie from a document corpus, inserting
// every distinct term and adjacent-word phrase exactly once.
func BuildFromDocuments(
	docs []model.Document,
	tokenize func(string) []string,
	extractPhrases func(string) []string,
) *Trie {
	t := New()
	seen := make(map[string]struct{})

	insert := func(word string) {
		// Insertion is idempotent; the seen-set only skips redundant walks.
		if _, ok := seen[word]; ok {
			return
		}
		seen[word] = struct{}{}
		t.Insert(word)
	}

	for _, doc := range docs {
		text := doc.CombinedText()
		for _, term := range tokenize(text) {
			insert(term)
		}
		for _, phrase := range extractPhrases(text) {
			insert(phrase)
		}
	}
	return t
}
