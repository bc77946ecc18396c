package index

// PostingEntry holds everything the index knows about a single term: the
// set of documents containing it, the term's occurrence count within each
// of those documents, and the derived document frequency.
type PostingEntry struct {
	// DocumentIDs is the set of documents containing the term.
	DocumentIDs map[string]struct{}

	// TermFrequency maps a document ID to the number of occurrences of
	// the term within that document. Its key set is always a subset of
	// DocumentIDs.
	TermFrequency map[string]int

	// DocumentFrequency is kept equal to len(DocumentIDs) on every
	// mutation; it is stored rather than derived so vocabulary-wide
	// scans (typo correction, stats) stay cheap.
	DocumentFrequency int
}

// NewPostingEntry creates an empty posting entry.
func NewPostingEntry() *PostingEntry {
	return &PostingEntry{
		DocumentIDs:   make(map[string]struct{}),
		TermFrequency: make(map[string]int),
	}
}

// Record adds an occurrence count for the given document and recomputes
// the document frequency.
func (p *PostingEntry) Record(docID string, count int) {
	p.DocumentIDs[docID] = struct{}{}
	p.TermFrequency[docID] = count
	p.DocumentFrequency = len(p.DocumentIDs)
}
