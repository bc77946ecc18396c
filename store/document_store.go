// Package store holds the in-memory document store owned by the index:
// the authoritative copy of every document that has been added.
package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand"
	"sync"

	"github.com/searchlite/searchlite/model"
)

// DocumentStore maps document IDs to full documents. Documents are
// immutable after insertion.
type DocumentStore struct {
	Mu   sync.RWMutex
	Docs map[string]model.Document
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{Docs: make(map[string]model.Document)}
}

// Get returns the document with the given ID.
func (ds *DocumentStore) Get(id string) (model.Document, bool) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	doc, ok := ds.Docs[id]
	return doc, ok
}

// All returns a snapshot of every stored document.
func (ds *DocumentStore) All() []model.Document {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	docs := make([]model.Document, 0, len(ds.Docs))
	for _, doc := range ds.Docs {
		docs = append(docs, doc)
	}
	return docs
}

// Random returns a uniform sample of up to n documents without
// replacement. Sampling does not need to be cryptographically random.
func (ds *DocumentStore) Random(n int) []model.Document {
	docs := ds.All()
	if n <= 0 {
		return []model.Document{}
	}
	rand.Shuffle(len(docs), func(i, j int) {
		docs[i], docs[j] = docs[j], docs[i]
	})
	if n < len(docs) {
		docs = docs[:n]
	}
	return docs
}

// Len returns the number of stored documents.
func (ds *DocumentStore) Len() int {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	return len(ds.Docs)
}

// gobDocumentStoreData is a helper struct for Gob encoding/decoding
// DocumentStore data. It excludes the mutex.
type gobDocumentStoreData struct {
	Docs map[string]model.Document
}

// GobEncode implements the gob.GobEncoder interface for DocumentStore.
func (ds *DocumentStore) GobEncode() ([]byte, error) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(gobDocumentStoreData{Docs: ds.Docs}); err != nil {
		return nil, fmt.Errorf("failed to gob encode document store data: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for DocumentStore.
func (ds *DocumentStore) GobDecode(data []byte) error {
	decodedData := gobDocumentStoreData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return fmt.Errorf("failed to gob decode document store data: %w", err)
	}

	ds.Mu.Lock()
	defer ds.Mu.Unlock()

	ds.Docs = decodedData.Docs
	if ds.Docs == nil {
		ds.Docs = make(map[string]model.Document)
	}
	return nil
}
