// Package memindex implements the in-memory inverted index. A Builder
// accumulates documents and Build freezes them into an immutable Index
// snapshot; corpus-wide aggregates are computed once at freeze time, so
// readers never observe partially built state and need no locking.
package memindex

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"trecsearch/internal/domain"
	"trecsearch/internal/port"
)

// postingList records every occurrence of one token: the set of documents
// containing it (as insertion-order ordinals) and the 0-based token positions
// per document. total is the occurrence count across the whole corpus.
type postingList struct {
	docs      *roaring.Bitmap
	positions map[string][]int
	total     int
}

// Builder accumulates documents for an Index. Build hands the accumulated
// data over to the returned Index; the Builder is spent afterwards and must
// not be reused.
type Builder struct {
	tokenizer   port.Tokenizer
	docs        map[string]domain.Document
	docIDs      []string
	ordinals    map[string]uint32
	docLens     map[string]int
	postings    map[string]*postingList
	totalTokens int64
	frozen      bool
}

// NewBuilder creates an empty Builder that splits document text with the
// given tokenizer.
func NewBuilder(tokenizer port.Tokenizer) *Builder {
	return &Builder{
		tokenizer: tokenizer,
		docs:      make(map[string]domain.Document),
		ordinals:  make(map[string]uint32),
		docLens:   make(map[string]int),
		postings:  make(map[string]*postingList),
	}
}

// Add indexes one document: the text is split into tokens and each token's
// posting list records the document and the token's position in split order.
// Document IDs are expected to be unique; adds after the first with the same
// ID are dropped.
func (b *Builder) Add(doc domain.Document) {
	if b.frozen {
		panic("memindex: Add called on a spent Builder")
	}
	if _, exists := b.ordinals[doc.ID]; exists {
		return
	}

	ord := uint32(len(b.docIDs))
	b.docIDs = append(b.docIDs, doc.ID)
	b.ordinals[doc.ID] = ord
	b.docs[doc.ID] = doc

	tokens := b.tokenizer.Tokenize(doc.Text)
	b.docLens[doc.ID] = len(tokens)
	b.totalTokens += int64(len(tokens))

	for i, token := range tokens {
		pl, exists := b.postings[token]
		if !exists {
			pl = &postingList{
				docs:      roaring.New(),
				positions: make(map[string][]int),
			}
			b.postings[token] = pl
		}
		pl.docs.Add(ord)
		pl.positions[doc.ID] = append(pl.positions[doc.ID], i)
		pl.total++
	}
}

// Build freezes the accumulated documents into an immutable Index and
// computes the corpus aggregates. The Builder gives up ownership of its data
// and must not be used again; a second Build or a later Add panics.
func (b *Builder) Build() *Index {
	if b.frozen {
		panic("memindex: Build called on a spent Builder")
	}
	b.frozen = true

	idx := &Index{
		docs:         b.docs,
		docIDs:       b.docIDs,
		docLens:      b.docLens,
		postings:     b.postings,
		docCount:     len(b.docIDs),
		uniqueTokens: len(b.postings),
		totalTokens:  b.totalTokens,
	}
	if idx.docCount > 0 {
		idx.avgDocLen = float64(idx.totalTokens) / float64(idx.docCount)
	}

	b.docs = nil
	b.docIDs = nil
	b.ordinals = nil
	b.docLens = nil
	b.postings = nil
	return idx
}

// Index is an immutable inverted index over a document corpus. It exclusively
// owns its postings and documents: accessors hand out copies, never views of
// internal state, so callers cannot corrupt the index and concurrent readers
// need no synchronization.
type Index struct {
	docs         map[string]domain.Document
	docIDs       []string
	docLens      map[string]int
	postings     map[string]*postingList
	docCount     int
	uniqueTokens int
	totalTokens  int64
	avgDocLen    float64
}

// PostingsFor returns docID → token positions for every document containing
// token, or an empty map for unknown tokens. The map and its slices are
// copies owned by the caller.
func (ix *Index) PostingsFor(token string) map[string][]int {
	pl, ok := ix.postings[token]
	if !ok {
		return map[string][]int{}
	}
	out := make(map[string][]int, len(pl.positions))
	for docID, positions := range pl.positions {
		out[docID] = append([]int(nil), positions...)
	}
	return out
}

// DocumentsContaining returns the ordinals of all documents containing token.
// Unknown tokens yield an empty bitmap. The caller owns the bitmap.
func (ix *Index) DocumentsContaining(token string) *roaring.Bitmap {
	pl, ok := ix.postings[token]
	if !ok {
		return roaring.New()
	}
	return pl.docs.Clone()
}

// DocumentFrequency returns how many documents contain token.
func (ix *Index) DocumentFrequency(token string) int {
	pl, ok := ix.postings[token]
	if !ok {
		return 0
	}
	return len(pl.positions)
}

// TermFrequency returns how many times token occurs in the given document.
func (ix *Index) TermFrequency(token, docID string) int {
	pl, ok := ix.postings[token]
	if !ok {
		return 0
	}
	return len(pl.positions[docID])
}

// CollectionTermFrequency returns how many times token occurs across all
// documents.
func (ix *Index) CollectionTermFrequency(token string) int {
	pl, ok := ix.postings[token]
	if !ok {
		return 0
	}
	return pl.total
}

// DocumentLength returns the token count of the given document, 0 if the
// document is unknown.
func (ix *Index) DocumentLength(docID string) int {
	return ix.docLens[docID]
}

// AverageDocumentLength returns the mean token count per document, 0 on an
// empty index.
func (ix *Index) AverageDocumentLength() float64 {
	return ix.avgDocLen
}

// DocumentID maps an insertion-order ordinal back to the document ID, or ""
// if the ordinal was never assigned.
func (ix *Index) DocumentID(ordinal uint32) string {
	if int(ordinal) >= len(ix.docIDs) {
		return ""
	}
	return ix.docIDs[ordinal]
}

// Document returns the stored document for docID.
func (ix *Index) Document(docID string) (domain.Document, bool) {
	doc, ok := ix.docs[docID]
	return doc, ok
}

// UniqueTokenCount returns the number of distinct tokens in the index.
func (ix *Index) UniqueTokenCount() int {
	return ix.uniqueTokens
}

// TotalTokenCount returns the total number of token occurrences in the index.
func (ix *Index) TotalTokenCount() int64 {
	return ix.totalTokens
}

// DocumentCount returns the number of documents in the index.
func (ix *Index) DocumentCount() int {
	return ix.docCount
}

// Stats summarizes the corpus aggregates.
func (ix *Index) Stats() domain.Stats {
	return domain.Stats{
		Documents:    ix.docCount,
		UniqueTokens: ix.uniqueTokens,
		TotalTokens:  ix.totalTokens,
		AvgDocLen:    ix.avgDocLen,
	}
}

// TokenCount pairs a token with its collection term frequency.
type TokenCount struct {
	Token string
	Count int
}

// TopTokens returns the n most frequent tokens by collection term frequency,
// ties broken by token. n <= 0 returns all tokens.
func (ix *Index) TopTokens(n int) []TokenCount {
	all := make([]TokenCount, 0, len(ix.postings))
	for token, pl := range ix.postings {
		all = append(all, TokenCount{Token: token, Count: pl.total})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Token < all[j].Token
	})
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
