package port

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Index is the read-only view of a built inverted index. Implementations are
// immutable once constructed: every accessor may be called concurrently and
// returns the same result for the same arguments. Lookups of tokens or
// documents the index has never seen return empty or zero values, never an
// error.
type Index interface {
	// PostingsFor returns the positions of token in every document that
	// contains it, keyed by document ID. Positions are 0-based token offsets
	// in split order, strictly increasing. The returned map is a copy owned
	// by the caller.
	PostingsFor(token string) map[string][]int

	// DocumentsContaining returns the set of documents containing token as a
	// bitmap of document ordinals (see DocumentID). The caller owns the
	// returned bitmap and may mutate it freely.
	DocumentsContaining(token string) *roaring.Bitmap

	// DocumentFrequency returns the number of documents containing token.
	DocumentFrequency(token string) int

	// TermFrequency returns the number of occurrences of token in the given
	// document.
	TermFrequency(token, docID string) int

	// CollectionTermFrequency returns the number of occurrences of token
	// across the whole corpus.
	CollectionTermFrequency(token string) int

	// DocumentLength returns the number of tokens in the given document,
	// 0 for unknown documents.
	DocumentLength(docID string) int

	// AverageDocumentLength returns the mean token count per document.
	// Meaningless (0) on an empty index; ranked models must not be invoked
	// on an empty corpus.
	AverageDocumentLength() float64

	// DocumentID maps a document ordinal back to its ID. Ordinals are
	// assigned in insertion order starting at 0.
	DocumentID(ordinal uint32) string

	UniqueTokenCount() int
	TotalTokenCount() int64
	DocumentCount() int
}
