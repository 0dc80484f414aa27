package port

import "trecsearch/internal/domain"

// CorpusSource supplies the parsed documents an index is built from.
type CorpusSource interface {
	// Documents returns the corpus in input order. Document IDs are expected
	// to be unique; the index drops duplicates beyond the first.
	Documents() ([]domain.Document, error)
}
