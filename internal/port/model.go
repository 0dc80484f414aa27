package port

import "trecsearch/internal/domain"

// Model scores documents against a query's terms using one retrieval
// strategy. Implementations are pure: they read the index and allocate their
// own results, so a single Model value is safe for concurrent use.
type Model interface {
	// Type identifies the retrieval model for dispatch and output tagging.
	Type() domain.QueryType

	// Score returns one ScoredDoc per candidate document, in no particular
	// order. Terms are scored in the order given; repeated terms contribute
	// once per occurrence.
	Score(idx Index, terms []string) []domain.ScoredDoc
}
