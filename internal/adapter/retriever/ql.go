package retriever

import (
	"math"

	"trecsearch/internal/domain"
	"trecsearch/internal/port"
)

// QL is the query likelihood model with Dirichlet smoothing. A candidate is
// any document containing at least one query term; each candidate accumulates
//
//	log((tf + mu*ctf/collectionSize) / (docLen + mu))
//
// once per query term occurrence, so a term listed twice contributes twice.
// Documents containing none of the terms are never scored, even though
// smoothing alone would assign them a nonzero probability.
type QL struct {
	mu float64
}

// NewQL returns a query likelihood model with the given smoothing parameter.
func NewQL(mu float64) *QL { return &QL{mu: mu} }

// Type reports domain.QueryQL.
func (*QL) Type() domain.QueryType { return domain.QueryQL }

// Score ranks the candidate documents by smoothed log likelihood.
func (m *QL) Score(idx port.Index, terms []string) []domain.ScoredDoc {
	candidates := unionOf(idx, terms)
	if candidates.IsEmpty() {
		return nil
	}
	collectionSize := float64(idx.TotalTokenCount())
	results := make([]domain.ScoredDoc, 0, candidates.GetCardinality())
	it := candidates.Iterator()
	for it.HasNext() {
		docID := idx.DocumentID(it.Next())
		denominator := float64(idx.DocumentLength(docID)) + m.mu
		score := 0.0
		for _, term := range terms {
			tf := float64(idx.TermFrequency(term, docID))
			ctf := float64(idx.CollectionTermFrequency(term))
			numerator := tf + m.mu*(ctf/collectionSize)
			score += math.Log(numerator / denominator)
		}
		results = append(results, domain.ScoredDoc{DocID: docID, Score: score})
	}
	return results
}
