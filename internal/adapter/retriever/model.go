// Package retriever implements the retrieval models that score documents
// against a query: the boolean conjunction and disjunction models and the
// ranked query likelihood and BM25 models.
package retriever

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"trecsearch/internal/domain"
	"trecsearch/internal/port"
)

// Params carries the tunable constants of the ranked models. The boolean
// models take no parameters.
type Params struct {
	Mu float64 // query likelihood Dirichlet smoothing
	K1 float64 // BM25 document term frequency saturation
	K2 float64 // BM25 query term frequency saturation
	B  float64 // BM25 document length normalization
}

// DefaultParams returns the parameter values the models were tuned with.
func DefaultParams() Params {
	return Params{Mu: 300, K1: 1.8, K2: 5, B: 0.75}
}

// ForType returns the model implementing the given query type.
func ForType(t domain.QueryType, p Params) (port.Model, error) {
	switch t {
	case domain.QueryAND:
		return NewConjunction(), nil
	case domain.QueryOR:
		return NewDisjunction(), nil
	case domain.QueryQL:
		return NewQL(p.Mu), nil
	case domain.QueryBM25:
		return NewBM25(p.K1, p.K2, p.B), nil
	default:
		return nil, fmt.Errorf("retriever: no model for query type %d", t)
	}
}

// unionOf collects the documents containing at least one of the terms.
func unionOf(idx port.Index, terms []string) *roaring.Bitmap {
	union := roaring.New()
	for _, term := range terms {
		union.Or(idx.DocumentsContaining(term))
	}
	return union
}
