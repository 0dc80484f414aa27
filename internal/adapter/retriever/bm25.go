package retriever

import (
	"math"

	"trecsearch/internal/domain"
	"trecsearch/internal/port"
)

// BM25 is the Okapi BM25 model. A candidate is any document containing at
// least one query term; each candidate accumulates, per query term occurrence,
// the product of
//
//	idf         = log((N - df + 0.5) / (df + 0.5))
//	docWeight   = (k1 + 1) * tf / (K + tf)   with K = k1*((1-b) + b*docLen/avgDocLen)
//	queryWeight = (k2 + 1) * qf / (k2 + qf)
//
// with the query term frequency qf fixed at 1, so queryWeight is the same
// constant for every term. The idf is unfloored: a term present in more than
// half the documents contributes a negative product, and one present in
// exactly half contributes nothing.
type BM25 struct {
	k1 float64
	k2 float64
	b  float64
}

// NewBM25 returns a BM25 model with the given saturation and length
// normalization parameters.
func NewBM25(k1, k2, b float64) *BM25 { return &BM25{k1: k1, k2: k2, b: b} }

// Type reports domain.QueryBM25.
func (*BM25) Type() domain.QueryType { return domain.QueryBM25 }

// Score ranks the candidate documents by BM25 weight.
func (m *BM25) Score(idx port.Index, terms []string) []domain.ScoredDoc {
	candidates := unionOf(idx, terms)
	if candidates.IsEmpty() {
		return nil
	}
	docCount := float64(idx.DocumentCount())
	avgDocLen := idx.AverageDocumentLength()
	const qf = 1
	queryWeight := (m.k2 + 1) * qf / (m.k2 + qf)
	results := make([]domain.ScoredDoc, 0, candidates.GetCardinality())
	it := candidates.Iterator()
	for it.HasNext() {
		docID := idx.DocumentID(it.Next())
		k := m.k1 * ((1 - m.b) + m.b*float64(idx.DocumentLength(docID))/avgDocLen)
		score := 0.0
		for _, term := range terms {
			tf := float64(idx.TermFrequency(term, docID))
			df := float64(idx.DocumentFrequency(term))
			idf := math.Log((docCount - df + 0.5) / (df + 0.5))
			docWeight := (m.k1 + 1) * tf / (k + tf)
			// A zero factor zeroes the product; leave the score untouched
			// instead of adding 0.
			if idf != 0 && docWeight != 0 && queryWeight != 0 {
				score += idf * docWeight * queryWeight
			}
		}
		results = append(results, domain.ScoredDoc{DocID: docID, Score: score})
	}
	return results
}
