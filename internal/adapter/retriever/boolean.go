package retriever

import (
	"github.com/RoaringBitmap/roaring/v2"

	"trecsearch/internal/domain"
	"trecsearch/internal/port"
)

// booleanScore is the placeholder score attached to every boolean match.
const booleanScore = 1

// Conjunction is the AND model: a document matches only if it contains every
// query term. A query with no terms matches nothing.
type Conjunction struct{}

// NewConjunction returns the AND model.
func NewConjunction() *Conjunction { return &Conjunction{} }

// Type reports domain.QueryAND.
func (*Conjunction) Type() domain.QueryType { return domain.QueryAND }

// Score intersects the posting sets of all terms.
func (*Conjunction) Score(idx port.Index, terms []string) []domain.ScoredDoc {
	if len(terms) == 0 {
		return nil
	}
	matches := idx.DocumentsContaining(terms[0])
	for _, term := range terms[1:] {
		if matches.IsEmpty() {
			break
		}
		matches.And(idx.DocumentsContaining(term))
	}
	return constantScores(idx, matches)
}

// Disjunction is the OR model: a document matches if it contains at least one
// query term.
type Disjunction struct{}

// NewDisjunction returns the OR model.
func NewDisjunction() *Disjunction { return &Disjunction{} }

// Type reports domain.QueryOR.
func (*Disjunction) Type() domain.QueryType { return domain.QueryOR }

// Score unions the posting sets of all terms.
func (*Disjunction) Score(idx port.Index, terms []string) []domain.ScoredDoc {
	return constantScores(idx, unionOf(idx, terms))
}

func constantScores(idx port.Index, docs *roaring.Bitmap) []domain.ScoredDoc {
	if docs.IsEmpty() {
		return nil
	}
	results := make([]domain.ScoredDoc, 0, docs.GetCardinality())
	it := docs.Iterator()
	for it.HasNext() {
		results = append(results, domain.ScoredDoc{
			DocID: idx.DocumentID(it.Next()),
			Score: booleanScore,
		})
	}
	return results
}
