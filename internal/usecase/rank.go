package usecase

import (
	"sort"

	"trecsearch/internal/domain"
)

// Rank orders scored documents into presentation order and assigns 1-based
// ranks. Ranked models order by score descending with ties broken by document
// ID ascending; boolean matches all carry the same score and are ordered by
// document ID alone. The input slice is not modified.
func Rank(t domain.QueryType, scored []domain.ScoredDoc) []domain.RankedResult {
	ordered := make([]domain.ScoredDoc, len(scored))
	copy(ordered, scored)

	if t.Ranked() {
		sort.Slice(ordered, func(i, j int) bool {
			if ordered[i].Score != ordered[j].Score {
				return ordered[i].Score > ordered[j].Score
			}
			return ordered[i].DocID < ordered[j].DocID
		})
	} else {
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].DocID < ordered[j].DocID
		})
	}

	ranked := make([]domain.RankedResult, len(ordered))
	for i, r := range ordered {
		ranked[i] = domain.RankedResult{Rank: i + 1, DocID: r.DocID, Score: r.Score}
	}
	return ranked
}
