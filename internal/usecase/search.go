package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"trecsearch/internal/adapter/cache"
	"trecsearch/internal/adapter/retriever"
	"trecsearch/internal/domain"
	"trecsearch/internal/port"
)

// SearchUseCase evaluates parsed queries against a frozen index.
type SearchUseCase struct {
	index   port.Index
	params  retriever.Params
	workers int
	scores  *cache.ScoreCache
	logger  *slog.Logger
}

// NewSearchUseCase creates a new search use case. workers bounds the number
// of queries evaluated concurrently; values below 1 fall back to the number
// of CPUs. scores may be nil to disable score memoization.
func NewSearchUseCase(index port.Index, params retriever.Params, workers int, scores *cache.ScoreCache, logger *slog.Logger) *SearchUseCase {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchUseCase{
		index:   index,
		params:  params,
		workers: workers,
		scores:  scores,
		logger:  logger,
	}
}

// QueryResult pairs a query with its ranked matches.
type QueryResult struct {
	Query   domain.Query
	Results []domain.RankedResult
}

// Run evaluates every query and returns one result per query, in input
// order regardless of which worker finished first.
func (u *SearchUseCase) Run(ctx context.Context, queries []domain.Query) ([]QueryResult, error) {
	results := make([]QueryResult, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			model, err := retriever.ForType(q.Type, u.params)
			if err != nil {
				return fmt.Errorf("query %q: %w", q.Name, err)
			}
			if u.scores != nil {
				model = cache.NewCachedModel(model, u.scores)
			}
			scored := model.Score(u.index, q.Terms)
			results[i] = QueryResult{Query: q, Results: Rank(q.Type, scored)}
			u.logger.Debug("evaluated query",
				"query", q.Name,
				"model", q.Type.String(),
				"matches", len(scored),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
