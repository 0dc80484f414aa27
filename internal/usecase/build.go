package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"trecsearch/internal/adapter/memindex"
	"trecsearch/internal/domain"
	"trecsearch/internal/port"
)

// BuildUseCase loads a corpus and freezes it into an in-memory index.
type BuildUseCase struct {
	source    port.CorpusSource
	tokenizer port.Tokenizer
	logger    *slog.Logger
}

// NewBuildUseCase creates a new build use case.
func NewBuildUseCase(source port.CorpusSource, tokenizer port.Tokenizer, logger *slog.Logger) *BuildUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildUseCase{
		source:    source,
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// BuildResult contains the frozen index and its collection statistics.
type BuildResult struct {
	Index    *memindex.Index
	Stats    domain.Stats
	Duration time.Duration
}

// Build reads every document from the source and indexes it. The optional
// onProgress callback is invoked after each document with the number of
// documents processed so far and the total.
func (u *BuildUseCase) Build(onProgress func(processed, total int)) (*BuildResult, error) {
	start := time.Now()

	docs, err := u.source.Documents()
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	builder := memindex.NewBuilder(u.tokenizer)
	for i, doc := range docs {
		builder.Add(doc)
		if onProgress != nil {
			onProgress(i+1, len(docs))
		}
	}
	idx := builder.Build()

	result := &BuildResult{
		Index:    idx,
		Stats:    idx.Stats(),
		Duration: time.Since(start),
	}
	u.logger.Info("index built",
		"documents", result.Stats.Documents,
		"unique_tokens", result.Stats.UniqueTokens,
		"total_tokens", result.Stats.TotalTokens,
		"duration", result.Duration,
	)
	return result, nil
}
