package usecase

import (
	"context"
	"errors"
	"testing"

	"trecsearch/internal/adapter/analyzer"
	"trecsearch/internal/adapter/cache"
	"trecsearch/internal/adapter/memindex"
	"trecsearch/internal/adapter/retriever"
	"trecsearch/internal/domain"
)

func searchIndex(t *testing.T) *memindex.Index {
	t.Helper()
	b := memindex.NewBuilder(analyzer.NewTokenizer())
	b.Add(domain.Document{ID: "d1", Text: "cat dog cat"})
	b.Add(domain.Document{ID: "d2", Text: "dog dog"})
	return b.Build()
}

func TestRunEvaluatesAllModels(t *testing.T) {
	uc := NewSearchUseCase(searchIndex(t), retriever.DefaultParams(), 4, nil, testLogger())
	queries := []domain.Query{
		{Type: domain.QueryAND, Name: "q1", Terms: []string{"cat", "dog"}},
		{Type: domain.QueryOR, Name: "q2", Terms: []string{"cat", "dog"}},
		{Type: domain.QueryQL, Name: "q3", Terms: []string{"dog"}},
		{Type: domain.QueryBM25, Name: "q4", Terms: []string{"dog"}},
	}

	got, err := uc.Run(context.Background(), queries)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != len(queries) {
		t.Fatalf("got %d results, want %d", len(got), len(queries))
	}
	for i, r := range got {
		if r.Query.Name != queries[i].Name {
			t.Errorf("result %d is for %q, want %q", i, r.Query.Name, queries[i].Name)
		}
	}

	if ids := resultIDs(got[0]); len(ids) != 1 || ids[0] != "d1" {
		t.Errorf("AND matched %v, want [d1]", ids)
	}
	if ids := resultIDs(got[1]); len(ids) != 2 || ids[0] != "d1" || ids[1] != "d2" {
		t.Errorf("OR matched %v, want [d1 d2]", ids)
	}
	// "dog" is denser in d2, so query likelihood prefers it; BM25's length
	// normalization still puts d1 first because both scores are negative.
	if ids := resultIDs(got[2]); len(ids) != 2 || ids[0] != "d2" {
		t.Errorf("QL matched %v, want d2 first", ids)
	}
	if ids := resultIDs(got[3]); len(ids) != 2 || ids[0] != "d1" {
		t.Errorf("BM25 matched %v, want d1 first", ids)
	}
	for _, r := range got {
		for i, rr := range r.Results {
			if rr.Rank != i+1 {
				t.Errorf("%s: rank at position %d is %d", r.Query.Name, i, rr.Rank)
			}
		}
	}
}

func resultIDs(r QueryResult) []string {
	ids := make([]string, len(r.Results))
	for i, rr := range r.Results {
		ids[i] = rr.DocID
	}
	return ids
}

// Results come back in input order no matter how many workers race.
func TestRunPreservesQueryOrder(t *testing.T) {
	idx := searchIndex(t)
	queries := make([]domain.Query, 0, 40)
	for i := 0; i < 40; i++ {
		q := domain.Query{Type: domain.QueryOR, Name: queryName(i), Terms: []string{"dog"}}
		if i%2 == 0 {
			q.Type = domain.QueryBM25
		}
		queries = append(queries, q)
	}
	for _, workers := range []int{1, 8} {
		uc := NewSearchUseCase(idx, retriever.DefaultParams(), workers, nil, testLogger())
		got, err := uc.Run(context.Background(), queries)
		if err != nil {
			t.Fatalf("Run with %d workers: %v", workers, err)
		}
		for i, r := range got {
			if r.Query.Name != queries[i].Name {
				t.Fatalf("workers=%d: result %d is for %q, want %q",
					workers, i, r.Query.Name, queries[i].Name)
			}
		}
	}
}

func queryName(i int) string {
	return string(rune('a'+i%26)) + string(rune('0'+i/26))
}

// A batch that repeats a (model, terms) pair answers the repeats from the
// score cache and still ranks them identically.
func TestRunWithScoreCache(t *testing.T) {
	idx := searchIndex(t)
	queries := []domain.Query{
		{Type: domain.QueryBM25, Name: "first", Terms: []string{"dog"}},
		{Type: domain.QueryBM25, Name: "again", Terms: []string{"dog"}},
		{Type: domain.QueryQL, Name: "other", Terms: []string{"dog"}},
	}
	scores := cache.NewScoreCache(8)
	uc := NewSearchUseCase(idx, retriever.DefaultParams(), 1, scores, testLogger())

	got, err := uc.Run(context.Background(), queries)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if scores.Size() != 2 {
		t.Errorf("cache holds %d entries, want 2", scores.Size())
	}
	first, again := resultIDs(got[0]), resultIDs(got[1])
	if len(first) != len(again) {
		t.Fatalf("repeat query differs: %v vs %v", first, again)
	}
	for i := range first {
		if first[i] != again[i] {
			t.Errorf("repeat query differs at %d: %v vs %v", i, first, again)
		}
	}
}

func TestRunRejectsUnknownQueryType(t *testing.T) {
	uc := NewSearchUseCase(searchIndex(t), retriever.DefaultParams(), 2, nil, testLogger())
	_, err := uc.Run(context.Background(), []domain.Query{
		{Type: domain.QueryType(9), Name: "bad", Terms: []string{"dog"}},
	})
	if err == nil {
		t.Fatal("expected an error for an unknown query type")
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	uc := NewSearchUseCase(searchIndex(t), retriever.DefaultParams(), 2, nil, testLogger())
	_, err := uc.Run(ctx, []domain.Query{
		{Type: domain.QueryOR, Name: "q", Terms: []string{"dog"}},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}
