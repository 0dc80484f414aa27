package usecase

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trecsearch/internal/adapter/analyzer"
	"trecsearch/internal/adapter/corpus"
	"trecsearch/internal/adapter/queryfile"
	"trecsearch/internal/adapter/retriever"
	"trecsearch/internal/adapter/runfile"
)

// Corpus file through index, models, and run output in one pass, with the
// rounded scores pinned by hand from the formulas.
func TestCorpusToRunFile(t *testing.T) {
	tmpDir := t.TempDir()
	corpusPath := filepath.Join(tmpDir, "stories.json")
	corpusJSON := `{"corpus": [
		{"storyID": "d1", "text": "cat dog cat"},
		{"storyID": "d2", "text": "dog dog"}
	]}`
	if err := os.WriteFile(corpusPath, []byte(corpusJSON), 0644); err != nil {
		t.Fatal(err)
	}

	queriesPath := filepath.Join(tmpDir, "queries.tsv")
	queriesTSV := "and\tpets\tcat\tdog\n" +
		"or\tpets\tcat\tdog\n" +
		"ql\tdensity\tdog\n" +
		"bm25\tweight\tdog\n"
	if err := os.WriteFile(queriesPath, []byte(queriesTSV), 0644); err != nil {
		t.Fatal(err)
	}

	queries, err := queryfile.ParseFile(queriesPath)
	if err != nil {
		t.Fatalf("parse queries: %v", err)
	}

	buildUC := NewBuildUseCase(corpus.NewLoader(corpusPath), analyzer.NewTokenizer(), testLogger())
	buildResult, err := buildUC.Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	searchUC := NewSearchUseCase(buildResult.Index, retriever.DefaultParams(), 2, nil, testLogger())
	results, err := searchUC.Run(context.Background(), queries)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var buf bytes.Buffer
	writer := runfile.NewWriter(&buf, "testtag")
	for _, r := range results {
		if err := writer.WriteQuery(r.Query, r.Results); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := [][]string{
		{"pets", "skip", "d1", "1", "1", "testtagAND"},
		{"pets", "skip", "d1", "1", "1", "testtagOR"},
		{"pets", "skip", "d2", "2", "1", "testtagOR"},
		{"density", "skip", "d2", "1", "-0.5064", "testtagQL"},
		{"density", "skip", "d1", "2", "-0.5152", "testtagQL"},
		{"weight", "skip", "d1", "1", "-1.4679", "testtagBM25"},
		{"weight", "skip", "d2", "2", "-2.5532", "testtagBM25"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != len(want[i]) {
			t.Fatalf("line %d has %d fields: %q", i, len(fields), line)
		}
		for j := range want[i] {
			if fields[j] != want[i][j] {
				t.Errorf("line %d field %d = %q, want %q (line: %q)", i, j, fields[j], want[i][j], line)
			}
		}
	}
}
