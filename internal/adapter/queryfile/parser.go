// Package queryfile parses tab-separated query batches.
//
// Each non-blank line holds one query: a model tag (and/or/ql/bm25, any
// case), the query name, then one field per query term, all tab-separated.
package queryfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"trecsearch/internal/domain"
)

// Parse reads queries from r in file order. Blank lines are skipped; a line
// with fewer than two fields or an unknown model tag fails the whole batch
// with its line number.
func Parse(r io.Reader) ([]domain.Query, error) {
	var queries []domain.Query

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected at least a model tag and a query name, got %d fields", lineNo, len(fields))
		}

		queryType, err := domain.ParseQueryType(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		queries = append(queries, domain.Query{
			Type:  queryType,
			Name:  fields[1],
			Terms: fields[2:],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries: %w", err)
	}
	return queries, nil
}

// ParseFile reads queries from the file at path.
func ParseFile(path string) ([]domain.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open query file: %w", err)
	}
	defer f.Close()

	queries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return queries, nil
}
