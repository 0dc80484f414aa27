// Package runfile writes ranked results in the six-column TREC run format:
// query name, iteration field, document ID, rank, score, run tag.
package runfile

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"trecsearch/internal/domain"
)

// The iteration column carries no information in this run format and is
// always the same placeholder.
const iterationField = "skip"

// Writer emits one run line per ranked result.
type Writer struct {
	w      io.Writer
	runTag string
}

// NewWriter creates a writer that tags every line with runTag followed by
// the model name.
func NewWriter(w io.Writer, runTag string) *Writer {
	return &Writer{w: w, runTag: runTag}
}

// WriteQuery writes every ranked result of a single query, one line each.
func (w *Writer) WriteQuery(query domain.Query, results []domain.RankedResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w.w, FormatRow(query.Name, query.Type, r, w.runTag)); err != nil {
			return fmt.Errorf("failed to write run line: %w", err)
		}
	}
	return nil
}

// FormatRow renders one run line without the trailing newline. The query
// name is left-aligned in 15 columns and the document ID in 19; the rank is
// right-aligned in 4.
func FormatRow(queryName string, model domain.QueryType, r domain.RankedResult, runTag string) string {
	return fmt.Sprintf("%-15s %s %-19s %4d %s %s%s",
		queryName, iterationField, r.DocID, r.Rank, FormatScore(r.Score), runTag, model.String())
}

// FormatScore renders a score rounded to four decimal places in the shortest
// decimal form that round-trips, so integral scores print without a decimal
// point and sub-0.0001 magnitudes collapse to 0.
func FormatScore(score float64) string {
	rounded := math.Round(score*1e4) / 1e4
	return strconv.FormatFloat(rounded, 'g', -1, 64)
}
