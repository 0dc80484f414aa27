package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownQueryType is returned when a query type tag matches none of the
// supported retrieval models.
var ErrUnknownQueryType = errors.New("unknown query type")

type Document struct {
	ID   string
	Text string
}

// QueryType is the closed set of retrieval models a query can select.
type QueryType int

const (
	QueryAND QueryType = iota
	QueryOR
	QueryQL
	QueryBM25
)

func (t QueryType) String() string {
	switch t {
	case QueryAND:
		return "AND"
	case QueryOR:
		return "OR"
	case QueryQL:
		return "QL"
	case QueryBM25:
		return "BM25"
	default:
		return fmt.Sprintf("QueryType(%d)", int(t))
	}
}

// Ranked reports whether results of this type are ordered by score.
// Boolean models (AND, OR) order by document ID instead.
func (t QueryType) Ranked() bool {
	return t == QueryQL || t == QueryBM25
}

// ParseQueryType maps a case-insensitive type tag to its QueryType.
func ParseQueryType(tag string) (QueryType, error) {
	switch strings.ToUpper(tag) {
	case "AND":
		return QueryAND, nil
	case "OR":
		return QueryOR, nil
	case "QL":
		return QueryQL, nil
	case "BM25":
		return QueryBM25, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownQueryType, tag)
	}
}

type Query struct {
	Type  QueryType
	Name  string
	Terms []string
}

type ScoredDoc struct {
	DocID string
	Score float64
}

type RankedResult struct {
	Rank  int
	DocID string
	Score float64
}

type Stats struct {
	Documents    int
	UniqueTokens int
	TotalTokens  int64
	AvgDocLen    float64
}
