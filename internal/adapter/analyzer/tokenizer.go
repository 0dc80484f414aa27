package analyzer

import "strings"

// Tokenizer splits text into whitespace-delimited tokens. No case folding,
// stemming, stopword removal, or punctuation stripping is applied: a token is
// the atomic indexing unit exactly as it appears in the text, and two
// occurrences of the same spelling always index under the same key.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text on runs of Unicode whitespace. Surrounding whitespace
// produces no tokens, so a blank string yields an empty slice.
func (t *Tokenizer) Tokenize(text string) []string {
	return strings.Fields(text)
}
