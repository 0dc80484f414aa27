// Package corpus reads story collections from JSON corpus files.
package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/gzip"

	"trecsearch/internal/domain"
)

// Loader reads documents from one or more corpus files. The path may be a
// literal file or a doublestar glob such as "data/*.json.gz"; matching files
// are read in sorted order so the document ordering is stable. Files ending
// in .gz are decompressed transparently.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given path or glob pattern.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// corpusFile is the on-disk layout: a single object holding the story list.
type corpusFile struct {
	Corpus []corpusDocument `json:"corpus"`
}

type corpusDocument struct {
	StoryID string `json:"storyID"`
	Text    string `json:"text"`
}

// Documents reads every matching corpus file and returns the stories in file
// order. Document IDs are expected to be unique across files; the index drops
// duplicates beyond the first.
func (l *Loader) Documents() ([]domain.Document, error) {
	paths, err := l.resolve()
	if err != nil {
		return nil, err
	}

	var docs []domain.Document
	for _, path := range paths {
		fileDocs, err := readFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, fileDocs...)
	}
	return docs, nil
}

// resolve expands the configured path into concrete files. A path naming an
// existing file is used as-is; anything else is treated as a glob.
func (l *Loader) resolve() ([]string, error) {
	if info, err := os.Stat(l.path); err == nil && !info.IsDir() {
		return []string{l.path}, nil
	}

	matches, err := doublestar.FilepathGlob(l.path)
	if err != nil {
		return nil, fmt.Errorf("invalid corpus pattern %q: %w", l.path, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no corpus files match %q", l.path)
	}
	sort.Strings(matches)
	return matches, nil
}

func readFile(path string) ([]domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	var file corpusFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	docs := make([]domain.Document, 0, len(file.Corpus))
	for _, d := range file.Corpus {
		docs = append(docs, domain.Document{ID: d.StoryID, Text: d.Text})
	}
	return docs, nil
}
