// Package faq loads the FAQ corpus from its backing JSON file. The corpus
// is an ordered sequence of plain-text entries identified by position; it is
// reloaded wholesale, never incrementally.
package faq

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Source reads the FAQ corpus from a JSON array of strings.
type Source struct {
	path string
}

// NewSource creates a corpus source for the given file path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads and parses the whole corpus.
func (s *Source) Load(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		return nil, fmt.Errorf("read faq corpus %s: %w", s.path, err)
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse faq corpus: %w", err)
	}
	return entries, nil
}
