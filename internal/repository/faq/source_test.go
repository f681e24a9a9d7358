package faq

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq_docs.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	return path
}

func TestSource_Load(t *testing.T) {
	path := writeCorpus(t, `["Refunds are processed within 5-7 business days.","Returns are accepted within 30 days."]`)

	entries, err := NewSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0] != "Refunds are processed within 5-7 business days." {
		t.Errorf("order not preserved: %q", entries[0])
	}
}

func TestSource_LoadEmpty(t *testing.T) {
	path := writeCorpus(t, `[]`)

	entries, err := NewSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty corpus, got %d entries", len(entries))
	}
}

func TestSource_LoadMissingFile(t *testing.T) {
	if _, err := NewSource("/nonexistent/faq.json").Load(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSource_LoadInvalidJSON(t *testing.T) {
	path := writeCorpus(t, `{"not":"an array"}`)
	if _, err := NewSource(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for invalid corpus shape")
	}
}
