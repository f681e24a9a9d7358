package answer

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// --- Mocks ---

type mockGenerator struct {
	out       string
	err       error
	gotPrompt string
	gotTokens int
}

func (m *mockGenerator) Generate(_ context.Context, prompt string, maxTokens int) (string, error) {
	m.gotPrompt = prompt
	m.gotTokens = maxTokens
	return m.out, m.err
}

// --- Tests ---

func TestAnswer_TrimsOutput(t *testing.T) {
	gen := &mockGenerator{out: "  Shipping takes 3-5 days.\n"}
	svc := New(gen, 1000)

	got, err := svc.Answer(context.Background(), "how long is shipping?", []string{"Shipping takes 3-5 business days."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Shipping takes 3-5 days." {
		t.Errorf("expected trimmed output, got %q", got)
	}
	if gen.gotTokens != 1000 {
		t.Errorf("expected max tokens 1000, got %d", gen.gotTokens)
	}
}

func TestAnswer_GeneratorError(t *testing.T) {
	gen := &mockGenerator{err: errors.New("provider down")}
	svc := New(gen, 1000)

	if _, err := svc.Answer(context.Background(), "q", []string{"e"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildPrompt_ContainsAllParts(t *testing.T) {
	prompt := BuildPrompt("what is the return window?", []string{
		"Returns are accepted within 30 days.",
		"Refunds are issued to the original payment method.",
	})

	for _, want := range []string{
		"using ONLY the context below",
		"Combine related sentences from the context into one coherent answer.",
		"Do not truncate or summarize vaguely.",
		"Returns are accepted within 30 days.\nRefunds are issued to the original payment method.",
		"Question: what is the return window?",
		Disclaimer,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_EntriesJoinedPlain(t *testing.T) {
	prompt := BuildPrompt("q", []string{"first entry", "second entry"})

	if strings.Contains(prompt, "1. first entry") {
		t.Errorf("entries must not be numbered:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Context:\nfirst entry\nsecond entry\n") {
		t.Errorf("entries not newline-joined under Context:\n%s", prompt)
	}
}
