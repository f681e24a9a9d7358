// Package answer turns retrieved FAQ entries into a grounded response via
// the generation provider.
package answer

import (
	"context"
	"fmt"
	"strings"
)

// Disclaimer is what the model must say when the context does not cover
// the question.
const Disclaimer = "I don't have that information."

const promptTemplate = `You are a customer support assistant for an e-commerce store.
Answer the customer's question using ONLY the context below.
Combine related sentences from the context into one coherent answer.
Do not truncate or summarize vaguely.
If the context does not contain the answer, reply exactly: %s

Context:
%s

Question: %s

Answer:`

// Service builds grounded prompts and delegates to the generator.
type Service struct {
	generator Generator
	maxTokens int
}

// New creates a Service with the given output token budget.
func New(generator Generator, maxTokens int) *Service {
	return &Service{generator: generator, maxTokens: maxTokens}
}

// Answer generates a response grounded in the given corpus entries.
func (s *Service) Answer(ctx context.Context, query string, entries []string) (string, error) {
	prompt := BuildPrompt(query, entries)

	out, err := s.generator.Generate(ctx, prompt, s.maxTokens)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	return strings.TrimSpace(out), nil
}

// BuildPrompt assembles the grounded prompt. Entries are joined with
// newlines, one per line.
func BuildPrompt(query string, entries []string) string {
	return fmt.Sprintf(promptTemplate, Disclaimer, strings.Join(entries, "\n"), query)
}
