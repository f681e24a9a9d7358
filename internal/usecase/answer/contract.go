package answer

import "context"

// Generator produces a completion for a prompt within a token budget.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}
