package domain

import "context"

// Generator is the text generation contract. maxTokens bounds the output
// length budget; implementations return the raw model output untrimmed.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}
