package retrieval

import (
	"context"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
)

// CorpusSource loads the FAQ corpus entries from the backing store.
type CorpusSource interface {
	Load(ctx context.Context) ([]string, error)
}

// Embedder converts text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
