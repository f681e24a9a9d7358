package chat

import (
	"context"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
	"github.com/kiranakella1981-design/ecom-assistant/internal/usecase/retrieval"
)

// Classifier assigns an intent to a query and flags policy-shaped questions.
type Classifier interface {
	Classify(query string) domain.Classification
	IsPolicyQuery(query string) bool
}

// Retriever searches the FAQ corpus.
type Retriever interface {
	Search(ctx context.Context, query string, k int, threshold float64) ([]retrieval.Match, error)
}

// Answerer generates a grounded response from retrieved entries.
type Answerer interface {
	Answer(ctx context.Context, query string, entries []string) (string, error)
}

// Responder answers order-scoped intents from the record store.
type Responder interface {
	Respond(ctx context.Context, kind domain.IntentKind, orderID string) (string, error)
}
