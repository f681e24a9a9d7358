package health

import "context"

// StorePinger checks KV store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}

// CorpusChecker reports whether a FAQ index snapshot is published.
type CorpusChecker interface {
	Loaded() bool
}
