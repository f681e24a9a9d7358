package chi

import (
	"context"

	healthuc "github.com/kiranakella1981-design/ecom-assistant/internal/usecase/health"
)

// ChatHandler routes a message and returns the user-visible response.
type ChatHandler interface {
	Handle(ctx context.Context, message string) string
}

// CorpusReloader rebuilds the FAQ index and reports the entry count.
type CorpusReloader interface {
	Reload(ctx context.Context) (int, error)
}

// HealthChecker aggregates component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}
