package records

import (
	"context"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
)

// Store looks up fact records by order identifier.
type Store interface {
	Order(ctx context.Context, orderID string) (domain.OrderRecord, error)
	Refund(ctx context.Context, orderID string) (domain.RefundRecord, error)
	Return(ctx context.Context, orderID string) (domain.ReturnRecord, error)
	Escalation(ctx context.Context, orderID string) (domain.EscalationRecord, error)
}

// Ledger records mutating actions and reports whether a (action, order id)
// pair is seen for the first time.
type Ledger interface {
	Mark(ctx context.Context, action, orderID string) (bool, error)
}
