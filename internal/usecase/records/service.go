// Package records answers order-scoped intents from the keyed mock dataset.
// Refunds and returns are mutating: they pass through the idempotency ledger
// so a repeated request reports the earlier outcome instead of acting twice.
package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
	"github.com/kiranakella1981-design/ecom-assistant/internal/logger"
	"github.com/kiranakella1981-design/ecom-assistant/internal/metrics"
)

// Ledger action names. They are part of persisted ledger keys, so changing
// them resets dedup state for the durable driver.
const (
	actionRefund = "refund"
	actionReturn = "return"
)

// Service resolves order-scoped intents into fixed-template responses.
type Service struct {
	store  Store
	ledger Ledger
}

// New creates a Service.
func New(store Store, ledger Ledger) *Service {
	return &Service{store: store, ledger: ledger}
}

// Respond produces the structured response for an order-scoped intent.
// A missing record yields a fixed not-found text, not an error; errors are
// reserved for collaborator failures.
func (s *Service) Respond(ctx context.Context, kind domain.IntentKind, orderID string) (string, error) {
	switch kind {
	case domain.IntentOrderStatus:
		return s.orderStatus(ctx, orderID)
	case domain.IntentRefundStatus:
		return s.refundStatus(ctx, orderID)
	case domain.IntentReturnRequest:
		return s.returnRequest(ctx, orderID)
	case domain.IntentEscalation:
		return s.escalation(ctx, orderID)
	default:
		return "", fmt.Errorf("unsupported intent kind %q", kind)
	}
}

func (s *Service) orderStatus(ctx context.Context, orderID string) (string, error) {
	rec, err := s.store.Order(ctx, orderID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Sprintf("No order record found for order #%s.", orderID), nil
	}
	if err != nil {
		return "", fmt.Errorf("look up order %s: %w", orderID, err)
	}

	var items strings.Builder
	for _, item := range rec.Items {
		fmt.Fprintf(&items, "\n- %s (SKU: %s, Qty: %d)", item.Name, item.SKU, item.Qty)
	}
	return fmt.Sprintf("Order #%s is %s and will arrive by %s.\nItems:%s",
		orderID, rec.Status, rec.EstimatedDelivery, items.String()), nil
}

func (s *Service) refundStatus(ctx context.Context, orderID string) (string, error) {
	rec, err := s.store.Refund(ctx, orderID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Sprintf("No refund record found for order #%s.", orderID), nil
	}
	if err != nil {
		return "", fmt.Errorf("look up refund %s: %w", orderID, err)
	}

	first, err := s.ledger.Mark(ctx, actionRefund, orderID)
	if err != nil {
		return "", fmt.Errorf("mark refund %s: %w", orderID, err)
	}
	if !first {
		metrics.LedgerDuplicatesTotal.WithLabelValues(actionRefund).Inc()
		logger.FromContext(ctx).Info("duplicate refund request",
			zap.String("order_id", orderID))
		return fmt.Sprintf("A refund for order #%s was already processed. Current status: %s.",
			orderID, rec.Status), nil
	}

	return fmt.Sprintf("Refund for order #%s is in %s.\nAmount: %.2f INR\nTimeline: %s",
		orderID, rec.Status, rec.Amount, rec.Timeline), nil
}

func (s *Service) returnRequest(ctx context.Context, orderID string) (string, error) {
	rec, err := s.store.Return(ctx, orderID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Sprintf("No return request found for order #%s.", orderID), nil
	}
	if err != nil {
		return "", fmt.Errorf("look up return %s: %w", orderID, err)
	}

	first, err := s.ledger.Mark(ctx, actionReturn, orderID)
	if err != nil {
		return "", fmt.Errorf("mark return %s: %w", orderID, err)
	}
	if !first {
		metrics.LedgerDuplicatesTotal.WithLabelValues(actionReturn).Inc()
		logger.FromContext(ctx).Info("duplicate return request",
			zap.String("order_id", orderID))
		return fmt.Sprintf("A return for order #%s was already submitted. Your label is still valid: %s",
			orderID, rec.LabelURL), nil
	}

	return fmt.Sprintf("Return request for order #%s:\n- Item: %s\n- Reason: %s\n- Method: %s\nDownload return label: %s",
		orderID, rec.ItemID, rec.Reason, rec.Method, rec.LabelURL), nil
}

func (s *Service) escalation(ctx context.Context, orderID string) (string, error) {
	rec, err := s.store.Escalation(ctx, orderID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Sprintf("No escalation record found for order #%s.", orderID), nil
	}
	if err != nil {
		return "", fmt.Errorf("look up escalation %s: %w", orderID, err)
	}

	return fmt.Sprintf("Escalation created for order #%s:\n- Ticket ID: %s\n- Status: %s\n- Assigned To: %s",
		orderID, rec.TicketID, rec.Status, rec.AssignedTo), nil
}
