// Package mockdata implements the read-only keyed record store backed by a
// JSON dataset. Records are matched by exact string equality on the order
// identifier; escalations additionally match by the TKT-<order id> ticket
// convention.
package mockdata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
)

// dataset mirrors the mock_responses.json shape: one array per sub-kind.
type dataset struct {
	OrderStatus   []domain.OrderRecord      `json:"order_status"`
	RefundStatus  []domain.RefundRecord     `json:"refund_status"`
	ReturnRequest []domain.ReturnRecord     `json:"return_request"`
	Escalation    []domain.EscalationRecord `json:"escalation"`
}

// Store holds the parsed dataset in memory. Lookups never mutate it.
type Store struct {
	data dataset
}

// NewStore loads the dataset from a JSON file.
func NewStore(path string) (*Store, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read mock dataset %s: %w", path, err)
	}

	var d dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse mock dataset: %w", err)
	}
	return &Store{data: d}, nil
}

// Order looks up the order-status record for an order identifier.
func (s *Store) Order(_ context.Context, orderID string) (domain.OrderRecord, error) {
	for _, rec := range s.data.OrderStatus {
		if rec.OrderID == orderID {
			return rec, nil
		}
	}
	return domain.OrderRecord{}, domain.ErrRecordNotFound
}

// Refund looks up the refund record for an order identifier.
func (s *Store) Refund(_ context.Context, orderID string) (domain.RefundRecord, error) {
	for _, rec := range s.data.RefundStatus {
		if rec.OrderID == orderID {
			return rec, nil
		}
	}
	return domain.RefundRecord{}, domain.ErrRecordNotFound
}

// Return looks up the return-request record for an order identifier.
func (s *Store) Return(_ context.Context, orderID string) (domain.ReturnRecord, error) {
	for _, rec := range s.data.ReturnRequest {
		if rec.OrderID == orderID {
			return rec, nil
		}
	}
	return domain.ReturnRecord{}, domain.ErrRecordNotFound
}

// Escalation looks up the escalation record whose ticket derives from the
// order identifier.
func (s *Store) Escalation(_ context.Context, orderID string) (domain.EscalationRecord, error) {
	ticketID := TicketID(orderID)
	for _, rec := range s.data.Escalation {
		if rec.TicketID == ticketID {
			return rec, nil
		}
	}
	return domain.EscalationRecord{}, domain.ErrRecordNotFound
}

// TicketID derives the escalation ticket identifier from an order identifier.
func TicketID(orderID string) string {
	return "TKT-" + orderID
}
