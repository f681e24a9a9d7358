package domain

// OrderItem is a single line item on an order.
type OrderItem struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// OrderRecord is the mock order-status fact record.
type OrderRecord struct {
	OrderID           string      `json:"order_id"`
	Status            string      `json:"status"`
	EstimatedDelivery string      `json:"estimated_delivery"`
	Items             []OrderItem `json:"items"`
}

// RefundRecord is the mock refund fact record.
type RefundRecord struct {
	OrderID  string  `json:"order_id"`
	Status   string  `json:"status"`
	Amount   float64 `json:"amount"`
	Timeline string  `json:"timeline"`
}

// ReturnRecord is the mock return-request fact record.
type ReturnRecord struct {
	OrderID  string `json:"order_id"`
	ItemID   string `json:"item_id"`
	Reason   string `json:"reason"`
	Method   string `json:"method"`
	LabelURL string `json:"label_url"`
}

// EscalationRecord is the mock escalation fact record. Escalations are keyed
// by ticket ID derived from the order identifier ("TKT-" prefix).
type EscalationRecord struct {
	TicketID   string `json:"ticket_id"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to"`
}
