package domain

// IntentKind is the categorical meaning assigned to a query. Exactly one
// kind is produced per classification.
type IntentKind string

const (
	// IntentOrderStatus asks about the state of a specific order.
	IntentOrderStatus IntentKind = "order_status"
	// IntentRefundStatus asks about a refund for a specific order.
	IntentRefundStatus IntentKind = "refund_status"
	// IntentReturnRequest asks to return items from a specific order.
	IntentReturnRequest IntentKind = "return_request"
	// IntentEscalation asks for a human agent or files a complaint.
	IntentEscalation IntentKind = "escalation"
	// IntentShipping asks about shipping or delivery timing in general.
	IntentShipping IntentKind = "shipping"
	// IntentFAQ asks a policy-level question answered from the FAQ corpus.
	IntentFAQ IntentKind = "faq"
	// IntentGeneral is the fallback when nothing else matches.
	IntentGeneral IntentKind = "general"
)

// String implements fmt.Stringer.
func (k IntentKind) String() string { return string(k) }

// IsOrderKind reports whether the intent is one of the order sub-kinds
// handled by the structured responder against the order dataset.
func (k IntentKind) IsOrderKind() bool {
	switch k {
	case IntentOrderStatus, IntentRefundStatus, IntentReturnRequest:
		return true
	default:
		return false
	}
}

// Classification is the result of running the intent cascade over a query.
// It is produced once per query and never mutated.
type Classification struct {
	Intent       IntentKind
	NeedsOrderID bool
}
