package taxonomy

// Default returns the compiled-in phrase tables.
func Default() Taxonomy {
	return Taxonomy{
		StrongOrderActions: []string{
			"track", "tracking",
			"where is", "where's",
			"cancel", "cancelled",
			"refund my", "refund order", "refund status",
			"return my", "return order", "return status", "return request",
			"replace my",
			"order status",
			"shipment status",
		},
		WeakOrderActions: []string{
			"shipment",
			"delivered",
			"delivery",
			"package",
		},
		PossessiveMarker: "my",

		RefundMarkers:   []string{"refund"},
		ReturnMarkers:   []string{"return"},
		TrackingMarkers: []string{"track", "where is my order", "order status"},

		TransactionalRefund: []string{
			"refund status", "refund my", "refund order",
		},
		TransactionalReturn: []string{
			"return status", "return request", "return my", "return order",
		},

		Escalation: []string{
			"complaint", "issue not resolved", "escalate", "escalation",
			"agent", "human support", "talk to agent", "customer care",
			"manager", "supervisor", "not happy", "problem persists",
		},

		FAQTopics: map[string][]string{
			TopicRefund: {
				"refund", "refunds", "money back",
				"refund time", "refund status",
				"refund processing time",
			},
			TopicReturn: {
				"return", "returns", "return item",
				"return window", "return period",
				"return eligibility", "return rules",
			},
			TopicExchange: {
				"exchange", "replacement", "replace item",
			},
			TopicDefective: {
				"defective", "damaged", "broken",
				"wrong item", "incorrect item",
			},
			TopicExceptions: {
				"exception", "exceptions",
				"excluded", "exclusion",
				"non refundable", "non returnable",
				"final sale", "clearance",
				"special case", "special conditions",
			},
			TopicInternational: {
				"international", "overseas",
				"outside india", "global",
				"remote area", "remote location",
				"cross border",
			},
			TopicContact: {
				"contact", "support",
				"customer care", "customer support",
				"helpdesk", "email",
				"phone", "call",
				"live chat",
			},
			TopicShipping: {
				"shipping", "delivery",
				"ship", "deliver",
				"shipping time", "delivery time",
			},
			TopicPolicy: {
				"policy", "terms", "conditions",
				"rules", "guidelines",
			},
		},

		PolicyPhrases: []string{
			"return policy",
			"refund policy",
			"exchange policy",
			"exceptions policy",
			"international returns policy",
			"support policy",
			"rules policy",
		},
	}
}
