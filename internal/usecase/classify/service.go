// Package classify maps free-text queries to intent kinds using a
// fixed-priority cascade over the phrase taxonomy. Matching is
// case-insensitive substring matching, not NLP; the cascade order is the
// documented behavior and the precision trade-offs are deliberate.
package classify

import (
	"regexp"
	"strings"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
	"github.com/kiranakella1981-design/ecom-assistant/internal/taxonomy"
)

// Service classifies queries against a fixed taxonomy. Classification is a
// pure function of the query text and the tables; there is no hidden state.
type Service struct {
	tax        taxonomy.Taxonomy
	possessive *regexp.Regexp
}

// New creates a classifier over the given taxonomy.
func New(tax taxonomy.Taxonomy) *Service {
	return &Service{
		tax:        tax,
		possessive: regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(tax.PossessiveMarker)) + `\b`),
	}
}

// Classify runs the cascade, first match wins:
//
//  1. identifier + order action        -> order sub-kind, identifier required
//  2. transactional refund/return      -> sub-kind, identifier required
//  3. escalation phrase                -> escalation, identifier required
//  4. shipping topic                   -> shipping
//  5. any FAQ topic                    -> faq
//  6. fallback                         -> general
func (s *Service) Classify(query string) domain.Classification {
	q := strings.ToLower(query)

	if domain.HasOrderID(q) && s.hasOrderAction(q) {
		return domain.Classification{Intent: s.orderSubKind(q), NeedsOrderID: true}
	}

	// Transactional phrasing without an identifier still classifies to the
	// order sub-kind so the guard can ask for the order number.
	if containsAny(q, s.tax.TransactionalRefund) {
		return domain.Classification{Intent: domain.IntentRefundStatus, NeedsOrderID: true}
	}
	if containsAny(q, s.tax.TransactionalReturn) {
		return domain.Classification{Intent: domain.IntentReturnRequest, NeedsOrderID: true}
	}

	if containsAny(q, s.tax.Escalation) {
		return domain.Classification{Intent: domain.IntentEscalation, NeedsOrderID: true}
	}

	// Shipping is checked before the generic FAQ topics so that delivery
	// timing questions are not swallowed by broader keyword overlap.
	if containsAny(q, s.tax.FAQTopics[taxonomy.TopicShipping]) {
		return domain.Classification{Intent: domain.IntentShipping}
	}

	if s.matchesAnyTopic(q) {
		return domain.Classification{Intent: domain.IntentFAQ}
	}

	return domain.Classification{Intent: domain.IntentGeneral}
}

// IsPolicyQuery independently flags clearly policy-shaped questions. The
// routing layer treats a hit as equivalent to the faq intent (OR-gate); it
// never replaces the classifier's label.
func (s *Service) IsPolicyQuery(query string) bool {
	return containsAny(strings.ToLower(query), s.tax.PolicyPhrases)
}

// hasOrderAction reports whether the query carries an order-action phrase.
// Strong phrases suffice alone; weak phrases count only together with the
// possessive marker, to avoid misfiring on generic shipping vocabulary.
func (s *Service) hasOrderAction(q string) bool {
	if containsAny(q, s.tax.StrongOrderActions) {
		return true
	}
	if !s.possessive.MatchString(q) {
		return false
	}
	return containsAny(q, s.tax.WeakOrderActions)
}

// orderSubKind resolves the specific sub-kind of an order-qualified query.
func (s *Service) orderSubKind(q string) domain.IntentKind {
	switch {
	case containsAny(q, s.tax.RefundMarkers):
		return domain.IntentRefundStatus
	case containsAny(q, s.tax.ReturnMarkers):
		return domain.IntentReturnRequest
	case containsAny(q, s.tax.TrackingMarkers):
		return domain.IntentOrderStatus
	default:
		return domain.IntentOrderStatus
	}
}

func (s *Service) matchesAnyTopic(q string) bool {
	for _, phrases := range s.tax.FAQTopics {
		if containsAny(q, phrases) {
			return true
		}
	}
	return false
}

func containsAny(q string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(q, p) {
			return true
		}
	}
	return false
}
