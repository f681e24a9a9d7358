// Package taxonomy holds the phrase tables the intent cascade matches
// against. The tables are data, not code: they are YAML-serializable so an
// operator can override the compiled-in defaults without touching the
// matching logic, and precedence stays auditable in one place.
package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Topic names used by the classifier. Every name must exist as a key in
// Taxonomy.FAQTopics.
const (
	TopicRefund        = "refund"
	TopicReturn        = "return"
	TopicExchange      = "exchange"
	TopicDefective     = "defective"
	TopicExceptions    = "exceptions"
	TopicInternational = "international"
	TopicContact       = "contact"
	TopicShipping      = "shipping"
	TopicPolicy        = "policy"
)

// Taxonomy is the authoritative phrase table for intent classification.
//
// Strong order actions alone qualify a query as order-related; weak actions
// additionally require the possessive marker so that generic mentions of
// shipping vocabulary do not misfire as account-specific lookups.
type Taxonomy struct {
	StrongOrderActions []string `yaml:"strong_order_actions"`
	WeakOrderActions   []string `yaml:"weak_order_actions"`
	PossessiveMarker   string   `yaml:"possessive_marker"`

	// Sub-kind markers resolve which order sub-kind an order-qualified
	// query belongs to, checked in declaration order.
	RefundMarkers   []string `yaml:"refund_markers"`
	ReturnMarkers   []string `yaml:"return_markers"`
	TrackingMarkers []string `yaml:"tracking_markers"`

	// Transactional phrases classify to an order sub-kind even without an
	// identifier present, so the guard can ask for the order number.
	TransactionalRefund []string `yaml:"transactional_refund"`
	TransactionalReturn []string `yaml:"transactional_return"`

	Escalation []string `yaml:"escalation"`

	FAQTopics map[string][]string `yaml:"faq_topics"`

	// PolicyPhrases feed the policy-query detector, an OR-gate safeguard
	// at the routing layer for clearly policy-shaped questions.
	PolicyPhrases []string `yaml:"policy_phrases"`
}

// Load reads a taxonomy override from a YAML file.
func Load(path string) (Taxonomy, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Taxonomy{}, fmt.Errorf("read taxonomy %s: %w", path, err)
	}

	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Taxonomy{}, fmt.Errorf("parse taxonomy: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Taxonomy{}, fmt.Errorf("invalid taxonomy: %w", err)
	}
	return t, nil
}

// Validate checks that every phrase set the cascade depends on is present.
func (t Taxonomy) Validate() error {
	if len(t.StrongOrderActions) == 0 {
		return fmt.Errorf("strong_order_actions is required")
	}
	if t.PossessiveMarker == "" {
		return fmt.Errorf("possessive_marker is required")
	}
	if len(t.Escalation) == 0 {
		return fmt.Errorf("escalation is required")
	}
	required := []string{TopicShipping, TopicRefund, TopicReturn, TopicPolicy}
	for _, topic := range required {
		if len(t.FAQTopics[topic]) == 0 {
			return fmt.Errorf("faq_topics.%s is required", topic)
		}
	}
	return nil
}
