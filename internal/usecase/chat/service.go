// Package chat routes incoming messages: classify, guard on the order
// identifier, then dispatch to either the structured responder or the
// retrieval-grounded answer path.
package chat

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
	"github.com/kiranakella1981-design/ecom-assistant/internal/logger"
	"github.com/kiranakella1981-design/ecom-assistant/internal/metrics"
)

// Fixed user-visible texts. These are contractual responses, not wording
// suggestions; tests assert them verbatim.
const (
	// ClarificationText is returned when an order-scoped intent lacks a
	// usable order identifier.
	ClarificationText = "Please provide a valid order number (e.g., 12345)."
	// InsufficientInfoText is returned when retrieval finds nothing within
	// the distance threshold.
	InsufficientInfoText = "I don't have enough information to answer that."
	// CapabilityText is the fallback for messages no route claims.
	CapabilityText = "This assistant supports order status, refund status, returns, and escalations."
	// UnavailableText is returned when a collaborator (store, embedding or
	// generation provider) fails.
	UnavailableText = "The assistant is temporarily unavailable. Please try again shortly."
)

// Config holds the retrieval knobs the router passes through.
type Config struct {
	TopK              int
	DistanceThreshold float64
}

// Service is the message router.
type Service struct {
	classifier Classifier
	retriever  Retriever
	answerer   Answerer
	responder  Responder
	cfg        Config
}

// New creates a Service.
func New(classifier Classifier, retriever Retriever, answerer Answerer, responder Responder, cfg Config) *Service {
	return &Service{
		classifier: classifier,
		retriever:  retriever,
		answerer:   answerer,
		responder:  responder,
		cfg:        cfg,
	}
}

// Handle routes a message to exactly one path and returns the user-visible
// response. Collaborator failures degrade to UnavailableText; Handle itself
// never returns an error to the transport for them.
func (s *Service) Handle(ctx context.Context, message string) string {
	log := logger.FromContext(ctx)

	c := s.classifier.Classify(message)
	metrics.IntentClassificationsTotal.WithLabelValues(string(c.Intent)).Inc()

	orderID, hasOrderID := domain.ExtractOrderID(message)

	log.Info("message classified",
		zap.String("intent", string(c.Intent)),
		zap.Bool("needs_order_id", c.NeedsOrderID),
		zap.Bool("has_order_id", hasOrderID))

	// Guard: an order-scoped intent without an identifier gets a
	// clarification prompt, before any provider is called.
	if c.NeedsOrderID && !hasOrderID {
		metrics.GuardRejectionsTotal.Inc()
		return ClarificationText
	}

	switch {
	case c.Intent.IsOrderKind() || c.Intent == domain.IntentEscalation:
		return s.structured(ctx, c.Intent, orderID)

	case c.Intent == domain.IntentFAQ || c.Intent == domain.IntentShipping:
		return s.grounded(ctx, message)

	default:
		// The policy detector can rescue a general-classified message into
		// the retrieval path; it never overrides an order-scoped label.
		if s.classifier.IsPolicyQuery(message) {
			return s.grounded(ctx, message)
		}
		return CapabilityText
	}
}

func (s *Service) structured(ctx context.Context, kind domain.IntentKind, orderID string) string {
	out, err := s.responder.Respond(ctx, kind, orderID)
	if err != nil {
		logger.FromContext(ctx).Error("structured responder failed",
			zap.String("intent", string(kind)),
			zap.String("order_id", orderID),
			zap.Error(err))
		return UnavailableText
	}
	return out
}

func (s *Service) grounded(ctx context.Context, message string) string {
	log := logger.FromContext(ctx)

	matches, err := s.retriever.Search(ctx, message, s.cfg.TopK, s.cfg.DistanceThreshold)
	if err != nil {
		log.Error("retrieval failed", zap.Error(err))
		return UnavailableText
	}

	if len(matches) == 0 {
		return InsufficientInfoText
	}

	entries := make([]string, len(matches))
	for i, m := range matches {
		entries[i] = m.Text
	}

	out, err := s.answerer.Answer(ctx, message, entries)
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return UnavailableText
	}
	if strings.TrimSpace(out) == "" {
		return InsufficientInfoText
	}
	return out
}
