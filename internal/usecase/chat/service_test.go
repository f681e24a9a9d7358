package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
	"github.com/kiranakella1981-design/ecom-assistant/internal/taxonomy"
	"github.com/kiranakella1981-design/ecom-assistant/internal/usecase/classify"
	"github.com/kiranakella1981-design/ecom-assistant/internal/usecase/retrieval"
)

// --- Mocks ---

type mockRetriever struct {
	matches []retrieval.Match
	err     error
	called  bool
}

func (m *mockRetriever) Search(_ context.Context, _ string, _ int, _ float64) ([]retrieval.Match, error) {
	m.called = true
	return m.matches, m.err
}

type mockAnswerer struct {
	out    string
	err    error
	called bool
}

func (m *mockAnswerer) Answer(_ context.Context, _ string, _ []string) (string, error) {
	m.called = true
	return m.out, m.err
}

type mockResponder struct {
	out      string
	err      error
	gotKind  domain.IntentKind
	gotOrder string
	called   bool
}

func (m *mockResponder) Respond(_ context.Context, kind domain.IntentKind, orderID string) (string, error) {
	m.called = true
	m.gotKind = kind
	m.gotOrder = orderID
	return m.out, m.err
}

type deps struct {
	retriever *mockRetriever
	answerer  *mockAnswerer
	responder *mockResponder
}

func newService(d *deps) *Service {
	return New(
		classify.New(taxonomy.Default()),
		d.retriever,
		d.answerer,
		d.responder,
		Config{TopK: 4, DistanceThreshold: 2.5},
	)
}

func defaultDeps() *deps {
	return &deps{
		retriever: &mockRetriever{matches: []retrieval.Match{{Text: "Shipping takes 3-5 business days."}}},
		answerer:  &mockAnswerer{out: "Standard shipping takes 3-5 business days."},
		responder: &mockResponder{out: "Order #12345 is shipped."},
	}
}

// --- Tests ---

func TestHandle_OrderStatusWithID(t *testing.T) {
	d := defaultDeps()
	svc := newService(d)

	got := svc.Handle(context.Background(), "Where is my order 12345?")
	if got != "Order #12345 is shipped." {
		t.Errorf("unexpected response: %q", got)
	}
	if d.responder.gotKind != domain.IntentOrderStatus {
		t.Errorf("expected order_status, got %q", d.responder.gotKind)
	}
	if d.responder.gotOrder != "12345" {
		t.Errorf("expected order id 12345, got %q", d.responder.gotOrder)
	}
	if d.retriever.called || d.answerer.called {
		t.Error("structured path must not touch retrieval or generation")
	}
}

func TestHandle_RefundWithID(t *testing.T) {
	d := defaultDeps()
	d.responder.out = "Refund for order #12345 is in progress."
	svc := newService(d)

	got := svc.Handle(context.Background(), "refund my order 12345")
	if got != d.responder.out {
		t.Errorf("unexpected response: %q", got)
	}
	if d.responder.gotKind != domain.IntentRefundStatus {
		t.Errorf("expected refund_status, got %q", d.responder.gotKind)
	}
}

func TestHandle_GuardRejectsMissingID(t *testing.T) {
	cases := []string{
		"refund status",
		"return my order",
		"refund my order please",
		"I need to speak to an agent",
	}
	for _, msg := range cases {
		t.Run(msg, func(t *testing.T) {
			d := defaultDeps()
			svc := newService(d)

			got := svc.Handle(context.Background(), msg)
			if got != ClarificationText {
				t.Errorf("expected clarification, got %q", got)
			}
			if d.responder.called || d.retriever.called || d.answerer.called {
				t.Error("guard must short-circuit before any collaborator runs")
			}
		})
	}
}

func TestHandle_FAQGrounded(t *testing.T) {
	d := defaultDeps()
	svc := newService(d)

	got := svc.Handle(context.Background(), "what is your refund policy?")
	if got != "Standard shipping takes 3-5 business days." {
		t.Errorf("unexpected response: %q", got)
	}
	if !d.retriever.called || !d.answerer.called {
		t.Error("faq path should retrieve and generate")
	}
	if d.responder.called {
		t.Error("faq path must not call the structured responder")
	}
}

func TestHandle_ShippingGrounded(t *testing.T) {
	d := defaultDeps()
	svc := newService(d)

	_ = svc.Handle(context.Background(), "how long does delivery take?")
	if !d.retriever.called {
		t.Error("shipping questions route through retrieval")
	}
}

func TestHandle_EmptyRetrieval(t *testing.T) {
	d := defaultDeps()
	d.retriever.matches = nil
	svc := newService(d)

	got := svc.Handle(context.Background(), "what is your refund policy?")
	if got != InsufficientInfoText {
		t.Errorf("expected insufficient-info text, got %q", got)
	}
	if d.answerer.called {
		t.Error("generation must not run on empty retrieval")
	}
}

func TestHandle_GeneralFallback(t *testing.T) {
	d := defaultDeps()
	svc := newService(d)

	got := svc.Handle(context.Background(), "tell me a joke")
	if got != CapabilityText {
		t.Errorf("expected capability text, got %q", got)
	}
	if d.retriever.called || d.answerer.called || d.responder.called {
		t.Error("fallback must not call any collaborator")
	}
}

// stubClassifier forces a general label while flagging the query as
// policy-shaped, to exercise the OR-gate in isolation.
type stubClassifier struct{}

func (stubClassifier) Classify(string) domain.Classification {
	return domain.Classification{Intent: domain.IntentGeneral}
}

func (stubClassifier) IsPolicyQuery(string) bool { return true }

func TestHandle_PolicyRescuesGeneral(t *testing.T) {
	d := defaultDeps()
	svc := New(stubClassifier{}, d.retriever, d.answerer, d.responder, Config{TopK: 4, DistanceThreshold: 2.5})

	got := svc.Handle(context.Background(), "am I allowed to get money returned after 30 days?")
	if got == CapabilityText {
		t.Errorf("policy question fell through to the capability text")
	}
	if !d.retriever.called {
		t.Error("policy OR-gate should route to retrieval")
	}
}

func TestHandle_RetrievalFailureDegrades(t *testing.T) {
	d := defaultDeps()
	d.retriever.err = errors.New("embedding provider down")
	svc := newService(d)

	got := svc.Handle(context.Background(), "what is your refund policy?")
	if got != UnavailableText {
		t.Errorf("expected unavailable text, got %q", got)
	}
}

func TestHandle_GenerationFailureDegrades(t *testing.T) {
	d := defaultDeps()
	d.answerer.err = errors.New("completion timeout")
	svc := newService(d)

	got := svc.Handle(context.Background(), "what is your refund policy?")
	if got != UnavailableText {
		t.Errorf("expected unavailable text, got %q", got)
	}
}

func TestHandle_ResponderFailureDegrades(t *testing.T) {
	d := defaultDeps()
	d.responder.err = errors.New("store down")
	svc := newService(d)

	got := svc.Handle(context.Background(), "where is my order 12345?")
	if got != UnavailableText {
		t.Errorf("expected unavailable text, got %q", got)
	}
}

func TestHandle_EscalationWithID(t *testing.T) {
	d := defaultDeps()
	d.responder.out = "Escalation created for order #12345."
	svc := newService(d)

	got := svc.Handle(context.Background(), "I want to speak to an agent about order 12345")
	if got != d.responder.out {
		t.Errorf("unexpected response: %q", got)
	}
	if d.responder.gotKind != domain.IntentEscalation {
		t.Errorf("expected escalation, got %q", d.responder.gotKind)
	}
}

func TestHandle_BlankGenerationFallsBack(t *testing.T) {
	d := defaultDeps()
	d.answerer.out = "   "
	svc := newService(d)

	got := svc.Handle(context.Background(), "what is your refund policy?")
	if got != InsufficientInfoText {
		t.Errorf("expected insufficient-info text for blank generation, got %q", got)
	}
}
