// Package chi implements the HTTP API: the chat endpoint, corpus reload,
// health and metrics.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kiranakella1981-design/ecom-assistant/internal/domain"
	healthuc "github.com/kiranakella1981-design/ecom-assistant/internal/usecase/health"
)

// Stable error codes returned to clients.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeCorpusNotLoaded  = "corpus_not_loaded"
	codeProviderError    = "provider_error"
	codeInternalError    = "internal_error"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// chatRequest is the POST /chat body.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the POST /chat reply.
type chatResponse struct {
	Message string `json:"message"`
}

// reloadResponse is the POST /reload_faq reply.
type reloadResponse struct {
	Message string `json:"message"`
	Indexed int    `json:"indexed"`
}

// healthResponse is the GET /health reply.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Server holds the HTTP handlers.
type Server struct {
	chat   ChatHandler
	corpus CorpusReloader
	health HealthChecker
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(chat ChatHandler, corpus CorpusReloader, health HealthChecker, logger *zap.Logger) *Server {
	return &Server{
		chat:   chat,
		corpus: corpus,
		health: health,
		logger: logger,
	}
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/chat", s.Chat)
	r.Post("/reload_faq", s.ReloadFAQ)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Chat handles POST /chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Message is required")
		return
	}

	out := s.chat.Handle(r.Context(), req.Message)
	writeJSON(w, http.StatusOK, chatResponse{Message: out})
}

// ReloadFAQ handles POST /reload_faq.
func (s *Server) ReloadFAQ(w http.ResponseWriter, r *http.Request) {
	indexed, err := s.corpus.Reload(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reloadResponse{
		Message: "FAQ corpus reloaded",
		Indexed: indexed,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))

	switch {
	case errors.Is(err, domain.ErrCorpusNotLoaded):
		writeError(w, http.StatusServiceUnavailable, codeCorpusNotLoaded, domain.ErrCorpusNotLoaded.Error())
	case errors.Is(err, domain.ErrEmbeddingProviderError):
		writeError(w, http.StatusBadGateway, codeProviderError, domain.ErrEmbeddingProviderError.Error())
	case errors.Is(err, domain.ErrGenerationProviderError):
		writeError(w, http.StatusBadGateway, codeProviderError, domain.ErrGenerationProviderError.Error())
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
