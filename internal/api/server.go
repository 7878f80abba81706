// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/bluslide/namegallery/internal/common"
	"github.com/bluslide/namegallery/internal/generation"
	"github.com/bluslide/namegallery/internal/llm"
	"github.com/bluslide/namegallery/internal/response"
	"github.com/bluslide/namegallery/internal/session"
)

type Server struct {
	router   chi.Router
	provider llm.Provider
	sessions *session.Store
}

// NewServer wires the HTTP surface over a generation provider and an
// ephemeral session store. The provider may be nil; generation endpoints
// then fail with a provider-unconfigured error while the insight and
// session endpoints keep working.
func NewServer(provider llm.Provider, sessions *session.Store) *Server {
	logger := common.Logger()
	if sessions == nil {
		sessions = session.NewStore(0)
	}
	providerName := "none"
	if provider != nil {
		providerName = provider.Name()
	}
	logger.Info("api: building server", "provider", providerName)
	srv := &Server{
		router:   chi.NewRouter(),
		provider: provider,
		sessions: sessions,
	}
	srv.routes()
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/v1/gallery", s.handleGenerateGallery)
	s.router.Post("/v1/hybrids", s.handleGenerateHybrids)
	s.router.Post("/v1/hybrids/attention", s.handleAttentionHybrids)
	s.router.Post("/v1/insights", s.handleInsights)
	s.router.Get("/v1/sessions/{sessionID}", s.handleGetSession)
	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeFlowError maps the generation failure taxonomy onto HTTP statuses.
func writeFlowError(w http.ResponseWriter, err error) {
	var malformed *response.MalformedResponseError
	switch {
	case errors.Is(err, generation.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, generation.ErrProviderUnconfigured), errors.Is(err, llm.ErrNoCredential):
		writeError(w, http.StatusServiceUnavailable, err)
	case errors.As(err, &malformed):
		writeError(w, http.StatusBadGateway, err)
	case errors.Is(err, generation.ErrGenerationFailed):
		writeError(w, http.StatusBadGateway, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
