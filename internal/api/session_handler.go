// File path: internal/api/session_handler.go
package api

import (
	"errors"
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/bluslide/namegallery/internal/session"
)

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Errorf("session %s not found", sessionID))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}
