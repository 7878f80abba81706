// File path: internal/api/gallery_handler.go
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bluslide/namegallery/internal/common"
	"github.com/bluslide/namegallery/internal/generation"
	"github.com/bluslide/namegallery/internal/session"
)

func (s *Server) handleGenerateGallery(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req galleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: gallery decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Info("api: gallery request received", "challenge_length", len(req.Challenge))

	flow := generation.NewCatalogFlow(s.provider)
	gallery, err := flow.Run(r.Context(), req.Challenge)
	if err != nil {
		writeFlowError(w, err)
		return
	}

	sessionID := uuid.NewString()
	s.sessions.Put(session.Session{
		ID:        sessionID,
		Challenge: req.Challenge,
		Gallery:   gallery,
		CreatedAt: time.Now().UTC(),
	})
	logger.Info("api: gallery generated", "session", sessionID, "sections", len(gallery), "concepts", gallery.ConceptCount())
	writeJSON(w, http.StatusOK, galleryResponse{SessionID: sessionID, Sections: gallery})
}
