// File path: internal/api/hybrid_handler.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/bluslide/namegallery/internal/common"
	"github.com/bluslide/namegallery/internal/generation"
	"github.com/bluslide/namegallery/internal/insight"
)

func (s *Server) handleGenerateHybrids(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req hybridsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: hybrids decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Info("api: hybrid request received", "selected", len(req.SelectedConcepts))

	flow := generation.NewHybridFlow(s.provider)
	hybrids, err := flow.RunSelected(r.Context(), req.Challenge, req.SelectedConcepts)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	if req.SessionID != "" {
		s.sessions.SaveHybrids(req.SessionID, hybrids)
	}
	writeJSON(w, http.StatusOK, hybridsResponse{Hybrids: hybrids})
}

func (s *Server) handleAttentionHybrids(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req attentionHybridsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: attention hybrids decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Info("api: attention hybrid request received",
		"sections_dwelled", len(req.AttentionData.SectionDwellTimes),
		"concepts_examined", len(req.AttentionData.ConceptExaminations))

	flow := generation.NewHybridFlow(s.provider)
	hybrids, insights, err := flow.RunFromSignals(r.Context(), req.Challenge, req.OriginalGallery, req.AttentionData)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	if req.SessionID != "" {
		s.sessions.SaveSignals(req.SessionID, req.AttentionData)
		s.sessions.SaveHybrids(req.SessionID, hybrids)
	}
	writeJSON(w, http.StatusOK, attentionHybridsResponse{Hybrids: hybrids, Insights: insights})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req insightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: insights decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	variant := insight.OnRequestVariant
	if req.Variant == "idle" {
		variant = insight.IdleTimerVariant
	}
	summary := insight.Derive(req.OriginalGallery, req.AttentionData, variant)
	logger.Debug("api: insights derived", "variant", variant.Name,
		"high_interest", len(summary.HighInterestSections), "ready", summary.ReadyForHybrids)
	writeJSON(w, http.StatusOK, summary)
}
