// File path: internal/api/types.go
package api

import (
	"github.com/bluslide/namegallery/internal/attention"
	"github.com/bluslide/namegallery/internal/catalog"
	"github.com/bluslide/namegallery/internal/insight"
)

type galleryRequest struct {
	Challenge string `json:"challenge"`
}

type galleryResponse struct {
	SessionID string            `json:"sessionId"`
	Sections  []catalog.Section `json:"sections"`
}

// hybridsRequest is the explicit-selection variant: the user starred
// concrete concepts to blend.
type hybridsRequest struct {
	SessionID        string            `json:"sessionId,omitempty"`
	SelectedConcepts []catalog.Concept `json:"selectedConcepts"`
	OriginalGallery  []catalog.Section `json:"originalGallery"`
	Challenge        string            `json:"challenge"`
}

type hybridsResponse struct {
	Hybrids []catalog.Concept `json:"hybrids"`
}

// attentionHybridsRequest is the passive-signal variant: blending material
// is derived from observed browsing behavior.
type attentionHybridsRequest struct {
	SessionID       string            `json:"sessionId,omitempty"`
	AttentionData   attention.Signals `json:"attentionData"`
	OriginalGallery []catalog.Section `json:"originalGallery"`
	Challenge       string            `json:"challenge"`
}

type attentionHybridsResponse struct {
	Hybrids  []catalog.Concept `json:"hybrids"`
	Insights insight.Summary   `json:"insights"`
}

type insightsRequest struct {
	AttentionData   attention.Signals `json:"attentionData"`
	OriginalGallery []catalog.Section `json:"originalGallery"`
	// Variant selects the trigger configuration: "idle" for the
	// idle-timer rules, anything else for the on-request rules.
	Variant string `json:"variant,omitempty"`
}
