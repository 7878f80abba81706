// File path: internal/response/parser.go
package response

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bluslide/namegallery/internal/catalog"
	"github.com/bluslide/namegallery/internal/common"
)

// snippetLimit bounds how much raw text a malformed-response error carries
// for diagnostics.
const snippetLimit = 200

// MalformedResponseError reports that generation output did not contain a
// parseable, structurally valid payload. It carries a bounded prefix of the
// raw text for debugging; callers must never substitute fabricated data.
type MalformedResponseError struct {
	Reason  string
	Snippet string
}

func (e *MalformedResponseError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("malformed response: %s", e.Reason)
	}
	return fmt.Sprintf("malformed response: %s (got %q)", e.Reason, e.Snippet)
}

func malformed(reason, raw string) *MalformedResponseError {
	snippet := strings.TrimSpace(raw)
	if len(snippet) > snippetLimit {
		snippet = snippet[:snippetLimit]
	}
	return &MalformedResponseError{Reason: reason, Snippet: snippet}
}

// Wire shapes as the generator emits them, before normalization.
type rawConcept struct {
	Name      string   `json:"name"`
	Tagline   string   `json:"tagline"`
	Qualities []string `json:"qualities"`
	Blends    []string `json:"blends"`
}

type rawSection struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Sophistication int          `json:"sophistication"`
	Concepts       []rawConcept `json:"concepts"`
}

type catalogPayload struct {
	Sections []rawSection `json:"sections"`
}

type hybridPayload struct {
	Hybrids []rawConcept `json:"hybrids"`
}

// ParseCatalog extracts, parses, and normalizes an initial-catalog
// generation response. Concepts receive deterministic synthetic ids of the
// form {sectionId}-concept-{index}; a section with an omitted sophistication
// level falls back to its 1-based position.
func ParseCatalog(raw string) (catalog.Catalog, error) {
	var payload catalogPayload
	if err := decodePayload(raw, &payload); err != nil {
		return nil, err
	}
	if payload.Sections == nil {
		return nil, malformed("missing sections array", raw)
	}
	out := make(catalog.Catalog, 0, len(payload.Sections))
	for i, section := range payload.Sections {
		sophistication := section.Sophistication
		if sophistication == 0 {
			sophistication = i + 1
		}
		normalized := catalog.Section{
			ID:             section.ID,
			Title:          section.Title,
			Description:    section.Description,
			Sophistication: sophistication,
			Concepts:       normalizeConcepts(section.Concepts, section.ID),
		}
		out = append(out, normalized)
	}
	return out, nil
}

// ParseHybrids extracts, parses, and normalizes a hybrid-synthesis
// response. Hybrids receive ids hybrid-{index} and the synthetic section id
// marking them as outside the original catalog.
func ParseHybrids(raw string) ([]catalog.Concept, error) {
	var payload hybridPayload
	if err := decodePayload(raw, &payload); err != nil {
		return nil, err
	}
	if payload.Hybrids == nil {
		return nil, malformed("missing hybrids array", raw)
	}
	out := make([]catalog.Concept, 0, len(payload.Hybrids))
	for _, hybrid := range payload.Hybrids {
		if strings.TrimSpace(hybrid.Name) == "" {
			common.Logger().Warn("response: dropping hybrid without a name", "tagline", hybrid.Tagline)
			continue
		}
		out = append(out, catalog.Concept{
			ID:        fmt.Sprintf("hybrid-%d", len(out)),
			Name:      hybrid.Name,
			Tagline:   hybrid.Tagline,
			Qualities: emptyIfNil(hybrid.Qualities),
			SectionID: catalog.HybridSectionID,
			Blends:    emptyIfNil(hybrid.Blends),
		})
	}
	return out, nil
}

func decodePayload(raw string, target interface{}) error {
	if strings.TrimSpace(raw) == "" {
		return malformed("empty response", raw)
	}
	object, ok := ExtractObject(raw)
	if !ok {
		return malformed("no balanced object literal found", raw)
	}
	if err := json.Unmarshal([]byte(object), target); err != nil {
		return malformed(fmt.Sprintf("invalid JSON: %v", err), object)
	}
	return nil
}

// normalizeConcepts assigns synthetic ids and stamps the owning section
// back onto each concept. Concepts without a name are dropped with a
// warning rather than padded with placeholder text, so the surviving ids
// stay dense.
func normalizeConcepts(raw []rawConcept, sectionID string) []catalog.Concept {
	out := make([]catalog.Concept, 0, len(raw))
	for _, concept := range raw {
		if strings.TrimSpace(concept.Name) == "" {
			common.Logger().Warn("response: dropping concept without a name", "section", sectionID, "tagline", concept.Tagline)
			continue
		}
		out = append(out, catalog.Concept{
			ID:        fmt.Sprintf("%s-concept-%d", sectionID, len(out)),
			Name:      concept.Name,
			Tagline:   concept.Tagline,
			Qualities: emptyIfNil(concept.Qualities),
			SectionID: sectionID,
		})
	}
	return out
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
