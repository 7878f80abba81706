// File path: internal/response/parser_test.go
package response

import (
	"errors"
	"testing"

	"github.com/bluslide/namegallery/internal/catalog"
)

const catalogFixture = `Sure, here is your gallery:
{
  "sections": [
    {
      "id": "community-warmth",
      "title": "Community & Warmth",
      "description": "Names emphasizing belonging",
      "sophistication": 3,
      "concepts": [
        {"name": "Kindred", "tagline": "Support through every stage", "qualities": ["warm", "belonging"]},
        {"name": "Hearth", "tagline": "The warm center of the home"}
      ]
    },
    {
      "id": "stability-trust",
      "title": "Stability & Trust",
      "description": "Names emphasizing reliability",
      "concepts": [
        {"name": "Keystone", "tagline": "The piece everything depends on", "qualities": ["solid"]}
      ]
    }
  ]
}
Let me know if you want changes.`

func TestParseCatalog(t *testing.T) {
	cat, err := ParseCatalog(catalogFixture)
	if err != nil {
		t.Fatalf("ParseCatalog returned error: %v", err)
	}
	if len(cat) != 2 {
		t.Fatalf("parsed %d sections, want 2", len(cat))
	}

	first := cat[0]
	if first.ID != "community-warmth" || first.Sophistication != 3 {
		t.Errorf("first section = %+v", first)
	}
	if len(first.Concepts) != 2 {
		t.Fatalf("first section has %d concepts, want 2", len(first.Concepts))
	}
	if got := first.Concepts[0].ID; got != "community-warmth-concept-0" {
		t.Errorf("first concept id = %q", got)
	}
	if got := first.Concepts[1].ID; got != "community-warmth-concept-1" {
		t.Errorf("second concept id = %q", got)
	}
	if first.Concepts[0].SectionID != "community-warmth" {
		t.Errorf("concept not stamped with section id: %+v", first.Concepts[0])
	}
	if first.Concepts[1].Qualities == nil || len(first.Concepts[1].Qualities) != 0 {
		t.Errorf("omitted qualities should normalize to empty slice, got %#v", first.Concepts[1].Qualities)
	}

	// Omitted sophistication falls back to the section's 1-based position.
	if got := cat[1].Sophistication; got != 2 {
		t.Errorf("fallback sophistication = %d, want 2", got)
	}
}

func TestParseCatalogDropsNamelessConcepts(t *testing.T) {
	raw := `{
  "sections": [
    {
      "id": "a",
      "title": "A",
      "description": "",
      "sophistication": 1,
      "concepts": [
        {"name": "First", "tagline": "kept"},
        {"name": "   ", "tagline": "dropped"},
        {"name": "Third", "tagline": "kept"}
      ]
    }
  ]
}`
	cat, err := ParseCatalog(raw)
	if err != nil {
		t.Fatalf("ParseCatalog returned error: %v", err)
	}
	concepts := cat[0].Concepts
	if len(concepts) != 2 {
		t.Fatalf("kept %d concepts, want 2", len(concepts))
	}
	// Ids stay dense after the drop.
	if concepts[0].ID != "a-concept-0" || concepts[1].ID != "a-concept-1" {
		t.Errorf("ids not dense: %q, %q", concepts[0].ID, concepts[1].ID)
	}
	if concepts[1].Name != "Third" {
		t.Errorf("wrong survivor: %+v", concepts[1])
	}
}

func TestParseCatalogMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", "   \n"},
		{"no object", "I am unable to produce JSON today."},
		{"unbalanced braces", `{"sections": [{"id": "a"`},
		{"invalid json", `{"sections": [}]}`},
		{"missing sections key", `{"galleries": []}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog(tc.raw)
			var malformedErr *MalformedResponseError
			if !errors.As(err, &malformedErr) {
				t.Fatalf("err = %v, want *MalformedResponseError", err)
			}
		})
	}
}

func TestMalformedErrorSnippetBounded(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	_, err := ParseCatalog(string(long))
	var malformedErr *MalformedResponseError
	if !errors.As(err, &malformedErr) {
		t.Fatalf("err = %v, want *MalformedResponseError", err)
	}
	if len(malformedErr.Snippet) > snippetLimit {
		t.Errorf("snippet length %d exceeds limit %d", len(malformedErr.Snippet), snippetLimit)
	}
}

func TestParseHybrids(t *testing.T) {
	raw := "```json\n" + `{
  "hybrids": [
    {"name": "Common Anchor", "tagline": "Shared values grounded in stability", "qualities": ["shared", "grounded"], "blends": ["Kindred", "Keystone"]},
    {"name": "", "tagline": "nameless, dropped"},
    {"name": "Hearthstone", "tagline": "Warmth you can build on"}
  ]
}` + "\n```"
	hybrids, err := ParseHybrids(raw)
	if err != nil {
		t.Fatalf("ParseHybrids returned error: %v", err)
	}
	if len(hybrids) != 2 {
		t.Fatalf("parsed %d hybrids, want 2", len(hybrids))
	}
	if hybrids[0].ID != "hybrid-0" || hybrids[1].ID != "hybrid-1" {
		t.Errorf("ids not dense: %q, %q", hybrids[0].ID, hybrids[1].ID)
	}
	for _, h := range hybrids {
		if h.SectionID != catalog.HybridSectionID {
			t.Errorf("hybrid %s has section id %q, want %q", h.ID, h.SectionID, catalog.HybridSectionID)
		}
	}
	if len(hybrids[0].Blends) != 2 {
		t.Errorf("blends = %#v", hybrids[0].Blends)
	}
	if hybrids[1].Blends == nil {
		t.Errorf("omitted blends should normalize to empty slice")
	}
}

func TestParseHybridsMissingKey(t *testing.T) {
	_, err := ParseHybrids(`{"sections": []}`)
	var malformedErr *MalformedResponseError
	if !errors.As(err, &malformedErr) {
		t.Fatalf("err = %v, want *MalformedResponseError", err)
	}
}
