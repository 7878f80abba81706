// File path: internal/catalog/types.go
package catalog

// HybridSectionID marks concepts synthesized from other concepts rather than
// generated as part of the original catalog.
const HybridSectionID = "hybrid"

// Concept is a single generated naming idea. Immutable once created.
type Concept struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Tagline   string   `json:"tagline"`
	Qualities []string `json:"qualities"`
	SectionID string   `json:"sectionId"`
	// Blends names the concepts a hybrid was synthesized from. Empty for
	// concepts belonging to the original catalog.
	Blends []string `json:"blends,omitempty"`
}

// Section is a themed grouping of concepts at one sophistication level.
// Sections are created wholesale by a generation pass and never mutated.
type Section struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Sophistication positions the section on the practical (1) to
	// abstract (8) spectrum. Always non-zero after normalization.
	Sophistication int       `json:"sophistication"`
	Instructions   string    `json:"instructions,omitempty"`
	Concepts       []Concept `json:"concepts"`
}

// Catalog is the ordered list of sections produced by one generation call.
// It is owned by the session that created it and read-only afterward.
type Catalog []Section
