// File path: internal/catalog/catalog.go
package catalog

import "strings"

// SectionTitle resolves a section title by id. Unknown ids resolve to the
// empty string rather than an error so that attention signals referencing a
// stale catalog never abort insight derivation.
func (c Catalog) SectionTitle(sectionID string) string {
	for _, section := range c {
		if section.ID == sectionID {
			return section.Title
		}
	}
	return ""
}

// Section returns the section with the given id, if present.
func (c Catalog) Section(sectionID string) (Section, bool) {
	for _, section := range c {
		if section.ID == sectionID {
			return section, true
		}
	}
	return Section{}, false
}

// Concepts returns every concept across all sections in catalog order.
func (c Catalog) Concepts() []Concept {
	var out []Concept
	for _, section := range c {
		out = append(out, section.Concepts...)
	}
	return out
}

// ConceptCount reports the total number of concepts in the catalog.
func (c Catalog) ConceptCount() int {
	total := 0
	for _, section := range c {
		total += len(section.Concepts)
	}
	return total
}

// FilterConcepts returns the concepts whose ids appear in the given set, in
// catalog order.
func (c Catalog) FilterConcepts(ids map[string]struct{}) []Concept {
	if len(ids) == 0 {
		return nil
	}
	var out []Concept
	for _, section := range c {
		for _, concept := range section.Concepts {
			if _, ok := ids[concept.ID]; ok {
				out = append(out, concept)
			}
		}
	}
	return out
}

// DescribeConcept renders a concept in the "- Name: tagline (q1, q2)" form
// the prompt builders embed in generation requests.
func DescribeConcept(c Concept) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(c.Name)
	b.WriteString(": ")
	b.WriteString(c.Tagline)
	if len(c.Qualities) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(c.Qualities, ", "))
		b.WriteString(")")
	}
	return b.String()
}
