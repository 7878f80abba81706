// File path: internal/prompt/hybrid.go
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/prompts"

	"github.com/bluslide/namegallery/internal/catalog"
	"github.com/bluslide/namegallery/internal/insight"
)

// Hybrids generated per synthesis pass.
const hybridCount = 20

// Concepts borrowed from each high-interest section when the user examined
// nothing explicitly.
const fallbackConceptsPerSection = 3

var hybridTemplate = prompts.NewPromptTemplate(`You are synthesizing new brand name concepts by blending qualities from concepts the user focused on.

User Challenge: {{.challenge}}

The user focused on these {{.count}} concepts:
{{.concepts}}

Generate exactly {{.hybridCount}} new hybrid concepts that blend the qualities from these selections. Do not just concatenate names - synthesize the underlying qualities.

EXAMPLES OF GOOD SYNTHESIS:
- If the user selected "Kindred" (warm, community) and "Foundation" (stable, reliable)
- Generate: "Common Anchor" (shared + grounded), "Together Trust" (collective + reliable), "Kinship Rock" (belonging + solid)
- NOT: "Kindred Foundation" (too literal), "FoundKind" (awkward portmanteau)

EXAMPLES OF BAD SYNTHESIS:
- "EcoGreen" (just mashing words together)
- "FutureNext" (redundant, no synthesis)
- Simply repeating the selected concepts
- Forced combinations that don't flow naturally

SYNTHESIS STRATEGIES TO USE:
1. Quality Blending: identify the core qualities and find new words that embody both
   Example: "warm" + "reliable" -> "Hearth" (warm and dependable)
2. Metaphorical Combination: use metaphors that capture both essences
   Example: "community" + "innovation" -> "Hive Forward" (collective + progressive)
3. Complementary Pairing: pair qualities that enhance each other
   Example: "playful" + "trust" -> "Joybound" (fun but committed)

For each hybrid concept, clearly show which selected concepts influenced it.

Return as JSON matching this schema:
{{.schema}}

Focus on creating names that genuinely synthesize the qualities the user responded to. Make each concept feel thoughtful and purposeful.`,
	[]string{"challenge", "count", "concepts", "hybridCount", "schema"},
)

const hybridSchema = `{
  "hybrids": [
    {
      "name": "Common Anchor",
      "tagline": "Shared values grounded in lasting stability",
      "qualities": ["shared", "grounded", "collective"],
      "blends": ["Kindred", "Foundation"]
    }
  ]
}`

// BuildHybridPrompt renders the hybrid-synthesis request from the user
// challenge and the concepts serving as blending material. Deterministic for
// identical inputs.
func BuildHybridPrompt(challenge string, material []catalog.Concept) (string, error) {
	trimmed := strings.TrimSpace(challenge)
	if trimmed == "" {
		return "", fmt.Errorf("challenge required")
	}
	if len(material) == 0 {
		return "", fmt.Errorf("at least one concept required")
	}
	lines := make([]string, 0, len(material))
	for _, concept := range material {
		lines = append(lines, catalog.DescribeConcept(concept))
	}
	out, err := hybridTemplate.Format(map[string]any{
		"challenge":   trimmed,
		"count":       strconv.Itoa(len(material)),
		"concepts":    strings.Join(lines, "\n"),
		"hybridCount": strconv.Itoa(hybridCount),
		"schema":      hybridSchema,
	})
	if err != nil {
		return "", fmt.Errorf("format hybrid prompt: %w", err)
	}
	return out, nil
}

// HybridMaterialFromInsights picks the concepts a passive-signal synthesis
// pass should blend: everything the user examined, or, when nothing was
// examined, the first few concepts of each high-interest section.
func HybridMaterialFromInsights(cat catalog.Catalog, summary insight.Summary) []catalog.Concept {
	if len(summary.ExaminedConcepts) > 0 {
		return summary.ExaminedConcepts
	}
	var material []catalog.Concept
	for _, sectionInsight := range summary.HighInterestSections {
		section, ok := cat.Section(sectionInsight.SectionID)
		if !ok {
			continue
		}
		limit := fallbackConceptsPerSection
		if limit > len(section.Concepts) {
			limit = len(section.Concepts)
		}
		material = append(material, section.Concepts[:limit]...)
	}
	return material
}
