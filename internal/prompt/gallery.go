// File path: internal/prompt/gallery.go
package prompt

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"

	"github.com/bluslide/namegallery/internal/catalog"
)

// SectionPlan pins down one section the generator must fill: its identity,
// its sophistication level, and the creative instructions it works under.
type SectionPlan struct {
	ID             string
	Title          string
	Description    string
	Sophistication int
	Instructions   string
}

// GalleryPlan is the fixed ten-section layout of an initial catalog,
// ordered practical to abstract. Levels 3 and 4 each carry two sections so
// the middle of the spectrum is twice as dense as the edges.
var GalleryPlan = []SectionPlan{
	{
		ID:             "clear-direct",
		Title:          "Clear & Direct",
		Description:    "Names that say exactly what the offering is",
		Sophistication: 1,
		Instructions:   "Favor plain, literal vocabulary a first-time visitor instantly understands. No wordplay.",
	},
	{
		ID:             "stability-trust",
		Title:          "Stability & Trust",
		Description:    "Names emphasizing reliability, foundation, security",
		Sophistication: 2,
		Instructions:   "Draw on imagery of bedrock, anchors, keystones, and things that hold fast.",
	},
	{
		ID:             "community-warmth",
		Title:          "Community & Warmth",
		Description:    "Names emphasizing belonging, togetherness, shared values",
		Sophistication: 3,
		Instructions:   "Evoke gathering places, kinship, and collective effort without sounding saccharine.",
	},
	{
		ID:             "simplicity-clarity",
		Title:          "Simplicity & Clarity",
		Description:    "Names emphasizing ease, transparency, straightforwardness",
		Sophistication: 3,
		Instructions:   "Short words, open vowels, nothing that needs explaining twice.",
	},
	{
		ID:             "nature-earth",
		Title:          "Nature & Earth",
		Description:    "Names emphasizing organic, natural, sustainable qualities",
		Sophistication: 4,
		Instructions:   "Reach past cliché flora: geology, weather, seasons, and landforms are all fair material.",
	},
	{
		ID:             "heritage-craft",
		Title:          "Heritage & Craft",
		Description:    "Names emphasizing tradition, quality, craftsmanship",
		Sophistication: 4,
		Instructions:   "Borrow the vocabulary of workshops, trades, and things made to last generations.",
	},
	{
		ID:             "movement-action",
		Title:          "Movement & Action",
		Description:    "Names emphasizing dynamism, progress, momentum",
		Sophistication: 5,
		Instructions:   "Verbs and kinetic nouns. The name itself should feel like it is going somewhere.",
	},
	{
		ID:             "playful-light",
		Title:          "Playful & Light",
		Description:    "Names emphasizing joy, ease, lighthearted energy",
		Sophistication: 6,
		Instructions:   "Wit over whimsy. A smile, not a clown nose. Avoid diminutive -y endings.",
	},
	{
		ID:             "innovation-future",
		Title:          "Innovation & Future",
		Description:    "Names emphasizing newness, breakthrough, progress",
		Sophistication: 7,
		Instructions:   "Skip tech-bro suffixes (-ly, -ify, -hub). Suggest the future without naming it.",
	},
	{
		ID:             "abstract-evocative",
		Title:          "Abstract & Evocative",
		Description:    "Names that work by resonance and association rather than description",
		Sophistication: 8,
		Instructions:   "Pure mood. The name may mean nothing literally as long as it feels inevitable.",
	},
	// Ten sections of ten concepts each: a full catalog is always 100 ideas.
}

const conceptsPerSection = 10

var galleryTemplate = prompts.NewPromptTemplate(`You are a strategic naming consultant generating a curated gallery of brand name concepts.

User Challenge: {{.challenge}}

Generate exactly 10 sections with exactly 10 name concepts each. Use precisely the section ids, titles, descriptions, and sophistication levels listed below, in this order:

{{.sectionPlan}}

NAMING STRATEGY MIX (apply within every section, in this positional order):
- Positions 1-3: metaphorical single words (~30%) - one word carrying the section's theme as metaphor
- Positions 4-6: creative compounds (~25%) - two real words fused into an unexpected pairing
- Positions 7-8: evocative standalone words (~20%) - uncommon real words with the right resonance
- Position 9: invented blended words (~15%) - coined words built from recognizable fragments
- Position 10: borrowed foreign or Latin roots (~10%) - loanwords and classical roots that fit the theme

FORBIDDEN PATTERNS (these disqualify a concept):
- Lazy generic-modifier prefixes: "Eco-", "Green-", "Smart-", "Pro-", "Ultra-", "Next-" glued onto any noun
- The challenge's own key noun with a decorative adjective in front of it
- Any name already famous in the user's market

For each concept provide:
- name: the actual brand name (2-3 words max, usually 1 word)
- tagline: one sentence describing the positioning (10-15 words)
- qualities: 2-3 key attributes (e.g. "warm", "trustworthy", "modern")

Return as structured JSON matching this schema exactly:
{{.schema}}

Focus on strategic diversity across sections and thoughtful positioning within sections. Generate concepts that are memorable, distinctive, and aligned with the user's challenge.`,
	[]string{"challenge", "sectionPlan", "schema"},
)

const gallerySchema = `{
  "sections": [
    {
      "id": "community-warmth",
      "title": "Community & Warmth",
      "description": "Names emphasizing belonging and shared values",
      "sophistication": 3,
      "concepts": [
        {
          "name": "Kindred",
          "tagline": "A community of people supporting each other through every stage",
          "qualities": ["warm", "belonging", "collective"]
        }
      ]
    }
  ]
}`

// BuildGalleryPrompt renders the initial-catalog generation request for a
// user challenge. Output is deterministic: the same challenge always yields
// the same prompt string.
func BuildGalleryPrompt(challenge string) (string, error) {
	trimmed := strings.TrimSpace(challenge)
	if trimmed == "" {
		return "", fmt.Errorf("challenge required")
	}
	out, err := galleryTemplate.Format(map[string]any{
		"challenge":   trimmed,
		"sectionPlan": renderSectionPlan(GalleryPlan),
		"schema":      gallerySchema,
	})
	if err != nil {
		return "", fmt.Errorf("format gallery prompt: %w", err)
	}
	return out, nil
}

func renderSectionPlan(plan []SectionPlan) string {
	lines := make([]string, 0, len(plan))
	for i, section := range plan {
		lines = append(lines, fmt.Sprintf("%d. id=%q title=%q sophistication=%d - %s. Instructions: %s",
			i+1, section.ID, section.Title, section.Sophistication, section.Description, section.Instructions))
	}
	return strings.Join(lines, "\n")
}

// PlanSections converts the gallery plan into empty catalog sections, used
// when a response omits section metadata the plan already fixed.
func PlanSections() catalog.Catalog {
	out := make(catalog.Catalog, 0, len(GalleryPlan))
	for _, planned := range GalleryPlan {
		out = append(out, catalog.Section{
			ID:             planned.ID,
			Title:          planned.Title,
			Description:    planned.Description,
			Sophistication: planned.Sophistication,
			Instructions:   planned.Instructions,
		})
	}
	return out
}
