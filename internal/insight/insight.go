// File path: internal/insight/insight.go
package insight

import (
	"sort"

	"github.com/bluslide/namegallery/internal/attention"
	"github.com/bluslide/namegallery/internal/catalog"
)

// Interest level buckets for a section's cumulative dwell time.
const (
	InterestHigh   = "high"
	InterestMedium = "medium"
	InterestLow    = "low"

	highDwellThreshold   = 20000
	mediumDwellThreshold = 10000

	maxHighInterestSections = 3
)

// Variant names one of the two historical trigger configurations. The
// immediate post-request path only surfaces sections labeled high and asks
// for a full minute of browsing; the idle-timer path is more eager, pulling
// in any section with more than five seconds of dwell and firing after half
// a minute. Both are preserved as-is rather than reconciled.
type Variant struct {
	Name string
	// ReadyThreshold is the total browsing time (ms) above which the
	// session is considered ready for hybrid synthesis.
	ReadyThreshold int64
	// IncludeDwellOver widens the high-interest filter: a section whose
	// dwell exceeds this value (ms) is included even when its bucketed
	// label is not "high". Zero means the strict label test applies.
	IncludeDwellOver int64
}

var (
	// OnRequestVariant drives insights computed immediately after an
	// explicit user request.
	OnRequestVariant = Variant{Name: "on-request", ReadyThreshold: 60000}
	// IdleTimerVariant drives insights computed on the background idle
	// timer while the gallery is open.
	IdleTimerVariant = Variant{Name: "idle-timer", ReadyThreshold: 30000, IncludeDwellOver: 5000}
)

// SectionInsight summarizes attention paid to one section.
type SectionInsight struct {
	SectionID        string            `json:"sectionId"`
	SectionTitle     string            `json:"sectionTitle"`
	DwellTime        int64             `json:"dwellTime"`
	InterestLevel    string            `json:"interestLevel"`
	ExaminedConcepts []catalog.Concept `json:"examinedConcepts"`
}

// Summary is the derived, disposable view of a session's attention signals.
// It is recomputed wholesale on demand and never mutated.
type Summary struct {
	HighInterestSections []SectionInsight  `json:"highInterestSections"`
	ExaminedConcepts     []catalog.Concept `json:"examinedConcepts"`
	TotalBrowsingTime    int64             `json:"totalBrowsingTime"`
	ReadyForHybrids      bool              `json:"readyForHybrids"`
}

// Derive reduces the accumulated signals into a ranked, capped summary. It
// is a pure function of its inputs: identical catalog, signals, and variant
// always produce an identical summary.
func Derive(cat catalog.Catalog, signals attention.Signals, variant Variant) Summary {
	examinedIDs := make(map[string]struct{}, len(signals.ConceptExaminations))
	for conceptID := range signals.ConceptExaminations {
		examinedIDs[conceptID] = struct{}{}
	}

	sections := make([]SectionInsight, 0, len(signals.SectionDwellTimes))
	for sectionID, dwell := range signals.SectionDwellTimes {
		sections = append(sections, SectionInsight{
			SectionID:        sectionID,
			SectionTitle:     cat.SectionTitle(sectionID),
			DwellTime:        dwell,
			InterestLevel:    classifyInterest(dwell),
			ExaminedConcepts: examinedInSection(cat, sectionID, examinedIDs),
		})
	}
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].DwellTime != sections[j].DwellTime {
			return sections[i].DwellTime > sections[j].DwellTime
		}
		return sections[i].SectionID < sections[j].SectionID
	})

	var high []SectionInsight
	for _, section := range sections {
		if !variant.includes(section) {
			continue
		}
		high = append(high, section)
		if len(high) == maxHighInterestSections {
			break
		}
	}

	total := signals.TotalBrowsingTime()
	return Summary{
		HighInterestSections: high,
		ExaminedConcepts:     cat.FilterConcepts(examinedIDs),
		TotalBrowsingTime:    total,
		ReadyForHybrids:      total > variant.ReadyThreshold,
	}
}

func (v Variant) includes(section SectionInsight) bool {
	if section.InterestLevel == InterestHigh {
		return true
	}
	return v.IncludeDwellOver > 0 && section.DwellTime > v.IncludeDwellOver
}

func classifyInterest(dwell int64) string {
	switch {
	case dwell > highDwellThreshold:
		return InterestHigh
	case dwell > mediumDwellThreshold:
		return InterestMedium
	default:
		return InterestLow
	}
}

func examinedInSection(cat catalog.Catalog, sectionID string, examinedIDs map[string]struct{}) []catalog.Concept {
	section, ok := cat.Section(sectionID)
	if !ok {
		return nil
	}
	var out []catalog.Concept
	for _, concept := range section.Concepts {
		if _, examined := examinedIDs[concept.ID]; examined {
			out = append(out, concept)
		}
	}
	return out
}
