// File path: internal/attention/types.go
package attention

import "time"

// Examination accumulates engagement with a single concept. Counters only
// grow for the lifetime of a browsing session.
type Examination struct {
	HoverCount    int        `json:"hoverCount"`
	TotalDuration int64      `json:"totalDuration"`
	Revisits      int        `json:"revisits"`
	LastHoverTime *time.Time `json:"lastHoverTime,omitempty"`
}

// Signals is the aggregate attention state for one browsing session: dwell
// time per section, engagement per concept, and the order sections were
// visited in (consecutive duplicates collapsed). All durations are
// milliseconds.
type Signals struct {
	SectionDwellTimes   map[string]int64       `json:"sectionDwellTimes"`
	ConceptExaminations map[string]Examination `json:"conceptExaminations"`
	BrowsingPath        []string               `json:"browsingPath"`
	Timestamp           time.Time              `json:"timestamp"`
}

// TotalBrowsingTime sums dwell time across all sections.
func (s Signals) TotalBrowsingTime() int64 {
	var total int64
	for _, dwell := range s.SectionDwellTimes {
		total += dwell
	}
	return total
}

// Clone returns a deep copy safe to hand across goroutines or serialize.
func (s Signals) Clone() Signals {
	out := Signals{
		SectionDwellTimes:   make(map[string]int64, len(s.SectionDwellTimes)),
		ConceptExaminations: make(map[string]Examination, len(s.ConceptExaminations)),
		BrowsingPath:        append([]string(nil), s.BrowsingPath...),
		Timestamp:           s.Timestamp,
	}
	for id, dwell := range s.SectionDwellTimes {
		out.SectionDwellTimes[id] = dwell
	}
	for id, exam := range s.ConceptExaminations {
		if exam.LastHoverTime != nil {
			t := *exam.LastHoverTime
			exam.LastHoverTime = &t
		}
		out.ConceptExaminations[id] = exam
	}
	return out
}
