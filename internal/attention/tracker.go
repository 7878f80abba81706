// File path: internal/attention/tracker.go
package attention

import (
	"sync"
	"time"
)

const (
	// Hovers shorter than this are treated as pointer noise and dropped.
	minHoverDuration = 300 * time.Millisecond
	// An explicit examine (click) is worth this much synthetic dwell on
	// top of whatever hovering already accumulated.
	examineBonus = 2 * time.Second
)

// Tracker converts raw viewport and pointer events into accumulated
// engagement metrics for one browsing session. It is purely in-memory; all
// operations are safe for concurrent use from independent UI event sources.
type Tracker struct {
	mu           sync.Mutex
	signals      Signals
	sectionEntry map[string]time.Time
}

// NewTracker returns an empty tracker stamped with the session start time.
func NewTracker(now time.Time) *Tracker {
	return &Tracker{
		signals: Signals{
			SectionDwellTimes:   make(map[string]int64),
			ConceptExaminations: make(map[string]Examination),
			Timestamp:           now,
		},
		sectionEntry: make(map[string]time.Time),
	}
}

// RecordSectionVisibility handles a section entering or leaving the viewport.
// Entering stamps an entry time and extends the browsing path when the
// section differs from the path's last element. Leaving folds the elapsed
// interval into the section's dwell accumulator. A leave event for a section
// with no open entry time is a no-op.
func (t *Tracker) RecordSectionVisibility(sectionID string, visible bool, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if visible {
		t.sectionEntry[sectionID] = now
		if n := len(t.signals.BrowsingPath); n == 0 || t.signals.BrowsingPath[n-1] != sectionID {
			t.signals.BrowsingPath = append(t.signals.BrowsingPath, sectionID)
		}
		return
	}
	entry, ok := t.sectionEntry[sectionID]
	if !ok {
		return
	}
	t.addDwellLocked(sectionID, now.Sub(entry))
	delete(t.sectionEntry, sectionID)
}

// RecordHover folds a completed hover into the concept's examination record.
// Hovers below the noise floor are ignored entirely. The revisit counter
// resets to zero on the first counted hover and increments on every later
// one.
func (t *Tracker) RecordHover(conceptID string, duration time.Duration, now time.Time) {
	if duration < minHoverDuration {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	exam := t.signals.ConceptExaminations[conceptID]
	if exam.HoverCount > 0 {
		exam.Revisits++
	} else {
		exam.Revisits = 0
	}
	exam.HoverCount++
	exam.TotalDuration += duration.Milliseconds()
	hoverTime := now
	exam.LastHoverTime = &hoverTime
	t.signals.ConceptExaminations[conceptID] = exam
}

// RecordExamine handles an explicit click on a concept: a fixed duration
// bonus plus one hover count, unconditionally. Revisits and the last hover
// stamp are untouched.
func (t *Tracker) RecordExamine(conceptID string, _ time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	exam := t.signals.ConceptExaminations[conceptID]
	exam.TotalDuration += examineBonus.Milliseconds()
	exam.HoverCount++
	t.signals.ConceptExaminations[conceptID] = exam
}

// Flush closes every open viewing interval at the given instant so that
// in-progress dwell is not lost on session teardown.
func (t *Tracker) Flush(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for sectionID, entry := range t.sectionEntry {
		t.addDwellLocked(sectionID, now.Sub(entry))
		delete(t.sectionEntry, sectionID)
	}
}

// Snapshot returns a deep copy of the accumulated signals. Open viewing
// intervals are not included; call Flush first to fold them in.
func (t *Tracker) Snapshot() Signals {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.signals.Clone()
}

func (t *Tracker) addDwellLocked(sectionID string, elapsed time.Duration) {
	delta := elapsed.Milliseconds()
	if delta < 0 {
		delta = 0
	}
	t.signals.SectionDwellTimes[sectionID] += delta
}
