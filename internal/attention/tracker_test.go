// File path: internal/attention/tracker_test.go
package attention

import (
	"testing"
	"time"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(offsetMs int64) time.Time {
	return base.Add(time.Duration(offsetMs) * time.Millisecond)
}

func TestSectionDwellAccumulatesAcrossViewings(t *testing.T) {
	tracker := NewTracker(base)
	tracker.RecordSectionVisibility("nature-earth", true, at(0))
	tracker.RecordSectionVisibility("nature-earth", false, at(4000))
	tracker.RecordSectionVisibility("nature-earth", true, at(10000))
	tracker.RecordSectionVisibility("nature-earth", false, at(13500))

	signals := tracker.Snapshot()
	if got := signals.SectionDwellTimes["nature-earth"]; got != 7500 {
		t.Fatalf("expected 7500ms dwell, got %d", got)
	}
}

func TestHiddenWithoutOpenEntryIsNoOp(t *testing.T) {
	tracker := NewTracker(base)
	tracker.RecordSectionVisibility("stability-trust", false, at(1000))
	tracker.RecordSectionVisibility("stability-trust", false, at(2000))

	signals := tracker.Snapshot()
	if _, ok := signals.SectionDwellTimes["stability-trust"]; ok {
		t.Fatalf("expected no dwell entry, got %v", signals.SectionDwellTimes)
	}
}

func TestFlushClosesOpenIntervals(t *testing.T) {
	tracker := NewTracker(base)
	tracker.RecordSectionVisibility("movement-action", true, at(0))
	tracker.RecordSectionVisibility("playful-light", true, at(2000))

	// Neither section has left the viewport yet.
	if got := tracker.Snapshot().TotalBrowsingTime(); got != 0 {
		t.Fatalf("expected no dwell before flush, got %d", got)
	}

	tracker.Flush(at(5000))
	signals := tracker.Snapshot()
	if got := signals.SectionDwellTimes["movement-action"]; got != 5000 {
		t.Errorf("movement-action dwell = %d, want 5000", got)
	}
	if got := signals.SectionDwellTimes["playful-light"]; got != 3000 {
		t.Errorf("playful-light dwell = %d, want 3000", got)
	}

	// Flushed intervals are closed; a second flush adds nothing.
	tracker.Flush(at(9000))
	if got := tracker.Snapshot().TotalBrowsingTime(); got != 8000 {
		t.Errorf("total after second flush = %d, want 8000", got)
	}
}

func TestBrowsingPathCollapsesAdjacentDuplicates(t *testing.T) {
	tracker := NewTracker(base)
	tracker.RecordSectionVisibility("a", true, at(0))
	tracker.RecordSectionVisibility("a", false, at(100))
	tracker.RecordSectionVisibility("a", true, at(200))
	tracker.RecordSectionVisibility("b", true, at(300))
	tracker.RecordSectionVisibility("a", true, at(400))

	path := tracker.Snapshot().BrowsingPath
	want := []string{"a", "b", "a"}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestShortHoverIgnoredThenCounted(t *testing.T) {
	tracker := NewTracker(base)
	tracker.RecordHover("x", 250*time.Millisecond, at(1000))
	tracker.RecordHover("x", 500*time.Millisecond, at(2000))

	exam, ok := tracker.Snapshot().ConceptExaminations["x"]
	if !ok {
		t.Fatal("expected examination record for x")
	}
	if exam.HoverCount != 1 {
		t.Errorf("hoverCount = %d, want 1", exam.HoverCount)
	}
	if exam.TotalDuration != 500 {
		t.Errorf("totalDuration = %d, want 500", exam.TotalDuration)
	}
	// First counted hover resets rather than increments the revisit counter.
	if exam.Revisits != 0 {
		t.Errorf("revisits = %d, want 0", exam.Revisits)
	}
	if exam.LastHoverTime == nil || !exam.LastHoverTime.Equal(at(2000)) {
		t.Errorf("lastHoverTime = %v, want %v", exam.LastHoverTime, at(2000))
	}
}

func TestRevisitsIncrementOnLaterHovers(t *testing.T) {
	tracker := NewTracker(base)
	tracker.RecordHover("x", 400*time.Millisecond, at(0))
	tracker.RecordHover("x", 600*time.Millisecond, at(1000))
	tracker.RecordHover("x", 800*time.Millisecond, at(2000))

	exam := tracker.Snapshot().ConceptExaminations["x"]
	if exam.HoverCount != 3 {
		t.Errorf("hoverCount = %d, want 3", exam.HoverCount)
	}
	if exam.Revisits != 2 {
		t.Errorf("revisits = %d, want 2", exam.Revisits)
	}
	if exam.TotalDuration != 1800 {
		t.Errorf("totalDuration = %d, want 1800", exam.TotalDuration)
	}
}

func TestExamineAlwaysAddsFixedBonus(t *testing.T) {
	tracker := NewTracker(base)
	tracker.RecordExamine("y", at(0))
	tracker.RecordExamine("y", at(100))

	exam := tracker.Snapshot().ConceptExaminations["y"]
	if exam.TotalDuration != 4000 {
		t.Errorf("totalDuration = %d, want 4000", exam.TotalDuration)
	}
	if exam.HoverCount != 2 {
		t.Errorf("hoverCount = %d, want 2", exam.HoverCount)
	}
	if exam.Revisits != 0 {
		t.Errorf("revisits = %d, want 0", exam.Revisits)
	}
	if exam.LastHoverTime != nil {
		t.Errorf("examine should not stamp lastHoverTime, got %v", exam.LastHoverTime)
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	tracker := NewTracker(base)
	tracker.RecordSectionVisibility("a", true, at(0))
	tracker.RecordSectionVisibility("a", false, at(1000))

	snap := tracker.Snapshot()
	snap.SectionDwellTimes["a"] = 999999
	snap.BrowsingPath = append(snap.BrowsingPath, "tampered")

	fresh := tracker.Snapshot()
	if got := fresh.SectionDwellTimes["a"]; got != 1000 {
		t.Errorf("tracker state mutated through snapshot: dwell = %d", got)
	}
	if len(fresh.BrowsingPath) != 1 {
		t.Errorf("tracker path mutated through snapshot: %v", fresh.BrowsingPath)
	}
}
