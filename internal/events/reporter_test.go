package events

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"rps-arena/internal/core"
)

func newTestLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestReporterLogsMilestones(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(newTestLogger(&buf), "chase")

	r.Observe(core.FrameReport{Frame: 0})
	if buf.Len() != 0 {
		t.Fatalf("baseline frames must not log, got %q", buf.String())
	}

	r.Observe(core.FrameReport{Advanced: true, Frame: 4, Conversions: 2, Population: [3]int{3, 0, 0}, Homogeneous: true})
	r.Observe(core.FrameReport{Advanced: true, Frame: 90, Removed: 3, Done: true})

	out := buf.String()
	for _, want := range []string{"conversions", "population homogeneous", "winner=rock", "arena drained", "removed=3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
	if r.Conversions() != 2 {
		t.Fatalf("expected 2 conversions, got %d", r.Conversions())
	}

	r.Reset(5)
	if r.Conversions() != 0 || !strings.Contains(buf.String(), "seed=5") {
		t.Fatal("reset should clear counters and log the seed")
	}
}

func TestReporterWithoutLogger(t *testing.T) {
	r := NewReporter(nil, "bounce")
	r.Observe(core.FrameReport{Advanced: true, Conversions: 1})
	if r.Conversions() != 1 {
		t.Fatal("counters should work without a logger")
	}
	var nilReporter *Reporter
	nilReporter.Observe(core.FrameReport{Advanced: true})
	nilReporter.Reset(1)
}

func TestWinner(t *testing.T) {
	if got := Winner(core.FrameReport{Population: [3]int{0, 0, 4}}); got != "scissors" {
		t.Fatalf("expected scissors, got %s", got)
	}
	if got := Winner(core.FrameReport{Population: [3]int{1, 1, 0}}); got != "none" {
		t.Fatalf("mixed population has no winner, got %s", got)
	}
	if got := Winner(core.FrameReport{}); got != "none" {
		t.Fatalf("empty arena has no winner, got %s", got)
	}
}
