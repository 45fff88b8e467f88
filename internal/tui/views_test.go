package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/dayboard/internal/i18n"
)

func TestRenderTimelineMarksActive(t *testing.T) {
	tr := i18n.MustNew("en")
	out, line := RenderTimeline(testItems(), 1, 60, tr)
	if line != 1 {
		t.Fatalf("active line = %d, want 1", line)
	}
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[1], "▶") || !strings.Contains(lines[1], "Lunch") {
		t.Fatalf("expected active marker on lunch row, got %q", lines[1])
	}
	if !strings.Contains(out, "09:00  Deep work") {
		t.Fatalf("expected start time and title, got %q", out)
	}
}

func TestRenderTimelineExpandsActiveDescription(t *testing.T) {
	tr := i18n.MustNew("en")
	out, line := RenderTimeline(testItems(), 0, 60, tr)
	if line != 0 {
		t.Fatalf("active line = %d, want 0", line)
	}
	if !strings.Contains(out, "Focus block.") {
		t.Fatalf("expected active description, got %q", out)
	}

	out, line = RenderTimeline(testItems(), -1, 60, tr)
	if line != -1 {
		t.Fatalf("active line = %d, want -1", line)
	}
	if strings.Contains(out, "Focus block.") {
		t.Fatalf("expected no description without an active item, got %q", out)
	}
}

func TestRenderTimelineEmpty(t *testing.T) {
	out, line := RenderTimeline(nil, -1, 40, i18n.MustNew("en"))
	if line != -1 || !strings.Contains(out, "No active tasks.") {
		t.Fatalf("unexpected empty timeline %q (%d)", out, line)
	}
}

func TestBottomBarShowsSimulatedOffset(t *testing.T) {
	m, _ := newTestModel(t, time.Date(2026, 1, 29, 10, 30, 0, 0, time.Local))
	m = tick(t, m)
	out := RenderBottomBar(m)
	if strings.Contains(out, "simulated") {
		t.Fatalf("expected no simulated marker without offset, got %q", out)
	}
	if !strings.Contains(out, "10:30:00") {
		t.Fatalf("expected clock in bottom bar, got %q", out)
	}

	m, _ = press(m, runeKey('n'))
	m = tick(t, m)
	out = RenderBottomBar(m)
	if !strings.Contains(out, "simulated +31m0s") {
		t.Fatalf("expected simulated offset, got %q", out)
	}
	if !strings.Contains(out, "quit") {
		t.Fatalf("expected key help, got %q", out)
	}
}

func TestLayoutBarFitsWidth(t *testing.T) {
	out := layoutBar("left side", "right", 30)
	if lipgloss.Width(out) != 30 {
		t.Fatalf("layoutBar width = %d, want 30", lipgloss.Width(out))
	}
	out = layoutBar("a very long left side of the bar", "right", 15)
	if lipgloss.Width(out) > 15 || !strings.HasSuffix(out, "right") {
		t.Fatalf("layoutBar = %q", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 6); got != "hello…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("hi", 6); got != "hi" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("hi", 0); got != "" {
		t.Fatalf("truncate = %q", got)
	}
}
