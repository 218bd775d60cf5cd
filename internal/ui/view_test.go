package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewFillsTerminal(t *testing.T) {
	h, _ := newTestHarness(t, Options{Width: 60, Height: 16})
	lines := strings.Split(h.View(), "\n")
	if len(lines) != 16 {
		t.Fatalf("expected 16 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 60 {
			t.Fatalf("line %d is %d columns wide: %q", i, w, line)
		}
	}
	if !strings.Contains(lines[0], "primitives") {
		t.Fatalf("expected header on first line, got %q", lines[0])
	}
}

func TestViewPaintsCatalogue(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	view := h.View()
	for _, label := range []string{"ARIA primitives", "Menu", "Context menu", "File upload"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected %q in view, got:\n%s", label, view)
		}
	}
	if strings.Contains(view, "✓") {
		t.Fatalf("expected catalogue without check marks, got:\n%s", view)
	}
}

func TestViewShowsFooterHint(t *testing.T) {
	h, _ := newTestHarness(t, Options{ShowFooter: true})
	if view := h.View(); !strings.Contains(view, "jump by type-ahead") {
		t.Fatalf("expected footer hint, got:\n%s", view)
	}
	h, _ = newTestHarness(t, Options{})
	if view := h.View(); strings.Contains(view, "jump by type-ahead") {
		t.Fatalf("expected no footer hint when disabled, got:\n%s", view)
	}
}

func TestHelpToggles(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "sheet"})
	h.Send(runesMsg("?"))
	view := h.View()
	if !strings.Contains(view, "cycle sheet side") || !strings.Contains(view, "toggle key help") {
		t.Fatalf("expected sheet key help, got:\n%s", view)
	}
	h.Send(keyMsg(tea.KeyEsc))
	if h.Model().showHelp {
		t.Fatalf("expected escape to close help")
	}
	if got := currentID(h); got != "sheet" {
		t.Fatalf("expected escape to keep the demo while help was open, got %q", got)
	}
}

func TestInspectorDescribesFocus(t *testing.T) {
	h, _ := newTestHarness(t, Options{Width: 100, Inspector: true})
	view := h.View()
	if !strings.Contains(view, "inspector") {
		t.Fatalf("expected inspector panel, got:\n%s", view)
	}
	if !strings.Contains(view, "<div#demo-menu>") {
		t.Fatalf("expected focused element, got:\n%s", view)
	}
	if !strings.Contains(view, "data-value") || !strings.Contains(view, "layers  0") {
		t.Fatalf("expected attributes and layer count, got:\n%s", view)
	}
	if size := h.Model().Document().Viewport(); size.Width != 100-inspectorWidth {
		t.Fatalf("expected document narrowed by the inspector, got %v", size.Width)
	}
}

func TestInspectorHiddenOnNarrowTerminal(t *testing.T) {
	h, _ := newTestHarness(t, Options{Width: 60, Inspector: true})
	if view := h.View(); strings.Contains(view, "inspector") {
		t.Fatalf("expected no inspector below the minimum width, got:\n%s", view)
	}
}

func TestSelectedOptionsShowCheckMarks(t *testing.T) {
	h, _ := newTestHarness(t, Options{RootDemo: "multi-select"})
	h.Send(keyMsg(tea.KeyEnter))
	h.Send(keyMsg(tea.KeyEnter))
	if view := h.View(); !strings.Contains(view, "✓ Go") {
		t.Fatalf("expected check mark on selected option, got:\n%s", view)
	}
}

func TestCanvasWritesWideGraphemes(t *testing.T) {
	c := newCanvas(6, 1)
	c.write(0, 0, 6, "界a", nil)
	if got := c.lines()[0]; got != "界a   " {
		t.Fatalf("unexpected row %q", got)
	}
}

func TestCanvasTruncatesWithEllipsis(t *testing.T) {
	c := newCanvas(10, 1)
	c.write(2, 0, 4, "abcdefgh", nil)
	if got := c.lines()[0]; got != "  abc…    " {
		t.Fatalf("unexpected row %q", got)
	}
}

func TestCanvasClipsToEdges(t *testing.T) {
	c := newCanvas(4, 2)
	c.fill(-2, -1, 4, 2, "#", nil)
	c.write(2, 1, 10, "xyz", nil)
	lines := c.lines()
	if lines[0] != "##  " {
		t.Fatalf("unexpected first row %q", lines[0])
	}
	if lines[1] != "  x…" {
		t.Fatalf("unexpected second row %q", lines[1])
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("short", 10); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := truncateText("a long status line", 8); got != "a long …" {
		t.Fatalf("expected truncated text, got %q", got)
	}
}
