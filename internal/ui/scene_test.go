package ui

import (
	"testing"

	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func TestLayoutChildrenFollowParent(t *testing.T) {
	doc, _ := testutil.NewDocument()
	var l layout
	panel := testutil.Box(doc.Body(), "div", dom.Rect{X: 10, Y: 5, Width: 20, Height: 4})
	row := l.add(panel, "div", "row", dom.Rect{X: 1, Y: 2, Width: 10, Height: 1})
	if row.Rect.X != 11 || row.Rect.Y != 7 {
		t.Fatalf("expected row at 11,7, got %v,%v", row.Rect.X, row.Rect.Y)
	}

	panel.Rect.X, panel.Rect.Y = 0, 0
	l.apply()
	if row.Rect.X != 1 || row.Rect.Y != 2 {
		t.Fatalf("expected row to follow the panel, got %v,%v", row.Rect.X, row.Rect.Y)
	}

	l.move(row, dom.Rect{X: 3, Y: 0, Width: 5, Height: 1})
	if row.Rect.X != 3 || row.Rect.Width != 5 {
		t.Fatalf("expected moved row, got %+v", row.Rect)
	}
}

func TestNestedLayoutSettlesInOnePass(t *testing.T) {
	doc, _ := testutil.NewDocument()
	var l layout
	outer := testutil.Box(doc.Body(), "div", dom.Rect{Width: 40, Height: 10})
	inner := l.add(outer, "div", "", dom.Rect{X: 2, Y: 2, Width: 20, Height: 5})
	leaf := l.add(inner, "span", "leaf", dom.Rect{X: 1, Y: 1, Width: 4, Height: 1})

	outer.Rect.X = 5
	l.apply()
	if leaf.Rect.X != 8 || leaf.Rect.Y != 3 {
		t.Fatalf("expected leaf at 8,3, got %v,%v", leaf.Rect.X, leaf.Rect.Y)
	}
}

func TestPushAndPopRestoreFocus(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	m := h.Model()
	h.Send(keyMsg(tea.KeyDown))

	s := newScene(m.Document(), "extra", "Extra")
	button := s.layout.add(s.root, "button", "Go", dom.Rect{X: 1, Y: 1, Width: 4, Height: 1})
	s.focus = button
	m.pushScene(s)
	if m.Document().ActiveElement() != button {
		t.Fatalf("expected pushed scene to take focus")
	}
	if !m.stack[0].root.HasAttr("hidden") {
		t.Fatalf("expected covered scene hidden")
	}

	if !m.popScene() {
		t.Fatalf("expected pop to succeed")
	}
	if s.root.IsConnected() {
		t.Fatalf("expected popped scene removed from the document")
	}
	if got := activeID(h); got != "demo-select" {
		t.Fatalf("expected focus restored to demo-select, got %q", got)
	}
	if m.popScene() {
		t.Fatalf("expected the catalogue to stay")
	}
}
