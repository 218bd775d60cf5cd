package testutil

import (
	"github.com/atomicstack/aria-primitives/internal/dom"
)

// Viewport is the default fixture viewport, roughly a terminal window.
var Viewport = dom.Size{Width: 80, Height: 24}

// NewDocument returns a document on a fake clock with the default viewport.
func NewDocument() (*dom.Document, *FakeClock) {
	clock := NewFakeClock()
	return dom.NewDocument(Viewport, dom.WithClock(clock)), clock
}

// Box appends a rendered element with the given rect.
func Box(parent *dom.Element, tag string, rect dom.Rect) *dom.Element {
	el := parent.Append(tag, "")
	el.Rect = rect
	return el
}

// Stack appends one element per label below each other, starting at the
// parent's origin. Each child gets the label as id and text.
func Stack(parent *dom.Element, tag string, labels ...string) []*dom.Element {
	out := make([]*dom.Element, 0, len(labels))
	for i, label := range labels {
		el := parent.Append(tag, label)
		el.SetID(label)
		el.Rect = dom.Rect{X: parent.Rect.X, Y: parent.Rect.Y + float64(i), Width: 12, Height: 1}
		out = append(out, el)
	}
	return out
}

// Items appends role-tagged focusable items, the shape roving and type-ahead
// tests work with.
func Items(parent *dom.Element, role string, labels ...string) []*dom.Element {
	out := Stack(parent, "div", labels...)
	for _, el := range out {
		el.SetAttr("role", role).SetAttr("tabindex", "-1").SetAttr("data-value", el.Text)
	}
	return out
}

// Press dispatches a keydown on the active element.
func Press(doc *dom.Document, key string) bool {
	return doc.KeyDown(key, false)
}

// PressShift dispatches a shifted keydown on the active element.
func PressShift(doc *dom.Document, key string) bool {
	return doc.KeyDown(key, true)
}
