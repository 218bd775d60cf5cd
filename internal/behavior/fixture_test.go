package behavior

import (
	"github.com/atomicstack/aria-primitives/internal/dismiss"
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/testutil"
)

type fixture struct {
	doc     *dom.Document
	clock   *testutil.FakeClock
	reg     *dismiss.Registry
	trigger *dom.Element
	content *dom.Element
	items   []*dom.Element
	outside *dom.Element
}

// newFixture lays out a trigger button at the top left, a content box below
// it holding one item per label, and an unrelated button near the bottom.
func newFixture(role string, labels ...string) *fixture {
	doc, clock := testutil.NewDocument()
	body := doc.Body()
	f := &fixture{doc: doc, clock: clock, reg: dismiss.NewRegistry()}
	f.trigger = testutil.Box(body, "button", dom.Rect{X: 0, Y: 0, Width: 10, Height: 1})
	f.trigger.SetID("trigger")
	height := float64(len(labels))
	if height == 0 {
		height = 4
	}
	f.content = testutil.Box(body, "div", dom.Rect{X: 0, Y: 2, Width: 12, Height: height})
	f.content.SetID("content")
	f.items = testutil.Items(f.content, role, labels...)
	f.outside = testutil.Box(body, "button", dom.Rect{X: 40, Y: 20, Width: 10, Height: 1})
	f.outside.SetID("outside")
	return f
}

func (f *fixture) press(key string) { testutil.Press(f.doc, key) }

func (f *fixture) active() string { return f.doc.ActiveElement().ID() }
