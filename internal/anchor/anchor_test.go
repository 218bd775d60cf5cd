package anchor

import (
	"testing"

	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/testutil"
)

var viewport = dom.Size{Width: 80, Height: 24}

func mustPlacement(t *testing.T, s string) Placement {
	t.Helper()
	p, err := ParsePlacement(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return p
}

func TestParsePlacement(t *testing.T) {
	p := mustPlacement(t, "bottom-start")
	if p.Side != SideBottom || p.Align != AlignStart || p.String() != "bottom-start" {
		t.Fatalf("unexpected placement %+v", p)
	}
	if p := mustPlacement(t, "Left"); p.Align != AlignCenter || p.String() != "left" {
		t.Fatalf("expected centred left, got %+v", p)
	}
	for _, bad := range []string{"", "middle", "top-middle"} {
		if _, err := ParsePlacement(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
	if (Placement{}).String() != "bottom" {
		t.Fatalf("expected zero placement to read as bottom")
	}
}

func TestComputeSidesAndAlignment(t *testing.T) {
	a := dom.Rect{X: 20, Y: 10, Width: 10, Height: 2}
	f := dom.Rect{Width: 6, Height: 4}
	tests := []struct {
		placement string
		x, y      float64
	}{
		{"bottom-start", 20, 13},
		{"bottom", 22, 13},
		{"bottom-end", 24, 13},
		{"top-start", 20, 5},
		{"right-start", 31, 10},
		{"right", 31, 9},
		{"left-end", 13, 8},
	}
	for _, tt := range tests {
		pos := Compute(a, f, viewport, mustPlacement(t, tt.placement), 1, false)
		if pos.X != tt.x || pos.Y != tt.y {
			t.Fatalf("%s: got (%v,%v), want (%v,%v)", tt.placement, pos.X, pos.Y, tt.x, tt.y)
		}
	}
}

func TestFlipNearBottomEdge(t *testing.T) {
	a := dom.Rect{X: 10, Y: 20, Width: 10, Height: 1}
	f := dom.Rect{Width: 10, Height: 6}
	bottom := mustPlacement(t, "bottom")

	pos := Compute(a, f, viewport, bottom, 0, true)
	if pos.Placement.Side != SideTop || pos.Y+f.Height > viewport.Height {
		t.Fatalf("expected flip to top within viewport, got %+v", pos)
	}
	if pos.Y != 14 {
		t.Fatalf("expected y=14 above the anchor, got %v", pos.Y)
	}

	pos = Compute(a, f, viewport, bottom, 0, false)
	if pos.Placement.Side != SideBottom {
		t.Fatalf("expected no flip without flip flag")
	}
	if pos.Y != viewport.Height-f.Height {
		t.Fatalf("expected clamp to %v, got %v", viewport.Height-f.Height, pos.Y)
	}
}

func TestNoFlipWhenOppositeIsNotBetter(t *testing.T) {
	a := dom.Rect{X: 0, Y: 10, Width: 10, Height: 4}
	f := dom.Rect{Width: 10, Height: 12}
	bottom := mustPlacement(t, "bottom")
	first := Compute(a, f, viewport, bottom, 0, true)
	if first.Placement.Side != SideBottom {
		t.Fatalf("expected to keep bottom when top overflows equally, got %s", first.Placement)
	}
	for i := 0; i < 3; i++ {
		if again := Compute(a, f, viewport, bottom, 0, true); again != first {
			t.Fatalf("expected stable result on repeated compute")
		}
	}
}

func TestClampKeepsFloatingOnScreen(t *testing.T) {
	f := dom.Rect{Width: 20, Height: 5}
	corners := []dom.Rect{
		{X: -5, Y: -5, Width: 2, Height: 1},
		{X: 78, Y: 23, Width: 2, Height: 1},
		{X: 70, Y: 0, Width: 10, Height: 1},
	}
	for _, a := range corners {
		for _, s := range []string{"top", "bottom-end", "left-start", "right"} {
			for _, flip := range []bool{true, false} {
				pos := Compute(a, f, viewport, mustPlacement(t, s), 2, flip)
				if pos.X < 0 || pos.Y < 0 || pos.X+f.Width > viewport.Width || pos.Y+f.Height > viewport.Height {
					t.Fatalf("%s flip=%v from %+v: off screen %+v", s, flip, a, pos)
				}
			}
		}
	}
	huge := Compute(dom.Rect{X: 5, Y: 5, Width: 1, Height: 1}, dom.Rect{Width: 200, Height: 100}, viewport, Placement{}, 0, true)
	if huge.X != 0 || huge.Y != 0 {
		t.Fatalf("expected oversized floating element pinned at origin, got %+v", huge)
	}
}

func fixture(t *testing.T) (*dom.Document, *dom.Element, *dom.Element) {
	t.Helper()
	doc, _ := testutil.NewDocument()
	trigger := testutil.Box(doc.Body(), "button", dom.Rect{X: 10, Y: 20, Width: 8, Height: 1})
	floating := testutil.Box(doc.Body(), "div", dom.Rect{Width: 12, Height: 6})
	floating.SetID("floating")
	return doc, trigger, floating
}

func TestComputedPositionerAppliesAndReports(t *testing.T) {
	doc, trigger, floating := fixture(t)
	floating.SetStyle("color", "red")
	var changes []Position
	opts := DefaultOptions()
	opts.Anchor, opts.Floating = trigger, floating
	opts.OnPositionChange = func(p Position) { changes = append(changes, p) }
	opts.AutoUpdate = true
	p := New(opts)
	if p.Strategy() != StrategyComputed {
		t.Fatalf("expected computed strategy without native support")
	}
	p.Update()
	p.Update()
	if len(changes) != 1 {
		t.Fatalf("expected one position change, got %d", len(changes))
	}
	if floating.Rect.Y != 14 || floating.AttrOr("data-placement", "") != "top" {
		t.Fatalf("expected flipped above trigger, rect=%+v", floating.Rect)
	}
	if v, _ := floating.Style("top"); v != "14px" {
		t.Fatalf("unexpected top style %q", v)
	}

	trigger.Rect.Y = 2
	doc.SetViewport(dom.Size{Width: 80, Height: 30})
	if len(changes) != 2 || changes[1].Placement.Side != SideBottom {
		t.Fatalf("expected auto update on resize, got %+v", changes)
	}

	p.Destroy()
	p.Destroy()
	if _, ok := floating.Style("top"); ok {
		t.Fatalf("expected positioning styles removed")
	}
	if _, ok := floating.Style("color"); !ok {
		t.Fatalf("expected foreign styles kept")
	}
	if doc.ListenerCount() != 0 {
		t.Fatalf("expected auto update listeners removed")
	}
	p.Update()
	if len(changes) != 2 {
		t.Fatalf("expected no callbacks after destroy")
	}
}

func TestNativeStrategyBindsAnchorName(t *testing.T) {
	doc, trigger, floating := fixture(t)
	doc.SetFeature(dom.FeatureAnchorPositioning, true)
	calls := 0
	p := New(Options{
		Anchor:           trigger,
		Floating:         floating,
		Placement:        mustPlacement(t, "bottom-start"),
		Offset:           1,
		Flip:             true,
		OnPositionChange: func(Position) { calls++ },
	})
	if p.Strategy() != StrategyNative {
		t.Fatalf("expected native strategy")
	}
	p.Update()
	name, ok := trigger.Style("anchor-name")
	if !ok || name == "" {
		t.Fatalf("expected anchor-name on anchor")
	}
	if v, _ := floating.Style("position-anchor"); v != name {
		t.Fatalf("expected floating bound to %q, got %q", name, v)
	}
	if v, _ := floating.Style("top"); v != "calc(anchor(bottom) + 1px)" {
		t.Fatalf("unexpected top %q", v)
	}
	if v, _ := floating.Style("position-try-fallbacks"); v != "flip-block" {
		t.Fatalf("unexpected fallbacks %q", v)
	}
	if calls != 0 {
		t.Fatalf("native strategy should not report positions")
	}
	p.Destroy()
	if _, ok := trigger.Style("anchor-name"); ok {
		t.Fatalf("expected anchor-name removed")
	}
	if len(floating.StyleProps()) != 0 {
		t.Fatalf("expected all floating styles removed, got %v", floating.StyleProps())
	}
}

func TestForcedComputedIgnoresNativeSupport(t *testing.T) {
	doc, trigger, floating := fixture(t)
	doc.SetFeature(dom.FeatureAnchorPositioning, true)
	p := New(Options{Anchor: trigger, Floating: floating, Strategy: StrategyComputed})
	if p.Strategy() != StrategyComputed {
		t.Fatalf("expected forced computed strategy")
	}
	p.Destroy()
}

func TestMissingElementsAreInert(t *testing.T) {
	p := New(Options{})
	p.Update()
	p.Destroy()
	if p.Position() != (Position{}) {
		t.Fatalf("expected zero position")
	}
}
