package focustrap

import (
	"testing"

	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/testutil"
)

func setup(t *testing.T) (*dom.Document, *dom.Element, []*dom.Element) {
	t.Helper()
	doc, _ := testutil.NewDocument()
	outside := testutil.Stack(doc.Body(), "button", "outside")[0]
	container := testutil.Box(doc.Body(), "div", dom.Rect{X: 20, Y: 2, Width: 30, Height: 10})
	container.SetID("dialog")
	button1 := container.Append("button", "Button1")
	button1.Rect = dom.Rect{X: 20, Y: 2, Width: 10, Height: 1}
	input := container.Append("input", "")
	input.Rect = dom.Rect{X: 20, Y: 3, Width: 10, Height: 1}
	button2 := container.Append("button", "Button2")
	button2.Rect = dom.Rect{X: 20, Y: 4, Width: 10, Height: 1}
	outside.Focus()
	return doc, container, []*dom.Element{button1, input, button2}
}

func TestActivateFocusesFirstAndTabWraps(t *testing.T) {
	doc, container, els := setup(t)
	trap := New(Options{Container: container})
	trap.Activate()
	defer trap.Deactivate()

	if doc.ActiveElement() != els[0] {
		t.Fatalf("expected Button1 focused on activate")
	}
	els[2].Focus()
	testutil.Press(doc, dom.KeyTab)
	if doc.ActiveElement() != els[0] {
		t.Fatalf("expected Tab on last to wrap to Button1")
	}
	testutil.PressShift(doc, dom.KeyTab)
	if doc.ActiveElement() != els[2] {
		t.Fatalf("expected Shift+Tab on first to wrap to Button2")
	}
	testutil.PressShift(doc, dom.KeyTab)
	if doc.ActiveElement() != els[1] {
		t.Fatalf("expected Shift+Tab to move back to the input")
	}
}

func TestTabWrapsForAnySetSize(t *testing.T) {
	for n := 1; n <= 5; n++ {
		doc, _ := testutil.NewDocument()
		container := testutil.Box(doc.Body(), "div", dom.Rect{Width: 20, Height: 10})
		labels := make([]string, n)
		for i := range labels {
			labels[i] = string(rune('a' + i))
		}
		buttons := testutil.Stack(container, "button", labels...)
		trap := New(Options{Container: container})
		trap.Activate()
		buttons[n-1].Focus()
		testutil.Press(doc, dom.KeyTab)
		if doc.ActiveElement() != buttons[0] {
			t.Fatalf("n=%d: expected wrap to first", n)
		}
		testutil.PressShift(doc, dom.KeyTab)
		if doc.ActiveElement() != buttons[n-1] {
			t.Fatalf("n=%d: expected wrap to last", n)
		}
		trap.Deactivate()
	}
}

func TestInitialAndFallbackFocus(t *testing.T) {
	doc, container, els := setup(t)
	trap := New(Options{Container: container, InitialFocus: els[1]})
	trap.Activate()
	if doc.ActiveElement() != els[1] {
		t.Fatalf("expected initial focus on input")
	}
	trap.Deactivate()

	doc, _ = testutil.NewDocument()
	empty := testutil.Box(doc.Body(), "div", dom.Rect{Width: 10, Height: 2})
	empty.SetAttr("tabindex", "-1")
	trap = New(Options{Container: empty, FallbackFocus: empty})
	trap.Activate()
	if doc.ActiveElement() != empty {
		t.Fatalf("expected fallback focus on container")
	}
	if prevented := !testutil.Press(doc, dom.KeyTab); prevented {
		t.Fatalf("expected Tab not to be trapped with no focusable elements")
	}
	trap.Deactivate()
}

func TestHiddenElementsAreSkipped(t *testing.T) {
	doc, container, els := setup(t)
	els[1].Rect = dom.Rect{}
	els[2].SetStyle("display", "none")
	trap := New(Options{Container: container})
	trap.Activate()
	defer trap.Deactivate()
	if got := trap.Focusable(); len(got) != 1 || got[0] != els[0] {
		t.Fatalf("expected only Button1 in focusable set, got %d", len(got))
	}
	testutil.Press(doc, dom.KeyTab)
	if doc.ActiveElement() != els[0] {
		t.Fatalf("expected focus to stay on Button1")
	}
}

func TestFocusOutsideReturnsToEdges(t *testing.T) {
	doc, container, els := setup(t)
	trap := New(Options{Container: container})
	trap.Activate()
	defer trap.Deactivate()
	outside := doc.GetElementByID("outside")
	outside.Focus()
	testutil.Press(doc, dom.KeyTab)
	if doc.ActiveElement() != els[0] {
		t.Fatalf("expected Tab from outside to land on first")
	}
	outside.Focus()
	testutil.PressShift(doc, dom.KeyTab)
	if doc.ActiveElement() != els[2] {
		t.Fatalf("expected Shift+Tab from outside to land on last")
	}
}

func TestDeactivateReturnFocusModes(t *testing.T) {
	doc, container, els := setup(t)
	outside := doc.GetElementByID("outside")

	trap := New(Options{Container: container})
	trap.Activate()
	trap.Deactivate()
	if doc.ActiveElement() != outside {
		t.Fatalf("expected focus restored to previous element")
	}

	trap = New(Options{Container: container, ReturnFocus: ReturnTo(els[1])})
	trap.Activate()
	trap.Deactivate()
	if doc.ActiveElement() != els[1] {
		t.Fatalf("expected focus returned to explicit element")
	}

	outside.Focus()
	trap = New(Options{Container: container, ReturnFocus: ReturnNone})
	trap.Activate()
	trap.Deactivate()
	if doc.ActiveElement() != els[0] {
		t.Fatalf("expected focus left inside container")
	}
}

func TestDeactivateTwiceIsNoOp(t *testing.T) {
	doc, container, _ := setup(t)
	before := doc.ListenerCount()
	trap := New(Options{Container: container})
	trap.Activate()
	if doc.ListenerCount() != before+1 {
		t.Fatalf("expected trap listener installed")
	}
	trap.Deactivate()
	trap.Deactivate()
	if doc.ListenerCount() != before || trap.Active() {
		t.Fatalf("expected listener removed once")
	}
}

func TestDetachedContainerIsInert(t *testing.T) {
	doc, _ := testutil.NewDocument()
	detached := doc.CreateElement("div")
	trap := New(Options{Container: detached})
	trap.Activate()
	if trap.Active() || doc.ListenerCount() != 0 {
		t.Fatalf("expected detached container to be a no-op")
	}
	New(Options{}).Activate()
}

func TestNestedTrapOwnsTab(t *testing.T) {
	doc, container, els := setup(t)
	outer := New(Options{Container: container})
	outer.Activate()
	inner := testutil.Box(doc.Body(), "div", dom.Rect{X: 50, Y: 2, Width: 20, Height: 4})
	innerButtons := testutil.Stack(inner, "button", "x", "y")
	nested := New(Options{Container: inner})
	nested.Activate()

	innerButtons[1].Focus()
	testutil.Press(doc, dom.KeyTab)
	if doc.ActiveElement() != innerButtons[0] {
		t.Fatalf("expected inner trap to handle Tab")
	}
	nested.Deactivate()
	if doc.ActiveElement() != els[0] {
		t.Fatalf("expected focus returned to outer trap's element")
	}
	els[2].Focus()
	testutil.Press(doc, dom.KeyTab)
	if doc.ActiveElement() != els[0] {
		t.Fatalf("expected outer trap to resume")
	}
	outer.Deactivate()
}

func TestDefaultStackBelongsToDocument(t *testing.T) {
	doc, container, _ := setup(t)
	other, otherContainer, otherEls := setup(t)
	trap := New(Options{Container: container})
	trap.Activate()
	otherTrap := New(Options{Container: otherContainer})
	otherTrap.Activate()
	if StackFor(doc).Len() != 1 || StackFor(other).Len() != 1 {
		t.Fatalf("expected one trap per document stack")
	}
	otherEls[2].Focus()
	testutil.Press(other, dom.KeyTab)
	if other.ActiveElement() != otherEls[0] {
		t.Fatalf("expected trap in another document to stay independent")
	}
	trap.Deactivate()
	otherTrap.Deactivate()
	if StackFor(doc).Len() != 0 || StackFor(other).Len() != 0 {
		t.Fatalf("expected stacks emptied on deactivate")
	}
	if StackFor(nil) != nil {
		t.Fatalf("expected no stack without a document")
	}
}

func TestInjectedStackOrdersTraps(t *testing.T) {
	doc, container, _ := setup(t)
	stack := NewStack()
	outer := New(Options{Container: container, Stack: stack})
	outer.Activate()
	inner := testutil.Box(doc.Body(), "div", dom.Rect{X: 50, Y: 2, Width: 20, Height: 4})
	innerButtons := testutil.Stack(inner, "button", "x", "y")
	nested := New(Options{Container: inner, Stack: stack})
	nested.Activate()
	if stack.Len() != 2 || stack.Top() != nested || StackFor(doc).Len() != 0 {
		t.Fatalf("expected both traps on the injected stack only")
	}
	innerButtons[1].Focus()
	testutil.Press(doc, dom.KeyTab)
	if doc.ActiveElement() != innerButtons[0] {
		t.Fatalf("expected the top trap to handle Tab")
	}
	outer.Deactivate()
	if stack.Top() != nested || stack.Len() != 1 {
		t.Fatalf("expected out of order deactivate to keep the nested trap on top")
	}
	nested.Deactivate()
	if stack.Len() != 0 {
		t.Fatalf("expected empty stack")
	}
}
