// Package focustrap keeps sequential keyboard focus inside a container while
// the trap is active, the way modal dialogs require.
package focustrap

import (
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

type returnMode int

const (
	returnPrevious returnMode = iota
	returnElement
	returnNone
)

// ReturnFocus says where focus goes when the trap is deactivated.
type ReturnFocus struct {
	mode   returnMode
	target *dom.Element
}

var (
	// ReturnPrevious restores the element focused before activation, when it
	// can still take focus. It is the zero value.
	ReturnPrevious = ReturnFocus{}
	// ReturnNone leaves focus where it is.
	ReturnNone = ReturnFocus{mode: returnNone}
)

// ReturnTo focuses el on deactivation.
func ReturnTo(el *dom.Element) ReturnFocus {
	return ReturnFocus{mode: returnElement, target: el}
}

// Options configures a Trap.
type Options struct {
	Container     *dom.Element
	InitialFocus  *dom.Element
	FallbackFocus *dom.Element
	ReturnFocus   ReturnFocus
	// Filter narrows the focusable set further. Nil keeps every tabbable
	// element.
	Filter dom.Selector
	// Stack coordinates nested traps. Nil uses the container document's
	// own stack.
	Stack *Stack
}

// Trap confines Tab and Shift+Tab to a container.
type Trap struct {
	opts     Options
	doc      *dom.Document
	stack    *Stack
	previous *dom.Element
	remove   func()
	active   bool
}

// New returns an inactive trap.
func New(opts Options) *Trap {
	return &Trap{opts: opts}
}

// Active reports whether the trap is installed.
func (t *Trap) Active() bool { return t.active }

// Focusable returns the container's current focusable set.
func (t *Trap) Focusable() []*dom.Element {
	return dom.Tabbable(t.opts.Container, t.opts.Filter)
}

// Activate records the focused element, moves focus into the container and
// starts intercepting Tab. A missing or detached container makes it a no-op.
func (t *Trap) Activate() {
	if t.active {
		return
	}
	c := t.opts.Container
	if c == nil || !c.IsConnected() {
		return
	}
	t.doc = c.Document()
	if active := t.doc.ActiveElement(); active != t.doc.Body() {
		t.previous = active
	}

	set := t.Focusable()
	switch {
	case t.opts.InitialFocus != nil && t.opts.InitialFocus.Focus():
	case len(set) > 0 && set[0].Focus():
	case t.opts.FallbackFocus != nil:
		t.opts.FallbackFocus.Focus()
	}

	t.remove = t.doc.AddEventListener(dom.EventKeyDown, t.handleKeyDown, dom.ListenerOptions{Capture: true})
	t.active = true
	t.stack = t.opts.Stack
	if t.stack == nil {
		t.stack = StackFor(t.doc)
	}
	t.stack.push(t)
	events.Focus.TrapActivate(c.ID(), len(set))
}

// Deactivate stops intercepting Tab and returns focus as configured. Calling
// it again is harmless.
func (t *Trap) Deactivate() {
	if !t.active {
		return
	}
	t.active = false
	if t.remove != nil {
		t.remove()
		t.remove = nil
	}
	t.stack.remove(t)

	var returned *dom.Element
	switch t.opts.ReturnFocus.mode {
	case returnPrevious:
		if t.previous != nil && t.previous.Focus() {
			returned = t.previous
		}
	case returnElement:
		if t.opts.ReturnFocus.target.Focus() {
			returned = t.opts.ReturnFocus.target
		}
	}
	t.previous = nil
	events.Focus.TrapDeactivate(t.opts.Container.ID(), returned.ID())
}

func (t *Trap) handleKeyDown(ev *dom.Event) {
	if ev.Key != dom.KeyTab || ev.HasModifier() || ev.DefaultPrevented() {
		return
	}
	if t.stack.Top() != t {
		return
	}
	set := t.Focusable()
	if len(set) == 0 {
		return
	}
	current := t.doc.ActiveElement()
	idx := -1
	for i, el := range set {
		if el == current {
			idx = i
			break
		}
	}

	last := len(set) - 1
	var next int
	switch {
	case idx < 0 && ev.Shift:
		next = last
	case idx < 0:
		next = 0
	case ev.Shift && idx == 0:
		next = last
		events.Focus.TrapWrap(t.opts.Container.ID(), true)
	case ev.Shift:
		next = idx - 1
	case idx == last:
		next = 0
		events.Focus.TrapWrap(t.opts.Container.ID(), false)
	default:
		next = idx + 1
	}
	ev.PreventDefault()
	set[next].Focus()
}
