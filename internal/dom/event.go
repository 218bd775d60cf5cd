package dom

// EventType names an event.
type EventType string

const (
	EventKeyDown      EventType = "keydown"
	EventKeyUp        EventType = "keyup"
	EventPointerDown  EventType = "pointerdown"
	EventPointerUp    EventType = "pointerup"
	EventPointerEnter EventType = "pointerenter"
	EventPointerLeave EventType = "pointerleave"
	EventClick        EventType = "click"
	EventContextMenu  EventType = "contextmenu"
	EventFocusIn      EventType = "focusin"
	EventFocusOut     EventType = "focusout"
	EventResize       EventType = "resize"
	EventScroll       EventType = "scroll"
	EventDragEnter    EventType = "dragenter"
	EventDragLeave    EventType = "dragleave"
	EventDrop         EventType = "drop"
	EventInput        EventType = "input"
)

// Key names used by the primitives, matching KeyboardEvent.key values.
const (
	KeyTab        = "Tab"
	KeyEscape     = "Escape"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeyBackspace  = "Backspace"
	KeyF10        = "F10"
)

// Phase is the dispatch phase an event is in.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseCapture
	PhaseTarget
	PhaseBubble
)

// Event carries keyboard, pointer, focus and lifecycle data.
type Event struct {
	Type EventType

	Key   string
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool

	X, Y float64

	Target        *Element
	RelatedTarget *Element

	// Data carries event specific payloads such as dropped files.
	Data any

	currentTarget    *Element
	phase            Phase
	defaultPrevented bool
	stopped          bool
	stoppedNow       bool
}

// NewKeyEvent builds a keydown event for key.
func NewKeyEvent(key string) *Event {
	return &Event{Type: EventKeyDown, Key: key}
}

// NewPointerEvent builds a pointer event of the given type at x, y.
func NewPointerEvent(typ EventType, x, y float64) *Event {
	return &Event{Type: typ, X: x, Y: y}
}

// PreventDefault cancels the default action.
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// StopPropagation stops the event after the current element's listeners.
func (ev *Event) StopPropagation() { ev.stopped = true }

// StopImmediatePropagation also skips remaining listeners on the current element.
func (ev *Event) StopImmediatePropagation() {
	ev.stopped = true
	ev.stoppedNow = true
}

// CurrentTarget is the element whose listener is running, nil for document listeners.
func (ev *Event) CurrentTarget() *Element { return ev.currentTarget }

// Phase returns the current dispatch phase.
func (ev *Event) Phase() Phase { return ev.phase }

// HasModifier reports whether Ctrl, Alt or Meta is held.
func (ev *Event) HasModifier() bool { return ev.Ctrl || ev.Alt || ev.Meta }

// Listener handles an event.
type Listener func(*Event)

// ListenerOptions mirror addEventListener options.
type ListenerOptions struct {
	Capture bool
}

type listener struct {
	typ     EventType
	fn      Listener
	capture bool
	removed bool
}

type listenerSet struct {
	items []*listener
}

func (s *listenerSet) add(typ EventType, fn Listener, capture bool) func() {
	if fn == nil {
		return func() {}
	}
	l := &listener{typ: typ, fn: fn, capture: capture}
	s.items = append(s.items, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, item := range s.items {
			if item == l {
				s.items = append(s.items[:i], s.items[i+1:]...)
				return
			}
		}
	}
}

// invoke runs matching listeners registered for the given capture flag.
// The slice is snapshotted so listeners added during dispatch wait for the
// next event, and the removed flag is checked so listeners detached during
// dispatch never run.
func (s *listenerSet) invoke(ev *Event, capture bool) {
	if len(s.items) == 0 {
		return
	}
	snapshot := make([]*listener, len(s.items))
	copy(snapshot, s.items)
	for _, l := range snapshot {
		if l.removed || l.typ != ev.Type || l.capture != capture {
			continue
		}
		l.fn(ev)
		if ev.stoppedNow {
			return
		}
	}
}

func (s *listenerSet) count() int {
	return len(s.items)
}
