package dom

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Feature is an optional runtime capability a renderer may advertise.
type Feature int

const (
	// FeatureAnchorPositioning means the renderer honours anchor-name,
	// position-anchor and anchor() style expressions natively.
	FeatureAnchorPositioning Feature = iota
)

// Option configures a Document.
type Option func(*Document)

// WithClock injects the time source used by timers.
func WithClock(c Clock) Option {
	return func(d *Document) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithFeatures marks runtime features as supported.
func WithFeatures(features ...Feature) Option {
	return func(d *Document) {
		for _, f := range features {
			d.features[f] = true
		}
	}
}

// Document owns an element tree, focus, listeners, microtasks and timers.
type Document struct {
	body      *Element
	active    *Element
	viewport  Size
	features  map[Feature]bool
	listeners listenerSet
	clock     Clock
	timers    timerQueue
	values    map[any]any

	microtasks []func()
	flushing   bool
	depth      int
}

// NewDocument creates an empty document with the given viewport size.
func NewDocument(viewport Size, opts ...Option) *Document {
	d := &Document{
		viewport: viewport,
		features: make(map[Feature]bool),
		clock:    SystemClock(),
	}
	d.body = &Element{Tag: "body", doc: d}
	d.body.Rect = Rect{Width: viewport.Width, Height: viewport.Height}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Body returns the root element.
func (d *Document) Body() *Element { return d.body }

// CreateElement returns a detached element owned by d.
func (d *Document) CreateElement(tag string) *Element {
	e := NewElement(tag)
	e.doc = d
	return e
}

// ActiveElement returns the focused element, or the body when nothing is.
func (d *Document) ActiveElement() *Element {
	if d.active != nil && d.active.IsConnected() {
		return d.active
	}
	return d.body
}

// Viewport returns the viewport size.
func (d *Document) Viewport() Size { return d.viewport }

// SetViewport resizes the viewport and dispatches a resize event.
func (d *Document) SetViewport(s Size) {
	if s == d.viewport {
		return
	}
	d.viewport = s
	d.body.Rect = Rect{Width: s.Width, Height: s.Height}
	d.Dispatch(d.body, &Event{Type: EventResize})
}

// Supports reports whether a runtime feature is available.
func (d *Document) Supports(f Feature) bool { return d.features[f] }

// SetFeature toggles a runtime feature.
func (d *Document) SetFeature(f Feature, on bool) { d.features[f] = on }

// Value returns the value stored under key, storing init() first when the
// key is new. Packages use unexported key types to keep per-document state.
func (d *Document) Value(key any, init func() any) any {
	if v, ok := d.values[key]; ok {
		return v
	}
	if d.values == nil {
		d.values = make(map[any]any)
	}
	v := init()
	d.values[key] = v
	return v
}

// Clock returns the document time source.
func (d *Document) Clock() Clock { return d.clock }

// AddEventListener registers a document level listener. Capture listeners
// run before any element listener; bubble listeners run last.
func (d *Document) AddEventListener(typ EventType, fn Listener, opts ListenerOptions) func() {
	return d.listeners.add(typ, fn, opts.Capture)
}

// ListenerCount returns the number of document level listeners, which tests
// use to assert teardown.
func (d *Document) ListenerCount() int {
	return d.listeners.count()
}

// Dispatch delivers ev to target through capture, target and bubble phases,
// then runs the default action unless prevented. It returns false when the
// default was prevented. Pending microtasks are flushed once the outermost
// dispatch returns.
func (d *Document) Dispatch(target *Element, ev *Event) bool {
	if target == nil {
		target = d.body
	}
	d.depth++
	ev.Target = target
	path := make([]*Element, 0, 8)
	for n := target; n != nil; n = n.parent {
		path = append(path, n)
	}
	// path is target..root; walk it backwards for capture.
	connected := target.IsConnected()

	ev.phase = PhaseCapture
	if connected {
		ev.currentTarget = nil
		d.listeners.invoke(ev, true)
	}
	for i := len(path) - 1; i >= 1 && !ev.stopped; i-- {
		ev.currentTarget = path[i]
		path[i].listeners.invoke(ev, true)
	}
	if !ev.stopped {
		ev.phase = PhaseTarget
		ev.currentTarget = target
		target.listeners.invoke(ev, true)
		if !ev.stoppedNow {
			target.listeners.invoke(ev, false)
		}
	}
	ev.phase = PhaseBubble
	for i := 1; i < len(path) && !ev.stopped; i++ {
		ev.currentTarget = path[i]
		path[i].listeners.invoke(ev, false)
	}
	if connected && !ev.stopped {
		ev.currentTarget = nil
		d.listeners.invoke(ev, false)
	}
	ev.phase = PhaseNone
	ev.currentTarget = nil

	if !ev.defaultPrevented {
		d.defaultAction(ev)
	}
	d.depth--
	if d.depth == 0 {
		d.FlushMicrotasks()
	}
	return !ev.defaultPrevented
}

func (d *Document) defaultAction(ev *Event) {
	switch ev.Type {
	case EventKeyDown:
		switch {
		case ev.Key == KeyTab && !ev.HasModifier():
			d.moveFocusSequential(ev.Shift)
		case (ev.Key == KeyEnter || ev.Key == KeySpace) && activatesOnKey(ev.Target):
			d.Dispatch(ev.Target, &Event{Type: EventClick})
		}
	case EventPointerDown:
		if f := focusableAncestor(ev.Target); f != nil {
			d.Focus(f)
		} else {
			d.Blur()
		}
	}
}

func activatesOnKey(el *Element) bool {
	if el == nil || el.Inert() {
		return false
	}
	if el.Tag == "button" {
		return true
	}
	role, _ := el.Attr("role")
	return role == "button"
}

func focusableAncestor(el *Element) *Element {
	for n := el; n != nil; n = n.parent {
		if n.Focusable() {
			return n
		}
	}
	return nil
}

func (d *Document) moveFocusSequential(backward bool) {
	list := Tabbable(d.body, nil)
	if len(list) == 0 {
		return
	}
	idx := -1
	for i, el := range list {
		if el == d.active {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && backward:
		next = len(list) - 1
	case idx < 0:
		next = 0
	case backward:
		next = (idx - 1 + len(list)) % len(list)
	default:
		next = (idx + 1) % len(list)
	}
	d.Focus(list[next])
}

// Focus moves focus to el, dispatching focusout and focusin. It returns
// false when el cannot receive focus.
func (d *Document) Focus(el *Element) bool {
	if el == nil || el.doc != d || !el.Focusable() {
		return false
	}
	if d.active == el {
		return true
	}
	prev := d.active
	d.active = el
	if prev != nil && prev.IsConnected() {
		d.Dispatch(prev, &Event{Type: EventFocusOut, RelatedTarget: el})
	}
	if d.active == el {
		d.Dispatch(el, &Event{Type: EventFocusIn, RelatedTarget: prev})
	}
	return true
}

// Blur clears focus.
func (d *Document) Blur() {
	prev := d.active
	if prev == nil {
		return
	}
	d.active = nil
	if prev.IsConnected() {
		d.Dispatch(prev, &Event{Type: EventFocusOut})
	}
}

// Click dispatches pointerdown, pointerup and click on el at its origin.
func (d *Document) Click(el *Element) {
	if el == nil {
		return
	}
	x, y := el.Rect.X, el.Rect.Y
	d.Dispatch(el, NewPointerEvent(EventPointerDown, x, y))
	d.Dispatch(el, NewPointerEvent(EventPointerUp, x, y))
	d.Dispatch(el, NewPointerEvent(EventClick, x, y))
}

// KeyDown dispatches a keydown for key on the active element.
func (d *Document) KeyDown(key string, shift bool) bool {
	ev := NewKeyEvent(key)
	ev.Shift = shift
	return d.Dispatch(d.ActiveElement(), ev)
}

// ElementAt returns the topmost rendered element containing the point.
// Later siblings paint above earlier ones, so the search runs in reverse
// document order.
func (d *Document) ElementAt(x, y float64) *Element {
	var order []*Element
	d.body.Walk(func(n *Element) bool {
		if n != d.body && !n.IsRendered() {
			return false
		}
		order = append(order, n)
		return true
	})
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].Rect.Contains(x, y) {
			return order[i]
		}
	}
	return d.body
}

// GetElementByID finds a connected element by id.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.body.Walk(func(n *Element) bool {
		if found != nil {
			return false
		}
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// QueueMicrotask defers fn until the current dispatch completes or the next
// FlushMicrotasks call.
func (d *Document) QueueMicrotask(fn func()) {
	if fn == nil {
		return
	}
	d.microtasks = append(d.microtasks, fn)
}

// PendingMicrotasks returns the number of queued microtasks.
func (d *Document) PendingMicrotasks() int { return len(d.microtasks) }

// FlushMicrotasks runs queued microtasks, including any they queue.
func (d *Document) FlushMicrotasks() {
	if d.flushing {
		return
	}
	d.flushing = true
	defer func() { d.flushing = false }()
	for len(d.microtasks) > 0 {
		task := d.microtasks[0]
		d.microtasks = d.microtasks[1:]
		task()
	}
}

// Tabbable returns the focusable elements inside container that take part in
// sequential Tab navigation, ordered the way a browser orders them: positive
// tabindex ascending first, then tabindex 0 in document order. Elements
// without a layout box, disabled or aria-disabled elements, and elements not
// matching filter are left out. The container itself is never included.
func Tabbable(container *Element, filter Selector) []*Element {
	if container == nil {
		return nil
	}
	var positive, zero []*Element
	for _, c := range container.children {
		c.Walk(func(n *Element) bool {
			if !n.IsRendered() {
				return false
			}
			if !n.Focusable() || n.AriaDisabled() {
				return true
			}
			if filter != nil && !filter.Match(n) {
				return true
			}
			switch idx := n.TabIndex(); {
			case idx > 0:
				positive = append(positive, n)
			case idx == 0:
				zero = append(zero, n)
			}
			return true
		})
	}
	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].TabIndex() < positive[j].TabIndex()
	})
	return append(positive, zero...)
}

// NewID returns a document-unique id with the given prefix, suitable for
// aria-controls and friends.
func NewID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
