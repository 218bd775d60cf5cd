// Package dismiss implements dismissable layers: overlays that close on
// Escape or on a pointer press outside them.
//
// Escape is strictly last-in first-out across a Registry: only the most
// recently activated layer is dismissed per press. Outside presses are
// judged by every active layer against its own container and excludes, so a
// single press outside all open layers dismisses each of them.
package dismiss

import (
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

// Reason says why a layer was dismissed.
type Reason string

const (
	ReasonEscape         Reason = "escape"
	ReasonPointerOutside Reason = "pointer-outside"
)

// Options configures a Layer.
type Options struct {
	Container *dom.Element
	// Exclude lists elements that do not count as outside, typically the
	// trigger that opened the layer.
	Exclude             []*dom.Element
	OnDismiss           func(Reason)
	CloseOnEscape       bool
	CloseOnOutsideClick bool
	// Registry defaults to Shared().
	Registry *Registry
}

// DefaultOptions enables both dismissal paths.
func DefaultOptions() Options {
	return Options{CloseOnEscape: true, CloseOnOutsideClick: true}
}

// Layer is one dismissable overlay.
type Layer struct {
	id       string
	opts     Options
	registry *Registry
	removers []func()
	active   bool
}

// New returns an inactive layer.
func New(opts Options) *Layer {
	reg := opts.Registry
	if reg == nil {
		reg = Shared()
	}
	return &Layer{id: dom.NewID("layer"), opts: opts, registry: reg}
}

// ID returns the layer's generated identifier.
func (l *Layer) ID() string { return l.id }

// Active reports whether the layer is registered.
func (l *Layer) Active() bool { return l.active }

// Depth returns the 1-based position in the registry, or 0 when inactive.
func (l *Layer) Depth() int { return l.registry.IndexOf(l) + 1 }

// Activate registers the layer and starts listening. A missing or detached
// container makes it a no-op.
func (l *Layer) Activate() {
	if l.active {
		return
	}
	c := l.opts.Container
	if c == nil || !c.IsConnected() {
		return
	}
	doc := c.Document()
	l.registry.push(l)
	l.removers = append(l.removers,
		doc.AddEventListener(dom.EventKeyDown, l.handleKeyDown, dom.ListenerOptions{}),
		doc.AddEventListener(dom.EventPointerDown, l.handlePointerDown, dom.ListenerOptions{Capture: true}),
	)
	l.active = true
	events.Layer.Activate(l.id, l.Depth())
}

// Deactivate removes the layer from its registry, wherever it sits, and
// detaches its listeners. Calling it again is harmless.
func (l *Layer) Deactivate() {
	if !l.active {
		return
	}
	l.active = false
	for _, remove := range l.removers {
		remove()
	}
	l.removers = nil
	l.registry.remove(l)
	events.Layer.Deactivate(l.id, l.registry.Len())
}

func (l *Layer) handleKeyDown(ev *dom.Event) {
	if ev.Key != dom.KeyEscape || ev.DefaultPrevented() {
		return
	}
	if l.registry.Top() != l || !l.opts.CloseOnEscape {
		return
	}
	ev.PreventDefault()
	l.dismiss(ReasonEscape)
}

func (l *Layer) handlePointerDown(ev *dom.Event) {
	if !l.opts.CloseOnOutsideClick || l.inside(ev.Target) {
		return
	}
	l.dismiss(ReasonPointerOutside)
}

func (l *Layer) inside(target *dom.Element) bool {
	if l.opts.Container.Contains(target) {
		return true
	}
	for _, el := range l.opts.Exclude {
		if el.Contains(target) {
			return true
		}
	}
	return false
}

func (l *Layer) dismiss(reason Reason) {
	events.Layer.Dismiss(l.id, string(reason))
	if l.opts.OnDismiss != nil {
		l.opts.OnDismiss(reason)
	}
}
