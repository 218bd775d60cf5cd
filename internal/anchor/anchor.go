// Package anchor positions a floating element next to an anchor element,
// flipping to the opposite side when that fits better and clamping to the
// viewport.
package anchor

import (
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

// Strategy selects how positions are applied.
type Strategy int

const (
	// StrategyAuto uses native anchor positioning when the document
	// supports it and computes positions otherwise.
	StrategyAuto Strategy = iota
	StrategyNative
	StrategyComputed
)

func (s Strategy) String() string {
	switch s {
	case StrategyNative:
		return "native"
	case StrategyComputed:
		return "computed"
	default:
		return "auto"
	}
}

// Options configures a Positioner.
type Options struct {
	Anchor   *dom.Element
	Floating *dom.Element
	// Placement defaults to bottom, centred.
	Placement        Placement
	Offset           float64
	Flip             bool
	OnPositionChange func(Position)
	Strategy         Strategy
	// AutoUpdate re-runs Update on document resize and scroll.
	AutoUpdate bool
}

// DefaultOptions returns bottom placement with flipping enabled.
func DefaultOptions() Options {
	return Options{Placement: Placement{Side: SideBottom, Align: AlignCenter}, Flip: true}
}

// strategy applies positions for a Positioner. The implementation is chosen
// once at construction.
type strategy interface {
	kind() Strategy
	update(p *Positioner) (Position, bool)
	release(p *Positioner)
}

// Positioner keeps a floating element anchored.
type Positioner struct {
	opts      Options
	strategy  strategy
	position  Position
	computed  bool
	removers  []func()
	styled    map[*dom.Element][]string
	destroyed bool
}

// New picks a strategy and, with AutoUpdate, starts listening for layout
// changes. It does not position anything until Update is called.
func New(opts Options) *Positioner {
	p := &Positioner{opts: opts, styled: make(map[*dom.Element][]string)}
	p.opts.Placement = opts.Placement.normalized()

	doc := opts.Floating.Document()
	kind := opts.Strategy
	if kind == StrategyAuto {
		kind = StrategyComputed
		if doc != nil && doc.Supports(dom.FeatureAnchorPositioning) {
			kind = StrategyNative
		}
	}
	if kind == StrategyNative {
		p.strategy = &nativeStrategy{name: "--" + dom.NewID("anchor")}
	} else {
		p.strategy = computedStrategy{}
	}
	events.Anchor.Strategy(opts.Floating.ID(), kind.String())

	if opts.AutoUpdate && doc != nil {
		p.removers = append(p.removers,
			doc.AddEventListener(dom.EventResize, func(*dom.Event) { p.Update() }, dom.ListenerOptions{}),
			doc.AddEventListener(dom.EventScroll, func(*dom.Event) { p.Update() }, dom.ListenerOptions{Capture: true}),
		)
	}
	return p
}

// Strategy returns the strategy chosen at construction.
func (p *Positioner) Strategy() Strategy { return p.strategy.kind() }

// Position returns the last computed position. The native strategy leaves
// it at the zero value since the renderer resolves the position itself.
func (p *Positioner) Position() Position { return p.position }

// Placement returns the requested placement.
func (p *Positioner) Placement() Placement { return p.opts.Placement }

// Update recomputes and applies the position. It does nothing after Destroy
// or while either element is missing or the floating element is detached.
func (p *Positioner) Update() {
	if p.destroyed || p.opts.Anchor == nil || !p.opts.Floating.IsConnected() {
		return
	}
	pos, changed := p.strategy.update(p)
	if !changed {
		return
	}
	p.position = pos
	events.Anchor.Position(p.opts.Floating.ID(), pos.Placement.String(), pos.X, pos.Y, pos.Placement != p.opts.Placement)
	if p.opts.OnPositionChange != nil {
		p.opts.OnPositionChange(pos)
	}
}

// Destroy removes every style property this positioner set and stops
// listening. Calling it again is harmless.
func (p *Positioner) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	for _, remove := range p.removers {
		remove()
	}
	p.removers = nil
	if p.opts.Floating != nil {
		p.strategy.release(p)
	}
	for el, props := range p.styled {
		for _, prop := range props {
			el.RemoveStyle(prop)
		}
	}
	p.styled = nil
}

func (p *Positioner) setStyle(el *dom.Element, prop, value string) {
	if !contains(p.styled[el], prop) {
		p.styled[el] = append(p.styled[el], prop)
	}
	el.SetStyle(prop, value)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
