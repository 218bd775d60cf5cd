package behavior

import (
	"time"

	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/dismiss"
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
	"github.com/atomicstack/aria-primitives/internal/roving"
	"github.com/atomicstack/aria-primitives/internal/typeahead"
)

type edge int

const (
	edgeFirst edge = iota
	edgeLast
)

// popupConfig holds the tunables shared by anchored item lists.
type popupConfig struct {
	Placement        anchor.Placement
	Offset           float64
	Flip             bool
	Loop             bool
	Strategy         anchor.Strategy
	TypeAheadTimeout time.Duration
	Registry         *dismiss.Registry
	OnOpenChange     func(open bool)
	OnHighlight      func(value string)
}

// popup is an anchored list of items with roving focus, type-ahead and
// dismissal. Menu and Select build on it.
type popup struct {
	lifecycle
	cfg   popupConfig
	items dom.Selector

	open        bool
	disabled    bool
	highlighted string
	initial     edge

	trigger       *dom.Element
	content       *dom.Element
	virtualAnchor *dom.Element
	returnTo      *dom.Element
	wireTrigger   bool

	rv              *roving.Controller
	ta              *typeahead.Buffer
	positioner      *anchor.Positioner
	triggerRemovers []func()

	activate    func(item *dom.Element)
	beforeOpen  func()
	afterClose  func()
	triggerKeys func(ev *dom.Event) bool
}

func newPopup(kind string, items dom.Selector, cfg popupConfig) popup {
	return popup{lifecycle: newLifecycle(kind), cfg: cfg, items: items, wireTrigger: true}
}

func (p *popup) triggerID() string { return p.id + "-trigger" }

func (p *popup) contentID() string { return p.id + "-content" }

func (p *popup) document() *dom.Document {
	return documentOf(p.content, p.trigger)
}

func (p *popup) anchorElement() *dom.Element {
	if p.virtualAnchor != nil {
		return p.virtualAnchor
	}
	return p.trigger
}

// IsOpen reports whether the popup is open.
func (p *popup) IsOpen() bool { return p.open }

// Highlighted returns the value of the highlighted item.
func (p *popup) Highlighted() string { return p.highlighted }

// Positioner returns the live positioner, or nil while closed.
func (p *popup) Positioner() *anchor.Positioner { return p.positioner }

// SetTrigger sets the element the popup anchors to and toggles from.
func (p *popup) SetTrigger(el *dom.Element) {
	if p.destroyed || el == p.trigger {
		return
	}
	removeAll(&p.triggerRemovers)
	p.trigger = el
	if el != nil && p.wireTrigger {
		p.triggerRemovers = append(p.triggerRemovers,
			el.AddEventListener(dom.EventClick, func(*dom.Event) { p.Toggle() }, dom.ListenerOptions{}),
			el.AddEventListener(dom.EventKeyDown, p.handleTriggerKey, dom.ListenerOptions{}),
		)
	}
	p.reconfigure()
}

// SetContent sets the floating element holding the items. Setting it while
// open retries a setup that found no content.
func (p *popup) SetContent(el *dom.Element) {
	if p.destroyed || el == p.content {
		return
	}
	p.content = el
	p.reconfigure()
}

// SetDisabled disables the popup, closing it when open.
func (p *popup) SetDisabled(disabled bool) {
	p.disabled = disabled
	if disabled {
		p.Close()
	}
}

// SetPlacement changes the requested placement, redoing setup when open.
func (p *popup) SetPlacement(placement anchor.Placement) {
	p.cfg.Placement = placement
	p.reconfigure()
}

// SetOffset changes the anchor gap, redoing setup when open.
func (p *popup) SetOffset(offset float64) {
	p.cfg.Offset = offset
	p.reconfigure()
}

// Open opens the popup and highlights the first item once set up.
func (p *popup) Open() { p.openWith(edgeFirst) }

// OpenLast opens the popup and highlights the last item once set up.
func (p *popup) OpenLast() { p.openWith(edgeLast) }

func (p *popup) openWith(e edge) {
	if p.destroyed || p.disabled || p.open {
		return
	}
	p.open = true
	p.initial = e
	if p.beforeOpen != nil {
		p.beforeOpen()
	}
	events.Widget.Open(p.kind, p.id)
	if p.cfg.OnOpenChange != nil {
		p.cfg.OnOpenChange(true)
	}
	p.schedule(p.document(), p.setup)
}

// Close tears the primitives down in reverse order and clears the open
// state. Focus inside the content returns to the trigger.
func (p *popup) Close() {
	if !p.open {
		return
	}
	p.open = false
	restore := p.content != nil && focusWithin(p.content)
	p.release()
	if restore {
		if p.trigger != nil {
			p.trigger.Focus()
		} else {
			p.returnTo.Focus()
		}
	}
	p.returnTo = nil
	p.highlighted = ""
	p.initial = edgeFirst
	if p.afterClose != nil {
		p.afterClose()
	}
	events.Widget.Close(p.kind, p.id)
	if p.cfg.OnOpenChange != nil {
		p.cfg.OnOpenChange(false)
	}
}

// Toggle opens a closed popup and closes an open one.
func (p *popup) Toggle() {
	if p.open {
		p.Close()
		return
	}
	p.Open()
}

// HighlightNext moves the highlight forward.
func (p *popup) HighlightNext() {
	if p.rv != nil {
		p.rv.FocusNext()
	}
}

// HighlightPrev moves the highlight backward.
func (p *popup) HighlightPrev() {
	if p.rv != nil {
		p.rv.FocusPrev()
	}
}

// HighlightFirst highlights the first enabled item.
func (p *popup) HighlightFirst() {
	if p.rv != nil {
		p.rv.FocusFirst()
	}
}

// HighlightLast highlights the last enabled item.
func (p *popup) HighlightLast() {
	if p.rv != nil {
		p.rv.FocusLast()
	}
}

// Items returns the rendered items inside the content.
func (p *popup) Items() []*dom.Element {
	if p.content == nil {
		return nil
	}
	var out []*dom.Element
	for _, el := range p.content.QuerySelectorAll(p.items) {
		if el.IsRendered() {
			out = append(out, el)
		}
	}
	return out
}

// Destroy releases everything and detaches from the trigger. Later calls do
// nothing.
func (p *popup) Destroy() {
	if !p.destroy() {
		return
	}
	removeAll(&p.triggerRemovers)
	p.open = false
	p.highlighted = ""
	p.trigger, p.content, p.virtualAnchor, p.returnTo = nil, nil, nil, nil
}

func (p *popup) reconfigure() {
	if !p.open || p.destroyed {
		return
	}
	p.release()
	p.schedule(p.document(), p.setup)
}

func (p *popup) setup() {
	if !p.open || p.destroyed {
		return
	}
	content, anchorEl := p.content, p.anchorElement()
	if content == nil || !content.IsConnected() || anchorEl == nil {
		return
	}
	doc := content.Document()

	pos := anchor.New(anchor.Options{
		Anchor:     anchorEl,
		Floating:   content,
		Placement:  p.cfg.Placement,
		Offset:     p.cfg.Offset,
		Flip:       p.cfg.Flip,
		Strategy:   p.cfg.Strategy,
		AutoUpdate: true,
	})
	pos.Update()
	p.positioner = pos
	p.scope.Acquire("anchor", func() {
		pos.Destroy()
		p.positioner = nil
	})

	var exclude []*dom.Element
	if p.trigger != nil {
		exclude = append(exclude, p.trigger)
	}
	layer := dismiss.New(dismiss.Options{
		Container:           content,
		Exclude:             exclude,
		OnDismiss:           func(dismiss.Reason) { p.Close() },
		CloseOnEscape:       true,
		CloseOnOutsideClick: true,
		Registry:            p.cfg.Registry,
	})
	layer.Activate()
	p.scope.Acquire("dismiss", layer.Deactivate)

	rv := roving.New(roving.Options{
		Container:    content,
		Items:        p.items,
		Direction:    roving.Vertical,
		Loop:         p.cfg.Loop,
		SkipDisabled: true,
		OnFocus:      p.handleRovingFocus,
	})
	p.rv = rv
	p.scope.Acquire("roving", func() {
		rv.Destroy()
		p.rv = nil
	})

	ta := typeahead.New(typeahead.Options{
		Items:   p.enabledItems,
		OnMatch: p.handleMatch,
		Timeout: p.cfg.TypeAheadTimeout,
		Clock:   doc.Clock(),
		Current: p.highlightedItem,
	})
	p.ta = ta
	removeKeys := content.AddEventListener(dom.EventKeyDown, p.handleContentKey, dom.ListenerOptions{})
	removeClick := content.AddEventListener(dom.EventClick, p.handleContentClick, dom.ListenerOptions{})
	p.scope.Acquire("typeahead", func() {
		removeClick()
		removeKeys()
		ta.Destroy()
		p.ta = nil
	})

	p.focusInitial(content)
	events.Widget.Setup(p.kind, p.id, p.scope.Len())
}

func (p *popup) focusInitial(content *dom.Element) {
	items := p.rv.Items()
	if p.highlighted != "" {
		for i, el := range items {
			if valueOf(el) == p.highlighted && !el.Inert() {
				p.rv.SetFocusedIndex(i)
				return
			}
		}
	}
	if p.initial == edgeLast {
		p.rv.FocusLast()
	} else {
		p.rv.FocusFirst()
	}
	if p.rv.FocusedIndex() < 0 {
		content.Focus()
	}
}

func (p *popup) enabledItems() []*dom.Element {
	var out []*dom.Element
	for _, el := range p.Items() {
		if !el.Inert() {
			out = append(out, el)
		}
	}
	return out
}

func (p *popup) highlightedItem() *dom.Element {
	if p.rv == nil {
		return nil
	}
	items := p.rv.Items()
	if i := p.rv.FocusedIndex(); i >= 0 && i < len(items) {
		return items[i]
	}
	return nil
}

func (p *popup) itemFor(target *dom.Element) *dom.Element {
	for n := target; n != nil && n != p.content; n = n.Parent() {
		if p.items.Match(n) {
			return n
		}
	}
	return nil
}

func (p *popup) handleRovingFocus(item *dom.Element, _ int) {
	p.highlighted = valueOf(item)
	if p.cfg.OnHighlight != nil {
		p.cfg.OnHighlight(p.highlighted)
	}
}

func (p *popup) handleMatch(item *dom.Element, _ int) {
	if p.rv == nil {
		return
	}
	for i, el := range p.rv.Items() {
		if el == item {
			p.rv.SetFocusedIndex(i)
			return
		}
	}
}

func (p *popup) handleTriggerKey(ev *dom.Event) {
	if p.disabled || ev.HasModifier() {
		return
	}
	if p.triggerKeys != nil && p.triggerKeys(ev) {
		return
	}
	switch ev.Key {
	case dom.KeyArrowDown:
		ev.PreventDefault()
		if p.open {
			p.HighlightFirst()
			return
		}
		p.openWith(edgeFirst)
	case dom.KeyArrowUp:
		ev.PreventDefault()
		if p.open {
			p.HighlightLast()
			return
		}
		p.openWith(edgeLast)
	}
}

func (p *popup) handleContentKey(ev *dom.Event) {
	if ev.DefaultPrevented() || ev.HasModifier() || p.ta == nil {
		return
	}
	if p.ta.HandleKeyDown(ev) {
		ev.PreventDefault()
		return
	}
	switch ev.Key {
	case dom.KeyEnter, dom.KeySpace:
		item := p.itemFor(ev.Target)
		if item == nil {
			item = p.highlightedItem()
		}
		if item == nil || item.Inert() {
			return
		}
		ev.PreventDefault()
		p.activate(item)
	case dom.KeyTab:
		p.Close()
	}
}

func (p *popup) handleContentClick(ev *dom.Event) {
	item := p.itemFor(ev.Target)
	if item == nil || item.Inert() {
		return
	}
	p.activate(item)
}
