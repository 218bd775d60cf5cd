// Package roving implements the roving tabindex pattern: one item of a group
// is the Tab stop and arrow keys move that status between items.
package roving

import (
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

// Direction selects which arrow keys navigate.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
	Both
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Both:
		return "both"
	default:
		return "vertical"
	}
}

// ParseDirection maps "vertical", "horizontal" and "both" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "vertical", "":
		return Vertical, true
	case "horizontal":
		return Horizontal, true
	case "both":
		return Both, true
	}
	return Vertical, false
}

// Options configures a Controller.
type Options struct {
	Container *dom.Element
	// Items selects the managed items among the container's descendants.
	// Nil manages the container's direct children.
	Items        dom.Selector
	Direction    Direction
	Loop         bool
	SkipDisabled bool
	OnFocus      func(item *dom.Element, index int)
}

// DefaultOptions returns vertical navigation that loops and skips disabled
// items.
func DefaultOptions() Options {
	return Options{Direction: Vertical, Loop: true, SkipDisabled: true}
}

// Controller manages tab stop priority over a dynamic item set.
type Controller struct {
	opts      Options
	focused   int
	removers  []func()
	syncing   bool
	destroyed bool
}

// New installs keyboard and focus listeners on the container and assigns the
// initial tab stop. A nil container yields an inert controller.
func New(opts Options) *Controller {
	c := &Controller{opts: opts, focused: -1}
	if opts.Container == nil {
		c.destroyed = true
		return c
	}
	c.removers = append(c.removers,
		opts.Container.AddEventListener(dom.EventKeyDown, c.handleKeyDown, dom.ListenerOptions{}),
		opts.Container.AddEventListener(dom.EventFocusIn, c.handleFocusIn, dom.ListenerOptions{}),
	)
	c.Sync(nil)
	return c
}

// managed returns every item the selector matches, rendered or not.
func (c *Controller) managed() []*dom.Element {
	container := c.opts.Container
	if container == nil {
		return nil
	}
	if c.opts.Items == nil {
		return container.Children()
	}
	return container.QuerySelectorAll(c.opts.Items)
}

// Items returns the managed items that currently have a layout box, in
// document order. The set is read from the tree on every call.
func (c *Controller) Items() []*dom.Element {
	var out []*dom.Element
	for _, el := range c.managed() {
		if el.IsRendered() {
			out = append(out, el)
		}
	}
	return out
}

// FocusedIndex returns the index of the item holding the tab stop within
// the current Items, or -1.
func (c *Controller) FocusedIndex() int {
	if c.opts.Container == nil {
		return -1
	}
	return c.current(c.Items())
}

// Sync re-reads the item set and rewrites tabindex so exactly one eligible
// item is the tab stop. prefer wins when it is an eligible item; otherwise
// the current tab stop is kept, falling back to the first eligible item.
// Focus does not move.
func (c *Controller) Sync(prefer *dom.Element) {
	if c.destroyed {
		return
	}
	items := c.Items()
	idx := -1
	if prefer != nil {
		if i := indexOf(items, prefer); i >= 0 && c.eligible(items[i]) {
			idx = i
		}
	}
	if idx < 0 {
		if i := c.current(items); i >= 0 && c.eligible(items[i]) {
			idx = i
		}
	}
	if idx < 0 {
		idx = c.step(items, -1, 1, true)
	}
	c.assign(items, idx)
}

// SetFocusedIndex moves focus and the tab stop to item i. Out of range and
// ineligible indexes are ignored.
func (c *Controller) SetFocusedIndex(i int) {
	if c.destroyed {
		return
	}
	items := c.Items()
	if i < 0 || i >= len(items) || !c.eligible(items[i]) {
		return
	}
	c.focusIndex(items, i)
}

// FocusFirst moves to the first eligible item.
func (c *Controller) FocusFirst() { c.move(true, 1, true) }

// FocusLast moves to the last eligible item.
func (c *Controller) FocusLast() { c.move(true, -1, true) }

// FocusNext moves one eligible item forward, honouring Loop.
func (c *Controller) FocusNext() { c.move(false, 1, c.opts.Loop) }

// FocusPrev moves one eligible item backward, honouring Loop.
func (c *Controller) FocusPrev() { c.move(false, -1, c.opts.Loop) }

// move steps by delta from the current tab stop, or from outside the list
// when fromEdge is set.
func (c *Controller) move(fromEdge bool, delta int, loop bool) {
	if c.destroyed {
		return
	}
	items := c.Items()
	from := -1
	if !fromEdge {
		from = c.current(items)
	}
	if next := c.step(items, from, delta, loop); next >= 0 {
		c.focusIndex(items, next)
	}
}

// Destroy removes every listener. Later calls do nothing.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	for _, remove := range c.removers {
		remove()
	}
	c.removers = nil
}

func (c *Controller) eligible(el *dom.Element) bool {
	if !el.IsRendered() {
		return false
	}
	return !c.opts.SkipDisabled || !el.Inert()
}

// current resolves the tab stop inside items: the item holding
// tabindex="0", else the item containing the active element. The last
// assigned index is only a fallback and is dropped once out of range.
func (c *Controller) current(items []*dom.Element) int {
	for i, el := range items {
		if el.AttrOr("tabindex", "") == "0" {
			return i
		}
	}
	if doc := c.opts.Container.Document(); doc != nil {
		if i := indexOf(items, doc.ActiveElement()); i >= 0 {
			return i
		}
	}
	if c.focused >= len(items) {
		return -1
	}
	return c.focused
}

// assign makes items[idx] the only tab stop among every managed item,
// including ones without a layout box.
func (c *Controller) assign(items []*dom.Element, idx int) {
	var stop *dom.Element
	if idx >= 0 && idx < len(items) {
		stop = items[idx]
	}
	for _, el := range c.managed() {
		if el == stop {
			el.SetAttr("tabindex", "0")
		} else {
			el.SetAttr("tabindex", "-1")
		}
	}
	c.focused = idx
}

func (c *Controller) focusIndex(items []*dom.Element, i int) {
	from := c.current(items)
	c.assign(items, i)
	c.syncing = true
	items[i].Focus()
	c.syncing = false
	events.Roving.Move(c.opts.Container.ID(), from, i)
	if c.opts.OnFocus != nil {
		c.opts.OnFocus(items[i], i)
	}
}

// step walks from index from by delta until it reaches an eligible item. It
// gives up after one full pass, or at a boundary when looping is off.
func (c *Controller) step(items []*dom.Element, from, delta int, loop bool) int {
	n := len(items)
	if n == 0 {
		return -1
	}
	i := from
	if i < 0 && delta < 0 {
		i = n
	}
	for k := 0; k < n; k++ {
		i += delta
		if i >= n {
			if !loop {
				return -1
			}
			i = 0
		}
		if i < 0 {
			if !loop {
				return -1
			}
			i = n - 1
		}
		if c.eligible(items[i]) {
			return i
		}
	}
	return -1
}

func indexOf(items []*dom.Element, target *dom.Element) int {
	for i, el := range items {
		if el.Contains(target) {
			return i
		}
	}
	return -1
}

func (c *Controller) handleKeyDown(ev *dom.Event) {
	if c.destroyed || ev.HasModifier() || ev.DefaultPrevented() {
		return
	}
	var delta int
	var edge bool
	switch ev.Key {
	case dom.KeyArrowDown:
		if c.opts.Direction == Horizontal {
			return
		}
		delta = 1
	case dom.KeyArrowUp:
		if c.opts.Direction == Horizontal {
			return
		}
		delta = -1
	case dom.KeyArrowRight:
		if c.opts.Direction == Vertical {
			return
		}
		delta = 1
	case dom.KeyArrowLeft:
		if c.opts.Direction == Vertical {
			return
		}
		delta = -1
	case dom.KeyHome:
		delta, edge = 1, true
	case dom.KeyEnd:
		delta, edge = -1, true
	default:
		return
	}
	ev.PreventDefault()

	items := c.Items()
	var next int
	if edge {
		next = c.step(items, -1, delta, true)
	} else {
		from := indexOf(items, ev.Target)
		if from < 0 {
			from = c.current(items)
		}
		next = c.step(items, from, delta, c.opts.Loop)
	}
	if next < 0 {
		return
	}
	c.focusIndex(items, next)
}

func (c *Controller) handleFocusIn(ev *dom.Event) {
	if c.destroyed || c.syncing {
		return
	}
	items := c.Items()
	idx := indexOf(items, ev.Target)
	if idx < 0 || !c.eligible(items[idx]) || idx == c.current(items) {
		return
	}
	c.assign(items, idx)
	events.Roving.Sync(c.opts.Container.ID(), idx)
	if c.opts.OnFocus != nil {
		c.opts.OnFocus(items[idx], idx)
	}
}
