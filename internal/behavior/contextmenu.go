package behavior

import (
	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/dom"
)

// keyContextMenu is the dedicated context menu key.
const keyContextMenu = "ContextMenu"

// ContextMenu is a menu opened at a pointer position over a target area.
// It anchors to a zero-size point and always computes its position.
type ContextMenu struct {
	*Menu
	target         *dom.Element
	targetRemovers []func()
}

// NewContextMenu returns a closed context menu.
func NewContextMenu(opts MenuOptions) *ContextMenu {
	opts.Strategy = anchor.StrategyComputed
	m := NewMenu(opts)
	m.kind = "contextmenu"
	m.wireTrigger = false
	return &ContextMenu{Menu: m}
}

// SetTarget sets the area that opens the menu on contextmenu events and on
// Shift+F10 or the context menu key.
func (c *ContextMenu) SetTarget(el *dom.Element) {
	if c.destroyed || el == c.target {
		return
	}
	c.detachTarget()
	c.target = el
	if el == nil {
		return
	}
	c.targetRemovers = append(c.targetRemovers,
		el.AddEventListener(dom.EventContextMenu, func(ev *dom.Event) {
			ev.PreventDefault()
			c.OpenAt(ev.X, ev.Y)
		}, dom.ListenerOptions{}),
		el.AddEventListener(dom.EventKeyDown, func(ev *dom.Event) {
			if (ev.Key == dom.KeyF10 && ev.Shift) || ev.Key == keyContextMenu {
				ev.PreventDefault()
				c.OpenAt(el.Rect.X, el.Rect.Y)
			}
		}, dom.ListenerOptions{}),
	)
}

// Target returns the element the menu is attached to.
func (c *ContextMenu) Target() *dom.Element { return c.target }

// OpenAt opens the menu at a point, reopening it when already open.
func (c *ContextMenu) OpenAt(x, y float64) {
	if c.destroyed || c.disabled {
		return
	}
	prev := c.returnTo
	if c.open {
		c.Close()
	}
	point := dom.NewElement("div")
	point.Rect = dom.Rect{X: x, Y: y}
	c.virtualAnchor = point
	if doc := c.document(); doc != nil {
		active := doc.ActiveElement()
		if c.content != nil && c.content.Contains(active) {
			active = prev
		}
		c.returnTo = active
	}
	c.Open()
}

// Point returns where the menu was last opened.
func (c *ContextMenu) Point() (float64, float64, bool) {
	if c.virtualAnchor == nil {
		return 0, 0, false
	}
	return c.virtualAnchor.Rect.X, c.virtualAnchor.Rect.Y, true
}

// TargetProps returns attributes for the target area.
func (c *ContextMenu) TargetProps() Props {
	return Props{
		"aria-haspopup": "menu",
		"data-state":    openState(c.open),
	}
}

// Destroy releases the menu and detaches from the target.
func (c *ContextMenu) Destroy() {
	c.detachTarget()
	c.target = nil
	c.Menu.Destroy()
}

func (c *ContextMenu) detachTarget() {
	removeAll(&c.targetRemovers)
}
