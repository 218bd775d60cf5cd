package behavior

import (
	"time"

	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/dismiss"
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

var menuItemSelector = dom.MustCompile("[role=menuitem], [role=menuitemcheckbox], [role=menuitemradio]")

// MenuOptions configures a Menu.
type MenuOptions struct {
	Placement        anchor.Placement
	Offset           float64
	Flip             bool
	Loop             bool
	CloseOnSelect    bool
	Strategy         anchor.Strategy
	TypeAheadTimeout time.Duration
	Registry         *dismiss.Registry
	OnOpenChange     func(open bool)
	OnSelect         func(value string)
	OnHighlight      func(value string)
}

// DefaultMenuOptions returns a bottom-start menu that flips, loops and closes
// after a selection.
func DefaultMenuOptions() MenuOptions {
	return MenuOptions{
		Placement:     anchor.Placement{Side: anchor.SideBottom, Align: anchor.AlignStart},
		Flip:          true,
		Loop:          true,
		CloseOnSelect: true,
	}
}

// MenuState is a snapshot of a Menu.
type MenuState struct {
	Open        bool
	Highlighted string
	Trigger     *dom.Element
	Content     *dom.Element
	Disabled    bool
}

// Menu is a menu button: a trigger toggling a list of actions.
type Menu struct {
	popup
	opts MenuOptions
}

// NewMenu returns a closed menu.
func NewMenu(opts MenuOptions) *Menu {
	m := &Menu{opts: opts}
	m.popup = newPopup("menu", menuItemSelector, popupConfig{
		Placement:        opts.Placement,
		Offset:           opts.Offset,
		Flip:             opts.Flip,
		Loop:             opts.Loop,
		Strategy:         opts.Strategy,
		TypeAheadTimeout: opts.TypeAheadTimeout,
		Registry:         opts.Registry,
		OnOpenChange:     opts.OnOpenChange,
		OnHighlight:      opts.OnHighlight,
	})
	m.activate = m.selectItem
	return m
}

// State returns a snapshot of the menu state.
func (m *Menu) State() MenuState {
	return MenuState{
		Open:        m.open,
		Highlighted: m.highlighted,
		Trigger:     m.trigger,
		Content:     m.content,
		Disabled:    m.disabled,
	}
}

// Select activates the enabled item with the given value. Unknown and
// disabled values are ignored.
func (m *Menu) Select(value string) {
	if m.destroyed {
		return
	}
	for _, el := range m.Items() {
		if valueOf(el) == value && !el.Inert() {
			m.selectItem(el)
			return
		}
	}
}

func (m *Menu) selectItem(item *dom.Element) {
	value := valueOf(item)
	events.Widget.Select(m.kind, m.id, value)
	if m.opts.OnSelect != nil {
		m.opts.OnSelect(value)
	}
	if m.opts.CloseOnSelect {
		m.Close()
	}
}

// TriggerProps returns attributes for the menu button.
func (m *Menu) TriggerProps() Props {
	return Props{
		"id":            m.triggerID(),
		"type":          "button",
		"aria-haspopup": "menu",
		"aria-expanded": boolAttr(m.open),
		"aria-controls": m.contentID(),
		"data-state":    openState(m.open),
		"disabled":      flag("disabled", m.disabled),
	}
}

// ContentProps returns attributes for the menu container.
func (m *Menu) ContentProps() Props {
	return Props{
		"id":               m.contentID(),
		"role":             "menu",
		"tabindex":         "-1",
		"aria-labelledby":  m.triggerID(),
		"aria-orientation": "vertical",
		"data-state":       openState(m.open),
		"hidden":           flag("hidden", !m.open),
	}
}

// ItemProps returns attributes for one menu item. Tab stops are managed by
// the roving controller and left out.
func (m *Menu) ItemProps(value string, disabled bool) Props {
	return Props{
		"role":             "menuitem",
		"data-value":       value,
		"aria-disabled":    trueOrAbsent(disabled),
		"data-highlighted": trueOrAbsent(m.open && value == m.highlighted),
	}
}
