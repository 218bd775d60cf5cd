package ui

import (
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// keyContextMenu is the DOM name of the context menu key. Terminals rarely
// report Shift+F10, so plain F10 stands in for it.
const keyContextMenu = "ContextMenu"

// keyPress is one DOM keydown derived from a terminal key.
type keyPress struct {
	key   string
	shift bool
	alt   bool
}

var keyNames = map[tea.KeyType]string{
	tea.KeyUp:        dom.KeyArrowUp,
	tea.KeyDown:      dom.KeyArrowDown,
	tea.KeyLeft:      dom.KeyArrowLeft,
	tea.KeyRight:     dom.KeyArrowRight,
	tea.KeyHome:      dom.KeyHome,
	tea.KeyEnd:       dom.KeyEnd,
	tea.KeyPgUp:      dom.KeyPageUp,
	tea.KeyPgDown:    dom.KeyPageDown,
	tea.KeyEnter:     dom.KeyEnter,
	tea.KeyEsc:       dom.KeyEscape,
	tea.KeyTab:       dom.KeyTab,
	tea.KeySpace:     dom.KeySpace,
	tea.KeyBackspace: dom.KeyBackspace,
	tea.KeyF10:       keyContextMenu,
}

// domKeys translates a terminal key into DOM keydowns. Pasted runes become
// one keydown each so type-ahead sees them in order.
func domKeys(msg tea.KeyMsg) []keyPress {
	switch msg.Type {
	case tea.KeyShiftTab:
		return []keyPress{{key: dom.KeyTab, shift: true}}
	case tea.KeyRunes:
		out := make([]keyPress, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, keyPress{key: string(r), alt: msg.Alt})
		}
		return out
	}
	if name, ok := keyNames[msg.Type]; ok {
		return []keyPress{{key: name, alt: msg.Alt}}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.prompt != nil {
		return m.handlePromptKey(keyMsg)
	}
	if current := m.currentScene(); current != nil && current.keys != nil {
		if handled, cmd := current.keys(keyMsg); handled {
			return cmd
		}
	}
	if keyMsg.String() == "?" {
		m.showHelp = !m.showHelp
		return nil
	}
	if m.showHelp && keyMsg.Type == tea.KeyEsc {
		m.showHelp = false
		return nil
	}
	for _, press := range domKeys(keyMsg) {
		m.dispatchKey(press)
	}
	return nil
}

// dispatchKey sends a keydown to the focused element. An Escape nothing
// claimed, with no layer open, leaves the current demo.
func (m *Model) dispatchKey(press keyPress) {
	hadLayers := m.layers.Len() > 0
	target := m.doc.ActiveElement()
	ev := dom.NewKeyEvent(press.key)
	ev.Shift = press.shift
	ev.Alt = press.alt
	notPrevented := m.doc.Dispatch(target, ev)
	events.UI.Key(press.key, target.ID(), !notPrevented)
	if press.key == dom.KeyEscape && notPrevented && !hadLayers {
		m.popScene()
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || m.prompt != nil || m.showHelp {
		return nil
	}
	m.relayout()
	size := m.doc.Viewport()
	x, y := float64(mouse.X), float64(mouse.Y-headerRows)
	inside := x >= 0 && y >= 0 && x < size.Width && y < size.Height
	var target *dom.Element
	if inside {
		target = m.doc.ElementAt(x, y)
	}

	switch mouse.Action {
	case tea.MouseActionMotion:
		m.hover(target, x, y)
		return nil
	case tea.MouseActionRelease:
		pressed := m.pressed
		m.pressed = nil
		if target == nil {
			target = pressed
		}
		if target == nil {
			return nil
		}
		m.doc.Dispatch(target, dom.NewPointerEvent(dom.EventPointerUp, x, y))
		if pressed != nil && (pressed == target || pressed.Contains(target)) {
			m.doc.Dispatch(target, dom.NewPointerEvent(dom.EventClick, x, y))
		}
		return nil
	}
	if mouse.Action != tea.MouseActionPress || target == nil {
		return nil
	}
	events.UI.Pointer(mouse.X, mouse.Y-headerRows, target.ID())
	switch mouse.Button {
	case tea.MouseButtonLeft:
		m.hover(target, x, y)
		m.pressed = target
		m.doc.Dispatch(target, dom.NewPointerEvent(dom.EventPointerDown, x, y))
	case tea.MouseButtonRight:
		m.hover(target, x, y)
		m.doc.Dispatch(target, dom.NewPointerEvent(dom.EventPointerDown, x, y))
		m.doc.Dispatch(target, dom.NewPointerEvent(dom.EventContextMenu, x, y))
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		m.doc.Dispatch(target, &dom.Event{Type: dom.EventScroll, X: x, Y: y})
	}
	return nil
}

// hover moves the pointer onto target, sending pointerleave to the element
// it left and pointerenter to the one it reached. Moving between children
// of the same element leaves that element entered.
func (m *Model) hover(target *dom.Element, x, y float64) {
	prev := m.hovered
	if prev == target {
		return
	}
	m.hovered = target
	for n := prev; n != nil && !n.Contains(target); n = n.Parent() {
		ev := dom.NewPointerEvent(dom.EventPointerLeave, x, y)
		ev.RelatedTarget = target
		n.Dispatch(ev)
	}
	var entered []*dom.Element
	for n := target; n != nil && !n.Contains(prev); n = n.Parent() {
		entered = append(entered, n)
	}
	for i := len(entered) - 1; i >= 0; i-- {
		ev := dom.NewPointerEvent(dom.EventPointerEnter, x, y)
		ev.RelatedTarget = prev
		entered[i].Dispatch(ev)
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.resizeDocument()
	return nil
}
