package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/behavior"
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/menu"
	"github.com/atomicstack/aria-primitives/internal/roving"
	"github.com/atomicstack/aria-primitives/internal/typeahead"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/rivo/uniseg"
)

const (
	catalogueWidth = 24
	listWidth      = 18
	selectWidth    = 26
	dialogWidth    = 44
	dialogHeight   = 6
	sheetWidth     = 32
	sheetHeight    = 6

	uploadAccept   = "image/*,application/pdf,.txt,.md"
	uploadMaxSize  = 5 << 20
	uploadMaxFiles = 5
)

var optionSelector = dom.MustCompile("[role=option]")

var sheetSides = []anchor.Side{anchor.SideRight, anchor.SideBottom, anchor.SideLeft, anchor.SideTop}

type listEntry struct {
	item menu.Item
	el   *dom.Element
}

func (m *Model) buildDemo(node *menu.Node, items []menu.Item) (*scene, error) {
	switch node.ID {
	case "menu":
		return m.buildMenuDemo(node, items), nil
	case "select", "multi-select":
		return m.buildSelectDemo(node, items), nil
	case "context-menu":
		return m.buildContextMenuDemo(node, items), nil
	case "dialog", "alert-dialog":
		return m.buildDialogDemo(node), nil
	case "sheet":
		return m.buildSheetDemo(node), nil
	case "tooltip":
		return m.buildTooltipDemo(node), nil
	case "number-input":
		return m.buildNumberInputDemo(node), nil
	case "file-upload":
		return m.buildFileUploadDemo(node), nil
	}
	return nil, fmt.Errorf("demo %q has no scene", node.ID)
}

// buildCatalogue lists the demos in a listbox with roving focus and
// type-ahead. Enter, Space or a click opens the demo.
func (m *Model) buildCatalogue() *scene {
	demos := m.registry.Demos()
	s := newScene(m.doc, "root", m.registry.Root().Label)
	m.demoHeader(s, "ARIA primitives", "Pick a demo. Type to jump, enter to open.")
	list := s.layout.add(s.root, "div", "", dom.Rect{X: 1, Y: 3, Width: catalogueWidth, Height: float64(len(demos))})
	list.SetID("catalogue")
	list.SetAttr("role", "listbox")
	list.SetAttr("aria-label", "Demos")
	list.SetAttr("data-nav", "true")
	options := make([]*dom.Element, 0, len(demos))
	for i, node := range demos {
		el := s.layout.add(list, "div", node.Label, dom.Rect{Y: float64(i), Width: catalogueWidth, Height: 1})
		el.SetID("demo-" + node.ID)
		el.SetAttr("role", "option")
		el.SetAttr("tabindex", "-1")
		el.SetAttr("data-value", node.ID)
		options = append(options, el)
	}

	rv := roving.New(roving.Options{
		Container:    list,
		Items:        optionSelector,
		Direction:    roving.Vertical,
		Loop:         m.opts.Loop,
		SkipDisabled: true,
	})
	ta := typeahead.New(typeahead.Options{
		Items:   rv.Items,
		OnMatch: func(_ *dom.Element, index int) { rv.SetFocusedIndex(index) },
		Timeout: m.opts.TypeAheadTimeout,
		Clock:   m.doc.Clock(),
		Current: func() *dom.Element {
			if active := m.doc.ActiveElement(); list.Contains(active) {
				return active
			}
			return nil
		},
	})
	open := func(target *dom.Element) {
		option := target.Closest(optionSelector)
		if option == nil || !list.Contains(option) {
			return
		}
		m.openDemo(option.AttrOr("data-value", ""))
	}
	removeKeys := list.AddEventListener(dom.EventKeyDown, func(ev *dom.Event) {
		if ev.DefaultPrevented() {
			return
		}
		switch ev.Key {
		case dom.KeyEnter, dom.KeySpace:
			if ta.Buffer() != "" && ev.Key == dom.KeySpace {
				break
			}
			ev.PreventDefault()
			open(ev.Target)
			return
		}
		if ta.HandleKeyDown(ev) {
			ev.PreventDefault()
		}
	}, dom.ListenerOptions{})
	removeClick := list.AddEventListener(dom.EventClick, func(ev *dom.Event) { open(ev.Target) }, dom.ListenerOptions{})
	s.scope.Acquire("roving", rv.Destroy)
	s.scope.Acquire("typeahead", func() {
		removeClick()
		removeKeys()
		ta.Destroy()
	})

	s.sync = func() {
		for _, el := range options {
			selected := el == m.doc.ActiveElement()
			el.SetAttr("aria-selected", strconv.FormatBool(selected))
		}
	}
	s.summary = func() string {
		if buf := ta.Buffer(); buf != "" {
			return "type-ahead: " + buf
		}
		return fmt.Sprintf("%d demos", len(demos))
	}
	if len(options) > 0 {
		s.focus = options[0]
	}
	return s
}

func (m *Model) demoHeader(s *scene, title, hint string) {
	s.layout.add(s.root, "h1", title, dom.Rect{X: 1, Y: 0, Width: float64(uniseg.StringWidth(title)), Height: 1})
	s.layout.add(s.root, "p", hint, dom.Rect{X: 1, Y: 1, Width: float64(uniseg.StringWidth(hint)), Height: 1})
}

// itemList builds hidden floating content holding one row per item. The
// controller's props give the rows their roles.
func (m *Model) itemList(s *scene, items []menu.Item, width float64) (*dom.Element, []listEntry) {
	content := s.root.Append("div", "")
	content.Rect = dom.Rect{Width: width, Height: float64(len(items))}
	content.SetAttr("hidden", "hidden")
	entries := make([]listEntry, 0, len(items))
	for i, item := range items {
		el := s.layout.add(content, "div", item.Label, dom.Rect{Y: float64(i), Width: width, Height: 1})
		el.SetAttr("tabindex", "-1")
		entries = append(entries, listEntry{item: item, el: el})
	}
	return content, entries
}

func (m *Model) menuOptions(s *scene, node *menu.Node, items []menu.Item) behavior.MenuOptions {
	return behavior.MenuOptions{
		Placement:        m.opts.Placement,
		Offset:           m.opts.Offset,
		Flip:             m.opts.Flip,
		Loop:             m.opts.Loop,
		CloseOnSelect:    true,
		TypeAheadTimeout: m.opts.TypeAheadTimeout,
		Registry:         m.layers,
		OnOpenChange:     func(bool) { s.refresh() },
		OnSelect: func(value string) {
			m.runAction(node.ID, "select", m.demoContext(node.ID), itemByID(items, value))
		},
	}
}

func (m *Model) buildMenuDemo(node *menu.Node, items []menu.Item) *scene {
	s := newScene(m.doc, node.ID, node.Label)
	m.demoHeader(s, node.Label, "A menu button. Open it and pick a fruit.")
	trigger := s.layout.add(s.root, "button", "Fruit ▾", dom.Rect{X: 2, Y: 3, Width: 10, Height: 1})
	content, entries := m.itemList(s, items, listWidth)

	ctl := behavior.NewMenu(m.menuOptions(s, node, items))
	ctl.SetTrigger(trigger)
	ctl.SetContent(content)
	s.scope.Acquire("menu", ctl.Destroy)

	s.sync = func() {
		ctl.TriggerProps().Apply(trigger)
		ctl.ContentProps().Apply(content)
		for _, e := range entries {
			ctl.ItemProps(e.item.ID, e.item.Disabled).Apply(e.el)
		}
	}
	s.summary = func() string {
		if ctl.IsOpen() {
			return "highlighted: " + ctl.Highlighted()
		}
		return "closed"
	}
	s.focus = trigger
	return s
}

func (m *Model) buildContextMenuDemo(node *menu.Node, items []menu.Item) *scene {
	s := newScene(m.doc, node.ID, node.Label)
	m.demoHeader(s, node.Label, "Right-click the area, or focus it and press F10.")
	size := m.doc.Viewport()
	area := s.layout.add(s.root, "div", "Edit area", contextAreaRect(size))
	area.SetID("context-area")
	area.SetAttr("tabindex", "0")
	area.SetAttr("data-area", "true")
	content, entries := m.itemList(s, items, listWidth)

	ctl := behavior.NewContextMenu(m.menuOptions(s, node, items))
	ctl.SetTarget(area)
	ctl.SetContent(content)
	s.scope.Acquire("context-menu", ctl.Destroy)

	s.sync = func() {
		ctl.TargetProps().Apply(area)
		ctl.ContentProps().Apply(content)
		for _, e := range entries {
			ctl.ItemProps(e.item.ID, e.item.Disabled).Apply(e.el)
		}
	}
	s.summary = func() string {
		if x, y, ok := ctl.Point(); ok && ctl.IsOpen() {
			return fmt.Sprintf("opened at %g,%g", x, y)
		}
		return "closed"
	}
	s.resize = func(size dom.Size) { s.layout.move(area, contextAreaRect(size)) }
	s.focus = area
	return s
}

func contextAreaRect(size dom.Size) dom.Rect {
	w := size.Width - 4
	h := size.Height - 5
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return dom.Rect{X: 2, Y: 3, Width: w, Height: h}
}

func (m *Model) buildSelectDemo(node *menu.Node, items []menu.Item) *scene {
	s := newScene(m.doc, node.ID, node.Label)
	hint := "A listbox picking one language."
	if node.MultiSelect {
		hint = "A listbox toggling several languages."
	}
	m.demoHeader(s, node.Label, hint)
	s.layout.add(s.root, "label", "Language", dom.Rect{X: 2, Y: 3, Width: 8, Height: 1})
	trigger := s.layout.add(s.root, "button", "", dom.Rect{X: 2, Y: 4, Width: selectWidth, Height: 1})
	content, entries := m.itemList(s, items, selectWidth)

	ctl := behavior.NewSelect(behavior.SelectOptions{
		Placement:        m.opts.Placement,
		Offset:           m.opts.Offset,
		Flip:             m.opts.Flip,
		Loop:             m.opts.Loop,
		Multiple:         node.MultiSelect,
		TypeAheadTimeout: m.opts.TypeAheadTimeout,
		Registry:         m.layers,
		OnOpenChange:     func(bool) { s.refresh() },
		OnValueChange: func(values []string) {
			ctx := m.demoContext(node.ID)
			ctx.Values = labelsFor(items, values)
			m.runAction(node.ID, "change", ctx, menu.Item{})
		},
	})
	ctl.SetTrigger(trigger)
	ctl.SetContent(content)
	s.scope.Acquire("select", ctl.Destroy)

	s.sync = func() {
		ctl.TriggerProps().Apply(trigger)
		ctl.ContentProps().Apply(content)
		for _, e := range entries {
			ctl.OptionProps(e.item.ID, e.item.Disabled).Apply(e.el)
		}
		label := strings.Join(labelsFor(items, ctl.Values()), ", ")
		if label == "" {
			label = "Pick a language"
		}
		trigger.Text = label + " ▾"
	}
	s.summary = func() string {
		if filter := ctl.Filter(); filter != "" {
			return "filter: " + filter
		}
		return fmt.Sprintf("%d selected", len(ctl.Values()))
	}
	s.keys = func(msg tea.KeyMsg) (bool, tea.Cmd) {
		switch msg.String() {
		case "/":
			if !ctl.IsOpen() {
				ctl.Open()
			}
			m.startPrompt(newPrompt("filter", "type to filter", ctl.Filter()), promptHooks{
				change: ctl.SetFilter,
				cancel: func() { ctl.SetFilter("") },
			})
			return true, nil
		case "ctrl+x":
			if node.MultiSelect {
				ctl.Clear()
				return true, nil
			}
		}
		return false, nil
	}
	s.focus = trigger
	return s
}

func (m *Model) buildDialogDemo(node *menu.Node) *scene {
	s := newScene(m.doc, node.ID, node.Label)
	alert := node.ID == "alert-dialog"
	opts := behavior.DefaultDialogOptions()
	triggerLabel, title, description := "Edit profile", "Save changes", "Apply the edited profile?"
	if alert {
		opts = behavior.AlertDialogOptions()
		triggerLabel, title, description = "Delete draft", "Delete draft", "This cannot be undone."
	}
	m.demoHeader(s, node.Label, "A modal dialog trapping focus until dismissed.")
	size := m.doc.Viewport()
	trigger := s.layout.add(s.root, "button", triggerLabel, dom.Rect{X: 2, Y: 3, Width: float64(uniseg.StringWidth(triggerLabel) + 2), Height: 1})
	overlay := s.layout.add(s.root, "div", "", dom.Rect{Width: size.Width, Height: size.Height})
	overlay.SetAttr("data-overlay", "true")
	content := s.layout.add(s.root, "div", "", dialogRect(size))
	w := content.Rect.Width
	heading := s.layout.add(content, "h2", title, dom.Rect{X: 2, Y: 1, Width: w - 4, Height: 1})
	desc := s.layout.add(content, "p", description, dom.Rect{X: 2, Y: 2, Width: w - 4, Height: 1})
	cancel := s.layout.add(content, "button", "Cancel", dom.Rect{X: w - 20, Y: 4, Width: 8, Height: 1})
	confirm := s.layout.add(content, "button", "Confirm", dom.Rect{X: w - 11, Y: 4, Width: 9, Height: 1})

	if alert {
		opts.InitialFocus = cancel
	}
	opts.Registry = m.layers
	opts.TrapStack = m.traps
	opts.OnOpenChange = func(bool) { s.refresh() }
	d := behavior.NewDialog(opts)
	d.SetTrigger(trigger)
	d.SetContent(content)
	s.scope.Acquire("dialog", d.Destroy)
	m.wireDialogButtons(s, node, d, cancel, confirm)

	s.sync = func() {
		d.TriggerProps().Apply(trigger)
		d.ContentProps().Apply(content)
		d.OverlayProps().Apply(overlay)
		d.TitleProps().Apply(heading)
		d.DescriptionProps().Apply(desc)
	}
	s.summary = func() string { return openLabel(d.IsOpen()) }
	s.resize = func(size dom.Size) {
		s.layout.move(overlay, dom.Rect{Width: size.Width, Height: size.Height})
		s.layout.move(content, dialogRect(size))
	}
	s.focus = trigger
	return s
}

func (m *Model) wireDialogButtons(s *scene, node *menu.Node, d *behavior.Dialog, cancel, confirm *dom.Element) {
	removeCancel := cancel.AddEventListener(dom.EventClick, func(*dom.Event) { d.Close() }, dom.ListenerOptions{})
	removeConfirm := confirm.AddEventListener(dom.EventClick, func(*dom.Event) {
		m.runAction(node.ID, "confirm", m.demoContext(node.ID), menu.Item{ID: node.ID, Label: node.Label})
		d.Close()
	}, dom.ListenerOptions{})
	s.scope.Acquire("buttons", func() {
		removeConfirm()
		removeCancel()
	})
}

func dialogRect(size dom.Size) dom.Rect {
	w := min(float64(dialogWidth), size.Width)
	h := min(float64(dialogHeight), size.Height)
	return dom.Rect{X: float64(int((size.Width - w) / 2)), Y: float64(int((size.Height - h) / 2)), Width: w, Height: h}
}

func (m *Model) buildSheetDemo(node *menu.Node) *scene {
	s := newScene(m.doc, node.ID, node.Label)
	m.demoHeader(s, node.Label, "A dialog attached to a viewport edge.")
	size := m.doc.Viewport()
	trigger := s.layout.add(s.root, "button", "Filters", dom.Rect{X: 2, Y: 3, Width: 9, Height: 1})
	overlay := s.layout.add(s.root, "div", "", dom.Rect{Width: size.Width, Height: size.Height})
	overlay.SetAttr("data-overlay", "true")

	opts := behavior.DefaultSheetOptions()
	opts.Registry = m.layers
	opts.TrapStack = m.traps
	opts.OnOpenChange = func(bool) { s.refresh() }
	content := s.layout.add(s.root, "div", "", sheetRect(opts.Side, size))
	heading := s.layout.add(content, "h2", "Filters", dom.Rect{X: 2, Y: 1, Width: 20, Height: 1})
	desc := s.layout.add(content, "p", "Narrow the results.", dom.Rect{X: 2, Y: 2, Width: 24, Height: 1})
	cancel := s.layout.add(content, "button", "Close", dom.Rect{X: 2, Y: 4, Width: 7, Height: 1})
	confirm := s.layout.add(content, "button", "Apply", dom.Rect{X: 10, Y: 4, Width: 7, Height: 1})

	sheet := behavior.NewSheet(opts)
	sheet.SetTrigger(trigger)
	sheet.SetContent(content)
	s.scope.Acquire("sheet", sheet.Destroy)
	m.wireDialogButtons(s, node, sheet.Dialog, cancel, confirm)

	s.sync = func() {
		sheet.TriggerProps().Apply(trigger)
		sheet.ContentProps().Apply(content)
		sheet.OverlayProps().Apply(overlay)
		sheet.TitleProps().Apply(heading)
		sheet.DescriptionProps().Apply(desc)
	}
	s.summary = func() string {
		return fmt.Sprintf("%s, side %s", openLabel(sheet.IsOpen()), sheet.Side())
	}
	s.resize = func(size dom.Size) {
		s.layout.move(overlay, dom.Rect{Width: size.Width, Height: size.Height})
		s.layout.move(content, sheetRect(sheet.Side(), size))
	}
	s.keys = func(msg tea.KeyMsg) (bool, tea.Cmd) {
		if msg.String() != "s" {
			return false, nil
		}
		sheet.SetSide(nextSide(sheet.Side()))
		s.layout.move(content, sheetRect(sheet.Side(), m.doc.Viewport()))
		return true, nil
	}
	s.focus = trigger
	return s
}

func sheetRect(side anchor.Side, size dom.Size) dom.Rect {
	w := min(float64(sheetWidth), size.Width)
	h := min(float64(sheetHeight), size.Height)
	switch side {
	case anchor.SideLeft:
		return dom.Rect{Width: w, Height: size.Height}
	case anchor.SideTop:
		return dom.Rect{Width: size.Width, Height: h}
	case anchor.SideBottom:
		return dom.Rect{Y: size.Height - h, Width: size.Width, Height: h}
	default:
		return dom.Rect{X: size.Width - w, Width: w, Height: size.Height}
	}
}

func nextSide(side anchor.Side) anchor.Side {
	for i, s := range sheetSides {
		if s == side {
			return sheetSides[(i+1)%len(sheetSides)]
		}
	}
	return sheetSides[0]
}

func (m *Model) buildTooltipDemo(node *menu.Node) *scene {
	s := newScene(m.doc, node.ID, node.Label)
	m.demoHeader(s, node.Label, "Hover or tab to a button.")
	buttons := []struct {
		id, label, tip string
		x              float64
	}{
		{id: "save", label: "Save", tip: "Save the draft", x: 2},
		{id: "share", label: "Share", tip: "Copy a share link", x: 10},
	}
	syncs := make([]func(), 0, len(buttons))
	tips := make([]*behavior.Tooltip, 0, len(buttons))
	for _, b := range buttons {
		trigger := s.layout.add(s.root, "button", b.label, dom.Rect{X: b.x, Y: 5, Width: float64(uniseg.StringWidth(b.label) + 2), Height: 1})
		trigger.SetID("tooltip-" + b.id)
		content := s.root.Append("div", b.tip)
		content.Rect = dom.Rect{Width: float64(uniseg.StringWidth(b.tip) + 2), Height: 1}
		content.SetAttr("hidden", "hidden")

		opts := behavior.DefaultTooltipOptions()
		opts.OpenDelay = m.opts.TooltipOpenDelay
		opts.CloseDelay = m.opts.TooltipCloseDelay
		opts.Offset = m.opts.Offset
		opts.Flip = m.opts.Flip
		opts.Registry = m.layers
		opts.OnOpenChange = func(bool) { s.refresh() }
		tip := behavior.NewTooltip(opts)
		tip.SetTrigger(trigger)
		tip.SetContent(content)
		s.scope.Acquire("tooltip-"+b.id, tip.Destroy)
		tips = append(tips, tip)
		syncs = append(syncs, func() {
			tip.TriggerProps().Apply(trigger)
			tip.ContentProps().Apply(content)
		})
	}
	s.sync = func() {
		for _, fn := range syncs {
			fn()
		}
	}
	s.summary = func() string {
		for i, tip := range tips {
			if tip.IsOpen() {
				return buttons[i].tip
			}
		}
		return "no tooltip"
	}
	return s
}

func (m *Model) buildNumberInputDemo(node *menu.Node) *scene {
	s := newScene(m.doc, node.ID, node.Label)
	m.demoHeader(s, node.Label, "A spinbutton clamped to 0-99.")
	s.layout.add(s.root, "label", "Quantity", dom.Rect{X: 2, Y: 3, Width: 8, Height: 1})
	dec := s.layout.add(s.root, "button", "−", dom.Rect{X: 2, Y: 4, Width: 3, Height: 1})
	input := s.layout.add(s.root, "input", "", dom.Rect{X: 6, Y: 4, Width: 8, Height: 1})
	inc := s.layout.add(s.root, "button", "+", dom.Rect{X: 15, Y: 4, Width: 3, Height: 1})

	opts := behavior.DefaultNumberInputOptions()
	opts.Value = 1
	opts.Min = 0
	opts.Max = 99
	opts.OnValueChange = func(v float64) {
		m.runAction(node.ID, "commit", m.demoContext(node.ID), menu.Item{ID: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	n := behavior.NewNumberInput(opts)
	n.SetInput(input)
	n.SetButtons(inc, dec)
	s.scope.Acquire("number-input", n.Destroy)

	text := textinput.New()
	text.Prompt = ""
	text.CharLimit = 12
	text.Cursor.SetMode(cursor.CursorStatic)
	text.Focus()

	s.sync = func() {
		n.InputProps().Apply(input)
		n.IncrementProps().Apply(inc)
		n.DecrementProps().Apply(dec)
		input.Text = n.Text()
	}
	s.summary = func() string {
		st := n.State()
		switch {
		case st.Spinning != 0:
			return "spinning"
		case st.Editing:
			return "editing " + st.Text
		}
		return "value " + strconv.FormatFloat(st.Value, 'f', -1, 64)
	}
	// Text entry is mirrored through a textinput so editing keys behave like
	// a line editor; the result reaches the controller as an input event.
	s.keys = func(msg tea.KeyMsg) (bool, tea.Cmd) {
		if m.doc.ActiveElement() != input {
			return false, nil
		}
		if msg.Type != tea.KeyRunes && msg.Type != tea.KeyBackspace && msg.Type != tea.KeyDelete {
			return false, nil
		}
		text.SetValue(n.Text())
		text.CursorEnd()
		var cmd tea.Cmd
		text, cmd = text.Update(msg)
		m.doc.Dispatch(input, &dom.Event{Type: dom.EventInput, Data: text.Value()})
		return true, cmd
	}
	s.focus = input
	return s
}

func (m *Model) buildFileUploadDemo(node *menu.Node) *scene {
	s := newScene(m.doc, node.ID, node.Label)
	m.demoHeader(s, node.Label, "Images, PDF and text up to 5 MB, five files at most.")
	size := m.doc.Viewport()
	zone := s.layout.add(s.root, "div", "Drop files here or press enter to browse", dropzoneRect(size))
	zone.SetAttr("data-dropzone", "true")
	rows := make([]*dom.Element, uploadMaxFiles)
	for i := range rows {
		rows[i] = s.layout.add(s.root, "div", "", dom.Rect{X: 4, Y: 8 + float64(i), Width: size.Width - 6, Height: 1})
		rows[i].SetAttr("hidden", "hidden")
	}

	upload := behavior.NewFileUpload(behavior.FileUploadOptions{
		Accept:        uploadAccept,
		MaxSize:       uploadMaxSize,
		MaxFiles:      uploadMaxFiles,
		Multiple:      true,
		OnFilesChange: func([]behavior.File) { s.refresh() },
		OnReject: func(rejected []behavior.Rejection) {
			m.errMsg = rejectionSummary(rejected)
		},
		OnOpenPicker: func() {
			m.startPrompt(newPrompt("files", "comma separated paths", ""), promptHooks{
				submit: func(value string) {
					m.runAction(node.ID, "pick", m.demoContext(node.ID), menu.Item{ID: value})
				},
			})
		},
	})
	upload.SetDropzone(zone)
	s.scope.Acquire("file-upload", upload.Destroy)

	s.sync = func() {
		upload.DropzoneProps().Apply(zone)
		files := upload.Files()
		for i, row := range rows {
			if i >= len(files) {
				row.Text = ""
				row.SetAttr("hidden", "hidden")
				continue
			}
			f := files[i]
			row.Text = fmt.Sprintf("%s  %s  %s", f.Name, humanize.Bytes(uint64(f.Size)), f.MediaType())
			row.RemoveAttr("hidden")
		}
	}
	s.summary = func() string {
		return fmt.Sprintf("%d/%d files", len(upload.Files()), uploadMaxFiles)
	}
	s.keys = func(msg tea.KeyMsg) (bool, tea.Cmd) {
		if msg.String() != "x" {
			return false, nil
		}
		if files := upload.Files(); len(files) > 0 {
			upload.Remove(files[len(files)-1].Name)
		}
		return true, nil
	}
	s.resize = func(size dom.Size) {
		s.layout.move(zone, dropzoneRect(size))
		for i, row := range rows {
			s.layout.move(row, dom.Rect{X: 4, Y: 8 + float64(i), Width: size.Width - 6, Height: 1})
		}
	}
	// Picked files arrive the way a drag would deliver them.
	s.files = func(files []behavior.File) {
		m.doc.Dispatch(zone, &dom.Event{Type: dom.EventDragEnter})
		m.doc.Dispatch(zone, &dom.Event{Type: dom.EventDrop, Data: files})
	}
	s.focus = zone
	return s
}

func dropzoneRect(size dom.Size) dom.Rect {
	return dom.Rect{X: 2, Y: 3, Width: max(size.Width-4, 1), Height: 4}
}

func rejectionSummary(rejected []behavior.Rejection) string {
	parts := make([]string, 0, len(rejected))
	for _, r := range rejected {
		reasons := make([]string, 0, len(r.Reasons))
		for _, reason := range r.Reasons {
			reasons = append(reasons, string(reason))
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", r.File.Name, strings.Join(reasons, ", ")))
	}
	return "Rejected " + strings.Join(parts, "; ")
}

func itemByID(items []menu.Item, id string) menu.Item {
	for _, item := range items {
		if item.ID == id {
			return item
		}
	}
	return menu.Item{ID: id, Label: id}
}

func labelsFor(items []menu.Item, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, itemByID(items, id).Label)
	}
	return out
}

func openLabel(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
