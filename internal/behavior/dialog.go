package behavior

import (
	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/dismiss"
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/focustrap"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

// DialogOptions configures a Dialog.
type DialogOptions struct {
	// Role is "dialog" or "alertdialog".
	Role                string
	Modal               bool
	CloseOnEscape       bool
	CloseOnOutsideClick bool
	// InitialFocus overrides the first focusable element.
	InitialFocus *dom.Element
	Registry     *dismiss.Registry
	TrapStack    *focustrap.Stack
	OnOpenChange func(open bool)
}

// DefaultDialogOptions returns a modal dialog that closes on Escape and on
// outside presses.
func DefaultDialogOptions() DialogOptions {
	return DialogOptions{Role: "dialog", Modal: true, CloseOnEscape: true, CloseOnOutsideClick: true}
}

// AlertDialogOptions returns a modal alert dialog, which ignores outside
// presses.
func AlertDialogOptions() DialogOptions {
	opts := DefaultDialogOptions()
	opts.Role = "alertdialog"
	opts.CloseOnOutsideClick = false
	return opts
}

// DialogState is a snapshot of a Dialog.
type DialogState struct {
	Open     bool
	Modal    bool
	Trigger  *dom.Element
	Content  *dom.Element
	Disabled bool
}

// Dialog is a window over the page. Modal dialogs trap focus.
type Dialog struct {
	lifecycle
	opts            DialogOptions
	open            bool
	disabled        bool
	trigger         *dom.Element
	content         *dom.Element
	trap            *focustrap.Trap
	triggerRemovers []func()
}

// NewDialog returns a closed dialog.
func NewDialog(opts DialogOptions) *Dialog {
	if opts.Role == "" {
		opts.Role = "dialog"
	}
	return &Dialog{lifecycle: newLifecycle(opts.Role), opts: opts}
}

// State returns a snapshot of the dialog state.
func (d *Dialog) State() DialogState {
	return DialogState{Open: d.open, Modal: d.opts.Modal, Trigger: d.trigger, Content: d.content, Disabled: d.disabled}
}

// IsOpen reports whether the dialog is open.
func (d *Dialog) IsOpen() bool { return d.open }

// Trap returns the live focus trap of a modal dialog, or nil.
func (d *Dialog) Trap() *focustrap.Trap { return d.trap }

// SetTrigger sets the element that opens the dialog on click and receives
// focus back when it closes.
func (d *Dialog) SetTrigger(el *dom.Element) {
	if d.destroyed || el == d.trigger {
		return
	}
	removeAll(&d.triggerRemovers)
	d.trigger = el
	if el != nil {
		d.triggerRemovers = append(d.triggerRemovers,
			el.AddEventListener(dom.EventClick, func(*dom.Event) { d.Open() }, dom.ListenerOptions{}),
		)
	}
	d.reconfigure()
}

// SetContent sets the dialog element.
func (d *Dialog) SetContent(el *dom.Element) {
	if d.destroyed || el == d.content {
		return
	}
	d.content = el
	d.reconfigure()
}

// SetModal switches between modal and non-modal, redoing setup when open.
func (d *Dialog) SetModal(modal bool) {
	if d.opts.Modal == modal {
		return
	}
	d.opts.Modal = modal
	d.reconfigure()
}

// SetDisabled prevents opening and closes an open dialog.
func (d *Dialog) SetDisabled(disabled bool) {
	d.disabled = disabled
	if disabled {
		d.Close()
	}
}

// Open opens the dialog. Setup runs on the next microtask.
func (d *Dialog) Open() {
	if d.destroyed || d.disabled || d.open {
		return
	}
	d.open = true
	events.Widget.Open(d.kind, d.id)
	if d.opts.OnOpenChange != nil {
		d.opts.OnOpenChange(true)
	}
	d.schedule(documentOf(d.content, d.trigger), d.setup)
}

// Close closes the dialog, releasing the trap and dismiss layer in reverse
// order.
func (d *Dialog) Close() {
	if !d.open {
		return
	}
	d.open = false
	d.release()
	events.Widget.Close(d.kind, d.id)
	if d.opts.OnOpenChange != nil {
		d.opts.OnOpenChange(false)
	}
}

// Toggle flips the open state.
func (d *Dialog) Toggle() {
	if d.open {
		d.Close()
		return
	}
	d.Open()
}

// Destroy releases everything and detaches from the trigger. Later calls do
// nothing.
func (d *Dialog) Destroy() {
	if !d.destroy() {
		return
	}
	removeAll(&d.triggerRemovers)
	d.open = false
	d.trigger, d.content = nil, nil
}

func (d *Dialog) reconfigure() {
	if !d.open || d.destroyed {
		return
	}
	d.release()
	d.schedule(documentOf(d.content, d.trigger), d.setup)
}

func (d *Dialog) setup() {
	if !d.open || d.destroyed {
		return
	}
	content := d.content
	if content == nil || !content.IsConnected() {
		return
	}

	var exclude []*dom.Element
	if d.trigger != nil {
		exclude = append(exclude, d.trigger)
	}
	layer := dismiss.New(dismiss.Options{
		Container:           content,
		Exclude:             exclude,
		OnDismiss:           func(dismiss.Reason) { d.Close() },
		CloseOnEscape:       d.opts.CloseOnEscape,
		CloseOnOutsideClick: d.opts.CloseOnOutsideClick,
		Registry:            d.opts.Registry,
	})
	layer.Activate()
	d.scope.Acquire("dismiss", layer.Deactivate)

	if d.opts.Modal {
		ret := focustrap.ReturnPrevious
		if d.trigger != nil {
			ret = focustrap.ReturnTo(d.trigger)
		}
		trap := focustrap.New(focustrap.Options{
			Container:     content,
			InitialFocus:  d.opts.InitialFocus,
			FallbackFocus: content,
			ReturnFocus:   ret,
			Stack:         d.opts.TrapStack,
		})
		trap.Activate()
		d.trap = trap
		d.scope.Acquire("focustrap", func() {
			trap.Deactivate()
			d.trap = nil
		})
	} else {
		switch {
		case d.opts.InitialFocus != nil && d.opts.InitialFocus.Focus():
		default:
			if set := dom.Tabbable(content, nil); len(set) > 0 {
				set[0].Focus()
			} else {
				content.Focus()
			}
		}
		trigger := d.trigger
		d.scope.Acquire("focus", func() {
			if trigger != nil && focusWithin(content) {
				trigger.Focus()
			}
		})
	}
	events.Widget.Setup(d.kind, d.id, d.scope.Len())
}

func (d *Dialog) titleID() string { return d.id + "-title" }

func (d *Dialog) descriptionID() string { return d.id + "-description" }

func (d *Dialog) contentID() string { return d.id + "-content" }

// TriggerProps returns attributes for the opening button.
func (d *Dialog) TriggerProps() Props {
	return Props{
		"type":          "button",
		"aria-haspopup": "dialog",
		"aria-expanded": boolAttr(d.open),
		"aria-controls": d.contentID(),
		"data-state":    openState(d.open),
		"disabled":      flag("disabled", d.disabled),
	}
}

// ContentProps returns attributes for the dialog element.
func (d *Dialog) ContentProps() Props {
	return Props{
		"id":               d.contentID(),
		"role":             d.opts.Role,
		"tabindex":         "-1",
		"aria-modal":       trueOrAbsent(d.opts.Modal),
		"aria-labelledby":  d.titleID(),
		"aria-describedby": d.descriptionID(),
		"data-state":       openState(d.open),
		"hidden":           flag("hidden", !d.open),
	}
}

// OverlayProps returns attributes for the backdrop of a modal dialog.
func (d *Dialog) OverlayProps() Props {
	return Props{
		"aria-hidden": "true",
		"data-state":  openState(d.open),
		"hidden":      flag("hidden", !d.open || !d.opts.Modal),
	}
}

// TitleProps returns attributes for the heading that labels the dialog.
func (d *Dialog) TitleProps() Props { return Props{"id": d.titleID()} }

// DescriptionProps returns attributes for the dialog description.
func (d *Dialog) DescriptionProps() Props { return Props{"id": d.descriptionID()} }

// CloseProps returns attributes for a close button.
func (d *Dialog) CloseProps() Props {
	return Props{"type": "button", "aria-label": "Close"}
}

// SheetOptions configures a Sheet.
type SheetOptions struct {
	DialogOptions
	Side anchor.Side
}

// DefaultSheetOptions returns a modal sheet sliding in from the right.
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{DialogOptions: DefaultDialogOptions(), Side: anchor.SideRight}
}

// Sheet is a dialog attached to one edge of the viewport.
type Sheet struct {
	*Dialog
	side anchor.Side
}

// NewSheet returns a closed sheet.
func NewSheet(opts SheetOptions) *Sheet {
	side := opts.Side
	if side == "" {
		side = anchor.SideRight
	}
	return &Sheet{Dialog: NewDialog(opts.DialogOptions), side: side}
}

// Side returns the edge the sheet is attached to.
func (s *Sheet) Side() anchor.Side { return s.side }

// SetSide moves the sheet to another edge.
func (s *Sheet) SetSide(side anchor.Side) { s.side = side }

// ContentProps returns the dialog attributes plus the sheet side.
func (s *Sheet) ContentProps() Props {
	return s.Dialog.ContentProps().Merge(Props{"data-side": string(s.side)})
}
