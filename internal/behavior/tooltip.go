package behavior

import (
	"time"

	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/dismiss"
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

// TooltipOptions configures a Tooltip.
type TooltipOptions struct {
	OpenDelay    time.Duration
	CloseDelay   time.Duration
	Placement    anchor.Placement
	Offset       float64
	Flip         bool
	Strategy     anchor.Strategy
	Registry     *dismiss.Registry
	OnOpenChange func(open bool)
}

// DefaultTooltipOptions returns a tooltip above its trigger that opens after
// 700ms of hovering and closes 300ms after the pointer leaves.
func DefaultTooltipOptions() TooltipOptions {
	return TooltipOptions{
		OpenDelay:  700 * time.Millisecond,
		CloseDelay: 300 * time.Millisecond,
		Placement:  anchor.Placement{Side: anchor.SideTop, Align: anchor.AlignCenter},
		Flip:       true,
	}
}

// TooltipState is a snapshot of a Tooltip.
type TooltipState struct {
	Open        bool
	OpenPending bool
	Trigger     *dom.Element
	Content     *dom.Element
	Disabled    bool
}

// Tooltip shows a description next to its trigger on hover or focus.
type Tooltip struct {
	lifecycle
	opts            TooltipOptions
	open            bool
	disabled        bool
	pressed         bool
	trigger         *dom.Element
	content         *dom.Element
	openTimer       dom.TimerID
	closeTimer      dom.TimerID
	triggerRemovers []func()
	contentRemovers []func()
}

// NewTooltip returns a closed tooltip.
func NewTooltip(opts TooltipOptions) *Tooltip {
	return &Tooltip{lifecycle: newLifecycle("tooltip"), opts: opts}
}

// State returns a snapshot of the tooltip state.
func (t *Tooltip) State() TooltipState {
	return TooltipState{
		Open:        t.open,
		OpenPending: t.openTimer != 0,
		Trigger:     t.trigger,
		Content:     t.content,
		Disabled:    t.disabled,
	}
}

// IsOpen reports whether the tooltip is shown.
func (t *Tooltip) IsOpen() bool { return t.open }

func (t *Tooltip) document() *dom.Document { return documentOf(t.trigger, t.content) }

// SetTrigger attaches hover and focus listeners to el.
func (t *Tooltip) SetTrigger(el *dom.Element) {
	if t.destroyed || el == t.trigger {
		return
	}
	removeAll(&t.triggerRemovers)
	t.trigger = el
	if el != nil {
		t.triggerRemovers = append(t.triggerRemovers,
			el.AddEventListener(dom.EventPointerEnter, func(*dom.Event) { t.scheduleOpen() }, dom.ListenerOptions{}),
			el.AddEventListener(dom.EventPointerLeave, func(*dom.Event) { t.scheduleClose() }, dom.ListenerOptions{}),
			el.AddEventListener(dom.EventFocusIn, func(*dom.Event) {
				// Focus that follows a press is not keyboard focus.
				if t.pressed {
					t.pressed = false
					return
				}
				t.Open()
			}, dom.ListenerOptions{}),
			el.AddEventListener(dom.EventFocusOut, func(*dom.Event) { t.Close() }, dom.ListenerOptions{}),
			el.AddEventListener(dom.EventPointerDown, func(*dom.Event) {
				t.pressed = true
				t.Close()
			}, dom.ListenerOptions{}),
			el.AddEventListener(dom.EventPointerUp, func(*dom.Event) { t.pressed = false }, dom.ListenerOptions{}),
		)
	}
	t.reconfigure()
}

// SetContent sets the tooltip element. Hovering it keeps the tooltip open.
func (t *Tooltip) SetContent(el *dom.Element) {
	if t.destroyed || el == t.content {
		return
	}
	removeAll(&t.contentRemovers)
	t.content = el
	if el != nil {
		t.contentRemovers = append(t.contentRemovers,
			el.AddEventListener(dom.EventPointerEnter, func(*dom.Event) { t.cancelTimers() }, dom.ListenerOptions{}),
			el.AddEventListener(dom.EventPointerLeave, func(*dom.Event) { t.scheduleClose() }, dom.ListenerOptions{}),
		)
	}
	t.reconfigure()
}

// SetDisabled prevents opening and closes an open tooltip.
func (t *Tooltip) SetDisabled(disabled bool) {
	t.disabled = disabled
	if disabled {
		t.Close()
	}
}

// SetPlacement changes the placement, redoing setup when open.
func (t *Tooltip) SetPlacement(p anchor.Placement) {
	t.opts.Placement = p
	t.reconfigure()
}

// Open shows the tooltip immediately.
func (t *Tooltip) Open() {
	t.cancelTimers()
	if t.destroyed || t.disabled || t.open {
		return
	}
	t.open = true
	events.Widget.Open(t.kind, t.id)
	if t.opts.OnOpenChange != nil {
		t.opts.OnOpenChange(true)
	}
	t.schedule(t.document(), t.setup)
}

// Close hides the tooltip immediately.
func (t *Tooltip) Close() {
	t.cancelTimers()
	if !t.open {
		return
	}
	t.open = false
	t.release()
	events.Widget.Close(t.kind, t.id)
	if t.opts.OnOpenChange != nil {
		t.opts.OnOpenChange(false)
	}
}

// Destroy cancels pending timers, releases everything and detaches all
// listeners. Later calls do nothing.
func (t *Tooltip) Destroy() {
	t.cancelTimers()
	if !t.destroy() {
		return
	}
	removeAll(&t.triggerRemovers)
	removeAll(&t.contentRemovers)
	t.open = false
	t.trigger, t.content = nil, nil
}

func (t *Tooltip) scheduleOpen() {
	t.cancelClose()
	if t.open || t.openTimer != 0 || t.disabled || t.destroyed {
		return
	}
	doc := t.document()
	if doc == nil {
		return
	}
	t.openTimer = doc.SetTimeout(t.opts.OpenDelay, func() {
		t.openTimer = 0
		t.Open()
	})
}

func (t *Tooltip) scheduleClose() {
	t.cancelOpen()
	if !t.open || t.closeTimer != 0 {
		return
	}
	doc := t.document()
	if doc == nil {
		return
	}
	t.closeTimer = doc.SetTimeout(t.opts.CloseDelay, func() {
		t.closeTimer = 0
		t.Close()
	})
}

func (t *Tooltip) cancelOpen() {
	if t.openTimer != 0 {
		if doc := t.document(); doc != nil {
			doc.ClearTimeout(t.openTimer)
		}
		t.openTimer = 0
	}
}

func (t *Tooltip) cancelClose() {
	if t.closeTimer != 0 {
		if doc := t.document(); doc != nil {
			doc.ClearTimeout(t.closeTimer)
		}
		t.closeTimer = 0
	}
}

func (t *Tooltip) cancelTimers() {
	t.cancelOpen()
	t.cancelClose()
}

func (t *Tooltip) reconfigure() {
	if !t.open || t.destroyed {
		return
	}
	t.release()
	t.schedule(t.document(), t.setup)
}

func (t *Tooltip) setup() {
	if !t.open || t.destroyed {
		return
	}
	if t.trigger == nil || t.content == nil || !t.content.IsConnected() {
		return
	}
	pos := anchor.New(anchor.Options{
		Anchor:     t.trigger,
		Floating:   t.content,
		Placement:  t.opts.Placement,
		Offset:     t.opts.Offset,
		Flip:       t.opts.Flip,
		Strategy:   t.opts.Strategy,
		AutoUpdate: true,
	})
	pos.Update()
	t.scope.Acquire("anchor", pos.Destroy)

	layer := dismiss.New(dismiss.Options{
		Container:           t.content,
		Exclude:             []*dom.Element{t.trigger},
		OnDismiss:           func(dismiss.Reason) { t.Close() },
		CloseOnEscape:       true,
		CloseOnOutsideClick: true,
		Registry:            t.opts.Registry,
	})
	layer.Activate()
	t.scope.Acquire("dismiss", layer.Deactivate)
	events.Widget.Setup(t.kind, t.id, t.scope.Len())
}

func (t *Tooltip) contentID() string { return t.id + "-content" }

// TriggerProps returns attributes for the described element.
func (t *Tooltip) TriggerProps() Props {
	describedBy := ""
	if t.open {
		describedBy = t.contentID()
	}
	state := "closed"
	if t.open {
		state = "delayed-open"
	}
	return Props{
		"aria-describedby": describedBy,
		"data-state":       state,
	}
}

// ContentProps returns attributes for the tooltip element.
func (t *Tooltip) ContentProps() Props {
	return Props{
		"id":         t.contentID(),
		"role":       "tooltip",
		"data-state": openState(t.open),
		"hidden":     flag("hidden", !t.open),
	}
}

func removeAll(removers *[]func()) {
	for _, remove := range *removers {
		remove()
	}
	*removers = nil
}
