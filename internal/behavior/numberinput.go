package behavior

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

// NumberInputOptions configures a NumberInput. Min and Max default to
// unbounded; Precision is the number of decimals values are rounded to.
type NumberInputOptions struct {
	Value         float64
	Min           float64
	Max           float64
	Step          float64
	LargeStep     float64
	Precision     int
	SpinDelay     time.Duration
	SpinInterval  time.Duration
	Disabled      bool
	ReadOnly      bool
	OnValueChange func(value float64)
}

// DefaultNumberInputOptions returns an unbounded integer input stepping by 1
// and 10.
func DefaultNumberInputOptions() NumberInputOptions {
	return NumberInputOptions{
		Min:          math.Inf(-1),
		Max:          math.Inf(1),
		Step:         1,
		LargeStep:    10,
		SpinDelay:    defaultSpinDelay,
		SpinInterval: defaultSpinInterval,
	}
}

const (
	defaultSpinDelay    = 400 * time.Millisecond
	defaultSpinInterval = 60 * time.Millisecond
)

// NumberInputState is a snapshot of a NumberInput.
type NumberInputState struct {
	Value    float64
	Text     string
	Editing  bool
	Spinning int
	Disabled bool
	ReadOnly bool
}

// NumberInput is a spinbutton: a clamped numeric value edited by keys,
// stepper buttons with press-and-hold repeat, or free text committed on blur.
type NumberInput struct {
	lifecycle
	opts      NumberInputOptions
	value     float64
	text      string
	editing   bool
	input     *dom.Element
	increment *dom.Element
	decrement *dom.Element
	spinDir   int
	spinTimer dom.TimerID
	removers  []func()
	buttons   []func()
}

// NewNumberInput returns an input holding opts.Value clamped to the range.
func NewNumberInput(opts NumberInputOptions) *NumberInput {
	if opts.Step <= 0 {
		opts.Step = 1
	}
	if opts.LargeStep <= 0 {
		opts.LargeStep = opts.Step * 10
	}
	if opts.SpinDelay <= 0 {
		opts.SpinDelay = defaultSpinDelay
	}
	if opts.SpinInterval <= 0 {
		opts.SpinInterval = defaultSpinInterval
	}
	if opts.Max < opts.Min {
		opts.Min, opts.Max = opts.Max, opts.Min
	}
	n := &NumberInput{lifecycle: newLifecycle("numberinput"), opts: opts}
	n.value = n.normalize(opts.Value)
	n.text = n.format(n.value)
	return n
}

// State returns a snapshot of the input state.
func (n *NumberInput) State() NumberInputState {
	return NumberInputState{
		Value:    n.value,
		Text:     n.text,
		Editing:  n.editing,
		Spinning: n.spinDir,
		Disabled: n.opts.Disabled,
		ReadOnly: n.opts.ReadOnly,
	}
}

// Value returns the committed value.
func (n *NumberInput) Value() float64 { return n.value }

// Text returns the text shown in the input, which differs from the formatted
// value while the user is editing.
func (n *NumberInput) Text() string { return n.text }

// SetInput wires keyboard, input and blur handling on el.
func (n *NumberInput) SetInput(el *dom.Element) {
	if n.destroyed || el == n.input {
		return
	}
	removeAll(&n.removers)
	n.input = el
	if el == nil {
		return
	}
	n.removers = append(n.removers,
		el.AddEventListener(dom.EventKeyDown, n.handleKeyDown, dom.ListenerOptions{}),
		el.AddEventListener(dom.EventInput, func(ev *dom.Event) {
			if s, ok := ev.Data.(string); ok {
				n.SetText(s)
			}
		}, dom.ListenerOptions{}),
		el.AddEventListener(dom.EventFocusOut, func(*dom.Event) { n.Commit() }, dom.ListenerOptions{}),
	)
}

// SetButtons wires press-and-hold stepping on the increment and decrement
// elements. Either may be nil.
func (n *NumberInput) SetButtons(increment, decrement *dom.Element) {
	if n.destroyed {
		return
	}
	removeAll(&n.buttons)
	n.StopSpin()
	n.increment, n.decrement = increment, decrement
	wire := func(el *dom.Element, dir int) {
		if el == nil {
			return
		}
		n.buttons = append(n.buttons,
			el.AddEventListener(dom.EventPointerDown, func(ev *dom.Event) {
				// Keep focus on the input while stepping.
				ev.PreventDefault()
				n.StartSpin(dir)
			}, dom.ListenerOptions{}),
			el.AddEventListener(dom.EventPointerUp, func(*dom.Event) { n.StopSpin() }, dom.ListenerOptions{}),
			el.AddEventListener(dom.EventPointerLeave, func(*dom.Event) { n.StopSpin() }, dom.ListenerOptions{}),
		)
	}
	wire(increment, 1)
	wire(decrement, -1)
}

// SetDisabled toggles the disabled state, stopping any spin.
func (n *NumberInput) SetDisabled(disabled bool) {
	n.opts.Disabled = disabled
	if disabled {
		n.StopSpin()
	}
}

// SetRange changes the bounds and re-clamps the value.
func (n *NumberInput) SetRange(lo, hi float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	n.opts.Min, n.opts.Max = lo, hi
	n.SetValue(n.value)
}

// Increment steps the value up by Step.
func (n *NumberInput) Increment() { n.stepBy(n.opts.Step) }

// Decrement steps the value down by Step.
func (n *NumberInput) Decrement() { n.stepBy(-n.opts.Step) }

// IncrementLarge steps the value up by LargeStep.
func (n *NumberInput) IncrementLarge() { n.stepBy(n.opts.LargeStep) }

// DecrementLarge steps the value down by LargeStep.
func (n *NumberInput) DecrementLarge() { n.stepBy(-n.opts.LargeStep) }

func (n *NumberInput) stepBy(delta float64) {
	if !n.editable() {
		return
	}
	if n.editing {
		n.Commit()
	}
	n.SetValue(n.value + delta)
}

func (n *NumberInput) editable() bool {
	return !n.destroyed && !n.opts.Disabled && !n.opts.ReadOnly
}

// SetValue clamps and rounds v, updates the text and reports a change.
func (n *NumberInput) SetValue(v float64) {
	if n.destroyed || math.IsNaN(v) {
		return
	}
	v = n.normalize(v)
	n.editing = false
	n.text = n.format(v)
	if v == n.value {
		return
	}
	n.value = v
	events.Widget.Value(n.kind, n.id, v)
	if n.opts.OnValueChange != nil {
		n.opts.OnValueChange(v)
	}
}

// SetText replaces the in-progress text without committing it.
func (n *NumberInput) SetText(s string) {
	if !n.editable() {
		return
	}
	n.text = s
	n.editing = true
}

// Commit parses the edited text. Text that is not a number reverts to the
// last committed value.
func (n *NumberInput) Commit() {
	if !n.editing || n.destroyed {
		return
	}
	n.editing = false
	v, err := strconv.ParseFloat(strings.TrimSpace(n.text), 64)
	if err != nil || math.IsNaN(v) {
		n.text = n.format(n.value)
		return
	}
	n.SetValue(v)
}

// StartSpin steps once in dir, then repeats after SpinDelay every
// SpinInterval until StopSpin or a bound is reached.
func (n *NumberInput) StartSpin(dir int) {
	n.StopSpin()
	if dir == 0 || !n.editable() {
		return
	}
	n.spinDir = dir
	n.spinOnce()
	n.scheduleSpin(n.opts.SpinDelay)
}

// StopSpin cancels a running spin.
func (n *NumberInput) StopSpin() {
	if n.spinTimer != 0 {
		if doc := n.document(); doc != nil {
			doc.ClearTimeout(n.spinTimer)
		}
		n.spinTimer = 0
	}
	n.spinDir = 0
}

func (n *NumberInput) spinOnce() {
	if n.spinDir > 0 {
		n.Increment()
	} else {
		n.Decrement()
	}
}

func (n *NumberInput) scheduleSpin(delay time.Duration) {
	doc := n.document()
	if doc == nil || n.atBound(n.spinDir) {
		n.spinDir = 0
		return
	}
	n.spinTimer = doc.SetTimeout(delay, func() {
		n.spinTimer = 0
		if n.spinDir == 0 {
			return
		}
		n.spinOnce()
		n.scheduleSpin(n.opts.SpinInterval)
	})
}

func (n *NumberInput) atBound(dir int) bool {
	return (dir > 0 && n.value >= n.opts.Max) || (dir < 0 && n.value <= n.opts.Min)
}

func (n *NumberInput) document() *dom.Document {
	return documentOf(n.input, n.increment, n.decrement)
}

// Destroy stops spinning and detaches every listener. Later calls do
// nothing.
func (n *NumberInput) Destroy() {
	if n.destroyed {
		return
	}
	n.StopSpin()
	n.destroy()
	removeAll(&n.removers)
	removeAll(&n.buttons)
	n.input, n.increment, n.decrement = nil, nil, nil
}

func (n *NumberInput) handleKeyDown(ev *dom.Event) {
	if ev.HasModifier() || !n.editable() {
		return
	}
	switch ev.Key {
	case dom.KeyArrowUp:
		n.Increment()
	case dom.KeyArrowDown:
		n.Decrement()
	case dom.KeyPageUp:
		n.IncrementLarge()
	case dom.KeyPageDown:
		n.DecrementLarge()
	case dom.KeyHome:
		if math.IsInf(n.opts.Min, -1) {
			return
		}
		n.SetValue(n.opts.Min)
	case dom.KeyEnd:
		if math.IsInf(n.opts.Max, 1) {
			return
		}
		n.SetValue(n.opts.Max)
	case dom.KeyEnter:
		n.Commit()
	default:
		return
	}
	ev.PreventDefault()
}

func (n *NumberInput) normalize(v float64) float64 {
	if n.opts.Precision >= 0 {
		scale := math.Pow(10, float64(n.opts.Precision))
		v = math.Round(v*scale) / scale
	}
	return math.Max(n.opts.Min, math.Min(n.opts.Max, v))
}

func (n *NumberInput) format(v float64) string {
	prec := n.opts.Precision
	if prec < 0 {
		prec = -1
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func (n *NumberInput) inputID() string { return n.id + "-input" }

// InputProps returns attributes for the text input.
func (n *NumberInput) InputProps() Props {
	p := Props{
		"id":             n.inputID(),
		"role":           "spinbutton",
		"inputmode":      "decimal",
		"value":          n.text,
		"aria-valuenow":  n.format(n.value),
		"aria-valuetext": n.text,
		"aria-valuemin":  "",
		"aria-valuemax":  "",
		"aria-disabled":  trueOrAbsent(n.opts.Disabled),
		"aria-readonly":  trueOrAbsent(n.opts.ReadOnly),
	}
	if !math.IsInf(n.opts.Min, 0) {
		p["aria-valuemin"] = n.format(n.opts.Min)
	}
	if !math.IsInf(n.opts.Max, 0) {
		p["aria-valuemax"] = n.format(n.opts.Max)
	}
	return p
}

// IncrementProps returns attributes for the step-up button.
func (n *NumberInput) IncrementProps() Props {
	return n.stepperProps("Increase", n.atBound(1))
}

// DecrementProps returns attributes for the step-down button.
func (n *NumberInput) DecrementProps() Props {
	return n.stepperProps("Decrease", n.atBound(-1))
}

func (n *NumberInput) stepperProps(label string, atBound bool) Props {
	disabled := atBound || n.opts.Disabled || n.opts.ReadOnly
	return Props{
		"aria-label":    label,
		"aria-controls": n.inputID(),
		"tabindex":      "-1",
		"disabled":      flag("disabled", disabled),
	}
}
