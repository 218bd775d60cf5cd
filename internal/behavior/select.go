package behavior

import (
	"strings"
	"time"

	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/dismiss"
	"github.com/atomicstack/aria-primitives/internal/dom"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
)

var optionSelector = dom.MustCompile("[role=option]")

// filteredAttr marks options hidden by the filter, so clearing it only
// reveals what it hid.
const filteredAttr = "data-filtered"

// SelectOptions configures a Select.
type SelectOptions struct {
	Placement        anchor.Placement
	Offset           float64
	Flip             bool
	Loop             bool
	Multiple         bool
	Values           []string
	Strategy         anchor.Strategy
	TypeAheadTimeout time.Duration
	Registry         *dismiss.Registry
	OnOpenChange     func(open bool)
	OnValueChange    func(values []string)
	OnHighlight      func(value string)
}

// DefaultSelectOptions returns a single-choice listbox below its trigger.
func DefaultSelectOptions() SelectOptions {
	return SelectOptions{
		Placement: anchor.Placement{Side: anchor.SideBottom, Align: anchor.AlignStart},
		Flip:      true,
		Loop:      false,
	}
}

// SelectState is a snapshot of a Select.
type SelectState struct {
	Open        bool
	Highlighted string
	Values      []string
	Filter      string
	Multiple    bool
	Trigger     *dom.Element
	Content     *dom.Element
	Disabled    bool
}

// Select is a combobox trigger with a listbox of options.
type Select struct {
	popup
	opts   SelectOptions
	values []string
	filter string
}

// NewSelect returns a closed select holding opts.Values.
func NewSelect(opts SelectOptions) *Select {
	s := &Select{opts: opts}
	if len(opts.Values) > 0 {
		s.values = append([]string(nil), opts.Values...)
		if !opts.Multiple {
			s.values = s.values[:1]
		}
	}
	s.popup = newPopup("select", optionSelector, popupConfig{
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
	s.activate = func(item *dom.Element) { s.Select(valueOf(item)) }
	s.beforeOpen = func() {
		if len(s.values) > 0 {
			s.highlighted = s.values[0]
		}
	}
	s.afterClose = func() {
		if s.filter != "" {
			s.SetFilter("")
		}
	}
	return s
}

// State returns a snapshot of the select state.
func (s *Select) State() SelectState {
	return SelectState{
		Open:        s.open,
		Highlighted: s.highlighted,
		Values:      s.Values(),
		Filter:      s.filter,
		Multiple:    s.opts.Multiple,
		Trigger:     s.trigger,
		Content:     s.content,
		Disabled:    s.disabled,
	}
}

// Values returns the selected values in selection order.
func (s *Select) Values() []string {
	return append([]string(nil), s.values...)
}

// IsSelected reports whether value is selected.
func (s *Select) IsSelected(value string) bool {
	for _, v := range s.values {
		if v == value {
			return true
		}
	}
	return false
}

// Select chooses value. Multiple selects toggle it; single selects replace
// the selection and close. Values of disabled options are ignored.
func (s *Select) Select(value string) {
	if s.destroyed || s.disabled {
		return
	}
	for _, el := range s.Items() {
		if valueOf(el) == value && el.Inert() {
			return
		}
	}
	if s.opts.Multiple {
		if s.IsSelected(value) {
			s.removeValue(value)
		} else {
			s.values = append(s.values, value)
		}
	} else {
		s.values = []string{value}
	}
	events.Widget.Select(s.kind, s.id, value)
	s.notify()
	if !s.opts.Multiple {
		s.Close()
	}
}

// Clear empties the selection.
func (s *Select) Clear() {
	if s.destroyed || len(s.values) == 0 {
		return
	}
	s.values = nil
	s.notify()
}

func (s *Select) removeValue(value string) {
	out := s.values[:0]
	for _, v := range s.values {
		if v != value {
			out = append(out, v)
		}
	}
	s.values = out
}

func (s *Select) notify() {
	if s.opts.OnValueChange != nil {
		s.opts.OnValueChange(s.Values())
	}
}

// Filter returns the current filter query.
func (s *Select) Filter() string { return s.filter }

// SetFilter hides options that do not match query. When the highlighted
// option is hidden the highlight moves to the best remaining match.
func (s *Select) SetFilter(query string) {
	if s.destroyed || s.content == nil {
		s.filter = query
		return
	}
	s.filter = query
	all := s.content.QuerySelectorAll(optionSelector)
	options := make([]filterOption, len(all))
	for i, el := range all {
		options[i] = filterOption{Label: strings.TrimSpace(el.TextContent()), Value: valueOf(el)}
	}
	keep := make(map[int]bool, len(all))
	for _, i := range matchOptions(options, query) {
		keep[i] = true
	}
	var visible []filterOption
	var visibleEls []*dom.Element
	for i, el := range all {
		switch {
		case keep[i]:
			if el.HasAttr(filteredAttr) {
				el.RemoveAttr(filteredAttr)
				el.RemoveAttr("hidden")
			}
			visible = append(visible, options[i])
			visibleEls = append(visibleEls, el)
		case !el.HasAttr("hidden"):
			el.SetAttr(filteredAttr, "true")
			el.SetAttr("hidden", "hidden")
		}
	}
	if strings.TrimSpace(query) == "" {
		events.Filter.Cleared(s.id)
	} else {
		events.Filter.Apply(s.id, query, len(visible))
	}

	if s.rv == nil {
		return
	}
	cur := s.highlightedItem()
	if len(visible) == 0 || (cur != nil && cur.IsRendered() && strings.TrimSpace(query) == "") {
		s.rv.Sync(cur)
		return
	}
	best := visibleEls[bestMatchIndex(visible, query)]
	for i, el := range s.rv.Items() {
		if el == best {
			s.rv.SetFocusedIndex(i)
			return
		}
	}
}

// TriggerProps returns attributes for the combobox trigger.
func (s *Select) TriggerProps() Props {
	return Props{
		"id":               s.triggerID(),
		"role":             "combobox",
		"type":             "button",
		"aria-haspopup":    "listbox",
		"aria-expanded":    boolAttr(s.open),
		"aria-controls":    s.contentID(),
		"data-state":       openState(s.open),
		"data-placeholder": trueOrAbsent(len(s.values) == 0),
		"disabled":         flag("disabled", s.disabled),
	}
}

// ContentProps returns attributes for the listbox.
func (s *Select) ContentProps() Props {
	return Props{
		"id":                   s.contentID(),
		"role":                 "listbox",
		"tabindex":             "-1",
		"aria-labelledby":      s.triggerID(),
		"aria-multiselectable": trueOrAbsent(s.opts.Multiple),
		"data-state":           openState(s.open),
		"hidden":               flag("hidden", !s.open),
	}
}

// OptionProps returns attributes for one option.
func (s *Select) OptionProps(value string, disabled bool) Props {
	selected := s.IsSelected(value)
	state := "unchecked"
	if selected {
		state = "checked"
	}
	return Props{
		"role":             "option",
		"data-value":       value,
		"aria-selected":    boolAttr(selected),
		"aria-disabled":    trueOrAbsent(disabled),
		"data-state":       state,
		"data-highlighted": trueOrAbsent(s.open && value == s.highlighted),
	}
}
