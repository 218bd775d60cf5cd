package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// prompt is a one-line text entry shown in place of the footer. While it is
// open every key goes to it rather than the document.
type prompt struct {
	label string
	input textinput.Model
	hooks promptHooks
}

// promptHooks receive the prompt's value as it changes, on Enter and on Esc.
type promptHooks struct {
	change func(string)
	submit func(string)
	cancel func()
}

func newPrompt(label, placeholder, initial string) *prompt {
	ti := textinput.New()
	ti.Prompt = label + ": "
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Prompt != nil {
		ti.PromptStyle = *styles.Prompt
	}
	if styles.PromptPlaceholder != nil {
		ti.PlaceholderStyle = *styles.PromptPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Focus()
	if initial != "" {
		ti.SetValue(initial)
		ti.CursorEnd()
	}
	return &prompt{label: label, input: ti}
}

func (p *prompt) Value() string { return p.input.Value() }

func (p *prompt) View() string { return p.input.View() }

// Update feeds a key to the input. It reports whether the prompt finished
// by Enter (done) or Esc (cancel).
func (p *prompt) Update(msg tea.KeyMsg) (tea.Cmd, bool, bool) {
	switch msg.String() {
	case "ctrl+u":
		if p.input.Value() != "" {
			p.input.SetValue("")
			p.input.CursorStart()
			p.changed()
		}
		return nil, false, false
	}
	switch msg.Type {
	case tea.KeyEsc:
		return nil, false, true
	case tea.KeyEnter:
		return nil, true, false
	}
	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.changed()
	}
	return cmd, false, false
}

func (p *prompt) changed() {
	if p.hooks.change != nil {
		p.hooks.change(p.input.Value())
	}
}

// startPrompt opens p with hooks, replacing any prompt already open.
func (m *Model) startPrompt(p *prompt, hooks promptHooks) {
	p.hooks = hooks
	m.prompt = p
	m.errMsg = ""
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	p := m.prompt
	cmd, done, cancel := p.Update(msg)
	switch {
	case cancel:
		m.prompt = nil
		if p.hooks.cancel != nil {
			p.hooks.cancel()
		}
	case done:
		m.prompt = nil
		if p.hooks.submit != nil {
			p.hooks.submit(p.Value())
		}
	}
	return cmd
}
