package ui

import (
	"fmt"

	"github.com/atomicstack/aria-primitives/internal/behavior"
	"github.com/atomicstack/aria-primitives/internal/logging/events"
	"github.com/atomicstack/aria-primitives/internal/menu"
	"github.com/atomicstack/aria-primitives/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// runAction queues the registered "demo:name" action on the command bus.
func (m *Model) runAction(demo, name string, ctx menu.Context, item menu.Item) {
	handler, ok := m.registry.ActionFor(demo, name)
	if !ok {
		events.Action.Error(fmt.Errorf("no action %s:%s", demo, name))
		return
	}
	m.queue(m.bus.Execute(command.Request{
		Label:   demo + ":" + name,
		Handler: handler,
		Context: ctx,
		Item:    item,
	}))
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.bus.Done()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}

func (m *Model) handleFilesPickedMsg(msg tea.Msg) tea.Cmd {
	picked, ok := msg.(menu.FilesPicked)
	if !ok {
		return nil
	}
	m.bus.Done()
	if picked.Err != nil {
		m.errMsg = picked.Err.Error()
		m.forceClearInfo()
		events.Action.Error(picked.Err)
		return nil
	}
	current := m.currentScene()
	if current == nil || current.files == nil {
		return nil
	}
	files := make([]behavior.File, 0, len(picked.Files))
	for _, f := range picked.Files {
		files = append(files, behavior.File{Name: f.Name, Size: f.Size, Type: f.Type})
	}
	m.errMsg = ""
	current.files(files)
	info := fmt.Sprintf("Picked %d file(s)", len(files))
	if m.errMsg == "" {
		m.setInfo(info)
	}
	events.Action.Success(info)
	return nil
}
