package command

import (
	"testing"

	"github.com/atomicstack/aria-primitives/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestExecuteRunsHandlerLazily(t *testing.T) {
	bus := New()
	calls := 0
	handler := func(ctx menu.Context, item menu.Item) tea.Cmd {
		calls++
		return func() tea.Msg { return menu.ActionResult{Info: ctx.Demo + ":" + item.ID} }
	}
	cmd := bus.Execute(Request{Label: "pick", Handler: handler, Context: menu.Context{Demo: "menu"}, Item: menu.Item{ID: "apple"}})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if calls != 1 {
		t.Fatalf("expected handler to build the command once, got %d", calls)
	}
	if bus.Pending() != 1 {
		t.Fatalf("expected one pending request")
	}
	msg := cmd()
	if res, ok := msg.(menu.ActionResult); !ok || res.Info != "menu:apple" {
		t.Fatalf("unexpected message %#v", msg)
	}
	bus.Done()
	bus.Done()
	if bus.Pending() != 0 {
		t.Fatalf("expected pending to stop at zero")
	}
}

func TestExecuteSkipsMissingHandlers(t *testing.T) {
	bus := New()
	if cmd := bus.Execute(Request{Label: "none"}); cmd != nil {
		t.Fatalf("expected nil command without handler")
	}
	noop := func(menu.Context, menu.Item) tea.Cmd { return nil }
	if cmd := bus.Execute(Request{Label: "noop", Handler: noop}); cmd != nil {
		t.Fatalf("expected nil command for no-op handler")
	}
	if bus.Pending() != 0 {
		t.Fatalf("expected nothing pending")
	}
}
