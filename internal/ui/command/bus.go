package command

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/aria-primitives/internal/logging/events"
	"github.com/atomicstack/aria-primitives/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates a demo action invocation.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Context menu.Context
	Item    menu.Item
}

// Bus coordinates the execution of demo actions off the update loop.
type Bus struct {
	seq     int
	pending int
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Pending reports how many queued requests have not produced a message yet.
// It is only accurate when the caller reports completions with Done.
func (b *Bus) Pending() int { return b.pending }

// Done marks one request as delivered.
func (b *Bus) Done() {
	if b.pending > 0 {
		b.pending--
	}
}

// Execute wraps a demo action into a Bubble Tea command while emitting trace
// logs. Requests without an ID get a sequential one.
func (b *Bus) Execute(req Request) tea.Cmd {
	b.seq++
	if req.ID == "" {
		req.ID = "cmd-" + strconv.Itoa(b.seq)
	}
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	cmd := req.Handler(req.Context, req.Item)
	if cmd == nil {
		events.Command.NoOp(req.ID, req.Label)
		return nil
	}
	b.pending++
	return func() tea.Msg {
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
