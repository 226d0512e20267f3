package command

import (
	"context"
	"fmt"

	"github.com/atomicstack/takeoff/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler performs an action off the update loop and reports back with a
// message.
type Handler func(ctx context.Context) tea.Msg

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Bus coordinates the execution of background actions such as exports.
type Bus struct {
	ctx context.Context
}

// New initialises a command bus whose actions observe ctx.
func New(ctx context.Context) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		if err := b.ctx.Err(); err != nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler(b.ctx)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
