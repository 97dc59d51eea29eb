// Package command dispatches named menu actions to the handlers the
// controller registered for them.
package command

import (
	"fmt"

	"github.com/atomicstack/trackmoney/internal/logging/events"
	"github.com/atomicstack/trackmoney/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler performs an action and returns the follow-up command, if any.
type Handler func() tea.Cmd

// Request encapsulates an action invocation.
type Request struct {
	Action menu.Action
	Target int
}

// Bus maps actions to handlers. Handlers run synchronously on the caller's
// goroutine.
type Bus struct {
	handlers map[menu.Action]Handler
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{handlers: make(map[menu.Action]Handler)}
}

// Register binds h to action, replacing any previous handler.
func (b *Bus) Register(action menu.Action, h Handler) {
	b.handlers[action] = h
}

// Execute runs the handler bound to req.Action.
func (b *Bus) Execute(req Request) (tea.Cmd, error) {
	events.Action.Invoke(string(req.Action), req.Target)
	h, ok := b.handlers[req.Action]
	if !ok || h == nil {
		err := fmt.Errorf("no handler for action %q", req.Action)
		events.Action.Error(err)
		return nil, err
	}
	return h(), nil
}
