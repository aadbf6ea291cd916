package eventfsm

import (
	"log/slog"
)

// Context is passed to all entry and exit actions and provides access to FSM operations
type Context[S, E comparable] struct {
	FSM    *Machine[S, E]
	Data   any // User-provided application data
	Logger *slog.Logger

	event E
	from  S
	to    S
}

// CurrentState returns the current state. During an exit action this is
// still the state being left; during an entry action it is the new state.
func (c *Context[S, E]) CurrentState() S {
	return c.FSM.CurrentState()
}

// Event returns the event that caused the transition
func (c *Context[S, E]) Event() E {
	return c.event
}

// From returns the state the transition started in
func (c *Context[S, E]) From() S {
	return c.from
}

// To returns the state the transition targets
func (c *Context[S, E]) To() S {
	return c.to
}

// Push queues a follow-up event behind everything already pending
func (c *Context[S, E]) Push(event E) {
	c.FSM.Push(event)
}

// SetFlushUnexpectedEvents changes the unexpected-event policy from inside an action
func (c *Context[S, E]) SetFlushUnexpectedEvents(flush bool) {
	c.FSM.SetFlushUnexpectedEvents(flush)
}
