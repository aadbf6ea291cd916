package eventfsm

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Machine is the runtime FSM instance. It owns the event queue and the
// current state and dispatches on the goroutine that calls Run or Push.
type Machine[S, E comparable] struct {
	definition   *Definition[S, E]
	currentState S
	status       Status

	events   *queue[E]
	flush    bool
	retained []UnhandledEvent[S, E]

	name                string
	data                any
	logger              *slog.Logger
	queueCapacity       int
	stateChangeCallback func(from, to S, event E)
	unhandledCallback   func(UnhandledEvent[S, E])
}

// MachineOption is a functional option for configuring a Machine
type MachineOption[S, E comparable] func(*Machine[S, E])

// WithQueueCapacity sets the initial event queue capacity. The queue grows
// past it as needed.
func WithQueueCapacity[S, E comparable](size int) MachineOption[S, E] {
	return func(m *Machine[S, E]) {
		m.queueCapacity = size
	}
}

// WithLogger sets the logger for the machine
func WithLogger[S, E comparable](logger *slog.Logger) MachineOption[S, E] {
	return func(m *Machine[S, E]) {
		m.logger = logger
	}
}

// WithName sets the instance name attached to every log record.
// Defaults to a random UUID.
func WithName[S, E comparable](name string) MachineOption[S, E] {
	return func(m *Machine[S, E]) {
		m.name = name
	}
}

// WithData sets the application data accessible via Context
func WithData[S, E comparable](data any) MachineOption[S, E] {
	return func(m *Machine[S, E]) {
		m.data = data
	}
}

// WithStateChangeCallback sets a callback invoked after each transition,
// once the entry action of the new state has returned
func WithStateChangeCallback[S, E comparable](fn func(from, to S, event E)) MachineOption[S, E] {
	return func(m *Machine[S, E]) {
		m.stateChangeCallback = fn
	}
}

// WithUnhandledCallback sets a callback invoked for every event retained
// because no transition matched
func WithUnhandledCallback[S, E comparable](fn func(UnhandledEvent[S, E])) MachineOption[S, E] {
	return func(m *Machine[S, E]) {
		m.unhandledCallback = fn
	}
}

// WithFlushUnexpectedEvents sets the initial unexpected-event policy
func WithFlushUnexpectedEvents[S, E comparable](flush bool) MachineOption[S, E] {
	return func(m *Machine[S, E]) {
		m.flush = flush
	}
}

func newMachine[S, E comparable](d *Definition[S, E], opts ...MachineOption[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		definition: d,
		status:     StatusNotStarted,
		flush:      true,
		logger:     Logger,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.name == "" {
		m.name = uuid.NewString()
	}
	m.logger = m.logger.With("fsm", m.name)
	m.events = newQueue[E](m.queueCapacity)

	return m
}

// OnStateChange sets a callback invoked after each transition.
// Can be called after Build() but before Run().
func (m *Machine[S, E]) OnStateChange(fn func(from, to S, event E)) {
	m.stateChangeCallback = fn
}

// OnUnhandled sets a callback invoked for every retained event
func (m *Machine[S, E]) OnUnhandled(fn func(UnhandledEvent[S, E])) {
	m.unhandledCallback = fn
}

// SetFlushUnexpectedEvents selects what happens to an event with no
// matching transition: discarded when flush is true, retained otherwise
func (m *Machine[S, E]) SetFlushUnexpectedEvents(flush bool) {
	m.flush = flush
}

// FlushUnexpectedEvents reports the current unexpected-event policy
func (m *Machine[S, E]) FlushUnexpectedEvents() bool {
	return m.flush
}

// Name returns the instance name used in log records
func (m *Machine[S, E]) Name() string {
	return m.name
}

// Definition returns the definition the machine dispatches against
func (m *Machine[S, E]) Definition() *Definition[S, E] {
	return m.definition
}

// CurrentState returns the current state. Before the first Run it is the
// zero value of S.
func (m *Machine[S, E]) CurrentState() S {
	return m.currentState
}

// Status returns the dispatcher status
func (m *Machine[S, E]) Status() Status {
	return m.status
}

// Pending returns the number of queued events
func (m *Machine[S, E]) Pending() int {
	return m.events.len()
}

// Run seeds the machine with initial as the current state, queues event and
// dispatches until the queue is empty. No exit or entry action runs for the
// seed itself. A zero event seeds the state without dispatching anything.
func (m *Machine[S, E]) Run(initial S, event E) error {
	if m.status == StatusRunning {
		return ErrReentrant
	}

	if err := m.definition.Validate(); err != nil {
		return err
	}
	if !m.definition.HasState(initial) {
		return &ConfigError{Problems: []error{fmt.Errorf("initial state %v: %w", initial, ErrUnknownState)}}
	}

	m.logger.Debug("starting", "state", initial, "event", event)

	m.events.reset()
	m.currentState = initial
	m.status = StatusRunning
	if !isZero(event) {
		m.events.push(event)
	}
	m.dispatch()

	return nil
}

// Push queues an event. From inside an action the event is processed after
// everything already queued; on an idle machine Push dispatches it (and
// whatever it causes) before returning. Events pushed before the first Run
// are dropped.
func (m *Machine[S, E]) Push(event E) {
	switch m.status {
	case StatusNotStarted:
		m.logger.Warn("machine not started, dropping event", "event", event)
	case StatusRunning:
		m.events.push(event)
	case StatusIdle:
		m.events.push(event)
		m.status = StatusRunning
		m.dispatch()
	}
}

// Retained returns a copy of the events kept by the retain policy
func (m *Machine[S, E]) Retained() []UnhandledEvent[S, E] {
	out := make([]UnhandledEvent[S, E], len(m.retained))
	copy(out, m.retained)
	return out
}

// Replay moves every retained event back onto the queue in the order it was
// retained and dispatches them from the current state. Events that still
// find no transition are handled by the policy again.
func (m *Machine[S, E]) Replay() {
	if len(m.retained) == 0 {
		return
	}
	pending := m.retained
	m.retained = nil

	m.logger.Debug("replaying retained events", "count", len(pending))
	for _, u := range pending {
		m.events.push(u.Event)
	}
	if m.status == StatusIdle {
		m.status = StatusRunning
		m.dispatch()
	}
}

// dispatch drains the queue
func (m *Machine[S, E]) dispatch() {
	defer func() {
		m.status = StatusIdle
	}()

	for {
		event, ok := m.events.pop()
		if !ok {
			m.logger.Debug("queue empty, idle", "state", m.currentState)
			return
		}
		m.processEvent(event)
	}
}

// processEvent handles a single event
func (m *Machine[S, E]) processEvent(event E) {
	m.logger.Debug("processing event", "event", event, "state", m.currentState)

	to, ok := m.definition.Resolve(m.currentState, event)
	if !ok {
		m.handleUnexpected(event)
		return
	}

	m.executeTransition(m.currentState, to, event)
}

// executeTransition performs the state transition
func (m *Machine[S, E]) executeTransition(from, to S, event E) {
	m.logger.Debug("executing transition", "from", from, "to", to, "event", event)

	m.exitState(from, to, event)
	m.currentState = to
	m.enterState(from, to, event)

	if m.stateChangeCallback != nil {
		m.stateChangeCallback(from, to, event)
	}
}

// enterState runs the entry action of to
func (m *Machine[S, E]) enterState(from, to S, event E) {
	state := m.definition.state(to)
	m.logger.Debug("entering state", "state", to)
	if state == nil || state.OnEnter == nil {
		return
	}
	state.OnEnter.Invoke(m.makeContext(from, to, event))
}

// exitState runs the exit action of from
func (m *Machine[S, E]) exitState(from, to S, event E) {
	state := m.definition.state(from)
	m.logger.Debug("exiting state", "state", from)
	if state == nil || state.OnExit == nil {
		return
	}
	state.OnExit.Invoke(m.makeContext(from, to, event))
}

// handleUnexpected applies the unexpected-event policy
func (m *Machine[S, E]) handleUnexpected(event E) {
	if m.flush {
		m.logger.Debug("unexpected event flushed", "event", event, "state", m.currentState)
		return
	}

	u := UnhandledEvent[S, E]{State: m.currentState, Event: event}
	m.retained = append(m.retained, u)
	m.logger.Warn("unexpected event retained", "event", event, "state", m.currentState)

	if m.unhandledCallback != nil {
		m.unhandledCallback(u)
	}
}

// makeContext creates a context for actions
func (m *Machine[S, E]) makeContext(from, to S, event E) *Context[S, E] {
	return &Context[S, E]{
		FSM:    m,
		Data:   m.data,
		Logger: m.logger,
		event:  event,
		from:   from,
		to:     to,
	}
}
