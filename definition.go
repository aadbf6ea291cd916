package eventfsm

import (
	"fmt"
)

// Definition holds the FSM structure: the state registry and the transition table
type Definition[S, E comparable] struct {
	states      map[S]*State[S, E]
	transitions map[transitionKey[S, E]]S
	strict      bool
	duplicates  []Transition[S, E]
}

// DefinitionOption is a functional option for configuring a Definition
type DefinitionOption func(*definitionConfig)

type definitionConfig struct {
	strict bool
}

// Strict makes registering the same (from, event) pair twice a configuration
// error instead of an overwrite
func Strict() DefinitionOption {
	return func(c *definitionConfig) {
		c.strict = true
	}
}

// NewDefinition creates a new FSM definition builder
func NewDefinition[S, E comparable](opts ...DefinitionOption) *Definition[S, E] {
	var cfg definitionConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Definition[S, E]{
		states:      make(map[S]*State[S, E]),
		transitions: make(map[transitionKey[S, E]]S),
		strict:      cfg.strict,
	}
}

// State registers a state. Registering an id again replaces the earlier
// entry and exit actions.
func (d *Definition[S, E]) State(id S, opts ...StateOption[S, E]) *Definition[S, E] {
	s := &State[S, E]{ID: id}
	for _, opt := range opts {
		opt(s)
	}
	if _, ok := d.states[id]; ok {
		Logger.Debug("overwriting state", "state", id)
	}
	d.states[id] = s
	return d
}

// Transition adds a transition rule. The last registration for a
// (from, event) pair wins unless the definition is strict.
func (d *Definition[S, E]) Transition(from S, event E, to S) *Definition[S, E] {
	key := transitionKey[S, E]{from: from, event: event}
	if prev, ok := d.transitions[key]; ok {
		if d.strict {
			d.duplicates = append(d.duplicates, Transition[S, E]{From: from, Event: event, To: to})
			return d
		}
		Logger.Debug("overwriting transition", "from", from, "event", event, "old", prev, "new", to)
	}
	d.transitions[key] = to
	return d
}

// Resolve looks up the target of (from, event)
func (d *Definition[S, E]) Resolve(from S, event E) (S, bool) {
	to, ok := d.transitions[transitionKey[S, E]{from: from, event: event}]
	return to, ok
}

// HasState reports whether id is registered
func (d *Definition[S, E]) HasState(id S) bool {
	_, ok := d.states[id]
	return ok
}

func (d *Definition[S, E]) state(id S) *State[S, E] {
	return d.states[id]
}

// Validate checks the definition for errors
func (d *Definition[S, E]) Validate() error {
	var problems []error

	for id := range d.states {
		if isZero(id) {
			problems = append(problems, fmt.Errorf("state %v: %w", id, ErrSentinel))
		}
	}

	for key, to := range d.transitions {
		if isZero(key.event) {
			problems = append(problems, fmt.Errorf("transition %v -> %v on event %v: %w", key.from, to, key.event, ErrSentinel))
		}
		if _, ok := d.states[key.from]; !ok {
			problems = append(problems, fmt.Errorf("transition from %v on %v: %w", key.from, key.event, ErrUnknownState))
		}
		if _, ok := d.states[to]; !ok {
			problems = append(problems, fmt.Errorf("transition from %v on %v to %v: %w", key.from, key.event, to, ErrUnknownState))
		}
	}

	for _, t := range d.duplicates {
		problems = append(problems, fmt.Errorf("transition from %v on %v to %v: %w", t.From, t.Event, t.To, ErrDuplicateTransition))
	}

	if len(problems) == 0 {
		return nil
	}
	sortErrors(problems)
	return &ConfigError{Problems: problems}
}

// Build creates a Machine from the definition
func (d *Definition[S, E]) Build(opts ...MachineOption[S, E]) (*Machine[S, E], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return newMachine(d, opts...), nil
}
