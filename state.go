package eventfsm

// Action is behaviour attached to a state's entry or exit
type Action[S, E comparable] interface {
	Invoke(ctx *Context[S, E])
}

// ActionFunc adapts a plain function to the Action interface
type ActionFunc[S, E comparable] func(ctx *Context[S, E])

// Invoke calls f(ctx)
func (f ActionFunc[S, E]) Invoke(ctx *Context[S, E]) {
	f(ctx)
}

// State defines a state in the machine
type State[S, E comparable] struct {
	ID S

	OnEnter Action[S, E]
	OnExit  Action[S, E]
}

// StateOption is a functional option for configuring a State
type StateOption[S, E comparable] func(*State[S, E])

// WithOnEnter sets the entry action for the state
func WithOnEnter[S, E comparable](a Action[S, E]) StateOption[S, E] {
	return func(s *State[S, E]) {
		s.OnEnter = a
	}
}

// WithOnExit sets the exit action for the state
func WithOnExit[S, E comparable](a Action[S, E]) StateOption[S, E] {
	return func(s *State[S, E]) {
		s.OnExit = a
	}
}

// WithOnEnterFunc is WithOnEnter for a bare function
func WithOnEnterFunc[S, E comparable](fn func(*Context[S, E])) StateOption[S, E] {
	return WithOnEnter[S, E](ActionFunc[S, E](fn))
}

// WithOnExitFunc is WithOnExit for a bare function
func WithOnExitFunc[S, E comparable](fn func(*Context[S, E])) StateOption[S, E] {
	return WithOnExit[S, E](ActionFunc[S, E](fn))
}
