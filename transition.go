package eventfsm

// Transition defines a state change rule
type Transition[S, E comparable] struct {
	From  S // Source state
	Event E // Triggering event
	To    S // Target state
}

// transitionKey indexes the transition table
type transitionKey[S, E comparable] struct {
	from  S
	event E
}
