package eventfsm

// UnhandledEvent records an event that had no transition from the state it
// was dispatched in.
type UnhandledEvent[S, E comparable] struct {
	State S
	Event E
}

func isZero[T comparable](v T) bool {
	var zero T
	return v == zero
}
