package tablefsm

// Transition is one row of a transition table
type Transition[S, E comparable, T any] struct {
	From   S         // Source state
	Event  E         // Triggering event
	To     S         // Destination state
	Action Action[T] // Optional: runs after the state has changed
}

// HasAction reports whether taking the row invokes an action
func (t Transition[S, E, T]) HasAction() bool {
	return t.Action != nil
}

// rowKey identifies the (source state, event) pair a row answers to
type rowKey[S, E comparable] struct {
	from  S
	event E
}
