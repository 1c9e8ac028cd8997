package tablefsm

import "log/slog"

// StateID is a string state tag, used by tables declared outside Go code
type StateID string

// EventID is a string event tag, used by tables declared outside Go code
type EventID string

// Action is a zero-argument operation on the application object.
// A nil Action marks a transition without side effects.
type Action[T any] func(app *T)

// NoState is the index of a cell that holds no state
const NoState = -1

// ReentrancyPolicy controls what happens when an action sends an event
// to the machine that is currently running it
type ReentrancyPolicy int

const (
	// ReentrancyAllow runs nested events immediately, inside the outer transition
	ReentrancyAllow ReentrancyPolicy = iota
	// ReentrancyReject drops nested events while a transition is running
	ReentrancyReject
)

func (p ReentrancyPolicy) String() string {
	switch p {
	case ReentrancyAllow:
		return "allow"
	case ReentrancyReject:
		return "reject"
	default:
		return "unknown"
	}
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()
