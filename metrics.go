package tablefsm

import "github.com/uber-go/tally/v4"

// metrics are the counters a machine reports
type metrics struct {
	transitions       tally.Counter
	ignored           tally.Counter
	forced            tally.Counter
	reentrantRejected tally.Counter
}

func newMetrics(scope tally.Scope) *metrics {
	return &metrics{
		transitions:       scope.Counter("transitions"),
		ignored:           scope.Counter("events_ignored"),
		forced:            scope.Counter("state_forced"),
		reentrantRejected: scope.Counter("reentrant_rejected"),
	}
}
