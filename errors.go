package tablefsm

import "github.com/pkg/errors"

var (
	// ErrEmptyTable is returned when a definition has no transitions
	ErrEmptyTable = errors.New("transition table has no rows")
	// ErrDuplicateRow is returned by strict definitions that declare the
	// same (from, event) pair twice
	ErrDuplicateRow = errors.New("duplicate transition row")
	// ErrUnknownState is returned for a state that is not part of the table
	ErrUnknownState = errors.New("unknown state")
	// ErrUnknownAction is returned when a declared action name cannot be resolved
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidRow is returned for a declared row with missing fields
	ErrInvalidRow = errors.New("invalid transition row")
)
