package tablefsm

import (
	"github.com/pkg/errors"
)

// Definition holds the transition table before it is built
type Definition[S, E comparable, T any] struct {
	transitions []Transition[S, E, T]
	strict      bool
}

// NewDefinition creates a new transition table builder
func NewDefinition[S, E comparable, T any]() *Definition[S, E, T] {
	return &Definition[S, E, T]{
		transitions: make([]Transition[S, E, T], 0),
	}
}

// Transition appends a row. Pass a nil action for a transition that only
// changes state.
func (d *Definition[S, E, T]) Transition(from S, event E, to S, action Action[T]) *Definition[S, E, T] {
	d.transitions = append(d.transitions, Transition[S, E, T]{
		From:   from,
		Event:  event,
		To:     to,
		Action: action,
	})
	return d
}

// Row appends a prepared row
func (d *Definition[S, E, T]) Row(t Transition[S, E, T]) *Definition[S, E, T] {
	d.transitions = append(d.transitions, t)
	return d
}

// Strict makes duplicate (from, event) rows a build error instead of
// letting the first declared row win
func (d *Definition[S, E, T]) Strict() *Definition[S, E, T] {
	d.strict = true
	return d
}

// Len returns the number of declared rows
func (d *Definition[S, E, T]) Len() int {
	return len(d.transitions)
}

// Validate checks the definition for errors
func (d *Definition[S, E, T]) Validate() error {
	if len(d.transitions) == 0 {
		return ErrEmptyTable
	}

	if !d.strict {
		return nil
	}

	seen := make(map[rowKey[S, E]]int, len(d.transitions))
	for i, t := range d.transitions {
		key := rowKey[S, E]{from: t.From, event: t.Event}
		if first, ok := seen[key]; ok {
			return errors.Wrapf(ErrDuplicateRow, "row %d repeats row %d (from %v on %v)", i, first, t.From, t.Event)
		}
		seen[key] = i
	}
	return nil
}

// Build validates the definition and compiles it into a Table
func (d *Definition[S, E, T]) Build() (*Table[S, E, T], error) {
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid definition")
	}

	rows := make([]Transition[S, E, T], len(d.transitions))
	copy(rows, d.transitions)
	return compile(rows), nil
}

// MustBuild is like Build but panics on an invalid definition
func (d *Definition[S, E, T]) MustBuild() *Table[S, E, T] {
	t, err := d.Build()
	if err != nil {
		panic(err)
	}
	return t
}
