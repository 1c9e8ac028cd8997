package tablefsm

// Table is a built, immutable transition table. One table is shared by
// every machine created from it.
type Table[S, E comparable, T any] struct {
	rows     []Transition[S, E, T]
	registry *Registry[S]

	// (from, event) -> index into rows, first declared row wins
	resolved map[rowKey[S, E]]int

	// Per event: slot i holds the row taken from state i, or nil
	handlers map[E]*Dispatcher[*Transition[S, E, T]]
	events   []E
}

func compile[S, E comparable, T any](rows []Transition[S, E, T]) *Table[S, E, T] {
	t := &Table[S, E, T]{
		rows:     rows,
		registry: newRegistry(rows),
		resolved: make(map[rowKey[S, E]]int, len(rows)),
		handlers: make(map[E]*Dispatcher[*Transition[S, E, T]]),
	}

	for i, row := range rows {
		key := rowKey[S, E]{from: row.From, event: row.Event}
		if first, ok := t.resolved[key]; ok {
			Logger.Warn("transition row shadowed by an earlier row",
				"row", i, "shadowed_by", first, "from", row.From, "event", row.Event)
			continue
		}
		t.resolved[key] = i
	}

	families := make(map[E][]*Transition[S, E, T])
	for _, row := range rows {
		if _, ok := families[row.Event]; ok {
			continue
		}
		t.events = append(t.events, row.Event)
		family := make([]*Transition[S, E, T], t.registry.Len())
		for idx, state := range t.registry.states {
			if i, ok := t.resolved[rowKey[S, E]{from: state, event: row.Event}]; ok {
				family[idx] = &t.rows[i]
			}
		}
		families[row.Event] = family
	}
	for ev, family := range families {
		t.handlers[ev] = NewDispatcher(family)
	}

	return t
}

// Find resolves the row taken when event arrives in state from
func (t *Table[S, E, T]) Find(from S, event E) (Transition[S, E, T], bool) {
	i, ok := t.resolved[rowKey[S, E]{from: from, event: event}]
	if !ok {
		return Transition[S, E, T]{}, false
	}
	return t.rows[i], true
}

// dispatcher returns the jump table for an event, nil if no row uses it
func (t *Table[S, E, T]) dispatcher(event E) *Dispatcher[*Transition[S, E, T]] {
	return t.handlers[event]
}

// Registry returns the table's state registry
func (t *Table[S, E, T]) Registry() *Registry[S] {
	return t.registry
}

// Rows returns a copy of the declared rows, in declaration order
func (t *Table[S, E, T]) Rows() []Transition[S, E, T] {
	out := make([]Transition[S, E, T], len(t.rows))
	copy(out, t.rows)
	return out
}

// Events returns the distinct events used by the table, in first-occurrence order
func (t *Table[S, E, T]) Events() []E {
	out := make([]E, len(t.events))
	copy(out, t.events)
	return out
}

// Initial returns the state a machine starts in when none is given
func (t *Table[S, E, T]) Initial() S {
	s, _ := t.registry.State(0)
	return s
}
