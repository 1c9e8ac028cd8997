package tablefsm

// Registry is the indexed set of states a table can be in.
//
// Source states come first, in the order they first appear as a row's
// From, starting at index 0. States that only ever appear as a row's To
// follow, in first-occurrence order, so a machine can still be in them.
type Registry[S comparable] struct {
	states  []S
	index   map[S]int
	sources int
}

func newRegistry[S, E comparable, T any](rows []Transition[S, E, T]) *Registry[S] {
	r := &Registry[S]{
		index: make(map[S]int, len(rows)),
	}
	for _, row := range rows {
		r.add(row.From)
	}
	r.sources = len(r.states)
	for _, row := range rows {
		r.add(row.To)
	}
	return r
}

func (r *Registry[S]) add(s S) {
	if _, ok := r.index[s]; ok {
		return
	}
	r.index[s] = len(r.states)
	r.states = append(r.states, s)
}

// Index returns the index assigned to a state
func (r *Registry[S]) Index(s S) (int, bool) {
	i, ok := r.index[s]
	return i, ok
}

// State returns the state stored at an index
func (r *Registry[S]) State(i int) (S, bool) {
	if i < 0 || i >= len(r.states) {
		var zero S
		return zero, false
	}
	return r.states[i], true
}

// Contains checks if a state is part of the registry
func (r *Registry[S]) Contains(s S) bool {
	_, ok := r.index[s]
	return ok
}

// Len returns the number of registered states
func (r *Registry[S]) Len() int {
	return len(r.states)
}

// Sources returns the states that start at least one row, in index order
func (r *Registry[S]) Sources() []S {
	out := make([]S, r.sources)
	copy(out, r.states[:r.sources])
	return out
}

// States returns every registered state, in index order
func (r *Registry[S]) States() []S {
	out := make([]S, len(r.states))
	copy(out, r.states)
	return out
}
