package tablefsm

// Cell holds the current state of a machine as a registry index
type Cell[S comparable] struct {
	registry *Registry[S]
	index    int
}

// NewCell creates a cell holding the given state.
// A state outside the registry leaves the cell at NoState.
func NewCell[S comparable](reg *Registry[S], s S) *Cell[S] {
	c := &Cell[S]{registry: reg, index: NoState}
	c.Emplace(s)
	return c
}

// NewCellAt creates a cell holding a raw index
func NewCellAt[S comparable](reg *Registry[S], index int) *Cell[S] {
	return &Cell[S]{registry: reg, index: index}
}

// Emplace overwrites the stored state. It reports false, leaving the
// cell untouched, if the state is not registered.
func (c *Cell[S]) Emplace(s S) bool {
	i, ok := c.registry.Index(s)
	if !ok {
		return false
	}
	c.index = i
	return true
}

// Index returns the stored index
func (c *Cell[S]) Index() int {
	return c.index
}

// State returns the stored state
func (c *Cell[S]) State() (S, bool) {
	return c.registry.State(c.index)
}

// Holds checks if the cell currently stores s
func (c *Cell[S]) Holds(s S) bool {
	i, ok := c.registry.Index(s)
	return ok && i == c.index
}

// Visit calls fn with the handler the dispatcher binds to the cell's
// current index. It reports false when the index has no slot.
func Visit[S comparable, H any](c *Cell[S], d *Dispatcher[H], fn func(H)) bool {
	return d.Execute(c.index, fn)
}
