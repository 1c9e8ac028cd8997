package tablefsm

// Dispatcher is a jump table holding one handler per state index
type Dispatcher[H any] struct {
	handlers []H
}

// NewDispatcher builds a dispatcher over a fixed handler family.
// handlers[i] is the handler for the state with index i.
func NewDispatcher[H any](handlers []H) *Dispatcher[H] {
	d := &Dispatcher[H]{handlers: make([]H, len(handlers))}
	copy(d.handlers, handlers)
	return d
}

// Len returns the number of slots in the jump table
func (d *Dispatcher[H]) Len() int {
	return len(d.handlers)
}

// Execute hands the handler bound to index to call.
// Out-of-range indexes, NoState included, are ignored.
func (d *Dispatcher[H]) Execute(index int, call func(H)) bool {
	if d == nil || index < 0 || index >= len(d.handlers) {
		return false
	}
	call(d.handlers[index])
	return true
}
