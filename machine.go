package tablefsm

import (
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uber-go/tally/v4"
)

// Machine is the runtime FSM instance. It owns its current state and its
// application object.
//
// A Machine is not safe for concurrent use; callers that share one must
// serialize access to it.
type Machine[S, E comparable, T any] struct {
	id    uuid.UUID
	table *Table[S, E, T]
	cell  *Cell[S]
	app   T

	logger         *slog.Logger
	metrics        *metrics
	clock          clock.Clock
	reentrancy     ReentrancyPolicy
	lastTransition time.Time

	stateChangeCallback func(from, to S)

	// set while a transition is being applied
	busy bool
}

type machineConfig struct {
	logger     *slog.Logger
	scope      tally.Scope
	clock      clock.Clock
	reentrancy ReentrancyPolicy
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*machineConfig)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(c *machineConfig) {
		c.logger = logger
	}
}

// WithMetrics reports transition counters to scope
func WithMetrics(scope tally.Scope) MachineOption {
	return func(c *machineConfig) {
		c.scope = scope
	}
}

// WithClock sets the clock used to timestamp transitions
func WithClock(clk clock.Clock) MachineOption {
	return func(c *machineConfig) {
		c.clock = clk
	}
}

// WithReentrancy sets how events sent from inside an action are handled
func WithReentrancy(policy ReentrancyPolicy) MachineOption {
	return func(c *machineConfig) {
		c.reentrancy = policy
	}
}

// New creates a machine in the table's first source state, owning app
func New[S, E comparable, T any](table *Table[S, E, T], app T, opts ...MachineOption) *Machine[S, E, T] {
	m := newMachine(table, app, opts)
	m.cell = NewCellAt(table.registry, 0)
	m.logger.Debug("machine created", "state", table.Initial())
	return m
}

// NewAt creates a machine in the given state, owning app
func NewAt[S, E comparable, T any](table *Table[S, E, T], initial S, app T, opts ...MachineOption) (*Machine[S, E, T], error) {
	if !table.registry.Contains(initial) {
		return nil, errors.Wrapf(ErrUnknownState, "initial state %v", initial)
	}
	m := newMachine(table, app, opts)
	m.cell = NewCell(table.registry, initial)
	m.logger.Debug("machine created", "state", initial)
	return m, nil
}

// MustNewAt is like NewAt but panics if initial is not part of the table
func MustNewAt[S, E comparable, T any](table *Table[S, E, T], initial S, app T, opts ...MachineOption) *Machine[S, E, T] {
	m, err := NewAt(table, initial, app, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func newMachine[S, E comparable, T any](table *Table[S, E, T], app T, opts []MachineOption) *Machine[S, E, T] {
	cfg := machineConfig{
		logger: Logger,
		scope:  tally.NoopScope,
		clock:  clock.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	id := uuid.New()
	return &Machine[S, E, T]{
		id:             id,
		table:          table,
		app:            app,
		logger:         cfg.logger.With("machine", id.String()),
		metrics:        newMetrics(cfg.scope),
		clock:          cfg.clock,
		reentrancy:     cfg.reentrancy,
		lastTransition: cfg.clock.Now(),
	}
}

// OnStateChange sets a callback invoked after each transition taken by Send,
// once the row's action has run
func (m *Machine[S, E, T]) OnStateChange(fn func(from, to S)) {
	m.stateChangeCallback = fn
}

// Send delivers an event. If the table has a row for the current state and
// event, the machine moves to the row's destination and then runs the row's
// action. Otherwise nothing happens. It reports whether a row was taken.
func (m *Machine[S, E, T]) Send(event E) bool {
	if m.busy && m.reentrancy == ReentrancyReject {
		m.logger.Warn("reentrant event rejected", "event", event, "state", m.CurrentState())
		m.metrics.reentrantRejected.Inc(1)
		return false
	}

	taken := false
	Visit(m.cell, m.table.dispatcher(event), func(row *Transition[S, E, T]) {
		if row != nil {
			m.apply(row)
			taken = true
		}
	})

	if !taken {
		m.logger.Debug("no transition found", "event", event, "state", m.CurrentState())
		m.metrics.ignored.Inc(1)
	}
	return taken
}

// apply performs the state change of a resolved row
func (m *Machine[S, E, T]) apply(row *Transition[S, E, T]) {
	wasBusy := m.busy
	m.busy = true
	defer func() { m.busy = wasBusy }()

	m.logger.Debug("executing transition", "from", row.From, "to", row.To, "event", row.Event, "action", row.HasAction())

	m.cell.Emplace(row.To)
	m.lastTransition = m.clock.Now()
	m.metrics.transitions.Inc(1)

	if row.Action != nil {
		row.Action(&m.app)
	}

	if m.stateChangeCallback != nil {
		m.stateChangeCallback(row.From, row.To)
	}
}

// IsInState checks if the given state is the current state
func (m *Machine[S, E, T]) IsInState(s S) bool {
	return m.cell.Holds(s)
}

// CurrentState returns the current state
func (m *Machine[S, E, T]) CurrentState() S {
	s, _ := m.cell.State()
	return s
}

// Index returns the registry index of the current state
func (m *Machine[S, E, T]) Index() int {
	return m.cell.Index()
}

// SetState forces the current state, bypassing the transition table.
// No action runs and no state change callback fires.
func (m *Machine[S, E, T]) SetState(s S) error {
	if !m.cell.Emplace(s) {
		return errors.Wrapf(ErrUnknownState, "set state %v", s)
	}
	m.logger.Debug("state forced", "state", s)
	m.metrics.forced.Inc(1)
	return nil
}

// App returns the application object owned by the machine
func (m *Machine[S, E, T]) App() *T {
	return &m.app
}

// Table returns the table the machine runs on
func (m *Machine[S, E, T]) Table() *Table[S, E, T] {
	return m.table
}

// ID returns the machine's instance identifier, also attached to its logs
func (m *Machine[S, E, T]) ID() uuid.UUID {
	return m.id
}

// LastTransition returns when the last row was taken, or the creation
// time if none has been
func (m *Machine[S, E, T]) LastTransition() time.Time {
	return m.lastTransition
}
