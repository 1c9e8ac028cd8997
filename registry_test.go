package tablefsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryFirstOccurrenceOrder(t *testing.T) {
	rows := []Transition[StateID, EventID, struct{}]{
		{From: "b", Event: "x", To: "a"},
		{From: "a", Event: "x", To: "b"},
		{From: "b", Event: "y", To: "c"},
		{From: "c", Event: "x", To: "a"},
	}
	reg := newRegistry(rows)

	assert.Equal(t, []StateID{"b", "a", "c"}, reg.Sources())
	assert.Equal(t, []StateID{"b", "a", "c"}, reg.States())
	assert.Equal(t, 3, reg.Len())

	for want, s := range []StateID{"b", "a", "c"} {
		got, ok := reg.Index(s)
		assert.True(t, ok)
		assert.Equal(t, want, got, "index of %s", s)

		back, ok := reg.State(got)
		assert.True(t, ok)
		assert.Equal(t, s, back)
	}
}

func TestRegistryDestinationOnlyStates(t *testing.T) {
	rows := []Transition[StateID, EventID, struct{}]{
		{From: "idle", Event: "fail", To: "broken"},
		{From: "idle", Event: "run", To: "running"},
		{From: "running", Event: "fail", To: "broken"},
	}
	reg := newRegistry(rows)

	assert.Equal(t, []StateID{"idle", "running"}, reg.Sources())
	assert.Equal(t, []StateID{"idle", "running", "broken"}, reg.States())

	i, ok := reg.Index("broken")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestRegistryUnknown(t *testing.T) {
	reg := newRegistry([]Transition[StateID, EventID, struct{}]{
		{From: "a", Event: "x", To: "a"},
	})

	_, ok := reg.Index("zzz")
	assert.False(t, ok)
	assert.False(t, reg.Contains("zzz"))
	assert.True(t, reg.Contains("a"))

	_, ok = reg.State(NoState)
	assert.False(t, ok)
	_, ok = reg.State(1)
	assert.False(t, ok)
}

func TestRegistryCopiesAreIndependent(t *testing.T) {
	reg := newRegistry([]Transition[StateID, EventID, struct{}]{
		{From: "a", Event: "x", To: "b"},
	})

	states := reg.States()
	states[0] = "mutated"

	assert.Equal(t, []StateID{"a", "b"}, reg.States())
}
