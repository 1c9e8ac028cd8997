package tablefsm

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ActionSet is a fixed name -> action mapping
type ActionSet[T any] map[string]Action[T]

// Resolve looks up a named action. Its method value can be passed to
// LoadDefinition and LoadTable.
func (s ActionSet[T]) Resolve(name string) (Action[T], error) {
	fn, ok := s[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAction, "%q", name)
	}
	return fn, nil
}

type tableFile struct {
	Strict      bool       `yaml:"strict"`
	Transitions []rowEntry `yaml:"transitions"`
}

type rowEntry struct {
	From   StateID `yaml:"from"`
	Event  EventID `yaml:"event"`
	To     StateID `yaml:"to"`
	Action string  `yaml:"action"`
}

// LoadDefinition reads a YAML transition table:
//
//	strict: false
//	transitions:
//	  - {from: idle, event: start, to: running, action: on_start}
//	  - {from: running, event: stop, to: idle}
//
// Rows without an action only change state. Every named action is
// resolved through resolve, which should return ErrUnknownAction for
// names it does not know.
func LoadDefinition[T any](r io.Reader, resolve func(name string) (Action[T], error)) (*Definition[StateID, EventID, T], error) {
	var file tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, errors.Wrap(err, "decode transition table")
	}

	def := NewDefinition[StateID, EventID, T]()
	if file.Strict {
		def.Strict()
	}

	for i, row := range file.Transitions {
		if row.From == "" || row.Event == "" || row.To == "" {
			return nil, errors.Wrapf(ErrInvalidRow, "row %d is missing a state or event", i)
		}

		var action Action[T]
		if row.Action != "" {
			if resolve == nil {
				return nil, errors.Wrapf(ErrUnknownAction, "row %d: %q", i, row.Action)
			}
			fn, err := resolve(row.Action)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d", i)
			}
			action = fn
		}

		def.Transition(row.From, row.Event, row.To, action)
	}

	return def, nil
}

// LoadTable reads and builds a YAML transition table
func LoadTable[T any](r io.Reader, resolve func(name string) (Action[T], error)) (*Table[StateID, EventID, T], error) {
	def, err := LoadDefinition(r, resolve)
	if err != nil {
		return nil, err
	}
	return def.Build()
}
