// Command fsmreplay loads a YAML transition table and replays the events
// given on the command line, printing the state after each one.
//
//	FSM_TABLE=door.yaml fsmreplay open close lock
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/librescoot/tablefsm"
)

// recorder is the application object: every action counts its calls
type recorder struct {
	calls map[string]int
}

func recordAction(name string) (tablefsm.Action[recorder], error) {
	return func(r *recorder) {
		r.calls[name]++
	}, nil
}

func main() {
	// The .env file is optional
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config, events []string, out io.Writer) error {
	lvl, err := cfg.level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	tablefsm.Logger = logger

	f, err := os.Open(cfg.Table)
	if err != nil {
		return errors.Wrap(err, "open table")
	}
	defer f.Close()

	table, err := tablefsm.LoadTable[recorder](f, recordAction)
	if err != nil {
		return errors.Wrapf(err, "load %s", cfg.Table)
	}

	app := recorder{calls: make(map[string]int)}
	opts := []tablefsm.MachineOption{tablefsm.WithLogger(logger)}

	var m *tablefsm.Machine[tablefsm.StateID, tablefsm.EventID, recorder]
	if cfg.Initial != "" {
		m, err = tablefsm.NewAt(table, tablefsm.StateID(cfg.Initial), app, opts...)
		if err != nil {
			return err
		}
	} else {
		m = tablefsm.New(table, app, opts...)
	}

	fmt.Fprintf(out, "start %s\n", m.CurrentState())
	for _, ev := range events {
		taken := m.Send(tablefsm.EventID(ev))
		mark := "-"
		if taken {
			mark = "+"
		}
		fmt.Fprintf(out, "%s %s -> %s\n", mark, ev, m.CurrentState())
	}

	names := make([]string, 0, len(m.App().calls))
	for name := range m.App().calls {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "action %s x%d\n", name, m.App().calls[name])
	}
	return nil
}
