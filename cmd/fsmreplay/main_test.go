package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doorTable = `
transitions:
  - {from: closed, event: open, to: opened, action: creak}
  - {from: opened, event: close, to: closed, action: slam}
  - {from: closed, event: lock, to: locked}
  - {from: locked, event: unlock, to: closed}
`

func writeTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "door.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doorTable), 0o600))
	return path
}

func TestRun(t *testing.T) {
	cfg := config{Table: writeTable(t), LogLevel: "error"}

	var out bytes.Buffer
	err := run(cfg, []string{"open", "lock", "close", "open", "close"}, &out)
	require.NoError(t, err)

	want := "start closed\n" +
		"+ open -> opened\n" +
		"- lock -> opened\n" +
		"+ close -> closed\n" +
		"+ open -> opened\n" +
		"+ close -> closed\n" +
		"action creak x2\n" +
		"action slam x2\n"
	assert.Equal(t, want, out.String())
}

func TestRunWithInitialState(t *testing.T) {
	cfg := config{Table: writeTable(t), Initial: "locked", LogLevel: "error"}

	var out bytes.Buffer
	require.NoError(t, run(cfg, []string{"open", "unlock"}, &out))
	assert.Equal(t, "start locked\n- open -> locked\n+ unlock -> closed\n", out.String())

	cfg.Initial = "ajar"
	assert.Error(t, run(cfg, nil, &out))
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer

	err := run(config{Table: filepath.Join(t.TempDir(), "missing.yaml"), LogLevel: "info"}, nil, &out)
	assert.Error(t, err)

	err = run(config{Table: writeTable(t), LogLevel: "loud"}, nil, &out)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FSM_TABLE", "/tmp/table.yaml")
	t.Setenv("FSM_INITIAL", "idle")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/table.yaml", cfg.Table)
	assert.Equal(t, "idle", cfg.Initial)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigRequiresTable(t *testing.T) {
	t.Setenv("FSM_TABLE", "")
	os.Unsetenv("FSM_TABLE")

	_, err := loadConfig()
	assert.Error(t, err)
}
