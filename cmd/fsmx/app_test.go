package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/testutil"
)

const lightSwitchYAML = `initial: off
states:
  off:
    transitions: {power: on}
  on:
    transitions: {power: off}
`

// createTempConfigFile writes content to a temporary config file.
func createTempConfigFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(t.Context(), append([]string{"fsmx"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestStatesCommand(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "player.yaml")

	t.Run("all states", func(t *testing.T) {
		out, _, err := runApp(t, "states", path)
		require.NoError(t, err)
		assert.Equal(t, "stopped\nplaying\npaused\nejected\n", out)
	})

	t.Run("filtered by event", func(t *testing.T) {
		out, _, err := runApp(t, "states", "--event", "stop", path)
		require.NoError(t, err)
		assert.Equal(t, "playing\npaused\n", out)
	})

	t.Run("missing path", func(t *testing.T) {
		_, _, err := runApp(t, "states")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config file path required")
	})
}

func TestRunCommand(t *testing.T) {
	path := createTempConfigFile(t, "switch.yaml", lightSwitchYAML)

	t.Run("walkthrough", func(t *testing.T) {
		out, _, err := runApp(t, "run", path, "trigger:power", "undo", "redo", "undo", "reset", "clear")
		require.NoError(t, err)
		assert.Equal(t, `start -> off
trigger:power -> on
undo (true) -> off
redo (true) -> on
undo (false) -> on
reset -> off
clear -> off
`, out)
	})

	t.Run("debug logging", func(t *testing.T) {
		_, errOut, err := runApp(t, "--log-level", "debug", "run", path, "change:on")
		require.NoError(t, err)
		assert.Contains(t, errOut, "state change")
	})

	t.Run("failing step", func(t *testing.T) {
		out, _, err := runApp(t, "run", path, "change:on", "change:dimmed")
		require.ErrorIs(t, err, fsmx.ErrInvalidState)
		assert.Contains(t, err.Error(), "step 2 (change:dimmed)")
		assert.Contains(t, out, "change:on -> on")
	})

	t.Run("toml config", func(t *testing.T) {
		toml := filepath.Join("..", "..", "testdata", "player.toml")
		out, _, err := runApp(t, "run", toml, "trigger:play", "trigger:pause")
		require.NoError(t, err)
		assert.Contains(t, out, "trigger:pause -> paused\n")
	})
}

func TestApplyStep(t *testing.T) {
	tests := []struct {
		step    string
		wantErr string
	}{
		{step: "trigger:", wantErr: `missing argument for "trigger"`},
		{step: "trigger", wantErr: "trigger needs an event"},
		{step: "change", wantErr: "change needs a state"},
		{step: "jump", wantErr: `unknown step "jump"`},
	}
	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			m, err := fsmx.New(testutil.LightSwitch(t))
			require.NoError(t, err)

			_, err = applyStep(m, tt.step)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, fsmx.StateID("off"), m.State())
		})
	}
}

func TestDotCommand(t *testing.T) {
	path := createTempConfigFile(t, "switch.yml", lightSwitchYAML)

	out, _, err := runApp(t, "dot", "--state", "on", path)
	require.NoError(t, err)
	assert.Contains(t, out, "digraph StateMachine {")
	assert.Contains(t, out, `"on" [label="on" style="rounded,filled" fillcolor=lightgreen];`)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger("bogus", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
