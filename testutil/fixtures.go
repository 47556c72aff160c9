// Package testutil provides configuration fixtures shared by the test suites.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comalice/fsmx"
)

// LightSwitch returns the two-state power toggle:
// off --power--> on --power--> off.
func LightSwitch(t testing.TB) *fsmx.Config {
	t.Helper()
	cfg, err := fsmx.NewConfigBuilder("off").
		State("off").On("power", "on").
		State("on").On("power", "off").
		Build()
	require.NoError(t, err)
	return cfg
}

// Player returns a media player where several states share events:
//
//	stopped --play--> playing --pause--> paused --play--> playing
//	playing --stop--> stopped, paused --stop--> stopped
//	any of the above --eject--> ejected (terminal)
func Player(t testing.TB) *fsmx.Config {
	t.Helper()
	cfg, err := fsmx.NewConfigBuilder("stopped").
		State("stopped").On("play", "playing").On("eject", "ejected").
		State("playing").On("pause", "paused").On("stop", "stopped").On("eject", "ejected").
		State("paused").On("play", "playing").On("stop", "stopped").On("eject", "ejected").
		State("ejected").
		Build()
	require.NoError(t, err)
	return cfg
}

// Machine builds a StateMachine for cfg, failing the test on error.
func Machine(t testing.TB, cfg *fsmx.Config, opts ...fsmx.Option) *fsmx.StateMachine {
	t.Helper()
	m, err := fsmx.New(cfg, opts...)
	require.NoError(t, err)
	return m
}
