package fsmx

import "errors"

// StateID identifies a state within a Config.
type StateID string

// EventID identifies an event that may trigger a transition.
type EventID string

var (
	// ErrConfigRequired is returned by New when no configuration is supplied.
	ErrConfigRequired = errors.New("config is required")

	// ErrInvalidState is returned when a state is not part of the configuration.
	ErrInvalidState = errors.New("state does not exist")

	// ErrUnknownTransition is returned by Trigger when the active state has no
	// transition for the event.
	ErrUnknownTransition = errors.New("no transition for event in active state")

	// ErrInvalidConfig is returned by Validate, the builder and the loaders.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)
