package fsmx

import (
	"errors"
	"fmt"
	"slices"
)

// Config is the read-only description a StateMachine runs against.
type Config struct {
	Initial StateID `yaml:"initial"`
	States  States  `yaml:"states"`
}

// StateConfig describes the outgoing transitions of one state.
type StateConfig struct {
	Transitions map[EventID]StateID `yaml:"transitions,omitempty"`
}

// Target returns the destination for event, if any.
func (s *StateConfig) Target(event EventID) (StateID, bool) {
	if s == nil {
		return "", false
	}
	to, ok := s.Transitions[event]
	return to, ok
}

// States is a mapping from StateID to StateConfig that remembers insertion
// order. The zero value is an empty mapping ready to use.
type States struct {
	order []StateID
	byID  map[StateID]*StateConfig
}

// NewStates returns an empty States mapping.
func NewStates() States {
	return States{byID: make(map[StateID]*StateConfig)}
}

// Add inserts or replaces the state id. Replacing keeps the original position.
func (s *States) Add(id StateID, state StateConfig) {
	if s.byID == nil {
		s.byID = make(map[StateID]*StateConfig)
	}
	if _, exists := s.byID[id]; !exists {
		s.order = append(s.order, id)
	}
	if state.Transitions == nil {
		state.Transitions = make(map[EventID]StateID)
	}
	s.byID[id] = &state
}

// Get returns the state config for id.
func (s States) Get(id StateID) (*StateConfig, bool) {
	state, ok := s.byID[id]
	return state, ok
}

// Has reports whether id is a configured state.
func (s States) Has(id StateID) bool {
	_, ok := s.byID[id]
	return ok
}

// IDs returns the state IDs in insertion order. The slice is a copy and is
// empty, not nil, when there are no states.
func (s States) IDs() []StateID {
	return append([]StateID{}, s.order...)
}

// Len returns the number of states.
func (s States) Len() int {
	return len(s.order)
}

// Validate checks that the initial state and every transition destination
// are configured. All problems are reported, joined.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	var errs []error
	if c.States.Len() == 0 {
		errs = append(errs, errors.New("no states defined"))
	}
	if c.Initial == "" {
		errs = append(errs, errors.New("no initial state defined"))
	} else if !c.States.Has(c.Initial) {
		errs = append(errs, fmt.Errorf("initial state %q not defined", c.Initial))
	}

	for _, id := range c.States.order {
		state := c.States.byID[id]
		for _, event := range sortedEvents(state.Transitions) {
			to := state.Transitions[event]
			if !c.States.Has(to) {
				errs = append(errs, fmt.Errorf("state %q event %q targets undefined state %q", id, event, to))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func sortedEvents(transitions map[EventID]StateID) []EventID {
	events := make([]EventID, 0, len(transitions))
	for event := range transitions {
		events = append(events, event)
	}
	slices.Sort(events)
	return events
}
