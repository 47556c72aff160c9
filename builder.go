package fsmx

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ConfigBuilder provides a fluent API for constructing a Config.
type ConfigBuilder struct {
	initial StateID
	states  States
	errs    []error
}

// StateBuilder provides fluent methods for configuring one state.
type StateBuilder struct {
	b  *ConfigBuilder
	id StateID
}

// NewConfigBuilder creates a builder whose machines start in initial.
func NewConfigBuilder(initial StateID) *ConfigBuilder {
	return &ConfigBuilder{
		initial: initial,
		states:  NewStates(),
	}
}

// State creates or retrieves a state. States keep the order in which they
// are first declared.
func (b *ConfigBuilder) State(id StateID) *StateBuilder {
	if !b.states.Has(id) {
		b.states.Add(id, StateConfig{})
	}
	return &StateBuilder{b: b, id: id}
}

// Build validates the configuration and returns a copy of it. The builder
// may keep being used afterwards without affecting the returned Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	cfg := &Config{Initial: b.initial, States: b.states.clone()}

	errs := slices.Clone(b.errs)
	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("build config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// On adds a transition from this state to target on event. Declaring the
// same event twice for a state is reported by Build.
func (sb *StateBuilder) On(event EventID, target StateID) *StateBuilder {
	state, _ := sb.b.states.Get(sb.id)
	if prev, exists := state.Transitions[event]; exists {
		sb.b.errs = append(sb.b.errs, fmt.Errorf("%w: state %q event %q already targets %q", ErrInvalidConfig, sb.id, event, prev))
		return sb
	}
	state.Transitions[event] = target
	return sb
}

// State continues with another state of the same builder.
func (sb *StateBuilder) State(id StateID) *StateBuilder {
	return sb.b.State(id)
}

// Build is a shortcut for the parent builder's Build.
func (sb *StateBuilder) Build() (*Config, error) {
	return sb.b.Build()
}

func (s States) clone() States {
	out := NewStates()
	for _, id := range s.order {
		out.Add(id, StateConfig{Transitions: maps.Clone(s.byID[id].Transitions)})
	}
	return out
}
