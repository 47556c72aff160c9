package fsmx

import (
	"fmt"
	"log/slog"
)

// StateMachine tracks the active state of one Config. It is not safe for
// concurrent use; see SyncMachine.
type StateMachine struct {
	config  *Config
	active  StateID
	history history
	logger  *slog.Logger
}

// Option is a functional option for configuring a StateMachine.
type Option func(*StateMachine)

// WithLogger sets the logger used for debug output on state changes.
func WithLogger(logger *slog.Logger) Option {
	return func(m *StateMachine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a StateMachine in cfg.Initial. The configuration is referenced,
// not copied, and must not be modified while machines use it. New does not
// validate cfg; use Config.Validate for that.
func New(cfg *Config, opts ...Option) (*StateMachine, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	m := &StateMachine{
		config: cfg,
		active: cfg.Initial,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Config returns the configuration the machine runs against.
func (m *StateMachine) Config() *Config {
	return m.config
}

// State returns the active state.
func (m *StateMachine) State() StateID {
	return m.active
}

// ChangeState moves directly to state. It fails with ErrInvalidState, leaving
// the machine untouched, when state is not configured.
func (m *StateMachine) ChangeState(state StateID) error {
	if !m.config.States.Has(state) {
		m.logger.Debug("rejected state change", "from", m.active, "to", state)
		return fmt.Errorf("change to %q: %w", state, ErrInvalidState)
	}
	m.moveTo(state)
	return nil
}

// Trigger follows the transition of the active state for event. It fails with
// ErrUnknownTransition when the active state has no such transition.
func (m *StateMachine) Trigger(event EventID) error {
	current, _ := m.config.States.Get(m.active)
	to, ok := current.Target(event)
	if !ok {
		m.logger.Debug("rejected event", "state", m.active, "event", event)
		return fmt.Errorf("event %q in state %q: %w", event, m.active, ErrUnknownTransition)
	}
	if !m.config.States.Has(to) {
		m.logger.Debug("rejected event", "state", m.active, "event", event, "to", to)
		return fmt.Errorf("event %q in state %q targets %q: %w", event, m.active, to, ErrInvalidState)
	}

	m.moveTo(to)
	return nil
}

func (m *StateMachine) moveTo(state StateID) {
	m.logger.Debug("state change", "from", m.active, "to", state)
	m.history.recordTransition(m.active)
	m.active = state
}

// Reset returns to the initial state and forgets the undo step. A pending
// redo survives, so Redo right after Reset restores the state saved by the
// last Undo.
func (m *StateMachine) Reset() {
	m.logger.Debug("reset", "from", m.active, "to", m.config.Initial)
	m.active = m.config.Initial
	m.history.forgetLast()
}

// States returns every configured state in configuration order. The result
// is empty, not nil, when no states are configured.
func (m *StateMachine) States() []StateID {
	return m.config.States.IDs()
}

// StatesFor returns, in configuration order, the states that have a
// transition for event. The result is empty, not nil, when none match.
func (m *StateMachine) StatesFor(event EventID) []StateID {
	matches := []StateID{}
	for _, id := range m.config.States.order {
		if _, ok := m.config.States.byID[id].Target(event); ok {
			matches = append(matches, id)
		}
	}
	return matches
}

// CanTrigger reports whether Trigger(event) would succeed.
func (m *StateMachine) CanTrigger(event EventID) bool {
	current, _ := m.config.States.Get(m.active)
	to, ok := current.Target(event)
	return ok && m.config.States.Has(to)
}

// Events returns the events the active state has transitions for, sorted.
func (m *StateMachine) Events() []EventID {
	current, ok := m.config.States.Get(m.active)
	if !ok {
		return []EventID{}
	}
	return sortedEvents(current.Transitions)
}

// Undo goes back to the state left by the most recent ChangeState or Trigger.
// It reports false, doing nothing, when there is no such step. Only one Undo
// can succeed per transition.
func (m *StateMachine) Undo() bool {
	to, ok := m.history.undo(m.active)
	if !ok {
		return false
	}
	m.logger.Debug("undo", "from", m.active, "to", to)
	m.active = to
	return true
}

// Redo returns to the state left by the most recent Undo. It reports false,
// doing nothing, when no redo is pending. Redo does not restore the undo
// step.
func (m *StateMachine) Redo() bool {
	to, ok := m.history.redoTarget()
	if !ok {
		return false
	}
	m.logger.Debug("redo", "from", m.active, "to", to)
	m.active = to
	return true
}

// CanUndo reports whether Undo would succeed.
func (m *StateMachine) CanUndo() bool {
	return m.history.last.set
}

// CanRedo reports whether Redo would succeed.
func (m *StateMachine) CanRedo() bool {
	return m.history.redo.set
}

// ClearHistory discards both the undo step and any pending redo.
func (m *StateMachine) ClearHistory() {
	m.history.clear()
}

// String implements fmt.Stringer.
func (m *StateMachine) String() string {
	return fmt.Sprintf("StateMachine{state: %q, states: %d}", m.active, m.config.States.Len())
}
