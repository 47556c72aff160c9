package fsmx

import "sync"

// SyncMachine guards a StateMachine with a single mutex so one instance can
// be shared between goroutines. Every call is applied atomically.
type SyncMachine struct {
	mu sync.Mutex
	m  *StateMachine
}

// NewSync creates a StateMachine and wraps it in a SyncMachine.
func NewSync(cfg *Config, opts ...Option) (*SyncMachine, error) {
	m, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncMachine{m: m}, nil
}

// State returns the active state.
func (s *SyncMachine) State() StateID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.State()
}

// ChangeState moves directly to state.
func (s *SyncMachine) ChangeState(state StateID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.ChangeState(state)
}

// Trigger follows the transition of the active state for event.
func (s *SyncMachine) Trigger(event EventID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Trigger(event)
}

// Reset returns to the initial state and forgets the undo step.
func (s *SyncMachine) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Reset()
}

// States returns every configured state in configuration order.
func (s *SyncMachine) States() []StateID {
	// The config is read-only, no lock needed.
	return s.m.States()
}

// StatesFor returns the states that have a transition for event.
func (s *SyncMachine) StatesFor(event EventID) []StateID {
	return s.m.StatesFor(event)
}

// Undo goes back one step.
func (s *SyncMachine) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Undo()
}

// Redo reapplies the step removed by the last Undo.
func (s *SyncMachine) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Redo()
}

// ClearHistory discards the undo step and any pending redo.
func (s *SyncMachine) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.ClearHistory()
}

// CanTrigger reports whether Trigger(event) would succeed.
func (s *SyncMachine) CanTrigger(event EventID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.CanTrigger(event)
}

// Events returns the events the active state has transitions for, sorted.
func (s *SyncMachine) Events() []EventID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Events()
}

// CanUndo reports whether Undo would succeed.
func (s *SyncMachine) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (s *SyncMachine) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.CanRedo()
}

// Config returns the configuration the machine runs against.
func (s *SyncMachine) Config() *Config {
	return s.m.Config()
}

// String implements fmt.Stringer.
func (s *SyncMachine) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.String()
}

// Do runs fn with exclusive access to the underlying machine, for sequences
// that must not interleave with other callers. Do does not roll back: calls
// that succeeded before fn returns an error stay applied.
func (s *SyncMachine) Do(fn func(m *StateMachine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.m)
}
