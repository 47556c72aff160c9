// Package fsmx provides a small, synchronous finite state machine with a
// single active state, event driven transitions and one level of undo/redo.
//
// A Config describes the states and, per state, which event leads to which
// destination. A Config is never mutated by the engine and may be shared by
// any number of StateMachine instances:
//
//	cfg, err := fsmx.NewConfigBuilder("off").
//		State("off").On("power", "on").
//		State("on").On("power", "off").
//		Build()
//	if err != nil {
//		return err
//	}
//	m, err := fsmx.New(cfg)
//	if err != nil {
//		return err
//	}
//	_ = m.Trigger("power") // "on"
//	m.Undo()               // "off"
//	m.Redo()               // "on"
//
// History holds exactly one step back and one step forward. Reset and the
// transition methods leave a pending redo in place; only ClearHistory and a
// successful Redo discard it.
//
// StateMachine is not safe for concurrent use. Wrap it in a SyncMachine when
// an instance is shared between goroutines.
package fsmx
