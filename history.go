package fsmx

// slot holds at most one state ID. An empty StateID is a legal value, so
// presence is tracked separately.
type slot struct {
	id  StateID
	set bool
}

func (s *slot) put(id StateID) {
	s.id, s.set = id, true
}

func (s *slot) take() (StateID, bool) {
	id, ok := s.id, s.set
	*s = slot{}
	return id, ok
}

// history is the one-level undo/redo record of a StateMachine.
// last is the state left by the most recent transition; redo is the state
// left by the most recent undo.
type history struct {
	last slot
	redo slot
}

// recordTransition remembers from as the undo target. A pending redo is
// intentionally left alone.
func (h *history) recordTransition(from StateID) {
	h.last.put(from)
}

// undo returns the state to go back to and remembers current for redo.
func (h *history) undo(current StateID) (StateID, bool) {
	if !h.last.set {
		return "", false
	}
	to, _ := h.last.take()
	h.redo.put(current)
	return to, true
}

// redoTarget consumes the pending redo state.
func (h *history) redoTarget() (StateID, bool) {
	return h.redo.take()
}

func (h *history) forgetLast() {
	h.last = slot{}
}

func (h *history) clear() {
	*h = history{}
}
