package editor

import "github.com/dshills/editbridge/internal/event"

// Undo reverts to the most recent snapshot. The current full state moves
// onto the redo stack. Returns false when there is nothing to undo.
//
// Cursor and selection are deliberately left untouched: after an undo the
// caret keeps its pre-operation value even though the restored content may
// be shorter, so it can point past end-of-line. That is a carried quirk of
// the engine, pinned by tests.
func (s *Session) Undo() bool {
	s.mu.Lock()
	if s.closed || len(s.undoStack) == 0 {
		s.mu.Unlock()
		return false
	}

	s.pushRedo(snapshot{files: s.store.Snapshot(), activeFile: s.active})

	top := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.store.Restore(top.files)
	s.active = top.activeFile

	st := s.stateLocked()
	s.mu.Unlock()

	s.bus.Publish(event.TopicHistoryApplied, "undo")
	s.publishState(st)
	return true
}

// Redo is the mirror image of Undo. Returns false when there is nothing to
// redo.
func (s *Session) Redo() bool {
	s.mu.Lock()
	if s.closed || len(s.redoStack) == 0 {
		s.mu.Unlock()
		return false
	}

	s.pushUndo(snapshot{files: s.store.Snapshot(), activeFile: s.active})

	top := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.store.Restore(top.files)
	s.active = top.activeFile

	st := s.stateLocked()
	s.mu.Unlock()

	s.bus.Publish(event.TopicHistoryApplied, "redo")
	s.publishState(st)
	return true
}

// CanUndo reports whether the undo stack is non-empty.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undoStack) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redoStack) > 0
}

// UndoDepth returns the number of entries on the undo stack.
func (s *Session) UndoDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undoStack)
}

// RedoDepth returns the number of entries on the redo stack.
func (s *Session) RedoDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redoStack)
}
