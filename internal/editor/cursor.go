package editor

// Cursor returns the current caret position.
func (s *Session) Cursor() Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// SetCursor moves the caret. Moving the caret always collapses any active
// selection, mirroring normal editor semantics. The position is stored as
// given; validation belongs to the calling tool layer.
func (s *Session) SetCursor(pos Position) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.cursor = pos
	s.selection = nil
	st := s.stateLocked()
	s.mu.Unlock()

	s.publishState(st)
}

// Selection returns a copy of the current selection, or nil if none. A nil
// selection is distinct from a zero-length one.
func (s *Session) Selection() *Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return nil
	}
	sel := *s.selection
	return &sel
}

// SetSelection sets the selection span and, as a side effect, moves the
// cursor to end. Start and End are stored exactly as given; ordering is
// not enforced.
func (s *Session) SetSelection(start, end Position) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.selection = &Selection{Start: start, End: end}
	s.cursor = end
	st := s.stateLocked()
	s.mu.Unlock()

	s.publishState(st)
}

// ClearSelection drops the selection without moving the cursor.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.selection = nil
	st := s.stateLocked()
	s.mu.Unlock()

	s.publishState(st)
}

// SelectedText returns the text covered by the current selection. The
// second return is false when there is no active file or no selection.
//
// A single-line selection yields the substring [start.col-1, end.col-1) of
// that line. A multi-line selection concatenates the suffix of the start
// line, all intervening full lines, and the prefix of the end line, joined
// by \n. An inverted pair is used exactly as stored; the clamped prefix/
// suffix arithmetic yields garbled-but-defined output.
func (s *Session) SelectedText() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedTextLocked()
}

func (s *Session) selectedTextLocked() (string, bool) {
	if s.active == "" || s.selection == nil {
		return "", false
	}
	content, err := s.store.Get(s.active)
	if err != nil {
		return "", false
	}

	lines := splitLines(content)
	sel := s.selection

	lineAt := func(n int) string {
		if n < 1 || n > len(lines) {
			return ""
		}
		return lines[n-1]
	}

	if sel.Start.Line == sel.End.Line {
		line := lineAt(sel.Start.Line)
		return substrRunes(line, sel.Start.Column-1, sel.End.Column-1), true
	}

	parts := []string{suffixRunes(lineAt(sel.Start.Line), sel.Start.Column-1)}
	for n := sel.Start.Line + 1; n < sel.End.Line; n++ {
		parts = append(parts, lineAt(n))
	}
	parts = append(parts, prefixRunes(lineAt(sel.End.Line), sel.End.Column-1))
	return joinLines(parts), true
}
