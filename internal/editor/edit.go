package editor

import (
	"fmt"
	"strings"
)

// InsertAt splices text into the active document at pos.
//
// Embedded newlines in text produce new lines: the operation is a
// string-level splice followed by a resplit, not a line-array splice. A
// line beyond the current line count grows the document with empty-line
// padding and appends text as a new line. A line below 1 is a guarded
// silent no-op — which still pushes an undo snapshot and notifies, a
// carried quirk of the engine.
func (s *Session) InsertAt(pos Position, text string) error {
	s.mu.Lock()
	content, err := s.activeContentLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.beginMutation()

	lines := splitLines(content)
	switch {
	case pos.Line >= 1 && pos.Line <= len(lines):
		lines[pos.Line-1] = spliceLine(lines[pos.Line-1], pos.Column-1, text)
		s.setActiveContentLocked(joinLines(lines))
		s.cursor = cursorAfterInsert(pos, text)
	case pos.Line > len(lines):
		// Growth by padding, not an error.
		for len(lines) < pos.Line-1 {
			lines = append(lines, "")
		}
		lines = append(lines, text)
		s.setActiveContentLocked(joinLines(lines))
		s.cursor = cursorAfterInsert(pos, text)
	default:
		// pos.Line < 1: no effect.
	}

	st := s.stateLocked()
	s.mu.Unlock()

	s.publishState(st)
	return nil
}

// InsertAtCursor inserts text at the current caret position.
func (s *Session) InsertAtCursor(text string) error {
	s.mu.Lock()
	cur := s.cursor
	s.mu.Unlock()
	return s.InsertAt(cur, text)
}

// ReplaceSelection replaces the selected span with text. Without an active
// selection it degrades to InsertAtCursor and never errors on that account.
func (s *Session) ReplaceSelection(text string) error {
	s.mu.Lock()
	sel := s.selection
	s.mu.Unlock()

	if sel == nil {
		return s.InsertAtCursor(text)
	}
	return s.ReplaceRange(sel.Start, sel.End, text)
}

// ReplaceRange replaces the span [start, end) with text. The lines from
// start.Line through end.Line inclusive are spliced with the lines of
// prefix+text+suffix. Out-of-range line numbers make the operation a
// guarded silent no-op; no error is raised and the undo snapshot and
// notification still happen.
func (s *Session) ReplaceRange(start, end Position, text string) error {
	s.mu.Lock()
	content, err := s.activeContentLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.beginMutation()
	s.replaceRangeLocked(content, start, end, text)

	st := s.stateLocked()
	s.mu.Unlock()

	s.publishState(st)
	return nil
}

func (s *Session) replaceRangeLocked(content string, start, end Position, text string) {
	lines := splitLines(content)
	if start.Line < 1 || end.Line > len(lines) || start.Line > end.Line {
		return
	}

	before := prefixRunes(lines[start.Line-1], start.Column-1)
	after := suffixRunes(lines[end.Line-1], end.Column-1)
	seg := splitLines(before + text + after)

	newLines := make([]string, 0, len(lines)-(end.Line-start.Line+1)+len(seg))
	newLines = append(newLines, lines[:start.Line-1]...)
	newLines = append(newLines, seg...)
	newLines = append(newLines, lines[end.Line:]...)

	s.setActiveContentLocked(joinLines(newLines))
	s.selection = nil
	s.cursor = cursorAfterInsert(start, text)
}

// ReplaceAll performs naive whole-content substring replacement on the
// active document only. The search pattern is literal, not a regexp. The
// cursor is clamped back into range afterwards.
func (s *Session) ReplaceAll(search, replace string) error {
	s.mu.Lock()
	content, err := s.activeContentLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.beginMutation()

	s.setActiveContentLocked(strings.ReplaceAll(content, search, replace))
	s.clampCursorLocked()

	st := s.stateLocked()
	s.mu.Unlock()

	s.publishState(st)
	return nil
}

// DeleteLine removes a single line.
func (s *Session) DeleteLine(n int) error {
	return s.DeleteLines(n, n)
}

// DeleteLines removes lines [start, end] inclusive when the range is valid;
// otherwise it is a guarded silent no-op (snapshot and notification still
// happen). The cursor lands at column 1 of the line that replaced the
// deleted span, clamped to the shrunken document.
func (s *Session) DeleteLines(start, end int) error {
	s.mu.Lock()
	content, err := s.activeContentLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.beginMutation()

	lines := splitLines(content)
	if start >= 1 && start <= end && end <= len(lines) {
		newLines := make([]string, 0, len(lines)-(end-start+1))
		newLines = append(newLines, lines[:start-1]...)
		newLines = append(newLines, lines[end:]...)
		if len(newLines) == 0 {
			newLines = []string{""}
		}
		s.setActiveContentLocked(joinLines(newLines))

		line := start
		if line > len(newLines) {
			line = len(newLines)
		}
		if line < 1 {
			line = 1
		}
		s.cursor = Position{Line: line, Column: 1}
	}

	st := s.stateLocked()
	s.mu.Unlock()

	s.publishState(st)
	return nil
}

// clampCursorLocked pulls the cursor back inside the active document.
func (s *Session) clampCursorLocked() {
	content, err := s.store.Get(s.active)
	if err != nil {
		return
	}
	lines := splitLines(content)
	if s.cursor.Line < 1 {
		s.cursor.Line = 1
	}
	if s.cursor.Line > len(lines) {
		s.cursor.Line = len(lines)
	}
	maxCol := runeLen(lines[s.cursor.Line-1]) + 1
	if s.cursor.Column < 1 {
		s.cursor.Column = 1
	}
	if s.cursor.Column > maxCol {
		s.cursor.Column = maxCol
	}
}

// EditKind identifies a batch edit variant.
type EditKind string

// Batch edit variants.
const (
	EditInsert  EditKind = "insert"
	EditDelete  EditKind = "delete"
	EditReplace EditKind = "replace"
)

// Edit is one operation in a batch. The fields used depend on Kind:
// insert uses Position and Text, replace uses Start, End, and Text, and
// delete uses StartLine and EndLine.
type Edit struct {
	Kind      EditKind
	Position  Position
	Start     Position
	End       Position
	StartLine int
	EndLine   int
	Text      string
}

// ApplyEdits dispatches a sequence of edits to the primitive operations in
// order. Each sub-operation produces its own undo snapshot; a caller that
// wants one atomic undo step must not use this path.
func (s *Session) ApplyEdits(edits []Edit) error {
	for _, e := range edits {
		var err error
		switch e.Kind {
		case EditInsert:
			err = s.InsertAt(e.Position, e.Text)
		case EditReplace:
			err = s.ReplaceRange(e.Start, e.End, e.Text)
		case EditDelete:
			err = s.DeleteLines(e.StartLine, e.EndLine)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownEditKind, e.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
