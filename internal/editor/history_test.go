package editor

import (
	"fmt"
	"testing"
)

func TestUndoRestoresExactPreCallState(t *testing.T) {
	s := seedSession(t, map[string]string{"/a.txt": "original"})

	if err := s.InsertAt(Position{Line: 1, Column: 9}, " text"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if got := activeContent(t, s); got != "original text" {
		t.Fatalf("unexpected content %q", got)
	}

	if !s.Undo() {
		t.Fatal("expected undo to apply")
	}
	if got := activeContent(t, s); got != "original" {
		t.Errorf("undo did not restore pre-call state: %q", got)
	}
}

func TestUndoRedoAreExactInverses(t *testing.T) {
	s := seedSession(t, map[string]string{"/a.txt": "one\ntwo\nthree"})

	if err := s.DeleteLines(2, 2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	after := activeContent(t, s)

	if !s.Undo() {
		t.Fatal("expected undo to apply")
	}
	if got := activeContent(t, s); got != "one\ntwo\nthree" {
		t.Errorf("undo mismatch: %q", got)
	}

	if !s.Redo() {
		t.Fatal("expected redo to apply")
	}
	if got := activeContent(t, s); got != after {
		t.Errorf("redo mismatch: %q vs %q", got, after)
	}
}

func TestUndoEmptyStackIsNoOp(t *testing.T) {
	s := seedSession(t, map[string]string{"/a.txt": "x"})

	if s.Undo() {
		t.Error("expected undo on empty stack to report false")
	}
	if s.Redo() {
		t.Error("expected redo on empty stack to report false")
	}
}

func TestNewMutationClearsRedoStack(t *testing.T) {
	s := seedSession(t, map[string]string{"/a.txt": ""})

	_ = s.InsertAtCursor("a")
	_ = s.InsertAtCursor("b")
	s.Undo()

	if !s.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	_ = s.InsertAtCursor("c")

	if s.CanRedo() {
		t.Error("expected redo stack cleared by new mutation")
	}
}

func TestUndoStackBoundedEviction(t *testing.T) {
	s := New(WithSeed(map[string]string{"/a.txt": ""}), WithMaxUndoLevels(50))
	defer s.Close()

	for i := 0; i < 51; i++ {
		if err := s.InsertAtCursor("x"); err != nil {
			t.Fatalf("insert %d failed: %v", i, err)
		}
	}

	if s.UndoDepth() != 50 {
		t.Fatalf("expected undo depth capped at 50, got %d", s.UndoDepth())
	}

	undone := 0
	for s.Undo() {
		undone++
		if undone > 51 {
			t.Fatal("undo loop did not terminate")
		}
	}

	if undone != 50 {
		t.Errorf("expected exactly 50 undos, got %d", undone)
	}
	// The earliest snapshot was evicted: full restoration stops one edit
	// short of the original empty document.
	if got := activeContent(t, s); got != "x" {
		t.Errorf("expected earliest surviving state %q, got %q", "x", got)
	}
}

func TestUndoRestoresActiveFilePointer(t *testing.T) {
	s := seedSession(t, map[string]string{"/a.txt": "a", "/b.txt": "b"})

	if err := s.SetActiveFile("/b.txt"); err != nil {
		t.Fatalf("set active failed: %v", err)
	}
	if err := s.DeleteFile("/b.txt"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if s.ActiveFile() != "/a.txt" {
		t.Fatalf("expected fallback active /a.txt, got %q", s.ActiveFile())
	}

	if !s.Undo() {
		t.Fatal("expected undo to apply")
	}

	if s.ActiveFile() != "/b.txt" {
		t.Errorf("expected active pointer restored to /b.txt, got %q", s.ActiveFile())
	}
	if got, err := s.GetFile("/b.txt"); err != nil || got != "b" {
		t.Errorf("expected /b.txt restored, got %q, %v", got, err)
	}
}

func TestUndoLeavesCursorUnclamped(t *testing.T) {
	s := seedSession(t, map[string]string{"/a.txt": "hi"})

	if err := s.InsertAt(Position{Line: 1, Column: 3}, " there"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if cur := s.Cursor(); cur != (Position{Line: 1, Column: 9}) {
		t.Fatalf("unexpected cursor after insert: %+v", cur)
	}

	s.Undo()

	// Deliberately unclamped: the caret may point past end-of-line after
	// content shrinks. This pins the documented quirk.
	if cur := s.Cursor(); cur != (Position{Line: 1, Column: 9}) {
		t.Errorf("expected cursor untouched by undo, got %+v", cur)
	}
	if got := activeContent(t, s); got != "hi" {
		t.Errorf("expected restored content, got %q", got)
	}
}

func TestRedoStackBounded(t *testing.T) {
	s := New(WithSeed(map[string]string{"/a.txt": ""}), WithMaxUndoLevels(5))
	defer s.Close()

	for i := 0; i < 5; i++ {
		_ = s.InsertAtCursor(fmt.Sprintf("%d", i))
	}
	for s.Undo() {
	}

	if s.RedoDepth() > 5 {
		t.Errorf("redo depth %d exceeds bound", s.RedoDepth())
	}
}

func TestHistoryEntriesAreDeepCopies(t *testing.T) {
	s := seedSession(t, map[string]string{"/a.txt": "v1"})

	_ = s.InsertAtCursor("x") // snapshot of "v1" pushed
	_ = s.ReplaceAll("xv1", "v2")

	s.Undo()
	s.Undo()

	if got := activeContent(t, s); got != "v1" {
		t.Errorf("expected original content via deep-copied snapshots, got %q", got)
	}
}
