// Package editor provides the virtual text-buffer and edit-history engine
// behind an agent-driven code editor.
//
// A Session is the single gateway through which every cursor move,
// selection change, insert/delete/replace, undo, and redo passes. It owns
// active-file selection, cursor and selection state, all position-addressed
// mutations against the document store, and the snapshot-based undo/redo
// stacks, and it notifies subscribers synchronously after every
// state-changing call.
//
// # Addressing
//
// Positions are 1-based: Line indexes the document's line array (content
// split on \n), Column is a rune offset within that line where
// len(line)+1 denotes the end-of-line position.
//
// # History
//
// Undo and redo operate on whole-state snapshots (a deep copy of the
// document map plus the active-file pointer), not operation inverses. Both
// stacks are capacity-bounded with FIFO eviction; a new mutation always
// clears the redo stack. The full-copy representation is deliberate: the
// bounded-depth copy semantics are an observable contract, and a smarter
// diff-based log would change eviction behavior.
//
// # Basic usage
//
//	sess := editor.New(editor.WithSeed(map[string]string{
//	    "/main.go": "package main\n",
//	}))
//	defer sess.Close()
//
//	sess.SetCursor(editor.Position{Line: 1, Column: 9})
//	_ = sess.InsertAtCursor("x")
//	sess.Undo()
//
// # Error taxonomy
//
// Lifecycle operations on missing or duplicate paths return ErrNotFound or
// ErrAlreadyExists. Position-addressed mutations with out-of-range line
// numbers are silent no-ops that still push an undo snapshot and fire a
// notification; inserting beyond the last line is not an error but grows
// the document with empty-line padding.
package editor
