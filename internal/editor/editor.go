package editor

import (
	"sync"

	"github.com/dshills/editbridge/internal/docstore"
	"github.com/dshills/editbridge/internal/event"
	"github.com/dshills/editbridge/internal/log"
)

// Session is the edit engine: the only component allowed to mutate cursor,
// selection, and document content, and the owner of undo/redo.
//
// A Session assumes a single logical caller at a time; every operation runs
// to completion before returning. The internal mutex makes concurrent
// misuse safe but provides no ordering guarantees.
type Session struct {
	mu sync.Mutex

	store  *docstore.Store
	active string

	cursor    Position
	selection *Selection
	dirty     bool

	undoStack []snapshot
	redoStack []snapshot
	maxUndo   int

	bus    *event.Bus
	log    *log.Logger
	seed   map[string]string
	closed bool
}

// snapshot is a full copy of the document map and active-file pointer,
// used as an undo/redo unit.
type snapshot struct {
	files      docstore.Snapshot
	activeFile string
}

// New creates a Session with the given options.
func New(opts ...Option) *Session {
	s := &Session{
		store:   docstore.New(),
		cursor:  Position{Line: 1, Column: 1},
		maxUndo: DefaultMaxUndoLevels,
		bus:     event.NewBus(),
		log:     log.Null,
	}

	for _, opt := range opts {
		opt(s)
	}

	if len(s.seed) > 0 {
		for path, content := range s.seed {
			_ = s.store.Create(path, content, "")
		}
		// Map iteration is unordered; the sorted-first path is the
		// deterministic stand-in for "first inserted".
		s.active = s.store.Paths()[0]
		s.seed = nil
	}

	s.log.Debug("session created: %d files, active=%q", s.store.Len(), s.active)
	return s
}

// Close disposes the session, cancelling all subscriptions. Mutating calls
// after Close return ErrClosed.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.bus.Clear()
	s.log.Debug("session closed")
}

// Bus returns the session's event bus for topic-level subscriptions.
func (s *Session) Bus() *event.Bus {
	return s.bus
}

// OnChange registers a listener invoked synchronously, in registration
// order, with a fresh State after every state-changing call. The returned
// function unsubscribes the listener.
func (s *Session) OnChange(fn func(State)) func() {
	sub := s.bus.Subscribe(event.TopicStateChanged, func(e event.Event) {
		if st, ok := e.Payload.(State); ok {
			fn(st)
		}
	})
	return sub.Cancel
}

// ActiveFile returns the path of the active document, or "" if none.
func (s *Session) ActiveFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// IsDirty reports whether any mutation has occurred.
func (s *Session) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// FileCount returns the number of documents.
func (s *Session) FileCount() int {
	return s.store.Len()
}

// Paths returns the sorted document paths.
func (s *Session) Paths() []string {
	return s.store.Paths()
}

// GetFile returns the content of the document at path.
func (s *Session) GetFile(path string) (string, error) {
	return s.store.Get(path)
}

// WriteFile overwrites (or creates) the document at path. The language tag
// of an existing document is untouched.
func (s *Session) WriteFile(path, content string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.beginMutation()
	s.store.Set(path, content)
	if s.active == "" {
		s.active = path
		s.cursor = Position{Line: 1, Column: 1}
	}
	st := s.stateLocked()
	s.mu.Unlock()

	s.publishState(st)
	return nil
}

// CreateFile adds a new document. An empty language selects extension-based
// detection. Fails with ErrAlreadyExists if the path is present.
func (s *Session) CreateFile(path, content, language string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.store.Exists(path) {
		s.mu.Unlock()
		return ErrAlreadyExists
	}
	s.beginMutation()
	_ = s.store.Create(path, content, language)
	if s.active == "" {
		s.active = path
		s.cursor = Position{Line: 1, Column: 1}
	}
	st := s.stateLocked()
	s.mu.Unlock()

	s.bus.Publish(event.TopicDocumentCreated, path)
	s.publishState(st)
	s.log.Debug("created %q", path)
	return nil
}

// DeleteFile removes the document at path. If the active document is
// deleted, some remaining document (the sorted-first path) becomes active,
// with cursor reset and selection cleared.
func (s *Session) DeleteFile(path string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if !s.store.Exists(path) {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.beginMutation()
	_ = s.store.Delete(path)
	if s.active == path {
		s.active = ""
		if paths := s.store.Paths(); len(paths) > 0 {
			s.active = paths[0]
		}
		s.cursor = Position{Line: 1, Column: 1}
		s.selection = nil
	}
	st := s.stateLocked()
	s.mu.Unlock()

	s.bus.Publish(event.TopicDocumentDeleted, path)
	s.publishState(st)
	s.log.Debug("deleted %q", path)
	return nil
}

// RenameFile moves a document; content and language tag follow, and so does
// the active pointer. An existing document at newPath is overwritten.
func (s *Session) RenameFile(oldPath, newPath string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if !s.store.Exists(oldPath) {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.beginMutation()
	_ = s.store.Rename(oldPath, newPath)
	if s.active == oldPath {
		s.active = newPath
	}
	st := s.stateLocked()
	s.mu.Unlock()

	s.bus.Publish(event.TopicDocumentRenamed, [2]string{oldPath, newPath})
	s.publishState(st)
	return nil
}

// SetActiveFile switches the active document, resetting the cursor to
// {1,1} and forfeiting any in-progress selection. Not an undoable edit.
func (s *Session) SetActiveFile(path string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if !s.store.Exists(path) {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.active = path
	s.cursor = Position{Line: 1, Column: 1}
	s.selection = nil
	st := s.stateLocked()
	s.mu.Unlock()

	s.publishState(st)
	return nil
}

// --- internal helpers; callers must hold s.mu ---

// beginMutation pushes the pre-mutation snapshot onto the undo stack,
// clears the redo stack, and marks the session dirty. Guarded no-op
// operations call this too: the redundant snapshot on a no-op is part of
// the engine's observable behavior.
func (s *Session) beginMutation() {
	s.pushUndo(snapshot{files: s.store.Snapshot(), activeFile: s.active})
	s.redoStack = nil
	s.dirty = true
}

func (s *Session) pushUndo(sn snapshot) {
	s.undoStack = append(s.undoStack, sn)
	if len(s.undoStack) > s.maxUndo {
		s.undoStack = s.undoStack[len(s.undoStack)-s.maxUndo:]
	}
}

func (s *Session) pushRedo(sn snapshot) {
	s.redoStack = append(s.redoStack, sn)
	if len(s.redoStack) > s.maxUndo {
		s.redoStack = s.redoStack[len(s.redoStack)-s.maxUndo:]
	}
}

// activeContentLocked returns the active document's content.
func (s *Session) activeContentLocked() (string, error) {
	if s.closed {
		return "", ErrClosed
	}
	if s.active == "" {
		return "", ErrNoActiveFile
	}
	return s.store.Get(s.active)
}

// setActiveContentLocked overwrites the active document's content.
func (s *Session) setActiveContentLocked(content string) {
	s.store.Set(s.active, content)
}

// publishState delivers the state snapshot to subscribers. Must be called
// without holding s.mu so handlers may call back into the session.
func (s *Session) publishState(st State) {
	s.bus.Publish(event.TopicStateChanged, st)
}
