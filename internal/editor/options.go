package editor

import "github.com/dshills/editbridge/internal/log"

// DefaultMaxUndoLevels bounds the undo and redo stacks.
const DefaultMaxUndoLevels = 50

// Option configures a Session during creation.
type Option func(*Session)

// WithSeed pre-populates the document store. The lexicographically smallest
// path becomes the active file.
func WithSeed(files map[string]string) Option {
	return func(s *Session) {
		s.seed = files
	}
}

// WithMaxUndoLevels sets the capacity of the undo and redo stacks.
func WithMaxUndoLevels(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxUndo = n
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}
