package editor

import (
	"errors"

	"github.com/dshills/editbridge/internal/docstore"
)

// Errors returned by session operations.
var (
	// ErrNotFound indicates no document exists at the given path.
	ErrNotFound = docstore.ErrNotFound

	// ErrAlreadyExists indicates a document already exists at the given path.
	ErrAlreadyExists = docstore.ErrAlreadyExists

	// ErrNoActiveFile indicates a content operation was attempted with no
	// active document.
	ErrNoActiveFile = errors.New("no active file")

	// ErrClosed indicates the session has been closed.
	ErrClosed = errors.New("session is closed")

	// ErrUnknownEditKind indicates a batch edit with an unrecognized kind.
	ErrUnknownEditKind = errors.New("unknown edit kind")

	// ErrInvalidEditPayload indicates a batch edit payload that could not
	// be decoded.
	ErrInvalidEditPayload = errors.New("invalid edit payload")
)
