package docstore

import "errors"

// Errors returned by store operations.
var (
	// ErrNotFound indicates no document exists at the given path.
	ErrNotFound = errors.New("document not found")

	// ErrAlreadyExists indicates a document already exists at the given path.
	ErrAlreadyExists = errors.New("document already exists")
)
