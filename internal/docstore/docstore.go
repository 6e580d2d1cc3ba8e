// Package docstore provides in-memory document management for the editor.
//
// The store is the exclusive owner of the path→content and path→language
// mappings. It performs no change notification; that responsibility belongs
// to the editor session driving it.
package docstore

import (
	"sort"
	"sync"
)

// Document represents a single named text buffer.
type Document struct {
	// Path is the unique key for the document.
	Path string

	// Content is the full text. Logically an ordered sequence of lines
	// split on \n; an empty document has exactly one empty line.
	Content string

	// Language is the language identifier (e.g., "go", "typescript").
	Language string
}

// Store manages documents keyed by path.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		docs: make(map[string]*Document),
	}
}

// Get returns the content of the document at path.
func (s *Store) Get(path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[path]
	if !ok {
		return "", ErrNotFound
	}
	return doc.Content, nil
}

// Set overwrites the content at path, leaving the language tag untouched.
// A document is created if the path is absent, with language detected from
// the path extension.
func (s *Store) Set(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, ok := s.docs[path]; ok {
		doc.Content = content
		return
	}
	s.docs[path] = &Document{
		Path:     path,
		Content:  content,
		Language: DetectLanguage(path),
	}
}

// Create adds a new document. It fails with ErrAlreadyExists if the path is
// present. An empty language selects extension-based detection.
func (s *Store) Create(path, content, language string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[path]; ok {
		return ErrAlreadyExists
	}
	if language == "" {
		language = DetectLanguage(path)
	}
	s.docs[path] = &Document{
		Path:     path,
		Content:  content,
		Language: language,
	}
	return nil
}

// Delete removes the document at path.
func (s *Store) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[path]; !ok {
		return ErrNotFound
	}
	delete(s.docs, path)
	return nil
}

// Rename moves a document to a new path. The content and language tag move
// with it. An existing document at newPath is overwritten; callers that
// care must check first.
func (s *Store) Rename(oldPath, newPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[oldPath]
	if !ok {
		return ErrNotFound
	}
	delete(s.docs, oldPath)
	doc.Path = newPath
	s.docs[newPath] = doc
	return nil
}

// Exists reports whether a document is present at path.
func (s *Store) Exists(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.docs[path]
	return ok
}

// Language returns the language tag of the document at path.
func (s *Store) Language(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[path]
	if !ok {
		return "", false
	}
	return doc.Language, true
}

// Len returns the number of documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Paths returns all document paths in sorted order.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.docs))
	for p := range s.docs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Contents returns a copy of the path→content map.
func (s *Store) Contents() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.docs))
	for p, doc := range s.docs {
		out[p] = doc.Content
	}
	return out
}

// Languages returns a copy of the path→language map.
func (s *Store) Languages() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.docs))
	for p, doc := range s.docs {
		out[p] = doc.Language
	}
	return out
}

// Snapshot is a deep copy of the store contents, used as an undo/redo unit.
type Snapshot map[string]Document

// Snapshot returns a deep copy of all documents.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := make(Snapshot, len(s.docs))
	for p, doc := range s.docs {
		snap[p] = *doc
	}
	return snap
}

// Restore replaces the store contents with the given snapshot.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = make(map[string]*Document, len(snap))
	for p, doc := range snap {
		d := doc
		s.docs[p] = &d
	}
}
