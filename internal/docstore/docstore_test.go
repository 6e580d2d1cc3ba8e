package docstore

import (
	"errors"
	"testing"
)

func TestCreateAndGetRoundTrip(t *testing.T) {
	s := New()

	if err := s.Create("/a.ts", "let x = 1;", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := s.Get("/a.ts")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "let x = 1;" {
		t.Errorf("expected content round trip, got %q", got)
	}
}

func TestCreateDuplicateFails(t *testing.T) {
	s := New()

	if err := s.Create("/b.ts", "first", ""); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	err := s.Create("/b.ts", "second", "")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// The store must be unchanged.
	got, _ := s.Get("/b.ts")
	if got != "first" {
		t.Errorf("store changed by failed create: %q", got)
	}
}

func TestGetMissing(t *testing.T) {
	s := New()
	_, err := s.Get("/missing.go")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetOverwritesWithoutChangingLanguage(t *testing.T) {
	s := New()
	if err := s.Create("/a.py", "x = 1", "python"); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	s.Set("/a.py", "x = 2")

	got, _ := s.Get("/a.py")
	if got != "x = 2" {
		t.Errorf("expected overwrite, got %q", got)
	}
	lang, _ := s.Language("/a.py")
	if lang != "python" {
		t.Errorf("language changed by Set: %q", lang)
	}
}

func TestSetCreatesWithDetectedLanguage(t *testing.T) {
	s := New()
	s.Set("/new.rs", "fn main() {}")

	lang, ok := s.Language("/new.rs")
	if !ok {
		t.Fatal("expected document to exist")
	}
	if lang != "rust" {
		t.Errorf("expected rust, got %q", lang)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	_ = s.Create("/a.go", "", "")

	if err := s.Delete("/a.go"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if s.Exists("/a.go") {
		t.Error("document still present after delete")
	}
	if err := s.Delete("/a.go"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRenameMovesContentAndLanguage(t *testing.T) {
	s := New()
	_ = s.Create("/old.ts", "content", "")

	if err := s.Rename("/old.ts", "/new.ts"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if s.Exists("/old.ts") {
		t.Error("old path still present after rename")
	}
	got, err := s.Get("/new.ts")
	if err != nil || got != "content" {
		t.Errorf("expected content at new path, got %q, %v", got, err)
	}
	lang, _ := s.Language("/new.ts")
	if lang != "typescript" {
		t.Errorf("language did not follow rename: %q", lang)
	}
}

func TestRenameMissingFails(t *testing.T) {
	s := New()
	if err := s.Rename("/nope", "/other"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRenameOverwritesExistingTarget(t *testing.T) {
	s := New()
	_ = s.Create("/a", "from a", "")
	_ = s.Create("/b", "from b", "")

	if err := s.Rename("/a", "/b"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	got, _ := s.Get("/b")
	if got != "from a" {
		t.Errorf("expected overwrite of target, got %q", got)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 document, got %d", s.Len())
	}
}

func TestPathsSorted(t *testing.T) {
	s := New()
	_ = s.Create("/c.go", "", "")
	_ = s.Create("/a.go", "", "")
	_ = s.Create("/b.go", "", "")

	paths := s.Paths()
	want := []string{"/a.go", "/b.go", "/c.go"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %d", len(want), len(paths))
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := New()
	_ = s.Create("/a.go", "package a", "")

	snap := s.Snapshot()

	s.Set("/a.go", "package b")
	_ = s.Create("/b.go", "package c", "")

	s.Restore(snap)

	if s.Len() != 1 {
		t.Fatalf("expected 1 document after restore, got %d", s.Len())
	}
	got, _ := s.Get("/a.go")
	if got != "package a" {
		t.Errorf("expected restored content, got %q", got)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := New()
	_ = s.Create("/a.go", "original", "")

	snap := s.Snapshot()
	s.Set("/a.go", "mutated")

	if snap["/a.go"].Content != "original" {
		t.Errorf("snapshot affected by later mutation: %q", snap["/a.go"].Content)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/src/main.ts", "typescript"},
		{"/src/app.py", "python"},
		{"/main.go", "go"},
		{"/lib/util.js", "javascript"},
		{"/comp.tsx", "typescriptreact"},
		{"/style.css", "css"},
		{"/init.lua", "lua"},
		{"/README.md", "markdown"},
		{"/Makefile", "plaintext"},
		{"/dir.with.dots/noext", "plaintext"},
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.path); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
