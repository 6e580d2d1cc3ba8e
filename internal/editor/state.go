package editor

import (
	"github.com/tidwall/sjson"
)

// State is an on-demand snapshot of the whole session, handed to change
// subscribers. The maps are copies; mutating them has no effect on the
// session.
type State struct {
	ActiveFile string            `json:"activeFile"`
	Files      map[string]string `json:"files"`
	Languages  map[string]string `json:"languages"`
	Cursor     Position          `json:"cursor"`
	Selection  *Selection        `json:"selection"`
	Tree       *TreeNode         `json:"projectTree"`
	Dirty      bool              `json:"isDirty"`
}

// State returns a fresh snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	var sel *Selection
	if s.selection != nil {
		cp := *s.selection
		sel = &cp
	}
	return State{
		ActiveFile: s.active,
		Files:      s.store.Contents(),
		Languages:  s.store.Languages(),
		Cursor:     s.cursor,
		Selection:  sel,
		Tree:       BuildTree(s.store.Paths()),
		Dirty:      s.dirty,
	}
}

// Context is the read-only projection consumed by an external command/tool
// layer translating high-level intents into session calls.
type Context struct {
	ActiveFile    string
	ActiveContent string
	Cursor        Position
	Selection     *Selection
	SelectedText  string
	HasSelection  bool
	Tree          *TreeNode
	FileCount     int
	Language      string
}

// Context returns the agent-facing projection of the session.
func (s *Session) Context() Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sel *Selection
	if s.selection != nil {
		cp := *s.selection
		sel = &cp
	}

	content := ""
	language := ""
	if s.active != "" {
		content, _ = s.store.Get(s.active)
		language, _ = s.store.Language(s.active)
	}

	text, ok := s.selectedTextLocked()

	return Context{
		ActiveFile:    s.active,
		ActiveContent: content,
		Cursor:        s.cursor,
		Selection:     sel,
		SelectedText:  text,
		HasSelection:  ok,
		Tree:          BuildTree(s.store.Paths()),
		FileCount:     s.store.Len(),
		Language:      language,
	}
}

// ContextJSON renders the agent context as JSON. Absent selection and
// selected text serialize as null, matching what tool layers expect.
func (s *Session) ContextJSON() ([]byte, error) {
	ctx := s.Context()

	out := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, value)
	}

	set("activeFile", ctx.ActiveFile)
	set("activeContent", ctx.ActiveContent)
	set("cursor.line", ctx.Cursor.Line)
	set("cursor.column", ctx.Cursor.Column)
	if ctx.Selection != nil {
		set("selection.start.line", ctx.Selection.Start.Line)
		set("selection.start.column", ctx.Selection.Start.Column)
		set("selection.end.line", ctx.Selection.End.Line)
		set("selection.end.column", ctx.Selection.End.Column)
	} else {
		set("selection", nil)
	}
	if ctx.HasSelection {
		set("selectedText", ctx.SelectedText)
	} else {
		set("selectedText", nil)
	}
	set("projectTree", ctx.Tree)
	set("fileCount", ctx.FileCount)
	set("language", ctx.Language)

	if err != nil {
		return nil, err
	}
	return out, nil
}
