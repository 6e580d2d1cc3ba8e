package script

import (
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/editbridge/internal/editor"
	"github.com/dshills/editbridge/internal/log"
)

// Host runs Lua scripts against an editor session.
type Host struct {
	mu      sync.Mutex
	L       *lua.LState
	session *editor.Session
	log     *log.Logger
	closed  bool
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithLogger sets the host logger.
func WithLogger(l *log.Logger) HostOption {
	return func(h *Host) {
		h.log = l
	}
}

// NewHost creates a sandboxed Lua host bound to the given session.
func NewHost(session *editor.Session, opts ...HostOption) *Host {
	h := &Host{
		session: session,
		log:     log.Null,
	}
	for _, opt := range opts {
		opt(h)
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)
	removeLoaders(L)

	h.L = L
	h.register()
	return h
}

// openSafeLibraries opens only safe Lua standard libraries.
// io, os, debug, and package stay closed: scripts operate on the in-memory
// session only, never on the host machine.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// removeLoaders strips the functions that could evaluate arbitrary chunks.
func removeLoaders(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoString executes a Lua chunk.
func (h *Host) DoString(src string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHostClosed
	}
	if err := h.L.DoString(src); err != nil {
		return &ScriptError{Err: err}
	}
	return nil
}

// DoFile executes a Lua script file.
func (h *Host) DoFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHostClosed
	}
	if err := h.L.DoFile(path); err != nil {
		return &ScriptError{Err: err}
	}
	return nil
}

// Close releases the Lua state. The Host must not be used afterwards.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}

// register installs the eb module into the Lua state.
func (h *Host) register() {
	L := h.L
	mod := L.NewTable()

	L.SetField(mod, "text", L.NewFunction(h.text))
	L.SetField(mod, "line", L.NewFunction(h.line))
	L.SetField(mod, "line_count", L.NewFunction(h.lineCount))
	L.SetField(mod, "insert", L.NewFunction(h.insert))
	L.SetField(mod, "replace", L.NewFunction(h.replace))
	L.SetField(mod, "replace_all", L.NewFunction(h.replaceAll))
	L.SetField(mod, "delete_lines", L.NewFunction(h.deleteLines))
	L.SetField(mod, "undo", L.NewFunction(h.undo))
	L.SetField(mod, "redo", L.NewFunction(h.redo))
	L.SetField(mod, "cursor", L.NewFunction(h.cursor))
	L.SetField(mod, "set_cursor", L.NewFunction(h.setCursor))
	L.SetField(mod, "set_selection", L.NewFunction(h.setSelection))
	L.SetField(mod, "selected_text", L.NewFunction(h.selectedText))
	L.SetField(mod, "active_file", L.NewFunction(h.activeFile))
	L.SetField(mod, "open", L.NewFunction(h.open))
	L.SetField(mod, "create", L.NewFunction(h.create))
	L.SetField(mod, "write", L.NewFunction(h.write))
	L.SetField(mod, "delete", L.NewFunction(h.deleteFile))
	L.SetField(mod, "rename", L.NewFunction(h.rename))
	L.SetField(mod, "read", L.NewFunction(h.read))
	L.SetField(mod, "files", L.NewFunction(h.files))
	L.SetField(mod, "file_count", L.NewFunction(h.fileCount))

	L.SetGlobal("eb", mod)
}

// text() -> string
// Returns the active document's full content.
func (h *Host) text(L *lua.LState) int {
	ctx := h.session.Context()
	L.Push(lua.LString(ctx.ActiveContent))
	return 1
}

// line(n) -> string
// Returns line n of the active document, or "" out of range.
func (h *Host) line(L *lua.LState) int {
	n := L.CheckInt(1)
	lines := editor.Lines(h.session.Context().ActiveContent)
	if n < 1 || n > len(lines) {
		L.Push(lua.LString(""))
		return 1
	}
	L.Push(lua.LString(lines[n-1]))
	return 1
}

// line_count() -> number
func (h *Host) lineCount(L *lua.LState) int {
	lines := editor.Lines(h.session.Context().ActiveContent)
	L.Push(lua.LNumber(len(lines)))
	return 1
}

// insert(line, column, text)
func (h *Host) insert(L *lua.LState) int {
	line := L.CheckInt(1)
	col := L.CheckInt(2)
	text := L.CheckString(3)

	if err := h.session.InsertAt(editor.Position{Line: line, Column: col}, text); err != nil {
		L.RaiseError("insert: %v", err)
		return 0
	}
	return 0
}

// replace(start_line, start_col, end_line, end_col, text)
func (h *Host) replace(L *lua.LState) int {
	start := editor.Position{Line: L.CheckInt(1), Column: L.CheckInt(2)}
	end := editor.Position{Line: L.CheckInt(3), Column: L.CheckInt(4)}
	text := L.CheckString(5)

	if err := h.session.ReplaceRange(start, end, text); err != nil {
		L.RaiseError("replace: %v", err)
		return 0
	}
	return 0
}

// replace_all(old, new) -> count is not reported; the session does not count.
func (h *Host) replaceAll(L *lua.LState) int {
	oldText := L.CheckString(1)
	newText := L.CheckString(2)

	if err := h.session.ReplaceAll(oldText, newText); err != nil {
		L.RaiseError("replace_all: %v", err)
		return 0
	}
	return 0
}

// delete_lines(start, end)
func (h *Host) deleteLines(L *lua.LState) int {
	start := L.CheckInt(1)
	end := L.CheckInt(2)

	if err := h.session.DeleteLines(start, end); err != nil {
		L.RaiseError("delete_lines: %v", err)
		return 0
	}
	return 0
}

// undo() -> boolean
func (h *Host) undo(L *lua.LState) int {
	L.Push(lua.LBool(h.session.Undo()))
	return 1
}

// redo() -> boolean
func (h *Host) redo(L *lua.LState) int {
	L.Push(lua.LBool(h.session.Redo()))
	return 1
}

// cursor() -> line, column
func (h *Host) cursor(L *lua.LState) int {
	cur := h.session.Cursor()
	L.Push(lua.LNumber(cur.Line))
	L.Push(lua.LNumber(cur.Column))
	return 2
}

// set_cursor(line, column)
func (h *Host) setCursor(L *lua.LState) int {
	h.session.SetCursor(editor.Position{Line: L.CheckInt(1), Column: L.CheckInt(2)})
	return 0
}

// set_selection(start_line, start_col, end_line, end_col)
func (h *Host) setSelection(L *lua.LState) int {
	h.session.SetSelection(
		editor.Position{Line: L.CheckInt(1), Column: L.CheckInt(2)},
		editor.Position{Line: L.CheckInt(3), Column: L.CheckInt(4)},
	)
	return 0
}

// selected_text() -> string, boolean
func (h *Host) selectedText(L *lua.LState) int {
	text, ok := h.session.SelectedText()
	L.Push(lua.LString(text))
	L.Push(lua.LBool(ok))
	return 2
}

// active_file() -> string
func (h *Host) activeFile(L *lua.LState) int {
	L.Push(lua.LString(h.session.ActiveFile()))
	return 1
}

// open(path)
func (h *Host) open(L *lua.LState) int {
	if err := h.session.SetActiveFile(L.CheckString(1)); err != nil {
		L.RaiseError("open: %v", err)
		return 0
	}
	return 0
}

// create(path, content)
func (h *Host) create(L *lua.LState) int {
	path := L.CheckString(1)
	content := L.OptString(2, "")

	if err := h.session.CreateFile(path, content, ""); err != nil {
		L.RaiseError("create: %v", err)
		return 0
	}
	return 0
}

// write(path, content)
func (h *Host) write(L *lua.LState) int {
	if err := h.session.WriteFile(L.CheckString(1), L.CheckString(2)); err != nil {
		L.RaiseError("write: %v", err)
		return 0
	}
	return 0
}

// delete(path)
func (h *Host) deleteFile(L *lua.LState) int {
	if err := h.session.DeleteFile(L.CheckString(1)); err != nil {
		L.RaiseError("delete: %v", err)
		return 0
	}
	return 0
}

// rename(old_path, new_path)
func (h *Host) rename(L *lua.LState) int {
	if err := h.session.RenameFile(L.CheckString(1), L.CheckString(2)); err != nil {
		L.RaiseError("rename: %v", err)
		return 0
	}
	return 0
}

// read(path) -> string
func (h *Host) read(L *lua.LState) int {
	content, err := h.session.GetFile(L.CheckString(1))
	if err != nil {
		L.RaiseError("read: %v", err)
		return 0
	}
	L.Push(lua.LString(content))
	return 1
}

// files() -> table of paths
func (h *Host) files(L *lua.LState) int {
	tbl := L.NewTable()
	for _, path := range h.session.Paths() {
		tbl.Append(lua.LString(path))
	}
	L.Push(tbl)
	return 1
}

// file_count() -> number
func (h *Host) fileCount(L *lua.LState) int {
	L.Push(lua.LNumber(h.session.FileCount()))
	return 1
}
