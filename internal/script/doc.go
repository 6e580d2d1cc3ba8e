// Package script hosts sandboxed Lua automation over an editor session.
//
// Scripts see a single global table, eb, whose functions map one-to-one
// onto session operations:
//
//	eb.insert(1, 5, "text")        -- insert at line/column
//	eb.replace(1, 1, 2, 4, "x")    -- replace a range
//	eb.delete_lines(2, 3)          -- delete inclusive line range
//	eb.undo() / eb.redo()
//	local n = eb.line_count()
//	local s = eb.line(2)
//
// The Lua state is sandboxed: io, os, debug, and package are never opened,
// and the load family of functions is removed. gopher-lua's LState is not
// goroutine-safe; the Host serializes all execution behind a mutex.
package script
