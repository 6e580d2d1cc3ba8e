package editor

import "strings"

// Position represents a caret position within the active document.
// Line is the 1-based line index; Column is the 1-based rune offset within
// that line, where len(line)+1 denotes the end-of-line position.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Selection represents an anchor→head span of positions. Start and End are
// stored exactly as given; the engine does not enforce Start ≤ End.
type Selection struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// runeLen returns the number of runes in s.
func runeLen(s string) int {
	return len([]rune(s))
}

// Lines splits content into its line array. A document always has at
// least one line; an empty document is a single empty line.
func Lines(content string) []string {
	return strings.Split(content, "\n")
}

func splitLines(content string) []string {
	return Lines(content)
}

// joinLines is the inverse of splitLines.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// clampRuneCol clamps a 0-based rune offset into [0, len(line)].
func clampRuneCol(line string, col int) int {
	if col < 0 {
		return 0
	}
	if n := runeLen(line); col > n {
		return n
	}
	return col
}

// spliceLine inserts text into line at the 0-based rune offset col.
// Offsets outside the line are clamped, matching slice semantics in the
// original engine.
func spliceLine(line string, col int, text string) string {
	runes := []rune(line)
	col = clampRuneCol(line, col)
	return string(runes[:col]) + text + string(runes[col:])
}

// substrRunes returns the rune substring [lo, hi) of line. Both bounds are
// clamped and an inverted pair yields the empty string, so a garbled
// selection produces garbled-but-defined output rather than a panic.
func substrRunes(line string, lo, hi int) string {
	runes := []rune(line)
	if lo < 0 {
		lo = 0
	}
	if hi > len(runes) {
		hi = len(runes)
	}
	if lo >= len(runes) || hi <= lo {
		return ""
	}
	return string(runes[lo:hi])
}

// suffixRunes returns the rune suffix of line starting at the 0-based
// offset lo, clamped into range.
func suffixRunes(line string, lo int) string {
	runes := []rune(line)
	if lo < 0 {
		lo = 0
	}
	if lo >= len(runes) {
		return ""
	}
	return string(runes[lo:])
}

// prefixRunes returns the rune prefix of line up to the 0-based offset hi,
// clamped into range.
func prefixRunes(line string, hi int) string {
	runes := []rune(line)
	if hi < 0 {
		return ""
	}
	if hi > len(runes) {
		hi = len(runes)
	}
	return string(runes[:hi])
}

// cursorAfterInsert computes where the caret lands after inserting text at
// pos: a single-line insert advances the column by the text length; a
// multi-line insert lands at the end of the last inserted line.
func cursorAfterInsert(pos Position, text string) Position {
	if !strings.Contains(text, "\n") {
		return Position{Line: pos.Line, Column: pos.Column + runeLen(text)}
	}
	parts := strings.Split(text, "\n")
	last := parts[len(parts)-1]
	return Position{
		Line:   pos.Line + len(parts) - 1,
		Column: runeLen(last) + 1,
	}
}
