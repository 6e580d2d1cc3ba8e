package editor

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ApplyEditsJSON decodes a JSON array of batch edits and applies them in
// order. This is the wire surface for agent tool layers; the shape is
//
//	[
//	  {"kind": "insert",  "position": {"line": 1, "column": 5}, "text": "x"},
//	  {"kind": "replace", "start": {...}, "end": {...}, "text": "y"},
//	  {"kind": "delete",  "startLine": 2, "endLine": 3}
//	]
//
// Decoding errors are reported before anything is applied; each applied
// sub-operation still produces its own undo snapshot.
func (s *Session) ApplyEditsJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed JSON", ErrInvalidEditPayload)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return fmt.Errorf("%w: expected a JSON array", ErrInvalidEditPayload)
	}

	var edits []Edit
	var decodeErr error

	parsed.ForEach(func(_, item gjson.Result) bool {
		kind := EditKind(item.Get("kind").String())
		e := Edit{Kind: kind, Text: item.Get("text").String()}

		switch kind {
		case EditInsert:
			e.Position = decodePosition(item.Get("position"))
		case EditReplace:
			e.Start = decodePosition(item.Get("start"))
			e.End = decodePosition(item.Get("end"))
		case EditDelete:
			e.StartLine = int(item.Get("startLine").Int())
			e.EndLine = int(item.Get("endLine").Int())
		default:
			decodeErr = fmt.Errorf("%w: %q", ErrUnknownEditKind, kind)
			return false
		}

		edits = append(edits, e)
		return true
	})

	if decodeErr != nil {
		return decodeErr
	}
	return s.ApplyEdits(edits)
}

func decodePosition(r gjson.Result) Position {
	return Position{
		Line:   int(r.Get("line").Int()),
		Column: int(r.Get("column").Int()),
	}
}
