package journal

import (
	"encoding/json"
	"fmt"
)

// Str is the human-readable message of a log event. It is an append-only
// builder: Append never mutates its operands, so a Str captured by an
// Item is stable even when the caller keeps building on it.
type Str struct {
	buf []byte
}

// NewStr builds a Str from a plain string.
func NewStr(s string) Str {
	return Str{buf: []byte(s)}
}

// Strf builds a Str from a format string, fmt.Sprintf style.
func Strf(format string, args ...interface{}) Str {
	return Str{buf: []byte(fmt.Sprintf(format, args...))}
}

// Append returns the concatenation of `s` and `t`.
func (s Str) Append(t Str) Str {
	// The three-index slice pins capacity so append always copies instead
	// of writing into a shared backing array.
	return Str{buf: append(s.buf[:len(s.buf):len(s.buf)], t.buf...)}
}

// AppendString returns the concatenation of `s` and the given string.
func (s Str) AppendString(t string) Str {
	return Str{buf: append(s.buf[:len(s.buf):len(s.buf)], t...)}
}

// Len returns the message length in bytes.
func (s Str) Len() int {
	return len(s.buf)
}

// String renders the message.
func (s Str) String() string {
	return string(s.buf)
}

// MarshalJSON marshals the message as a JSON string.
func (s Str) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
