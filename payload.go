package journal

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Payload is the contract every log payload type must satisfy. Keys must
// be a pure, stable function of the payload's declared fields and the
// requested verbosity, so that serialising logically-identical events is
// deterministic.
type Payload interface {
	// Keys returns which of the payload's serialised top-level fields to
	// keep at the given verbosity.
	Keys(v Verbosity) Selection
}

// Selection tells which top-level keys of a serialised payload to keep:
// either all of them, or an explicit set. Keys named in the selection but
// absent from the serialised payload are silently ignored.
type Selection struct {
	all  bool
	keys []string
}

// AllKeys selects every payload field.
func AllKeys() Selection {
	return Selection{all: true}
}

// SomeKeys selects the given payload fields. With no arguments it selects
// nothing.
func SomeKeys(keys ...string) Selection {
	return Selection{keys: keys}
}

// All returns whether the selection keeps every field.
func (s Selection) All() bool {
	return s.all
}

// Keys returns the explicit key set. It is meaningless when All is true.
func (s Selection) Keys() []string {
	return s.keys
}

// Nothing is the unit payload. It has no fields and selects nothing at
// every verbosity. It is the default payload of message-only log calls.
type Nothing struct{}

// Keys implements Payload.
func (Nothing) Keys(v Verbosity) Selection {
	return SomeKeys()
}

// PayloadJSON serialises `p` and keeps only the top-level keys selected by
// `p.Keys(v)`. A payload that does not serialise to a JSON object carries
// no top-level keys and passes through unfiltered.
func PayloadJSON(v Verbosity, p Payload) (json.RawMessage, error) {
	if p == nil {
		p = Nothing{}
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "journal: marshal payload")
	}

	sel := p.Keys(v)
	if sel.All() {
		return raw, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return raw, nil
	}
	kept := make(map[string]json.RawMessage, len(sel.Keys()))
	for _, k := range sel.Keys() {
		if f, ok := fields[k]; ok {
			kept[k] = f
		}
	}
	out, err := json.Marshal(kept)
	if err != nil {
		return nil, errors.Wrap(err, "journal: marshal filtered payload")
	}
	return out, nil
}
