package journal

import (
	"encoding/json"
	"strings"
)

// Namespace is an ordered sequence of name segments attached to log events
// for routing and filtering by consumers. Namespaces compose by
// concatenation; the empty namespace is the identity. Segment order is
// significant and preserved.
type Namespace []string

// NS builds a namespace from the given segments.
func NS(segments ...string) Namespace {
	return Namespace(segments)
}

// Append returns the concatenation of `ns` and `other`. Neither operand is
// mutated.
func (ns Namespace) Append(other Namespace) Namespace {
	if len(ns) == 0 && len(other) == 0 {
		return Namespace{}
	}
	merged := make(Namespace, 0, len(ns)+len(other))
	merged = append(merged, ns...)
	merged = append(merged, other...)
	return merged
}

// Equal returns whether both namespaces hold the same segments in the same
// order.
func (ns Namespace) Equal(other Namespace) bool {
	if len(ns) != len(other) {
		return false
	}
	for i := range ns {
		if ns[i] != other[i] {
			return false
		}
	}
	return true
}

// String returns the segments joined by "."
func (ns Namespace) String() string {
	return strings.Join(ns, ".")
}

// MarshalJSON marshals the namespace as an array of strings. An empty
// namespace marshals to an empty array, never null.
func (ns Namespace) MarshalJSON() ([]byte, error) {
	if ns == nil {
		ns = Namespace{}
	}
	return json.Marshal([]string(ns))
}

// Environment is an opaque tag distinguishing a deployment context,
// such as "prod" or "devel".
type Environment string

// String returns the raw tag.
func (e Environment) String() string {
	return string(e)
}
