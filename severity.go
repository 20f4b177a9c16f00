package journal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Severity defines the criticality of a log event, in ascending order.
// The core forwards every event to every scribe regardless of severity;
// severity-based suppression is the scribe's responsibility.
type Severity int

const (
	// Debug level events follow the code execution step by step
	Debug Severity = iota
	// Info level events report normal operation
	Info
	// Notice level events are normal but significant
	Notice
	// Warning level events draw attention above a certain threshold
	// e.g. wrong credentials, 404 status code returned, upstream node down
	Warning
	// Error level events need immediate attention
	// The 2AM rule applies here, which means that if you are on call, this
	// event will wake you up at 2AM
	Error
	// Critical level events report a critical condition
	Critical
	// Alert level events require action at once
	Alert
	// Emergency level events mean the system is unusable
	Emergency
)

var severityNames = []string{
	"Debug",
	"Info",
	"Notice",
	"Warning",
	"Error",
	"Critical",
	"Alert",
	"Emergency",
}

// ParseSeverity parses the canonical string representation of a severity
func ParseSeverity(s string) (Severity, error) {
	for i, name := range severityNames {
		if name == s {
			return Severity(i), nil
		}
	}
	return Debug, errors.Errorf("unknown severity <%s>", s)
}

// String returns the canonical capitalized name of the severity. It is
// used both for display and as the JSON value.
func (s Severity) String() string {
	if s < Debug || s > Emergency {
		panic(fmt.Sprintf("unknown severity <%d>", s))
	}
	return severityNames[s]
}

// MarshalJSON marshals the severity as its canonical name
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON unmarshals a canonical severity name
func (s *Severity) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.Errorf("severity is not a JSON string: %s", data)
	}
	sev, err := ParseSeverity(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// Verbosity controls how much of a payload is serialised. V0 keeps no
// extra payload fields and V3 keeps them all; the meaning of the
// intermediate levels is defined per payload type.
type Verbosity int

const (
	// V0 keeps no payload fields
	V0 Verbosity = iota
	// V1 keeps a minimal field set
	V1
	// V2 keeps an extended field set
	V2
	// V3 keeps all payload fields
	V3
)

// ParseVerbosity parses the string representation of a verbosity ("V0"
// to "V3")
func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "V0":
		return V0, nil
	case "V1":
		return V1, nil
	case "V2":
		return V2, nil
	case "V3":
		return V3, nil
	}
	return V0, errors.Errorf("unknown verbosity <%s>", s)
}

// String returns a string representation of the verbosity
func (v Verbosity) String() string {
	if v < V0 || v > V3 {
		panic(fmt.Sprintf("unknown verbosity <%d>", v))
	}
	return fmt.Sprintf("V%d", int(v))
}
