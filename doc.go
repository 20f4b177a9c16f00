// Package journal is a structured-logging core.
//
// It defines a typed log event (Item), a pluggable sink capability
// (Scribe), and an environment (Env) that threads shared logging state
// through an application: host and process identity, a base namespace,
// a cached clock, and the registered scribes.
//
// Callers emit severity-leveled, contextual events without knowing which
// backends consume them. A Verbosity knob controls how much of an event's
// payload each sink serialises. The core guarantees construction and
// dispatch of events only; delivery, buffering, and rotation belong to
// the scribes themselves.
package journal
