// Package spinelog bridges journal into the deixis/spine logging facade:
// it implements spine's log.Logger on top of a journal environment, so
// applications built on spine can route their logs through journal
// scribes.
package spinelog

import (
	"github.com/deixis/journal"
	"github.com/deixis/spine/log"
)

// Logger implements spine's log.Logger on top of a journal Env. Spine
// levels map to journal severities as Trace→Debug, Warning→Warning,
// Error→Error. The spine tag becomes the last namespace segment, and
// attached fields become the item payload.
//
// The spine interface has no error surface, so emit failures are
// discarded.
type Logger struct {
	env    *journal.Env
	ns     journal.Namespace
	fields []log.Field
}

// New creates a spine logger emitting through `env` under the given
// namespace.
func New(env *journal.Env, ns journal.Namespace) log.Logger {
	return &Logger{env: env, ns: ns}
}

// Trace implements log.Logger
func (l *Logger) Trace(tag, msg string, fields ...log.Field) {
	l.emit(journal.Debug, tag, msg, fields)
}

// Warning implements log.Logger
func (l *Logger) Warning(tag, msg string, fields ...log.Field) {
	l.emit(journal.Warning, tag, msg, fields)
}

// Error implements log.Logger
func (l *Logger) Error(tag, msg string, fields ...log.Field) {
	l.emit(journal.Error, tag, msg, fields)
}

// With implements log.Logger. The returned logger carries the
// accumulated fields on every subsequent event.
func (l *Logger) With(fields ...log.Field) log.Logger {
	return &Logger{
		env:    l.env,
		ns:     l.ns,
		fields: concat(l.fields, fields),
	}
}

// AddCalldepth implements log.Logger. Journal does not capture call
// sites implicitly, so the depth has no effect here.
func (l *Logger) AddCalldepth(n int) log.Logger {
	return l
}

// Close implements log.Logger. It closes the underlying environment.
func (l *Logger) Close() error {
	return l.env.Close()
}

func (l *Logger) emit(sev journal.Severity, tag, msg string, fields []log.Field) {
	p := payload{Fields: concat(l.fields, fields)}
	_ = journal.Log(l.env, p, l.ns.Append(journal.NS(tag)), sev, journal.NewStr(msg))
}

func concat(a, b []log.Field) []log.Field {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make([]log.Field, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return merged
}

// payload carries spine fields on an item. Fields are hidden entirely at
// V0 and shown in full from V1 up; spine has no per-field verbosity to
// map onto the intermediate levels.
type payload struct {
	Fields []log.Field `json:"fields"`
}

// Keys implements journal.Payload
func (p payload) Keys(v journal.Verbosity) journal.Selection {
	if v == journal.V0 {
		return journal.SomeKeys()
	}
	return journal.AllKeys()
}
