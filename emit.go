package journal

import (
	"bytes"
	"path"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Emit builds an Item from the environment's ambient state and the given
// arguments, and delivers it to every registered scribe, synchronously,
// in sorted registry-key order. It returns once every scribe has been
// invoked, or at the first scribe failure, which aborts the remaining
// pushes and surfaces to the caller wrapped with the scribe's registry
// name.
//
// Every scribe observes the same Item value. Concurrent Emit calls on a
// shared environment are safe; no ordering is guaranteed between them.
func Emit(e *Env, p Payload, ns Namespace, sev Severity, msg Str, loc *Location) error {
	item := Item{
		App:       e.app,
		Env:       e.env,
		Severity:  sev,
		Thread:    goroutineID(),
		Host:      e.host,
		PID:       e.pid,
		Payload:   p,
		Message:   msg,
		Time:      e.clock.Now(),
		Namespace: e.app.Append(ns),
		Loc:       loc,
	}
	for _, name := range e.names {
		if err := e.scribes[name].Push(item); err != nil {
			return errors.Wrapf(err, "journal: scribe <%s>", name)
		}
	}
	return nil
}

// Log emits an event without a source location.
func Log(e *Env, p Payload, ns Namespace, sev Severity, msg Str) error {
	return Emit(e, p, ns, sev, msg, nil)
}

// Msg emits a message-only event: no source location and the unit
// payload.
func Msg(e *Env, ns Namespace, sev Severity, msg Str) error {
	return Emit(e, Nothing{}, ns, sev, msg, nil)
}

// Here captures the source location of its caller. It is a thin
// convenience over runtime.Caller; callers with their own capture
// mechanism can build a Location directly.
func Here() *Location {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return nil
	}
	loc := &Location{
		File: path.Base(file),
		Line: line,
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		// Function names look like "import/path/pkg.Func"; the import
		// path maps to the module slot, the last path element to the
		// package slot.
		name := fn.Name()
		dir, base := path.Split(name)
		if i := strings.IndexByte(base, '.'); i >= 0 {
			loc.Package = base[:i]
			loc.Module = dir + base[:i]
		}
	}
	return loc
}

// goroutineID extracts the current goroutine id from a stack header of
// the form "goroutine 123 [running]:". The runtime exposes no direct
// accessor.
func goroutineID() string {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	fields := bytes.Fields(buf)
	if len(fields) < 2 {
		return ""
	}
	return string(fields[1])
}
