package journal

import (
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Env bundles the ambient state of logging: host and process identity, a
// base namespace, a deployment tag, a cached clock, and the registered
// scribes.
//
// An Env is an immutable snapshot, not a singleton: RegisterScribe and
// UnregisterScribe return a new value and never touch the receiver, so an
// Env already visible to concurrent emitters is always safe to read.
// Callers decide how to propagate new versions, typically via context
// threading (see WithContext).
type Env struct {
	app  Namespace
	env  Environment
	host string
	pid  string

	clock   *clock
	scribes map[string]Scribe
	names   []string // registry keys, sorted; fixes the dispatch order
}

// New creates a logging environment for the given base namespace and
// deployment tag. Host and process identity are resolved once, the scribe
// registry starts empty, and the cached clock starts refreshing in the
// background. Close releases the clock when the environment lineage is
// discarded.
func New(app Namespace, env Environment) (*Env, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, errors.Wrap(err, "journal: resolve hostname")
	}
	return &Env{
		app:   app,
		env:   env,
		host:  host,
		pid:   strconv.Itoa(os.Getpid()),
		clock: newClock(clockTick),
	}, nil
}

// App returns the base namespace of the environment.
func (e *Env) App() Namespace {
	return e.app
}

// Environment returns the deployment tag.
func (e *Env) Environment() Environment {
	return e.env
}

// Host returns the host identity resolved at environment creation.
func (e *Env) Host() string {
	return e.host
}

// PID returns the process identity resolved at environment creation.
func (e *Env) PID() string {
	return e.pid
}

// Now returns the current cached time of the environment.
func (e *Env) Now() time.Time {
	return e.clock.Now()
}

// RegisterScribe returns a new environment whose registry binds `name` to
// `s`, replacing any prior binding for that name. The receiver is not
// modified.
func (e *Env) RegisterScribe(name string, s Scribe) *Env {
	next := e.copy()
	next.scribes[name] = s
	next.index()
	return next
}

// UnregisterScribe returns a new environment whose registry no longer
// binds `name`. Unregistering an absent name is a no-op, not an error.
// The receiver is not modified.
func (e *Env) UnregisterScribe(name string) *Env {
	next := e.copy()
	delete(next.scribes, name)
	next.index()
	return next
}

// Scribe returns the scribe bound to `name`, if any.
func (e *Env) Scribe(name string) (Scribe, bool) {
	s, ok := e.scribes[name]
	return s, ok
}

// ScribeNames returns the registry keys in dispatch order (sorted).
func (e *Env) ScribeNames() []string {
	names := make([]string, len(e.names))
	copy(names, e.names)
	return names
}

// Close stops the cached clock. Every environment version derived from
// the same New shares one clock, so Close tears down the whole lineage;
// call it when the application is done logging. Scribes own their
// resources and are closed by their owners, not by the environment.
func (e *Env) Close() error {
	if e.clock != nil {
		e.clock.Close()
	}
	return nil
}

func (e *Env) copy() *Env {
	scribes := make(map[string]Scribe, len(e.scribes)+1)
	for name, s := range e.scribes {
		scribes[name] = s
	}
	return &Env{
		app:     e.app,
		env:     e.env,
		host:    e.host,
		pid:     e.pid,
		clock:   e.clock,
		scribes: scribes,
	}
}

func (e *Env) index() {
	names := make([]string, 0, len(e.scribes))
	for name := range e.scribes {
		names = append(names, name)
	}
	sort.Strings(names)
	e.names = names
}
