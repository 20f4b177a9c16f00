// Package journaltest provides scribes useful for tests: a Recorder that
// captures every item it receives, and a Failing scribe that rejects
// every push.
package journaltest

import (
	"sync"

	"github.com/deixis/journal"
)

// Recorder is a scribe that keeps every pushed item in memory.
type Recorder struct {
	mu    sync.Mutex
	items []journal.Item
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Push implements journal.Scribe
func (r *Recorder) Push(item journal.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

// Items returns a copy of the captured items, in push order.
func (r *Recorder) Items() []journal.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]journal.Item, len(r.items))
	copy(items, r.items)
	return items
}

// Lines returns the number of captured items for the given severity
func (r *Recorder) Lines(sev journal.Severity) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for i := range r.items {
		if r.items[i].Severity == sev {
			n++
		}
	}
	return n
}

// Failing returns a scribe whose push always fails with `err`. It
// exercises the fail-fast dispatch contract: the failure surfaces to the
// emitter and aborts delivery to the remaining scribes.
func Failing(err error) journal.Scribe {
	return journal.PushFunc(func(journal.Item) error {
		return err
	})
}
