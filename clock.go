package journal

import (
	"sync"
	"sync/atomic"
	"time"
)

// clockTick is the refresh interval of the cached clock. Items stamped
// between two refreshes share a timestamp, trading sub-second staleness
// for not hitting the system clock on every emit.
const clockTick = 100 * time.Millisecond

// clock caches the current time and refreshes it on a schedule instead of
// on every read. Reads are lock-free and safe from any goroutine. The
// cached value never goes backwards.
type clock struct {
	nanos int64 // read/written atomically

	stop     chan struct{}
	stopOnce sync.Once
}

func newClock(tick time.Duration) *clock {
	c := &clock{
		nanos: time.Now().UnixNano(),
		stop:  make(chan struct{}),
	}
	go c.run(tick)
	return c
}

func (c *clock) run(tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			c.refresh()
		case <-c.stop:
			return
		}
	}
}

func (c *clock) refresh() {
	now := time.Now().UnixNano()
	// Single writer, so load-check-store cannot race with another refresh.
	// The check keeps the clock monotonic if the system clock steps back.
	if now > atomic.LoadInt64(&c.nanos) {
		atomic.StoreInt64(&c.nanos, now)
	}
}

// Now returns the cached time. A nil clock falls back to the system
// clock, which keeps environments built without New (zero values, inert
// context fallbacks) usable.
func (c *clock) Now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return time.Unix(0, atomic.LoadInt64(&c.nanos)).UTC()
}

// Close stops the refresher goroutine. The clock remains readable and
// returns the last cached value.
func (c *clock) Close() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}
