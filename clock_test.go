package journal

import (
	"testing"
	"time"
)

func TestClockMonotonic(t *testing.T) {
	c := newClock(time.Millisecond)
	defer c.Close()

	prev := c.Now()
	for i := 0; i < 200; i++ {
		now := c.Now()
		if now.Before(prev) {
			t.Fatalf("expect %s not to be before %s", now, prev)
		}
		prev = now
		time.Sleep(100 * time.Microsecond)
	}
}

func TestClockRefreshes(t *testing.T) {
	c := newClock(time.Millisecond)
	defer c.Close()

	first := c.Now()
	time.Sleep(50 * time.Millisecond)
	second := c.Now()
	if !second.After(first) {
		t.Errorf("expect the clock to advance, but got %s then %s", first, second)
	}
}

func TestClockBoundedStaleness(t *testing.T) {
	c := newClock(time.Millisecond)
	defer c.Close()

	time.Sleep(10 * time.Millisecond)
	if d := time.Since(c.Now()); d > time.Second {
		t.Errorf("expect sub-second staleness, but cached time lags by %s", d)
	}
}

func TestClockNil(t *testing.T) {
	var c *clock
	if c.Now().IsZero() {
		t.Error("expect a nil clock to fall back to the system clock")
	}
}

func TestClockClose(t *testing.T) {
	c := newClock(time.Millisecond)
	c.Close()
	c.Close() // closing twice must not panic

	if c.Now().IsZero() {
		t.Error("expect a closed clock to remain readable")
	}
}
