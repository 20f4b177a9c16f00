package journal

// Scribe is a sink capability: it accepts one Item at a time and performs
// an arbitrary side effect with it, such as writing it to a terminal, a
// file, or a remote collector.
//
// Push runs synchronously on whatever execution context called Emit; a
// scribe that performs blocking I/O imposes that latency on every
// emitter. A scribe owns whatever mutable state it needs and is solely
// responsible for synchronising concurrent pushes into that state.
//
// A Push failure aborts the dispatch of the item to any remaining scribe
// and surfaces to the caller of the log operation. A scribe that prefers
// to absorb its own failures can wrap itself before registration; such a
// wrapper is an ordinary Scribe.
type Scribe interface {
	// Push delivers one item to the scribe
	Push(item Item) error
}

// PushFunc adapts a plain function to the Scribe interface.
type PushFunc func(item Item) error

// Push implements Scribe.
func (f PushFunc) Push(item Item) error {
	return f(item)
}

// Nop returns a scribe that discards every item.
func Nop() Scribe {
	return nopScribe{}
}

type nopScribe struct{}

func (nopScribe) Push(item Item) error { return nil }

// Seq composes scribes sequentially: the returned scribe pushes each item
// to every given scribe in argument order, within the same call, stopping
// at the first failure. Seq() is equivalent to Nop, and composition is
// associative, so a single registry slot can hold a pipeline.
func Seq(scribes ...Scribe) Scribe {
	return PushFunc(func(item Item) error {
		for _, s := range scribes {
			if err := s.Push(item); err != nil {
				return err
			}
		}
		return nil
	})
}
