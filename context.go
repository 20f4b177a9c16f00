package journal

import "context"

type contextKey struct{}

var activeContextKey = contextKey{}

// FromContext returns the `Env` stored in `ctx`, or an inert environment
// if none was stored. The inert environment has no scribes and reads the
// system clock directly, so logging through it is always safe and does
// nothing.
func FromContext(ctx context.Context) *Env {
	val := ctx.Value(activeContextKey)
	if e, ok := val.(*Env); ok {
		return e
	}
	return &Env{}
}

// WithContext returns a copy of parent in which the `Env` is stored
func WithContext(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, activeContextKey, e)
}
