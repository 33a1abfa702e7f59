package engine

// Outcome makes the swallow-and-default error policy explicit in the
// operation signature. Degraded carries the zero value the caller serializes
// anyway, plus the cause for operator logging; it is never surfaced to the
// remote caller as an error. Only the operations the interface contract names
// as silently degrading return an Outcome; everything else propagates a typed
// error or embeds the failure in its payload.
type Outcome[T any] struct {
	Value    T
	Degraded bool
	Cause    error
}

// Ok wraps a successful result.
func Ok[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value}
}

// Degraded wraps the fallback value produced when the runtime was unreachable.
func Degraded[T any](fallback T, cause error) Outcome[T] {
	return Outcome[T]{Value: fallback, Degraded: true, Cause: cause}
}
