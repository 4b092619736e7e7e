// Package fallback models "try, else next" chains as ordered attempt lists.
package fallback

// Attempt produces a value, or reports false to hand over to the next attempt.
type Attempt[T any] func() (T, bool)

// First runs attempts in order and returns the first value that is produced.
// The zero value and false are returned when every attempt declines.
func First[T any](attempts ...Attempt[T]) (T, bool) {
	for _, attempt := range attempts {
		if attempt == nil {
			continue
		}
		if v, ok := attempt(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Or is First with a terminal value used when every attempt declines.
func Or[T any](last T, attempts ...Attempt[T]) T {
	if v, ok := First(attempts...); ok {
		return v
	}
	return last
}
