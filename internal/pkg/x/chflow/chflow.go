// Package chflow provides context-aware helpers for channel communication.
// Every helper gives up as soon as the context is done, so goroutines never
// block forever on a peer that went away.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done. The boolean is
// false when ctx is done or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch unless ctx is done first. It reports whether the
// value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Drain calls fn for every value received from ch until ch is closed or
// ctx is done, both of which end the loop with a nil error. The first error
// returned by fn stops the loop and is returned as is.
func Drain[T any](ctx context.Context, ch <-chan T, fn func(T) error) error {
	for {
		data, ok := Receive(ctx, ch)
		if !ok {
			return nil
		}

		if err := fn(data); err != nil {
			return err
		}
	}
}
