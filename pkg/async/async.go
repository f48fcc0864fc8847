package async

import (
	"context"
	"fmt"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits at most timeout for completion.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports completion without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes fn(ctx, param) in a new goroutine and returns its Future.
// A panic inside fn is converted into an error wrapping ErrPanic.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.result, f.err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()

		// Skip the work entirely when the context is already gone.
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Result is the settled outcome of one Future.
type Result[U any] struct {
	Value U
	Err   error
}

// Settle waits for every future and returns their outcomes in input order.
// It never short-circuits on errors.
func Settle[U any](futures ...*Future[U]) []Result[U] {
	results := make([]Result[U], len(futures))
	for i, f := range futures {
		results[i].Value, results[i].Err = f.Await()
	}
	return results
}

// WaitAll waits for all futures and returns their values along with the
// first error in input order.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	values := make([]U, len(futures))
	var firstErr error
	for i, r := range Settle(futures...) {
		values[i] = r.Value
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
		}
	}
	return values, firstErr
}
