package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// complete stores the outcome. Only the first call has an effect.
func (f *Future[U]) complete(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
	})
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout. The computation
// itself keeps running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// AwaitContext waits for completion or for ctx to be done, whichever comes first.
// On ctx expiry it returns ctx.Err(); the computation itself keeps running.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
// If ctx is already done, fn is not called and the Future completes with ctx.Err().
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		defer close(f.done)

		// Early exit prevents goroutine leak when context is pre-canceled
		select {
		case <-ctx.Done():
			var zero U
			f.complete(zero, ctx.Err())
			return
		default:
		}

		f.complete(fn(ctx, param))
	}()

	return f
}

// Resolved returns a Future that is already complete. No goroutine is started.
func Resolved[U any](res U, err error) *Future[U] {
	f := newFuture[U]()
	f.complete(res, err)
	close(f.done)
	return f
}

// Then schedules fn to run once f completes and returns a Future for fn's outcome.
// fn receives both the result and the error of f, so it decides whether an
// upstream error short-circuits or is handled.
func Then[U any, V any](f *Future[U], fn func(U, error) (V, error)) *Future[V] {
	next := newFuture[V]()

	go func() {
		defer close(next.done)
		next.complete(fn(f.Await()))
	}()

	return next
}
