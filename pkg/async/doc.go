// Package async provides small generic helpers for running a computation on
// its own goroutine and waiting for the outcome.
//
// The package is centred around Future, the eventual result of an asynchronous
// operation. Async starts the supplied function in a goroutine and immediately
// returns a *Future. The caller then waits with Await, bounds the wait with
// AwaitWithTimeout or AwaitContext, or polls with IsComplete.
//
// Resolved builds a Future that is complete from the start, which lets code
// return the same type from fast paths without spawning a goroutine. Then
// chains a continuation after a Future; the continuation receives both the
// result and the error so it can decide whether to short-circuit.
//
// If the context passed to Async is already done, the function is never
// called and the Future completes with the context error.
//
// # Usage
//
//	import "github.com/teamolhuang/BeingValidated/pkg/async"
//
//	future := async.Async(ctx, userID, func(ctx context.Context, id string) (bool, error) {
//	    return repo.Exists(ctx, id)
//	})
//
//	exists, err := future.Await()
//
// # Error Handling
//
// Futures carry whatever error the callback returned. The waiting helpers add
// ErrTimeout (AwaitWithTimeout) and the context error (AwaitContext).
//
// # Performance Considerations
//
// A Future is a goroutine plus a channel. Resolved costs a single allocation
// and no goroutine.
package async
