package validation

import (
	"context"

	"github.com/teamolhuang/BeingValidated/pkg/async"
)

// The functions below continue a chain whose previous step is still in
// flight. Each one awaits f, then calls the named method on the validator.
// An error from f means the chain was aborted and is forwarded unchanged
// without calling the method. A panic inside the method, such as one raised
// by onError or a ForceSkipIf predicate, rejects the returned future with a
// *PanicError.

// Then continues f with Validate.
func Then[T any, V Validator[T, V]](f *async.Future[V], check CheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T]) *async.Future[V] {
	return continueWith(f, func(v V) (V, error) {
		v = v.Validate(check, onFail, onError)
		return v, v.Err()
	})
}

// ThenRun continues f with Run.
func ThenRun[T any, V Validator[T, V]](f *async.Future[V], action ActionFunc[T], onError ErrorFunc[T]) *async.Future[V] {
	return continueWith(f, func(v V) (V, error) {
		v = v.Run(action, onError)
		return v, v.Err()
	})
}

// ThenAsync continues f with ValidateAsync and resolves once that step does.
func ThenAsync[T any, V Validator[T, V]](ctx context.Context, f *async.Future[V], check AsyncCheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T]) *async.Future[V] {
	return continueWith(f, func(v V) (V, error) {
		return v.ValidateAsync(ctx, check, onFail, onError).Await()
	})
}

// ThenRunAsync continues f with RunAsync.
func ThenRunAsync[T any, V Validator[T, V]](ctx context.Context, f *async.Future[V], action AsyncActionFunc[T], onError ErrorFunc[T]) *async.Future[V] {
	return continueWith(f, func(v V) (V, error) {
		return v.RunAsync(ctx, action, onError).Await()
	})
}

// ThenForceSkipIf continues f with ForceSkipIf.
func ThenForceSkipIf[T any, V Validator[T, V]](f *async.Future[V], pred func(T) bool) *async.Future[V] {
	return continueWith(f, func(v V) (V, error) {
		return v.ForceSkipIf(pred), nil
	})
}

// ThenSkipIfAlreadyInvalid continues f with SkipIfAlreadyInvalid.
func ThenSkipIfAlreadyInvalid[V interface{ SkipIfAlreadyInvalid(bool) V }](f *async.Future[V], enable bool) *async.Future[V] {
	return continueWith(f, func(v V) (V, error) {
		return v.SkipIfAlreadyInvalid(enable), nil
	})
}

// ThenStopForceSkipping continues f with StopForceSkipping.
func ThenStopForceSkipping[V interface{ StopForceSkipping() V }](f *async.Future[V]) *async.Future[V] {
	return continueWith(f, func(v V) (V, error) {
		return v.StopForceSkipping(), nil
	})
}

// AwaitValid blocks until f resolves and reports IsValid. An aborted chain
// reports false together with its fault.
func AwaitValid[V interface{ IsValid() bool }](f *async.Future[V]) (bool, error) {
	v, err := f.Await()
	if err != nil {
		return false, err
	}
	return v.IsValid(), nil
}

// continueWith runs step once f resolves without error.
func continueWith[V any](f *async.Future[V], step func(V) (V, error)) *async.Future[V] {
	return async.Then(f, func(v V, err error) (res V, stepErr error) {
		if err != nil {
			return v, err
		}

		defer func() {
			if r := recover(); r != nil {
				res, stepErr = v, newPanicError(r)
			}
		}()
		return step(v)
	})
}
