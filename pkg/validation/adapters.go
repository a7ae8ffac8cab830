package validation

import "context"

// Check lifts a plain predicate, such as a rules.Rule, into a CheckFunc that
// never faults. A nil fn gives a nil CheckFunc.
func Check[T any, F ~func(T) bool](fn F) CheckFunc[T] {
	if fn == nil {
		return nil
	}
	return func(v T) (bool, error) {
		return fn(v), nil
	}
}

// CheckAsync lifts a context-aware predicate into an AsyncCheckFunc.
func CheckAsync[T any, F ~func(context.Context, T) bool](fn F) AsyncCheckFunc[T] {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, v T) (bool, error) {
		return fn(ctx, v), nil
	}
}

// Action lifts a side effect that cannot fail into an ActionFunc.
func Action[T any](fn func(T)) ActionFunc[T] {
	if fn == nil {
		return nil
	}
	return func(v T) error {
		fn(v)
		return nil
	}
}

// OnFail adapts a callback that does not need the value.
func OnFail[T any](fn func()) FailFunc[T] {
	if fn == nil {
		return nil
	}
	return func(T) {
		fn()
	}
}

// OnError adapts an error callback that does not need the value.
// A nil fn stays nil, so the fault still aborts the chain.
func OnError[T any](fn func(error)) ErrorFunc[T] {
	if fn == nil {
		return nil
	}
	return func(_ T, err error) {
		fn(err)
	}
}
