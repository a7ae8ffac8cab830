package validation

import (
	"context"

	"github.com/teamolhuang/BeingValidated/pkg/async"
)

type (
	// CheckFunc reports whether the value passed. A non-nil error is a fault.
	CheckFunc[T any] func(T) (bool, error)

	// ActionFunc runs against the value and reports a fault through its error.
	ActionFunc[T any] func(T) error

	AsyncCheckFunc[T any]  func(context.Context, T) (bool, error)
	AsyncActionFunc[T any] func(context.Context, T) error

	// FailFunc is called when a check returns false.
	FailFunc[T any] func(T)

	// ErrorFunc is called with the value and the fault. Supplying one marks the
	// fault as handled; leaving it nil lets the fault abort the chain.
	ErrorFunc[T any] func(T, error)
)

// Validator is the chaining contract shared by Scalar and Sequence.
// V is the concrete implementation, so every call returns the same pointer.
type Validator[T any, V any] interface {
	Validate(check CheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T]) V
	Run(action ActionFunc[T], onError ErrorFunc[T]) V
	ValidateAsync(ctx context.Context, check AsyncCheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T]) *async.Future[V]
	RunAsync(ctx context.Context, action AsyncActionFunc[T], onError ErrorFunc[T]) *async.Future[V]
	IsValid() bool
	Err() error
	SkipIfAlreadyInvalid(enable bool) V
	ForceSkipIf(pred func(T) bool) V
	StopForceSkipping() V
}

var (
	_ Validator[int, *Scalar[int]]   = (*Scalar[int])(nil)
	_ Validator[int, *Sequence[int]] = (*Sequence[int])(nil)
)

// The helpers below normalise every step form to AsyncCheckFunc so a single
// code path evaluates them. Nil inputs become checks that fault.

func checkOf[T any](check CheckFunc[T]) AsyncCheckFunc[T] {
	if check == nil {
		return fails[T](ErrNilCheck)
	}
	return func(_ context.Context, v T) (bool, error) {
		return check(v)
	}
}

func actionOf[T any](action ActionFunc[T]) CheckFunc[T] {
	if action == nil {
		return func(T) (bool, error) { return false, ErrNilAction }
	}
	return func(v T) (bool, error) {
		return true, action(v)
	}
}

func asyncCheckOf[T any](check AsyncCheckFunc[T]) AsyncCheckFunc[T] {
	if check == nil {
		return fails[T](ErrNilCheck)
	}
	return check
}

func asyncActionOf[T any](action AsyncActionFunc[T]) AsyncCheckFunc[T] {
	if action == nil {
		return fails[T](ErrNilAction)
	}
	return func(ctx context.Context, v T) (bool, error) {
		return true, action(ctx, v)
	}
}

func fails[T any](err error) AsyncCheckFunc[T] {
	return func(context.Context, T) (bool, error) {
		return false, err
	}
}
