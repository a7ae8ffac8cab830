package validation

import (
	"context"
	"log/slog"

	"github.com/teamolhuang/BeingValidated/pkg/async"
	"github.com/teamolhuang/BeingValidated/pkg/logger"
)

// Scalar validates a single value through a chain of steps.
// A Scalar is not safe for concurrent use; await each async step before
// starting the next one.
type Scalar[T any] struct {
	state
	target T
	log    stepLogger
	steps  int
}

// Wrap starts a chain for target. With skipIfAlreadyInvalid set, steps after
// the first failed check or handled fault are skipped.
func Wrap[T any](target T, skipIfAlreadyInvalid bool, opts ...Option) *Scalar[T] {
	return &Scalar[T]{
		state:  state{skipIfInvalid: skipIfAlreadyInvalid},
		target: target,
		log:    newStepLogger(opts),
	}
}

// Target returns the wrapped value.
func (s *Scalar[T]) Target() T {
	return s.target
}

// IsValid reports whether every step so far passed.
func (s *Scalar[T]) IsValid() bool {
	return !s.invalid
}

// Err returns the fault that aborted the chain, or nil.
// The error is returned exactly as the step produced it. Nothing clears it:
// once set, every later step on this Scalar is skipped, so start a new chain
// to validate again.
func (s *Scalar[T]) Err() error {
	return s.err
}

// Validate runs check against the target.
// A false result calls onFail and marks the chain invalid. A returned error or
// a panic is a fault: it marks the chain invalid and goes to onError, or
// aborts the chain when onError is nil.
func (s *Scalar[T]) Validate(check CheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T]) *Scalar[T] {
	s.steps++
	s.step(context.Background(), checkOf(check), onFail, onError, logger.Step(s.steps))
	return s
}

// Run runs action against the target. Only a fault marks the chain invalid.
func (s *Scalar[T]) Run(action ActionFunc[T], onError ErrorFunc[T]) *Scalar[T] {
	return s.Validate(actionOf(action), nil, onError)
}

// ValidateAsync runs check on its own goroutine.
// Skipped steps resolve immediately. A ctx that is already done counts as a
// fault carrying ctx.Err(). The returned future resolves with the validator
// and Err().
func (s *Scalar[T]) ValidateAsync(ctx context.Context, check AsyncCheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T]) *async.Future[*Scalar[T]] {
	s.steps++
	return s.stepAsync(ctx, asyncCheckOf(check), onFail, onError, logger.Step(s.steps))
}

// RunAsync is the action form of ValidateAsync.
func (s *Scalar[T]) RunAsync(ctx context.Context, action AsyncActionFunc[T], onError ErrorFunc[T]) *async.Future[*Scalar[T]] {
	s.steps++
	return s.stepAsync(ctx, asyncActionOf(action), nil, onError, logger.Step(s.steps))
}

// SkipIfAlreadyInvalid toggles skipping of steps once the chain is invalid.
func (s *Scalar[T]) SkipIfAlreadyInvalid(enable bool) *Scalar[T] {
	s.skipIfInvalid = enable
	return s
}

// ForceSkipIf evaluates pred against the target right away and, when it
// holds, skips every following step until StopForceSkipping. A nil pred is
// ignored.
func (s *Scalar[T]) ForceSkipIf(pred func(T) bool) *Scalar[T] {
	if pred != nil && pred(s.target) {
		s.forceSkip = true
	}
	return s
}

// StopForceSkipping clears a skip set by ForceSkipIf.
func (s *Scalar[T]) StopForceSkipping() *Scalar[T] {
	s.forceSkip = false
	return s
}

func (s *Scalar[T]) step(ctx context.Context, check AsyncCheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T], attrs ...slog.Attr) {
	if reason := s.skipReason(); reason != "" {
		s.log.skipped(ctx, reason, attrs...)
		return
	}
	if err := s.evaluate(ctx, check, onFail, attrs); err != nil {
		s.fault(ctx, err, onError, attrs)
	}
}

func (s *Scalar[T]) stepAsync(ctx context.Context, check AsyncCheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T], attrs ...slog.Attr) *async.Future[*Scalar[T]] {
	if reason := s.skipReason(); reason != "" {
		s.log.skipped(ctx, reason, attrs...)
		return async.Resolved(s, s.err)
	}
	if err := ctx.Err(); err != nil {
		s.fault(ctx, err, onError, attrs)
		return async.Resolved(s, s.err)
	}

	// The goroutine must run even if ctx is cancelled after this point so the
	// future always resolves with the validator. The check still sees ctx.
	return async.Async(context.WithoutCancel(ctx), s, func(_ context.Context, s *Scalar[T]) (res *Scalar[T], err error) {
		// A panicking onError has no caller to unwind to here, so it aborts
		// the chain and rejects the future instead.
		defer func() {
			if r := recover(); r != nil {
				s.abort(ctx, newPanicError(r), attrs)
				res, err = s, s.err
			}
		}()

		if fault := s.evaluate(ctx, check, onFail, attrs); fault != nil {
			s.fault(ctx, fault, onError, attrs)
		}
		return s, s.err
	})
}

// evaluate runs check and, on a false result, onFail. Panics from either are
// returned as *PanicError.
func (s *Scalar[T]) evaluate(ctx context.Context, check AsyncCheckFunc[T], onFail FailFunc[T], attrs []slog.Attr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()

	ok, err := check(ctx, s.target)
	if err != nil {
		return err
	}
	if !ok {
		s.log.failed(ctx, attrs...)
		if onFail != nil {
			onFail(s.target)
		}
		s.invalid = true
	}
	return nil
}

func (s *Scalar[T]) fault(ctx context.Context, err error, onError ErrorFunc[T], attrs []slog.Attr) {
	if onError == nil {
		s.abort(ctx, err, attrs)
		return
	}
	s.invalid = true
	s.log.faulted(ctx, err, true, attrs...)
	onError(s.target, err)
}

// abort records err as the chain's unhandled fault.
func (s *Scalar[T]) abort(ctx context.Context, err error, attrs []slog.Attr) {
	s.invalid = true
	s.err = err
	s.log.faulted(ctx, err, false, attrs...)
}
