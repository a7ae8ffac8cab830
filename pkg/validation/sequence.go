package validation

import (
	"context"
	"iter"
	"log/slog"
	"slices"

	"github.com/teamolhuang/BeingValidated/pkg/async"
	"github.com/teamolhuang/BeingValidated/pkg/logger"
)

// Sequence validates every element of a sequence with the same step.
// All element steps share one validity state, held by an inner Scalar over
// the whole sequence. The sequence is ranged over once per step, so it must
// be re-iterable.
type Sequence[T any] struct {
	elements    iter.Seq[T]
	inner       *Scalar[iter.Seq[T]]
	forceSkipIf func(T) bool
	log         stepLogger
	steps       int
}

// WrapSequence starts a chain over elements. A nil sequence is treated as empty.
func WrapSequence[T any](elements iter.Seq[T], skipIfAlreadyInvalid bool, opts ...Option) *Sequence[T] {
	if elements == nil {
		elements = func(func(T) bool) {}
	}

	log := newStepLogger(opts)
	inner := Wrap(elements, skipIfAlreadyInvalid)
	inner.log = log

	return &Sequence[T]{
		elements: elements,
		inner:    inner,
		log:      log,
	}
}

// WrapSlice is WrapSequence over the values of s.
func WrapSlice[T any](s []T, skipIfAlreadyInvalid bool, opts ...Option) *Sequence[T] {
	return WrapSequence(slices.Values(s), skipIfAlreadyInvalid, opts...)
}

// Elements returns the wrapped sequence.
func (q *Sequence[T]) Elements() iter.Seq[T] {
	return q.elements
}

func (q *Sequence[T]) IsValid() bool {
	return q.inner.IsValid()
}

// Err returns the fault that aborted the chain, or nil. Nothing clears it,
// so every later step on this Sequence is skipped.
func (q *Sequence[T]) Err() error {
	return q.inner.Err()
}

// Validate runs check against every element in order.
// onFail and onError receive the element. Without onError the first fault
// stops the iteration and aborts the chain.
func (q *Sequence[T]) Validate(check CheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T]) *Sequence[T] {
	q.steps++
	ctx := context.Background()
	q.each(ctx, q.steps, checkOf(check), func(check AsyncCheckFunc[iter.Seq[T]], el T, attrs []slog.Attr) {
		q.inner.step(ctx, check, bindFail(onFail, el), bindError(onError, el), attrs...)
	})
	return q
}

// Run runs action against every element in order.
func (q *Sequence[T]) Run(action ActionFunc[T], onError ErrorFunc[T]) *Sequence[T] {
	return q.Validate(actionOf(action), nil, onError)
}

// ValidateAsync runs check against every element on a single goroutine,
// awaiting each element before moving to the next.
func (q *Sequence[T]) ValidateAsync(ctx context.Context, check AsyncCheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T]) *async.Future[*Sequence[T]] {
	q.steps++
	return q.eachAsync(ctx, q.steps, asyncCheckOf(check), onFail, onError)
}

// RunAsync is the action form of ValidateAsync.
func (q *Sequence[T]) RunAsync(ctx context.Context, action AsyncActionFunc[T], onError ErrorFunc[T]) *async.Future[*Sequence[T]] {
	q.steps++
	return q.eachAsync(ctx, q.steps, asyncActionOf(action), nil, onError)
}

func (q *Sequence[T]) SkipIfAlreadyInvalid(enable bool) *Sequence[T] {
	q.inner.SkipIfAlreadyInvalid(enable)
	return q
}

// ForceSkipIf sets a per-element predicate. It is evaluated afresh for every
// element of every following step, and an element it matches is skipped.
// The result never affects the shared state. A panic in pred aborts the
// chain without reaching onError.
func (q *Sequence[T]) ForceSkipIf(pred func(T) bool) *Sequence[T] {
	q.forceSkipIf = pred
	return q
}

func (q *Sequence[T]) StopForceSkipping() *Sequence[T] {
	q.forceSkipIf = nil
	return q
}

func (q *Sequence[T]) eachAsync(ctx context.Context, step int, check AsyncCheckFunc[T], onFail FailFunc[T], onError ErrorFunc[T]) *async.Future[*Sequence[T]] {
	if q.inner.err != nil {
		q.log.skipped(ctx, reasonAborted, logger.Step(step))
		return async.Resolved(q, q.inner.err)
	}

	return async.Async(context.WithoutCancel(ctx), q, func(_ context.Context, q *Sequence[T]) (res *Sequence[T], err error) {
		// Covers onError panics on this goroutine, such as the handler of
		// an element faulted by a done ctx.
		defer func() {
			if r := recover(); r != nil {
				q.inner.abort(ctx, newPanicError(r), []slog.Attr{logger.Step(step)})
				res, err = q, q.inner.err
			}
		}()

		q.each(ctx, step, check, func(check AsyncCheckFunc[iter.Seq[T]], el T, attrs []slog.Attr) {
			// The inner future always resolves with the inner scalar; its
			// error is picked up through q.inner.err.
			_, _ = q.inner.stepAsync(ctx, check, bindFail(onFail, el), bindError(onError, el), attrs...).Await()
		})
		return q, q.inner.err
	})
}

// each walks the elements and hands each one to run with check bound to it.
// It stops as soon as a fault aborts the chain.
func (q *Sequence[T]) each(ctx context.Context, step int, check AsyncCheckFunc[T], run func(AsyncCheckFunc[iter.Seq[T]], T, []slog.Attr)) {
	if q.inner.err != nil {
		q.log.skipped(ctx, reasonAborted, logger.Step(step))
		return
	}

	i := -1
	for el := range q.elements {
		i++
		attrs := []slog.Attr{logger.Step(step), logger.Element(i)}

		skip, err := q.skipElement(el)
		switch {
		case err != nil:
			// Not an element step: onError and skipping do not apply.
			q.inner.abort(ctx, err, attrs)
			return
		case skip:
			q.log.skipped(ctx, reasonElementSkip, attrs...)
			continue
		default:
			run(bindCheck(check, el), el, attrs)
		}

		if q.inner.err != nil {
			return
		}
	}
}

// skipElement evaluates the force-skip predicate. A panicking predicate
// aborts the chain.
func (q *Sequence[T]) skipElement(el T) (skip bool, err error) {
	if q.forceSkipIf == nil {
		return false, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()
	return q.forceSkipIf(el), nil
}

func bindCheck[T any](check AsyncCheckFunc[T], el T) AsyncCheckFunc[iter.Seq[T]] {
	return func(ctx context.Context, _ iter.Seq[T]) (bool, error) {
		return check(ctx, el)
	}
}

func bindFail[T any](onFail FailFunc[T], el T) FailFunc[iter.Seq[T]] {
	if onFail == nil {
		return nil
	}
	return func(iter.Seq[T]) {
		onFail(el)
	}
}

// bindError keeps a nil handler nil so the inner scalar treats the fault as
// unhandled.
func bindError[T any](onError ErrorFunc[T], el T) ErrorFunc[iter.Seq[T]] {
	if onError == nil {
		return nil
	}
	return func(_ iter.Seq[T], err error) {
		onError(el, err)
	}
}
