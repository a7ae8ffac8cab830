// Package validation runs fluent chains of checks and actions against a value
// or against every element of a sequence.
//
// A chain starts with Wrap (one value) or WrapSequence / WrapSlice (many
// values) and carries a single validity flag. Each step either passes, fails,
// or faults:
//
//   - a check returning false fails: onFail is called and the chain becomes
//     invalid;
//   - a returned error, a panic, a nil callback, or a context that is already
//     done is a fault: the chain becomes invalid and the fault goes to
//     onError. Without onError the fault aborts the chain. It is kept as
//     Err(), later steps do nothing and every async future resolves with it.
//
// Validity never flips back to valid.
//
// # Usage
//
//	v := validation.Wrap(order, true).
//	    Validate(validation.Check(hasLines), validation.OnFail[Order](func() { log.Print("empty order") }), nil).
//	    Run(reserveStock, func(o Order, err error) { metrics.Fail(o.ID, err) })
//	if err := v.Err(); err != nil {
//	    return err
//	}
//	if !v.IsValid() {
//	    return ErrRejected
//	}
//
// Sequences apply each step to every element in order. Failures do not stop
// the iteration; an unhandled fault does:
//
//	validation.WrapSlice(order.Lines, false).
//	    ForceSkipIf(Line.IsGift).
//	    Validate(validation.Check(func(l Line) bool { return l.Qty > 0 }), onBadLine, nil)
//
// # Skipping
//
// SkipIfAlreadyInvalid(true) skips every step once the chain is invalid.
// ForceSkipIf on a Scalar evaluates the predicate once and, if it holds,
// skips steps until StopForceSkipping. On a Sequence the predicate is kept
// and evaluated for every element of every later step; it never changes the
// chain's validity.
//
// # Async
//
// ValidateAsync and RunAsync run the step on a goroutine and return an
// *async.Future that resolves with the validator and its Err(). A chain is
// not safe for concurrent use, so await each step before the next one, or
// use Then, ThenAsync and the other in-flight adapters, which do that for
// you. A panic raised by onError during an async step rejects the future
// with a *PanicError instead of crashing the goroutine:
//
//	f := validation.Wrap(user, true).ValidateAsync(ctx, emailIsFree, onTaken, nil)
//	f = validation.ThenAsync(ctx, f, nameIsFree, onTaken, nil)
//	ok, err := validation.AwaitValid(f)
//
// # Logging
//
// WithLogger attaches a *slog.Logger. Skipped steps and failed checks are
// logged at debug level, faults at warn with a handled flag. Records carry a
// per-chain UUID, the step number and, for sequences, the element index.
package validation
