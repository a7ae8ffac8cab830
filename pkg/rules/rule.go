package rules

// Numeric is the constraint used by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule reports whether a value satisfies a single condition.
// Rules are plain predicates: they never panic on well-formed input and never
// allocate errors, so they can be handed to validation.Check directly.
type Rule[T any] func(T) bool

// All returns a rule that holds when every rule holds. Evaluation stops at the
// first failing rule. All() with no rules always holds.
func All[T any](rules ...Rule[T]) Rule[T] {
	return func(v T) bool {
		for _, r := range rules {
			if !r(v) {
				return false
			}
		}
		return true
	}
}

// Any returns a rule that holds when at least one rule holds. Any() with no
// rules never holds.
func Any[T any](rules ...Rule[T]) Rule[T] {
	return func(v T) bool {
		for _, r := range rules {
			if r(v) {
				return true
			}
		}
		return false
	}
}

// Not negates r.
func Not[T any](r Rule[T]) Rule[T] {
	return func(v T) bool {
		return !r(v)
	}
}
