package rules

// Min holds for values greater than or equal to min.
func Min[T Numeric](min T) Rule[T] {
	return func(v T) bool {
		return v >= min
	}
}

// Max holds for values less than or equal to max.
func Max[T Numeric](max T) Rule[T] {
	return func(v T) bool {
		return v <= max
	}
}

// Between holds for values in the closed interval [min, max].
func Between[T Numeric](min, max T) Rule[T] {
	return func(v T) bool {
		return v >= min && v <= max
	}
}

func Positive[T Numeric]() Rule[T] {
	return func(v T) bool {
		var zero T
		return v > zero
	}
}

func NonZero[T Numeric]() Rule[T] {
	return func(v T) bool {
		var zero T
		return v != zero
	}
}
