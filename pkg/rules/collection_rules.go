package rules

func NotEmpty[T any]() Rule[[]T] {
	return func(s []T) bool {
		return len(s) > 0
	}
}

func MinItems[T any](min int) Rule[[]T] {
	return func(s []T) bool {
		return len(s) >= min
	}
}

func MaxItems[T any](max int) Rule[[]T] {
	return func(s []T) bool {
		return len(s) <= max
	}
}

// Unique holds for slices without repeated elements.
func Unique[T comparable]() Rule[[]T] {
	return func(s []T) bool {
		seen := make(map[T]struct{}, len(s))
		for _, v := range s {
			if _, dup := seen[v]; dup {
				return false
			}
			seen[v] = struct{}{}
		}
		return true
	}
}
