package rules

// In holds for values equal to one of allowed.
func In[T comparable](allowed ...T) Rule[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(v T) bool {
		_, ok := set[v]
		return ok
	}
}

// NotIn holds for values equal to none of forbidden.
func NotIn[T comparable](forbidden ...T) Rule[T] {
	return Not(In(forbidden...))
}
