package util

// Filter returns the elements of s for which keep returns true, in their original order.
// A nil keep retains every element.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map applies fn to every element of s
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}
