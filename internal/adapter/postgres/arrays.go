package postgres

// TextArray converts a slice of string enums to a TEXT[] argument. nil stays nil (SQL NULL).
func TextArray[T ~string](in []T) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

// FromTextArray converts a scanned TEXT[] back to a slice of string enums. nil stays nil.
func FromTextArray[T ~string](in []string) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}
