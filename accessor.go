package nestly

// Accessor represents a caller supplied deferred computation traversing a chain
// of potentially nil references, e.g. func() string { return order.Customer().Name() }.
// An accessor is invoked at most once per operation and never retained.
type Accessor[T any] func() T

// evaluate invokes accessor, recovering only nil dereference faults;
// ok is false if such a fault occurred, any other panic is re-raised.
func evaluate[T any](accessor Accessor[T]) (value T, ok bool) {
	defer func() {
		if r := recover(); r != nil && !isNilDereference(r) {
			panic(r)
		}
	}()
	return accessor(), true
}

// GetOrNil evaluates accessor and returns its result; a nil dereference raised
// during evaluation yields the zero value of T (nil for pointer like types).
func GetOrNil[T any](accessor Accessor[T]) T {
	value, _ := evaluate(accessor)
	return value
}

// GetOrElse evaluates accessor and returns defaultValue whenever the
// evaluation faulted with a nil dereference or produced a nil result.
func GetOrElse[T any](accessor Accessor[T], defaultValue T) T {
	value, ok := evaluate(accessor)
	if !ok || IsNilValue(value) {
		return defaultValue
	}
	return value
}

// GetOrBlank evaluates a textual accessor and returns an empty string when
// a nil dereference was raised during evaluation.
func GetOrBlank[S ~string](accessor Accessor[S]) S {
	value, _ := evaluate(accessor)
	return value
}
