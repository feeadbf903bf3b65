package nestly

import (
	"strings"
)

// IsNil returns true if accessor evaluation faulted with a nil dereference
// or produced a nil result.
func IsNil[T any](accessor Accessor[T]) bool {
	value, ok := evaluate(accessor)
	return !ok || IsNilValue(value)
}

// IsNotNil returns true if accessor evaluation produced a non nil result.
func IsNotNil[T any](accessor Accessor[T]) bool {
	return !IsNil(accessor)
}

// IsBlank returns true if the accessor result is blank, treating a nil
// dereference fault as a blank result:
//
//	IsBlank(faulting accessor)  = true
//	IsBlank(func() "")          = true
//	IsBlank(func() " ")         = true
//	IsBlank(func() "bob")       = false
//	IsBlank(func() "  bob  ")   = false
func IsBlank[S ~string](accessor Accessor[S]) bool {
	return strings.TrimSpace(string(GetOrBlank(accessor))) == ""
}

// IsNotBlank returns true if the accessor result holds at least one
// non whitespace character.
func IsNotBlank[S ~string](accessor Accessor[S]) bool {
	return !IsBlank(accessor)
}

// IsEmpty returns true if the accessor result is nil or a container like value
// (text, sequence, associative map or fixed size array) with zero elements;
// non container scalars are never empty.
func IsEmpty[T any](accessor Accessor[T]) bool {
	value, ok := evaluate(accessor)
	return !ok || IsEmptyValue(value)
}

// IsNotEmpty returns true if the accessor result is a non nil value with
// at least one element, or a non container scalar.
func IsNotEmpty[T any](accessor Accessor[T]) bool {
	return !IsEmpty(accessor)
}

// IsEquals returns true if both accessor results are equal, treating a nil
// dereference fault as a nil result; nil equals only nil, non nil values
// compare with structural equality.
func IsEquals[T any](one, two Accessor[T]) bool {
	valueOne, okOne := evaluate(one)
	valueTwo, okTwo := evaluate(two)
	nilOne := !okOne || IsNilValue(valueOne)
	nilTwo := !okTwo || IsNilValue(valueTwo)
	if nilOne || nilTwo {
		return nilOne == nilTwo
	}
	return Equals(valueOne, valueTwo)
}

// IsNotEquals returns true if the accessor results differ.
func IsNotEquals[T any](one, two Accessor[T]) bool {
	return !IsEquals(one, two)
}
