package nestly

import (
	"github.com/viant/xunsafe"
	"reflect"
)

// IsNilValue returns true if value is nil or holds a nil of a nilable kind
// (pointer, map, slice, func, chan, interface).
func IsNilValue(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rValue.IsNil()
	}
	return false
}

// IsEmptyValue returns true if value is nil or a container like value holding
// zero elements: empty text, sequence, associative map or fixed size array.
// A non nil pointer counts as present regardless of its pointee, and non
// container values are never empty.
func IsEmptyValue(value interface{}) bool {
	if value == nil {
		return true
	}
	switch actual := value.(type) {
	case string:
		return actual == ""
	case []interface{}:
		return len(actual) == 0
	case []string:
		return len(actual) == 0
	case []int:
		return len(actual) == 0
	case []byte:
		return len(actual) == 0
	case map[string]interface{}:
		return len(actual) == 0
	case map[string]string:
		return len(actual) == 0
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rValue.IsNil()
	case reflect.String, reflect.Map, reflect.Array:
		return rValue.Len() == 0
	case reflect.Slice:
		return sliceLen(value, rValue.Type()) == 0
	}
	return false
}

// Equals returns true if one and two are equal, treating nil as equal only
// to nil; non nil values compare with structural equality.
func Equals(one, two interface{}) bool {
	nilOne, nilTwo := IsNilValue(one), IsNilValue(two)
	if nilOne || nilTwo {
		return nilOne == nilTwo
	}
	return reflect.DeepEqual(one, two)
}

// sliceLen returns the length of an arbitrary slice value
func sliceLen(value interface{}, sliceType reflect.Type) int {
	xSlice := xunsafe.NewSlice(sliceType)
	return xSlice.Len(xunsafe.AsPointer(value))
}
