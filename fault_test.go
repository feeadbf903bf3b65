package nestly

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsNilDereference(t *testing.T) {

	var testCases = []struct {
		description string
		panicking   func()
		expect      bool
	}{
		{
			description: "nil pointer dereference",
			panicking: func() {
				var anOrder *order
				_ = anOrder.id
			},
			expect: true,
		},
		{
			description: "nil method receiver",
			panicking: func() {
				var aCustomer *customer
				_ = aCustomer.Name()
			},
			expect: true,
		},
		{
			description: "nil function invocation",
			panicking: func() {
				var fn func() int
				_ = fn()
			},
			expect: true,
		},
		{
			description: "nil map assignment",
			panicking: func() {
				var index map[string]int
				index["total"] = 1
			},
			expect: true,
		},
		{
			description: "integer divide by zero",
			panicking: func() {
				divisor := 0
				_ = 1 / divisor
			},
			expect: false,
		},
		{
			description: "index out of range",
			panicking: func() {
				values := make([]int, 0)
				_ = values[3]
			},
			expect: false,
		},
		{
			description: "failed type assertion",
			panicking: func() {
				var value interface{} = "text"
				_ = value.(int)
			},
			expect: false,
		},
		{
			description: "user raised panic",
			panicking: func() {
				panic("boom")
			},
			expect: false,
		},
		{
			description: "nil panic value",
			panicking: func() {
				panic(nil)
			},
			expect: false,
		},
	}

	for _, testCase := range testCases {
		recovered := capturePanic(testCase.panicking)
		if !assert.NotNil(t, recovered, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, isNilDereference(recovered), testCase.description)
	}
}

func TestForeignPanicPropagation(t *testing.T) {

	assert.PanicsWithValue(t, "boom", func() {
		GetOrNil(func() interface{} {
			panic("boom")
		})
	}, "user raised panic propagates with its original value")

	assert.PanicsWithError(t, "runtime error: integer divide by zero", func() {
		IsNil(func() int {
			divisor := 0
			return 1 / divisor
		})
	}, "arithmetic fault propagates")

	assert.PanicsWithError(t, "runtime error: index out of range [3] with length 0", func() {
		IsEmpty(func() int {
			values := make([]int, 0)
			return values[3]
		})
	}, "bounds fault propagates")

	assert.Panics(t, func() {
		IsBlank(func() string {
			var value interface{} = 1
			return value.(string)
		})
	}, "conversion fault propagates")

	assert.NotPanics(t, func() {
		GetOrNil(func() interface{} {
			var anOrder *order
			return anOrder.Customer()
		})
	}, "nil dereference is recovered")
}

func capturePanic(fn func()) (recovered interface{}) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}
