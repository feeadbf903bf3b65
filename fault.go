package nestly

import (
	"runtime"
	"strings"
)

const (
	//nil dereference runtime messages; the runtime exports no dedicated error
	//types for these conditions, so classification relies on the message
	nilDereferenceMessage = "invalid memory address or nil pointer dereference"
	nilMapAssignMessage   = "assignment to entry in nil map"
)

// isNilDereference classifies a recovered panic value as a nil dereference
// fault: a runtime error reporting a read or write through a nil reference.
// Bounds, conversion and arithmetic runtime errors as well as user raised
// panics are not faults of this kind.
func isNilDereference(recovered interface{}) bool {
	fault, ok := recovered.(runtime.Error)
	if !ok {
		return false
	}
	message := fault.Error()
	return strings.Contains(message, nilDereferenceMessage) || strings.Contains(message, nilMapAssignMessage)
}
