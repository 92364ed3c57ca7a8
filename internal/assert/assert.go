// Package assert holds precondition checks that only run in debug builds.
//
// Release builds compile every check to nothing, so violated preconditions
// produce deterministic but meaningless results (usually NaN or Inf).
// Build with -tags vqmdebug to turn violations into panics.
package assert

// Error is the panic value raised by a failed debug assertion.
type Error struct {
	Message string
}

func (e Error) Error() string {
	return "vqm: assertion failed: " + e.Message
}
