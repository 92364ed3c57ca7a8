//go:build vqmdebug

package assert

import "fmt"

// Enabled reports whether debug assertions are compiled in.
const Enabled = true

// That panics with the formatted message when cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		fail(format, args...)
	}
}

func fail(format string, args ...any) {
	panic(Error{Message: fmt.Sprintf(format, args...)})
}
