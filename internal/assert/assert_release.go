//go:build !vqmdebug

package assert

// Enabled reports whether debug assertions are compiled in.
const Enabled = false

// That is a no-op without the vqmdebug build tag.
func That(cond bool, format string, args ...any) {}
