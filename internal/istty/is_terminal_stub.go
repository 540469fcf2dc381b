//go:build ios || js || wasip1

package istty

// No terminal concept on these platforms.
func isTerminal(int) bool { return false }
