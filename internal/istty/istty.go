// Package istty answers whether a file descriptor refers to a terminal on
// platforms where golang.org/x/term is not wired in. Each platform file
// supplies isTerminal via build tags.
package istty

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	if fd < 0 {
		return false
	}
	return isTerminal(fd)
}
