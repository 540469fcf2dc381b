package prism

import "io"

var noopLogger = NewWithOptions(io.Discard, Options{NoColor: true, Diagnostics: io.Discard})

// Noop returns a logger that renders nothing and reports nothing. It is what
// LoggerFromContext hands out when a context carries no logger.
func Noop() *Logger {
	return noopLogger
}
