package prism

import (
	"os"
	"strings"
)

// Level defines log severities. Levels are ordered: a logger with minimum
// level Warn drops Trace, Debug and Info messages.
type Level int8

const (
	// TraceLevel defines trace log level.
	TraceLevel Level = iota
	// DebugLevel defines debug log level.
	DebugLevel
	// InfoLevel defines info log level.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// SevereLevel defines severe log level.
	SevereLevel
	// CriticalLevel defines critical log level.
	CriticalLevel
	// UnknownLevel is a sentinel used as the theme table bound. It is never
	// emitted by the per-severity entry points.
	UnknownLevel

	levelCount = int(UnknownLevel) + 1
)

// ParseLevel converts a textual level into a Level value. It accepts values
// such as "trace", "debug", "info", "warn", "warning", "severe", "error",
// "critical", and "fatal" (case insensitive).
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "severe", "error":
		return SevereLevel, true
	case "critical", "fatal":
		return CriticalLevel, true
	default:
		return InfoLevel, false
	}
}

// LevelString returns the canonical name of a Level as it appears in rendered
// output (the #L specifier).
func LevelString(level Level) string {
	switch level {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case SevereLevel:
		return "SEVERE"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "???"
	}
}

// LevelFromEnv looks up key in the environment and parses it into a Level.
func LevelFromEnv(key string) (Level, bool) {
	if key == "" {
		return InfoLevel, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return InfoLevel, false
	}
	return ParseLevel(value)
}

func validLevel(level Level) bool {
	return level >= TraceLevel && level <= UnknownLevel
}
