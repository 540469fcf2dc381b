package prism

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const unknownFunction = "unknown"

// Location identifies the call site of a log statement: file, function name
// and line number. The built-in #f, #F, #l and #c specifiers render it.
type Location struct {
	File     string
	Function string
	Line     int
}

// String renders the location in the composite "function @ file:line" form
// used by the #c specifier.
func (l Location) String() string {
	var sb strings.Builder
	sb.WriteString(l.Function)
	sb.WriteString(" @ ")
	sb.WriteString(l.File)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(l.Line))
	return sb.String()
}

// callerLocation captures the Location skip frames above the caller. A frame
// that cannot be resolved yields the "unknown" placeholders so rendering
// never fails.
func callerLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: unknownFunction, Function: unknownFunction}
	}
	return Location{
		File:     filepath.Base(file),
		Function: functionNameForPC(pc),
		Line:     line,
	}
}

func functionNameForPC(pc uintptr) string {
	if pc == 0 {
		return unknownFunction
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownFunction
	}
	return trimFunctionName(fn.Name())
}

func trimFunctionName(name string) string {
	if name == "" {
		return unknownFunction
	}
	// Remove package path and package prefix.
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return unknownFunction
	}
	return name
}
