package prism

import (
	"io"
	"os"
	"sync"
	"time"
)

// Options controls how a Logger renders and filters output.
type Options struct {
	// MinLevel sets the minimum severity the logger will emit. Defaults to
	// Trace, the most verbose.
	MinLevel Level

	// Header overrides the header template expanded before every message
	// body. When empty, DefaultHeader is used.
	Header string

	// Prefix overrides the specifier escape character. Zero means '#'.
	Prefix byte

	// Marker overrides the conversion escape character. Zero means '%'.
	Marker byte

	// Theme overrides the severity color mapping. When nil, the dark theme
	// is used.
	Theme *Theme

	// Registry overrides the specifier registry. When nil, the built-in
	// registry is used.
	Registry *Registry

	// NoColor forces escape sequences off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits escape sequences even
	// when the destination is not a tty. Useful for tests and forced-color
	// pipelines.
	ForceColor bool

	// Diagnostics receives the renderer's own error reports (the
	// missing-theme-entry case, failed writes). Defaults to os.Stderr.
	Diagnostics io.Writer
}

// Logger renders themed, template-driven log lines to one output writer. Its
// configuration object can be shared between loggers and reconfigured while
// logging; see Config.
type Logger struct {
	out   io.Writer
	cfg   *Config
	color bool
	diag  io.Writer
	now   func() time.Time // test clock override, nil in production
}

// New returns a logger writing to w with the default configuration. Escape
// sequences are emitted only when w is a terminal.
func New(w io.Writer) *Logger {
	return NewWithOptions(w, Options{})
}

// NewWithOptions returns a logger writing to w configured from opts.
func NewWithOptions(w io.Writer, opts Options) *Logger {
	cfg := NewConfig()
	cfg.SetMinLevel(opts.MinLevel)
	if opts.Header != "" {
		cfg.SetHeader(opts.Header)
	}
	if opts.Prefix != 0 {
		cfg.SetPrefix(opts.Prefix)
	}
	if opts.Marker != 0 {
		cfg.SetMarker(opts.Marker)
	}
	if opts.Theme != nil {
		cfg.SetTheme(opts.Theme)
	}
	if opts.Registry != nil {
		cfg.SetRegistry(opts.Registry)
	}
	return newLogger(w, cfg, opts)
}

// NewWithConfig returns a logger writing to w that shares cfg. Reconfiguring
// cfg affects every logger built on it.
func NewWithConfig(w io.Writer, cfg *Config) *Logger {
	if cfg == nil {
		cfg = NewConfig()
	}
	return newLogger(w, cfg, Options{})
}

func newLogger(w io.Writer, cfg *Config, opts Options) *Logger {
	if w == nil {
		w = io.Discard
	}
	diag := opts.Diagnostics
	if diag == nil {
		diag = os.Stderr
	}
	return &Logger{
		out:   w,
		cfg:   cfg,
		color: !opts.NoColor && (opts.ForceColor || isTerminal(w)),
		diag:  diag,
	}
}

// Config returns the logger's configuration object for get/set access.
func (l *Logger) Config() *Config {
	return l.cfg
}

// Trace logs template at TraceLevel.
func (l *Logger) Trace(template string, args ...any) {
	l.log(TraceLevel, template, args)
}

// Debug logs template at DebugLevel.
func (l *Logger) Debug(template string, args ...any) {
	l.log(DebugLevel, template, args)
}

// Info logs template at InfoLevel.
func (l *Logger) Info(template string, args ...any) {
	l.log(InfoLevel, template, args)
}

// Warn logs template at WarnLevel.
func (l *Logger) Warn(template string, args ...any) {
	l.log(WarnLevel, template, args)
}

// Severe logs template at SevereLevel.
func (l *Logger) Severe(template string, args ...any) {
	l.log(SevereLevel, template, args)
}

// Critical logs template at CriticalLevel.
func (l *Logger) Critical(template string, args ...any) {
	l.log(CriticalLevel, template, args)
}

// Log renders template at the supplied level and returns the discriminated
// outcome, which the per-severity methods discard.
func (l *Logger) Log(level Level, template string, args ...any) (Status, error) {
	return l.log(level, template, args)
}

func (l *Logger) log(level Level, template string, args []any) (Status, error) {
	msg := Message{
		Level:    level,
		Template: template,
		Location: callerLocation(2),
	}
	return l.render(msg, NewArgs(args...))
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(os.Stdout)
)

// Default returns the package-level logger, which writes to stdout.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Trace logs template at TraceLevel on the package-level logger.
func Trace(template string, args ...any) {
	Default().log(TraceLevel, template, args)
}

// Debug logs template at DebugLevel on the package-level logger.
func Debug(template string, args ...any) {
	Default().log(DebugLevel, template, args)
}

// Info logs template at InfoLevel on the package-level logger.
func Info(template string, args ...any) {
	Default().log(InfoLevel, template, args)
}

// Warn logs template at WarnLevel on the package-level logger.
func Warn(template string, args ...any) {
	Default().log(WarnLevel, template, args)
}

// Severe logs template at SevereLevel on the package-level logger.
func Severe(template string, args ...any) {
	Default().log(SevereLevel, template, args)
}

// Critical logs template at CriticalLevel on the package-level logger.
func Critical(template string, args ...any) {
	Default().log(CriticalLevel, template, args)
}
