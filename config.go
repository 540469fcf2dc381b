package prism

import "sync"

// Defaults installed by NewConfig.
const (
	// DefaultHeader is the header template rendered before every message
	// body.
	DefaultHeader = "(#d-#t) [#L in #c]  "
	// DefaultPrefix introduces specifier escapes in templates.
	DefaultPrefix = '#'
	// DefaultMarker introduces conversion-verb escapes in templates.
	DefaultMarker = '%'
)

// Config holds the mutable logging configuration: minimum severity, header
// template, escape characters, active theme and specifier registry. All
// accessors are guarded by a read-write lock, so reconfiguring while other
// goroutines log is a serialization point rather than a race.
type Config struct {
	mu       sync.RWMutex
	minLevel Level
	header   string
	prefix   byte
	marker   byte
	theme    *Theme
	registry *Registry
}

// NewConfig returns a configuration with the defaults: most verbose minimum
// level, '#' prefix, '%' marker, the standard header template, the built-in
// specifier registry and the dark theme.
func NewConfig() *Config {
	return &Config{
		minLevel: TraceLevel,
		header:   DefaultHeader,
		prefix:   DefaultPrefix,
		marker:   DefaultMarker,
		theme:    ThemeDark(),
		registry: DefaultRegistry(),
	}
}

// MinLevel returns the minimum severity a renderer will emit.
func (c *Config) MinLevel() Level {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.minLevel
}

// SetMinLevel replaces the minimum severity. Out-of-range values are ignored.
func (c *Config) SetMinLevel(level Level) {
	if !validLevel(level) {
		return
	}
	c.mu.Lock()
	c.minLevel = level
	c.mu.Unlock()
}

// Header returns the header template.
func (c *Config) Header() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.header
}

// SetHeader replaces the header template.
func (c *Config) SetHeader(header string) {
	c.mu.Lock()
	c.header = header
	c.mu.Unlock()
}

// Prefix returns the specifier escape character.
func (c *Config) Prefix() byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prefix
}

// SetPrefix replaces the specifier escape character.
func (c *Config) SetPrefix(prefix byte) {
	if prefix == 0 {
		return
	}
	c.mu.Lock()
	c.prefix = prefix
	c.mu.Unlock()
}

// Marker returns the conversion escape character.
func (c *Config) Marker() byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.marker
}

// SetMarker replaces the conversion escape character.
func (c *Config) SetMarker(marker byte) {
	if marker == 0 {
		return
	}
	c.mu.Lock()
	c.marker = marker
	c.mu.Unlock()
}

// Theme returns the active theme.
func (c *Config) Theme() *Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme
}

// SetTheme replaces the active theme. A nil theme is ignored.
func (c *Config) SetTheme(theme *Theme) {
	if theme == nil {
		return
	}
	c.mu.Lock()
	c.theme = theme
	c.mu.Unlock()
}

// Registry returns the active specifier registry.
func (c *Config) Registry() *Registry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.registry
}

// SetRegistry replaces the specifier registry wholesale. A nil registry is
// ignored.
func (c *Config) SetRegistry(registry *Registry) {
	if registry == nil {
		return
	}
	c.mu.Lock()
	c.registry = registry
	c.mu.Unlock()
}

// RegisterSpecifier appends a specifier to the active registry. The registry
// is copied before the append so renders holding the previous registry are
// unaffected.
func (c *Config) RegisterSpecifier(spec Specifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := NewRegistry()
	if c.registry != nil {
		next.specs = append(next.specs, c.registry.specs...)
	}
	next.Register(spec)
	c.registry = next
}

// engine snapshots the escape characters and registry under one read lock so
// a render observes a consistent trio.
func (c *Config) engine() Engine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Engine{Prefix: c.prefix, Marker: c.marker, Registry: c.registry}
}
